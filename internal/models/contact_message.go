package models

// ContactMessage is the banner shown on the contact page.
type ContactMessage struct {
	Title string `json:"contact_message_title"`
	Body  string `json:"contact_message_body"`
}
