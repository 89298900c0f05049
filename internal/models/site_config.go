package models

import "strings"

// SiteConfig holds the contact and social fields shown in the header, footer and contact page.
type SiteConfig struct {
	WhatsappNumber    string `json:"whatsapp_number"`
	Email             string `json:"email"`
	PhoneDisplay      string `json:"phone_display"`
	Address           string `json:"address"`
	InstagramURL      string `json:"instagram_url"`
	TwitterURL        string `json:"twitter_url"`
	TelegramURL       string `json:"telegram_url"`
	FooterDescription string `json:"footer_description"`
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		WhatsappNumber:    "59899123456",
		Email:             "info@capitaluy.com",
		PhoneDisplay:      "+598 99 123 456",
		Address:           "Montevideo, Uruguay",
		InstagramURL:      "#",
		TwitterURL:        "#",
		TelegramURL:       "#",
		FooterDescription: "Tu plataforma confiable para comprar y vender USDT y criptomonedas en Uruguay.",
	}
}

// Coalesce trims every field and replaces blank ones with the matching default.
func (c SiteConfig) Coalesce(def SiteConfig) SiteConfig {
	pick := func(v, fallback string) string {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
		return fallback
	}
	return SiteConfig{
		WhatsappNumber:    pick(c.WhatsappNumber, def.WhatsappNumber),
		Email:             pick(c.Email, def.Email),
		PhoneDisplay:      pick(c.PhoneDisplay, def.PhoneDisplay),
		Address:           pick(c.Address, def.Address),
		InstagramURL:      pick(c.InstagramURL, def.InstagramURL),
		TwitterURL:        pick(c.TwitterURL, def.TwitterURL),
		TelegramURL:       pick(c.TelegramURL, def.TelegramURL),
		FooterDescription: pick(c.FooterDescription, def.FooterDescription),
	}
}
