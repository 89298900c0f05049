package models

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Reference is a customer testimonial.
type Reference struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AboutContent struct {
	Title           string      `json:"title"`
	Intro           string      `json:"intro"`
	HistoryTitle    string      `json:"historyTitle"`
	HistoryText     string      `json:"historyText"`
	CommitmentTitle string      `json:"commitmentTitle"`
	CommitmentText  string      `json:"commitmentText"`
	Stats           []Stat      `json:"stats"`
	Features        []Feature   `json:"features"`
	ReferencesTitle string      `json:"referencesTitle,omitempty"`
	References      []Reference `json:"references,omitempty"`
}

func DefaultAboutContent() AboutContent {
	return AboutContent{
		Title:        "Sobre Nosotros",
		Intro:        "Somos tu plataforma de confianza para comprar y vender USDT en Uruguay.",
		HistoryTitle: "Nuestra Historia",
		HistoryText: "CapitalUY nacio con la mision de simplificar el acceso a las criptomonedas en Uruguay. " +
			"Identificamos la necesidad de una plataforma confiable donde las personas pudieran comprar y vender USDT " +
			"de forma rapida, segura y con asesoramiento personalizado.\n\n" +
			"Hoy nos enorgullece haber completado mas de 463 operaciones en los ultimos 30 dias, con una tasa de exito " +
			"del 97.27% y un tiempo promedio de liberacion de solo 3.12 minutos. Cada transaccion refuerza nuestro " +
			"compromiso con la transparencia y la mejor experiencia del usuario.",
		CommitmentTitle: "Nuestro Compromiso",
		CommitmentText: "Nos dedicamos a brindarte la mejor experiencia en compra y venta de USDT. Atencion " +
			"personalizada por WhatsApp, precios competitivos y un proceso simple y directo sin complicaciones. " +
			"Tu seguridad y satisfaccion son nuestra prioridad.",
		Stats: []Stat{
			{Value: "463+", Label: "Operaciones en 30 dias"},
			{Value: "97.27%", Label: "Tasa de Completadas"},
			{Value: "3.78 min", Label: "Tiempo Promedio Liberacion"},
			{Value: "100%", Label: "Feedback Positivo (102)"},
		},
		Features: []Feature{
			{Title: "100% Seguro", Description: "Transacciones protegidas y verificadas"},
			{Title: "Rapido", Description: "Tiempo promedio de pago: 3.12 minutos"},
			{Title: "Soporte Personalizado", Description: "Atencion directa por WhatsApp"},
			{Title: "Sin complicaciones", Description: "Proceso simple y directo"},
		},
	}
}
