package models

// CourseImage is an uploaded image kept inline as a data URL.
type CourseImage struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

type Course struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Level       string        `json:"level"`
	LevelColor  string        `json:"levelColor"`
	Duration    string        `json:"duration"`
	Students    int           `json:"students"`
	Rating      float64       `json:"rating"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency"`
	Features    []string      `json:"features"`
	Images      []CourseImage `json:"images,omitempty"`
}

// Course levels and the badge classes the storefront renders for them
const (
	LevelBeginner     = "Principiante"
	LevelIntermediate = "Intermedio"
	LevelAdvanced     = "Avanzado"
)

var levelColors = map[string]string{
	LevelBeginner:     "bg-accent text-accent-foreground",
	LevelIntermediate: "bg-chart-3 text-background",
	LevelAdvanced:     "bg-primary text-primary-foreground",
}

// LevelColor returns the badge classes for level, falling back to the beginner badge.
func LevelColor(level string) string {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return levelColors[LevelBeginner]
}

// NewCourseTemplate is the object a new course's fields are merged over.
func NewCourseTemplate() Course {
	return Course{
		Title:      "Nuevo curso",
		Level:      LevelBeginner,
		LevelColor: LevelColor(LevelBeginner),
		Duration:   "4 horas",
		Rating:     4.5,
		Currency:   "UYU",
		Features:   []string{},
	}
}

func DefaultCourses() []Course {
	return []Course{
		{
			ID:          "1",
			Title:       "Introduccion a las Criptomonedas",
			Description: "Aprende los conceptos basicos del mundo cripto: que es Bitcoin, blockchain, wallets y como empezar de forma segura.",
			Level:       LevelBeginner,
			LevelColor:  LevelColor(LevelBeginner),
			Duration:    "4 horas",
			Students:    150,
			Rating:      4.9,
			Price:       2500,
			Currency:    "UYU",
			Features:    []string{"Que es Bitcoin y las criptomonedas", "Como funciona la blockchain", "Crear tu primera wallet", "Seguridad basica"},
		},
		{
			ID:          "2",
			Title:       "Trading de Criptomonedas",
			Description: "Domina las tecnicas de trading: analisis tecnico, gestion de riesgo y estrategias para operar en los mercados.",
			Level:       LevelIntermediate,
			LevelColor:  LevelColor(LevelIntermediate),
			Duration:    "8 horas",
			Students:    89,
			Rating:      4.8,
			Price:       4500,
			Currency:    "UYU",
			Features:    []string{"Analisis tecnico avanzado", "Indicadores y patrones", "Gestion de riesgo", "Estrategias de trading"},
		},
		{
			ID:          "3",
			Title:       "DeFi y Finanzas Descentralizadas",
			Description: "Explora el mundo de las finanzas descentralizadas: protocolos DeFi, yield farming, staking y mas.",
			Level:       LevelAdvanced,
			LevelColor:  LevelColor(LevelAdvanced),
			Duration:    "6 horas",
			Students:    45,
			Rating:      4.9,
			Price:       5500,
			Currency:    "UYU",
			Features:    []string{"Protocolos DeFi principales", "Yield farming y staking", "Liquidity pools", "Riesgos y seguridad"},
		},
	}
}

// CourseActionRequest is the POST /api/courses body.
type CourseActionRequest struct {
	Action string                 `json:"action"`
	Course map[string]interface{} `json:"course"`
}

type CourseListResponse struct {
	Success bool     `json:"success,omitempty"`
	Courses []Course `json:"courses"`
	Course  *Course  `json:"course,omitempty"`
}
