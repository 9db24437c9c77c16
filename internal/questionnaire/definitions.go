package questionnaire

// Типы вопросов анкеты.
const (
	TypeSlider   = "slider"
	TypeRadio    = "radio"
	TypeCheckbox = "checkbox"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// Question — один вопрос анкеты. Смысл полей зависит от Type: Min/Max
// и подписи крайних значений — только у слайдеров, MaxSelections — только
// у чекбоксов.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Type          string   `json:"type"`
	Required      bool     `json:"required"`
	Min           int      `json:"min,omitempty"`
	Max           int      `json:"max,omitempty"`
	MinLabel      string   `json:"min_label,omitempty"`
	MaxLabel      string   `json:"max_label,omitempty"`
	MaxSelections int      `json:"max_selections,omitempty"`
	Options       []Option `json:"options,omitempty"`
}

type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Icon      string     `json:"icon,omitempty"`
	Questions []Question `json:"questions"`
}

// QuizQuestion — вопрос быстрого квиза перед генерацией.
type QuizQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// QuizQuestions — короткий квиз из пяти вопросов для первой генерации.
var QuizQuestions = []QuizQuestion{
	{
		ID:     "travel-type",
		Prompt: "¿Qué tipo de viaje buscas?",
		Options: []Option{
			{Value: "relax", Label: "Relax y descanso", Icon: "🏖️"},
			{Value: "aventura", Label: "Aventura", Icon: "🧗"},
			{Value: "cultural", Label: "Cultural", Icon: "🏛️"},
			{Value: "romantico", Label: "Romántico", Icon: "💕"},
		},
	},
	{
		ID:     "duration",
		Prompt: "¿Cuánto tiempo durará tu viaje?",
		Options: []Option{
			{Value: "fin-de-semana", Label: "Un fin de semana"},
			{Value: "una-semana", Label: "Una semana"},
			{Value: "dos-semanas", Label: "Dos semanas"},
			{Value: "mas", Label: "Más de dos semanas"},
		},
	},
	{
		ID:     "budget",
		Prompt: "¿Cuál es tu presupuesto?",
		Options: []Option{
			{Value: "economico", Label: "Económico", Icon: "💰"},
			{Value: "medio", Label: "Medio", Icon: "💳"},
			{Value: "alto", Label: "Alto", Icon: "💎"},
		},
	},
	{
		ID:     "activities",
		Prompt: "¿Qué actividades prefieres?",
		Options: []Option{
			{Value: "gastronomia", Label: "Gastronomía", Icon: "🍽️"},
			{Value: "naturaleza", Label: "Naturaleza", Icon: "🌲"},
			{Value: "museos", Label: "Museos y arte", Icon: "🎨"},
			{Value: "vida-nocturna", Label: "Vida nocturna", Icon: "🌃"},
		},
	},
	{
		ID:     "accommodation",
		Prompt: "¿Dónde prefieres alojarte?",
		Options: []Option{
			{Value: "hotel", Label: "Hotel"},
			{Value: "apartamento", Label: "Apartamento"},
			{Value: "hostal", Label: "Hostal"},
			{Value: "camping", Label: "Camping"},
		},
	},
}

// Sections — полная анкета предпочтений из трех разделов.
var Sections = []Section{
	{
		ID:    "basics",
		Title: "Lo básico",
		Icon:  "🧭",
		Questions: []Question{
			{
				ID:       "adventure-level",
				Prompt:   "¿Cuánta aventura quieres en tu viaje?",
				Type:     TypeSlider,
				Required: true,
				Min:      1,
				Max:      5,
				MinLabel: "Tranquilo",
				MaxLabel: "Extremo",
			},
			{
				ID:            "travel-motivations",
				Prompt:        "¿Qué te motiva a viajar?",
				Type:          TypeCheckbox,
				Required:      true,
				MaxSelections: 3,
				Options: []Option{
					{Value: "descubrir", Label: "Descubrir lugares nuevos"},
					{Value: "desconectar", Label: "Desconectar de la rutina"},
					{Value: "gastronomia", Label: "Probar la gastronomía local"},
					{Value: "cultura", Label: "Conocer otras culturas"},
					{Value: "naturaleza", Label: "Estar en la naturaleza"},
					{Value: "deporte", Label: "Hacer deporte"},
				},
			},
			{
				ID:       "trip-occasion",
				Prompt:   "¿Con quién viajas?",
				Type:     TypeRadio,
				Required: true,
				Options: []Option{
					{Value: "solo", Label: "Solo/a"},
					{Value: "pareja", Label: "En pareja"},
					{Value: "familia", Label: "En familia"},
					{Value: "amigos", Label: "Con amigos"},
				},
			},
		},
	},
	{
		ID:    "budget",
		Title: "Presupuesto",
		Icon:  "💶",
		Questions: []Question{
			{
				ID:       "budget-level",
				Prompt:   "¿Qué nivel de gasto te resulta cómodo?",
				Type:     TypeRadio,
				Required: true,
				Options: []Option{
					{Value: "mochilero", Label: "Mochilero"},
					{Value: "moderado", Label: "Moderado"},
					{Value: "confort", Label: "Confort"},
					{Value: "lujo", Label: "Lujo"},
				},
			},
			{
				ID:            "budget-priority",
				Prompt:        "¿En qué prefieres gastar más?",
				Type:          TypeCheckbox,
				Required:      true,
				MaxSelections: 2,
				Options: []Option{
					{Value: "alojamiento", Label: "Alojamiento"},
					{Value: "comida", Label: "Comida"},
					{Value: "experiencias", Label: "Experiencias"},
					{Value: "compras", Label: "Compras"},
				},
			},
		},
	},
	{
		ID:    "style",
		Title: "Estilo de viaje",
		Icon:  "🎒",
		Questions: []Question{
			{
				ID:       "travel-style",
				Prompt:   "¿Cómo describes tu estilo de viaje?",
				Type:     TypeRadio,
				Required: true,
				Options: []Option{
					{Value: "planificado", Label: "Todo planificado"},
					{Value: "flexible", Label: "Plan flexible"},
					{Value: "improvisado", Label: "Improvisación total"},
				},
			},
			{
				ID:       "accommodation-type",
				Prompt:   "¿Qué alojamiento prefieres?",
				Type:     TypeRadio,
				Required: false,
				Options: []Option{
					{Value: "hotel", Label: "Hotel"},
					{Value: "apartamento", Label: "Apartamento"},
					{Value: "casa-rural", Label: "Casa rural"},
					{Value: "hostal", Label: "Hostal"},
				},
			},
			{
				ID:       "sustainability",
				Prompt:   "¿Qué importancia das a la sostenibilidad?",
				Type:     TypeSlider,
				Required: false,
				Min:      1,
				Max:      5,
				MinLabel: "Poca",
				MaxLabel: "Mucha",
			},
		},
	},
}
