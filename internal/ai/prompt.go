package ai

import (
	"fmt"
	"strings"

	"example.com/konekta/backend/internal/models"
)

// systemPrompt задает роль модели и обязательный формат ответа: дни как
// заголовки второго уровня, внутри дня жирные маркеры времени суток.
const systemPrompt = `Eres un experto planificador de viajes. Genera itinerarios detallados y realistas en español.

Formato obligatorio de la respuesta, en Markdown:
- Cada día empieza con un encabezado de nivel 2: "## Día N: <título corto>".
- Dentro de cada día usa los marcadores "**Mañana**:", "**Tarde**:" y "**Noche**:" seguidos de las actividades.
- Incluye enlaces en formato Markdown [nombre](url) para lugares concretos cuando sea posible.
- Al final añade las secciones "## Recomendaciones de alojamiento", "## Consejos prácticos", "## Presupuesto estimado", "## Sugerencias gastronómicas" y "## Fuentes consultadas" con una lista de enlaces.`

// BuildPrompt собирает пользовательский промпт из предпочтений. Пустые поля
// опускаются целиком: отсутствие строки и есть сигнал «не учитывать».
func BuildPrompt(prefs models.TripPreferences) string {
	var b strings.Builder

	days := prefs.DurationDays
	if days <= 0 {
		days = 3
	}
	fmt.Fprintf(&b, "Crea un itinerario de viaje de %d días para %s.\n", days, prefs.Destination)
	b.WriteString("\nPreferencias del viajero:\n")

	writeIf(&b, "Tipo de viaje", prefs.TravelType)
	writeIf(&b, "Duración", prefs.Duration)
	writeIf(&b, "Presupuesto", prefs.Budget)
	writeIf(&b, "Nivel de presupuesto", prefs.BudgetLevel)
	if len(prefs.BudgetPriorities) > 0 {
		writeIf(&b, "Prioridades de gasto", strings.Join(prefs.BudgetPriorities, ", "))
	}
	writeIf(&b, "Estilo de viaje", prefs.TravelStyle)
	if len(prefs.Interests) > 0 {
		writeIf(&b, "Intereses", strings.Join(prefs.Interests, ", "))
	}
	writeIf(&b, "Alojamiento preferido", prefs.Accommodation)
	writeIf(&b, "Compañía de viaje", prefs.TravelCompanions)
	if prefs.AdventureLevel > 0 {
		writeIf(&b, "Nivel de aventura (1-5)", fmt.Sprintf("%d", prefs.AdventureLevel))
	}
	if prefs.EnvironmentalConsciousness > 0 {
		writeIf(&b, "Conciencia ambiental (1-5)", fmt.Sprintf("%d", prefs.EnvironmentalConsciousness))
	}
	writeIf(&b, "Peticiones adicionales", prefs.AdditionalRequests)

	b.WriteString("\nResponde únicamente con el itinerario en el formato indicado.")
	return b.String()
}

func writeIf(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}
