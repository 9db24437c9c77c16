package itinerary

import (
	"fmt"
	"regexp"
	"strings"
)

// Маркеры времени суток, которые генератор обязан расставлять в тексте дня.
var timeMarkers = []string{"Mañana", "Tarde", "Noche"}

var (
	// Заголовок дня, к которому без перевода строки приклеен жирный
	// маркер: "## Día 1: Centro**Mañana**...".
	headingNewlineRe = regexp.MustCompile(`(?m)^(##[^\n*]+)(\*\*)`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// markerRewrite приводит одно написание маркера к каноничному "**Маркер**:".
type markerRewrite struct {
	pattern *regexp.Regexp
	repl    string
}

var markerRewrites = buildMarkerRewrites()

func buildMarkerRewrites() []markerRewrite {
	var rewrites []markerRewrite
	for _, m := range timeMarkers {
		q := regexp.QuoteMeta(m)
		rewrites = append(rewrites,
			// **Mañana:** -> **Mañana**:
			markerRewrite{regexp.MustCompile(fmt.Sprintf(`\*\*%s:\*\*`, q)), fmt.Sprintf("**%s**:", m)},
			// **Mañana** без двоеточия (или с ним) -> **Mañana**:
			markerRewrite{regexp.MustCompile(fmt.Sprintf(`\*\*%s\*\*:?`, q)), fmt.Sprintf("**%s**:", m)},
			// Mañana: в начале строки -> **Mañana**:
			markerRewrite{regexp.MustCompile(fmt.Sprintf(`(?m)^%s:`, q)), fmt.Sprintf("**%s**:", m)},
			// одиночное Mañana на своей строке -> **Mañana**:
			markerRewrite{regexp.MustCompile(fmt.Sprintf(`(?m)^%s$`, q)), fmt.Sprintf("**%s**:", m)},
		)
	}
	return rewrites
}

// Normalize чинит типовые дефекты разметки генератора: заголовок без
// перевода строки после него, разнобой в написании маркеров времени суток,
// лишние пустые строки. Функция идемпотентна: Normalize(Normalize(x)) ==
// Normalize(x).
func Normalize(content string) string {
	s := headingNewlineRe.ReplaceAllString(content, "$1\n$2")
	for _, rw := range markerRewrites {
		s = rw.pattern.ReplaceAllString(s, rw.repl)
	}
	s = excessNewlinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
