package itinerary

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

var (
	headingMarkerRe = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	bulletRe        = regexp.MustCompile(`(?m)^-[ \t]+`)
)

// StripMarkdown убирает из текста служебную разметку: ссылки заменяются
// своим текстом, жирный и курсив раскрываются, решетки заголовков и
// маркеры списков отбрасываются. Ссылок в результате не остается.
func StripMarkdown(text string) string {
	s := markdownLinkRe.ReplaceAllString(text, "$1")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	s = headingMarkerRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "• ")
	return strings.TrimSpace(s)
}

// safeLinkURL пропускает только абсолютные http(s)-адреса.
func safeLinkURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func formatPlainHTML(text string) string {
	s := html.EscapeString(text)
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	s = headingMarkerRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "• ")
	return strings.ReplaceAll(s, "\n", "<br>")
}

// formatHTML экранирует текст и превращает Markdown-ссылки в безопасные
// якоря. Ссылки с недопустимой схемой вырождаются в обычный текст.
func formatHTML(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range markdownLinkRe.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(formatPlainHTML(text[last:loc[0]]))
		linkText := text[loc[2]:loc[3]]
		linkURL := text[loc[4]:loc[5]]
		if safeLinkURL(linkURL) {
			fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
				html.EscapeString(strings.TrimSpace(linkURL)), html.EscapeString(linkText))
		} else {
			b.WriteString(html.EscapeString(linkText))
		}
		last = loc[1]
	}
	b.WriteString(formatPlainHTML(text[last:]))
	return b.String()
}

var timeSectionLabels = []struct {
	class, label string
	pick         func(DaySections) string
}{
	{"morning", "Mañana", func(s DaySections) string { return s.Morning }},
	{"afternoon", "Tarde", func(s DaySections) string { return s.Afternoon }},
	{"evening", "Noche", func(s DaySections) string { return s.Evening }},
}

var sideSectionLabels = []struct {
	label string
	pick  func(ViewModel) string
}{
	{"Recomendaciones de alojamiento", func(vm ViewModel) string { return vm.Accommodation }},
	{"Consejos prácticos", func(vm ViewModel) string { return vm.PracticalInfo }},
	{"Presupuesto estimado", func(vm ViewModel) string { return vm.Budget }},
	{"Sugerencias gastronómicas", func(vm ViewModel) string { return vm.Gastronomy }},
}

// RenderEmailHTML строит единый HTML-фрагмент итинерария для письма и для
// предпросмотра: дни с подразделами по времени суток, затем побочные
// разделы. Весь пользовательский текст экранируется.
func RenderEmailHTML(vm ViewModel) string {
	var b strings.Builder

	for _, day := range vm.Days {
		fmt.Fprintf(&b, `<div class="day-title">%s</div>`, html.EscapeString(cleanHeading(day.Title)))
		if day.Sections.Empty() {
			fmt.Fprintf(&b, `<p>%s</p>`, formatHTML(day.Content))
			continue
		}
		for _, ts := range timeSectionLabels {
			content := ts.pick(day.Sections)
			if content == "" {
				continue
			}
			fmt.Fprintf(&b, `<div class="%s"><strong>%s</strong><br>%s</div>`,
				ts.class, ts.label, formatHTML(content))
		}
	}

	for _, ss := range sideSectionLabels {
		content := ss.pick(vm)
		if content == "" {
			continue
		}
		fmt.Fprintf(&b, `<div class="day-title">%s</div><p>%s</p>`,
			ss.label, formatHTML(content))
	}

	return b.String()
}

func cleanHeading(title string) string {
	return strings.TrimSpace(strings.TrimLeft(title, "# "))
}

// FallbackLinks подставляет базовые ссылки для направления, когда сам
// текст итинерария не содержит ни одной.
func FallbackLinks(destination string) []Link {
	q := url.QueryEscape(destination)
	return []Link{
		{Text: "Ver " + destination + " en Google Maps", URL: "https://www.google.com/maps/search/" + q},
		{Text: "Guía de " + destination + " en TripAdvisor", URL: "https://www.tripadvisor.com/Search?q=" + q},
		{Text: "Alojamiento en " + destination, URL: "https://www.booking.com/searchresults.html?ss=" + q},
	}
}
