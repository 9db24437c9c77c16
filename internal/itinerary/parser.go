package itinerary

import (
	"fmt"
	"regexp"
	"strings"
)

// Паттерны заголовков дня в порядке убывания строгости. Побеждает первый
// паттерн, давший хотя бы одно совпадение; результаты разных паттернов
// никогда не смешиваются.
var dayHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?mi)^## Día \d+:[^\n]*`),
	regexp.MustCompile(`(?mi)^## Día \d+[^\n]*`),
	regexp.MustCompile(`(?mi)^##Día \d+[^\n]*`),
	regexp.MustCompile(`(?mi)^## ?D[íi]a ?\d+[^\n]*`),
	regexp.MustCompile(`(?mi)^## ?Day ?\d+[^\n]*`),
}

var level2HeadingRe = regexp.MustCompile(`(?m)^##[^\n]*`)

var dayWordRe = regexp.MustCompile(`(?i)d[íi]a|day`)

// SegmentDays разбивает нормализованный текст на дни. Сначала пробуются
// строгие паттерны заголовков, затем любые заголовки второго уровня со
// словом «día», и наконец позиционное разбиение абзацев на 1-3 дня.
func SegmentDays(content string) []DayEntry {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	for _, p := range dayHeadingPatterns {
		locs := p.FindAllStringIndex(content, -1)
		if len(locs) == 0 {
			continue
		}
		days := make([]DayEntry, 0, len(locs))
		for i, loc := range locs {
			end := len(content)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			body := content[loc[1]:end]
			// Тело дня заканчивается на следующем заголовке второго
			// уровня, даже если это не день (например, раздел советов).
			if next := level2HeadingRe.FindStringIndex(body); next != nil {
				body = body[:next[0]]
			}
			days = append(days, DayEntry{
				Title:   strings.TrimSpace(strings.TrimLeft(content[loc[0]:loc[1]], "# ")),
				Content: strings.TrimSpace(body),
			})
		}
		return days
	}

	if days := segmentByLooseHeadings(content); len(days) > 0 {
		return days
	}
	return segmentByParagraphs(content)
}

// segmentByLooseHeadings оставляет только те разделы второго уровня,
// в заголовке которых встречается слово «día» в любом написании.
func segmentByLooseHeadings(content string) []DayEntry {
	locs := level2HeadingRe.FindAllStringIndex(content, -1)
	var days []DayEntry
	for i, loc := range locs {
		title := strings.TrimSpace(strings.TrimLeft(content[loc[0]:loc[1]], "# "))
		if !dayWordRe.MatchString(title) {
			continue
		}
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		days = append(days, DayEntry{
			Title:   title,
			Content: strings.TrimSpace(content[loc[1]:end]),
		})
	}
	return days
}

// segmentByParagraphs — последний рубеж: текст без заголовков делится на
// абзацы, а абзацы распределяются максимум по трем синтетическим дням.
func segmentByParagraphs(content string) []DayEntry {
	var paragraphs []string
	for _, p := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(p))
		}
	}
	if len(paragraphs) == 0 {
		return nil
	}

	n := len(paragraphs)
	dayCount := 3
	if n < dayCount {
		dayCount = n
	}
	days := make([]DayEntry, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		start := i * n / dayCount
		end := (i + 1) * n / dayCount
		days = append(days, DayEntry{
			Title:   fmt.Sprintf("Día %d", i+1),
			Content: strings.Join(paragraphs[start:end], "\n\n"),
		})
	}
	return days
}

// timePatterns перечисляет варианты написания маркера времени суток,
// от строгих к расхлябанным.
var timePatterns = buildTimePatterns()

// anyTimeMarkerRe находит начало любого маркера в любом написании и
// ограничивает содержимое предыдущего подраздела.
var anyTimeMarkerRe = regexp.MustCompile(`(?mi)\*\*(?:Mañana|Tarde|Noche)(?:\*\*:?|:\*\*)|^(?:Mañana|Tarde|Noche):|^##[ \t]*(?:Mañana|Tarde|Noche)`)

func buildTimePatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(timeMarkers))
	for _, m := range timeMarkers {
		q := regexp.QuoteMeta(m)
		patterns[m] = []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`(?i)\*\*%s\*\*:`, q)),
			regexp.MustCompile(fmt.Sprintf(`(?i)\*\*%s:\*\*`, q)),
			regexp.MustCompile(fmt.Sprintf(`(?i)\*\*%s\*\*`, q)),
			regexp.MustCompile(fmt.Sprintf(`(?mi)^%s:`, q)),
			regexp.MustCompile(fmt.Sprintf(`(?mi)^##[ \t]*%s:?`, q)),
		}
	}
	return patterns
}

func extractTimePart(content, marker string) string {
	for _, p := range timePatterns[marker] {
		loc := p.FindStringIndex(content)
		if loc == nil {
			continue
		}
		rest := content[loc[1]:]
		if next := anyTimeMarkerRe.FindStringIndex(rest); next != nil {
			rest = rest[:next[0]]
		}
		return strings.TrimSpace(rest)
	}
	return ""
}

// ExtractDayParts выделяет из текста дня подразделы «утро», «день»,
// «вечер». Если ни один маркер не найден, непустые строки дня делятся на
// три сбалансированные группы: размеры любых двух групп отличаются не
// больше чем на единицу.
func ExtractDayParts(content string) DaySections {
	sections := DaySections{
		Morning:   extractTimePart(content, "Mañana"),
		Afternoon: extractTimePart(content, "Tarde"),
		Evening:   extractTimePart(content, "Noche"),
	}
	if !sections.Empty() {
		return sections
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if len(lines) == 0 {
		return sections
	}

	n := len(lines)
	first := n/3 + min(n%3, 1)
	second := first + n/3 + n%3/2
	sections.Morning = strings.Join(lines[:first], "\n")
	sections.Afternoon = strings.Join(lines[first:second], "\n")
	sections.Evening = strings.Join(lines[second:], "\n")
	return sections
}

// ExtractSection возвращает содержимое именованного побочного раздела:
// от его заголовка до следующего заголовка второго уровня или конца текста.
// Отсутствующий раздел дает пустую строку, не ошибку.
func ExtractSection(content, label string) string {
	q := regexp.QuoteMeta(label)
	patterns := []*regexp.Regexp{
		regexp.MustCompile(fmt.Sprintf(`(?mi)^## ?%s:?[^\n]*\n`, q)),
		regexp.MustCompile(fmt.Sprintf(`(?mi)^%s:[ \t]*`, q)),
	}
	for _, p := range patterns {
		loc := p.FindStringIndex(content)
		if loc == nil {
			continue
		}
		rest := content[loc[1]:]
		if next := level2HeadingRe.FindStringIndex(rest); next != nil {
			rest = rest[:next[0]]
		}
		return strings.TrimSpace(rest)
	}
	return ""
}

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	sourceItemRe   = regexp.MustCompile(`(?m)^[-*][ \t]+\[([^\]]+)\]\(([^)]+)\)`)
)

// ExtractLinks собирает все Markdown-ссылки документа в порядке появления.
func ExtractLinks(content string) []Link {
	matches := markdownLinkRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], URL: m[2]})
	}
	return links
}

// ExtractSources читает список источников из раздела «Fuentes consultadas».
func ExtractSources(content string) []Source {
	section := ExtractSection(content, "Fuentes consultadas")
	if section == "" {
		return nil
	}
	matches := sourceItemRe.FindAllStringSubmatch(section, -1)
	if len(matches) == 0 {
		return nil
	}
	sources := make([]Source, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, Source{Title: m[1], URL: m[2]})
	}
	return sources
}
