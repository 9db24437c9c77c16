package itinerary

// DaySections — подразделы дня по времени суток. Пустое поле означает,
// что маркер в тексте дня не найден.
type DaySections struct {
	Morning   string `json:"morning,omitempty"`
	Afternoon string `json:"afternoon,omitempty"`
	Evening   string `json:"evening,omitempty"`
}

// Empty сообщает, что ни один из трех подразделов не заполнен.
func (s DaySections) Empty() bool {
	return s.Morning == "" && s.Afternoon == "" && s.Evening == ""
}

// DayEntry — один день итинерария в порядке появления в документе.
type DayEntry struct {
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Sections DaySections `json:"sections"`
}

type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ViewModel — структурированная проекция сырого текста итинерария.
// Строится заново для каждого rawText, инкрементальных обновлений нет.
type ViewModel struct {
	Days          []DayEntry `json:"days"`
	Accommodation string     `json:"accommodation,omitempty"`
	PracticalInfo string     `json:"practical_info,omitempty"`
	Budget        string     `json:"budget,omitempty"`
	Gastronomy    string     `json:"gastronomy,omitempty"`
	Links         []Link     `json:"links,omitempty"`
	Sources       []Source   `json:"sources,omitempty"`
}

// Parse превращает сырой Markdown-текст генератора в модель представления.
// Разбор никогда не возвращает ошибку: на несоответствие паттернам каждая
// стадия отвечает пустым результатом, а деградация выражается пустым Days.
func Parse(raw string) ViewModel {
	content := Normalize(raw)

	days := SegmentDays(content)
	for i := range days {
		days[i].Sections = ExtractDayParts(days[i].Content)
	}

	return ViewModel{
		Days:          days,
		Accommodation: ExtractSection(content, "Recomendaciones de alojamiento"),
		PracticalInfo: ExtractSection(content, "Consejos prácticos"),
		Budget:        ExtractSection(content, "Presupuesto estimado"),
		Gastronomy:    ExtractSection(content, "Sugerencias gastronómicas"),
		Links:         ExtractLinks(content),
		Sources:       ExtractSources(content),
	}
}
