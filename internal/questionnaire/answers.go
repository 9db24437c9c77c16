package questionnaire

import (
	"fmt"

	"example.com/konekta/backend/internal/models"
)

// Answer — ответ на один вопрос. Заполнено ровно одно поле в зависимости
// от типа вопроса: Number у слайдера, Text у радио, List у чекбокса.
type Answer struct {
	Number int      `json:"number,omitempty"`
	Text   string   `json:"text,omitempty"`
	List   []string `json:"list,omitempty"`
}

// Answers — ответы анкеты, ключ — "sectionID_questionID".
type Answers map[string]Answer

// Key строит ключ ответа для вопроса раздела.
func Key(sectionID, questionID string) string {
	return sectionID + "_" + questionID
}

// SetScale записывает значение слайдера.
func (a Answers) SetScale(sectionID, questionID string, value int) {
	a[Key(sectionID, questionID)] = Answer{Number: value}
}

// SetChoice записывает выбор радио-вопроса.
func (a Answers) SetChoice(sectionID, questionID, value string) {
	a[Key(sectionID, questionID)] = Answer{Text: value}
}

// Toggle переключает значение чекбокс-вопроса. Повторный выбор убирает
// значение; при превышении лимита вопроса вытесняется самый старый выбор.
func (a Answers) Toggle(sectionID string, q Question, value string) {
	key := Key(sectionID, q.ID)
	current := a[key].List

	for i, v := range current {
		if v == value {
			a[key] = Answer{List: append(current[:i:i], current[i+1:]...)}
			return
		}
	}

	next := append(current, value)
	if q.MaxSelections > 0 && len(next) > q.MaxSelections {
		next = next[1:]
	}
	a[key] = Answer{List: next}
}

func (a Answers) answered(sectionID string, q Question) bool {
	ans, ok := a[Key(sectionID, q.ID)]
	if !ok {
		return false
	}
	switch q.Type {
	case TypeSlider:
		return ans.Number >= q.Min && ans.Number <= q.Max
	case TypeRadio:
		return ans.Text != ""
	case TypeCheckbox:
		return len(ans.List) > 0
	}
	return false
}

// SectionComplete сообщает, отвечены ли все обязательные вопросы раздела.
func SectionComplete(s Section, a Answers) bool {
	for _, q := range s.Questions {
		if q.Required && !a.answered(s.ID, q) {
			return false
		}
	}
	return true
}

// IncompleteSections перечисляет разделы с пропущенными обязательными
// вопросами.
func IncompleteSections(a Answers) []string {
	var incomplete []string
	for _, s := range Sections {
		if !SectionComplete(s, a) {
			incomplete = append(incomplete, s.ID)
		}
	}
	return incomplete
}

// BuildPreferences переводит ответы анкеты в предпочтения для генератора.
// Неотвеченные вопросы дают нулевые поля и не попадают в промпт.
func BuildPreferences(a Answers, destination string, days int) models.TripPreferences {
	return models.TripPreferences{
		Destination:                destination,
		DurationDays:               days,
		AdventureLevel:             a[Key("basics", "adventure-level")].Number,
		Interests:                  a[Key("basics", "travel-motivations")].List,
		TravelCompanions:           a[Key("basics", "trip-occasion")].Text,
		BudgetLevel:                a[Key("budget", "budget-level")].Text,
		BudgetPriorities:           a[Key("budget", "budget-priority")].List,
		TravelStyle:                a[Key("style", "travel-style")].Text,
		Accommodation:              a[Key("style", "accommodation-type")].Text,
		EnvironmentalConsciousness: a[Key("style", "sustainability")].Number,
	}
}

// BuildQuizPreferences переводит ответы быстрого квиза в предпочтения.
func BuildQuizPreferences(quiz map[string]string, destination string, days int) models.TripPreferences {
	prefs := models.TripPreferences{
		Destination:   destination,
		DurationDays:  days,
		TravelType:    quiz["travel-type"],
		Duration:      quiz["duration"],
		Budget:        quiz["budget"],
		Accommodation: quiz["accommodation"],
	}
	if activity := quiz["activities"]; activity != "" {
		prefs.Interests = []string{activity}
	}
	return prefs
}

// Validate отбрасывает ответы на несуществующие вопросы и значения вне
// допустимого диапазона.
func (a Answers) Validate() error {
	known := make(map[string]Question)
	for _, s := range Sections {
		for _, q := range s.Questions {
			known[Key(s.ID, q.ID)] = q
		}
	}
	for key, ans := range a {
		q, ok := known[key]
		if !ok {
			return fmt.Errorf("unknown question %q", key)
		}
		if q.Type == TypeSlider && (ans.Number < q.Min || ans.Number > q.Max) {
			return fmt.Errorf("question %q: value %d out of range %d-%d", key, ans.Number, q.Min, q.Max)
		}
		if q.Type == TypeCheckbox && q.MaxSelections > 0 && len(ans.List) > q.MaxSelections {
			return fmt.Errorf("question %q: too many selections", key)
		}
	}
	return nil
}
