package questionnaire

import (
	"reflect"
	"testing"
)

func findQuestion(t *testing.T, sectionID, questionID string) Question {
	t.Helper()
	for _, s := range Sections {
		if s.ID != sectionID {
			continue
		}
		for _, q := range s.Questions {
			if q.ID == questionID {
				return q
			}
		}
	}
	t.Fatalf("question %s_%s not found", sectionID, questionID)
	return Question{}
}

// TestToggleEvictsOldest проверяет вытеснение самого старого выбора при
// достижении лимита чекбокса.
func TestToggleEvictsOldest(t *testing.T) {
	q := findQuestion(t, "basics", "travel-motivations")
	if q.MaxSelections != 3 {
		t.Fatalf("unexpected limit %d", q.MaxSelections)
	}

	a := Answers{}
	for _, v := range []string{"descubrir", "desconectar", "gastronomia", "cultura"} {
		a.Toggle("basics", q, v)
	}

	got := a[Key("basics", q.ID)].List
	want := []string{"desconectar", "gastronomia", "cultura"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestToggleRemoves проверяет снятие ранее выбранного значения.
func TestToggleRemoves(t *testing.T) {
	q := findQuestion(t, "budget", "budget-priority")
	a := Answers{}
	a.Toggle("budget", q, "comida")
	a.Toggle("budget", q, "compras")
	a.Toggle("budget", q, "comida")

	got := a[Key("budget", q.ID)].List
	if !reflect.DeepEqual(got, []string{"compras"}) {
		t.Fatalf("got %v", got)
	}
}

// TestSectionComplete проверяет учет только обязательных вопросов.
func TestSectionComplete(t *testing.T) {
	basics := Sections[0]
	a := Answers{}
	if SectionComplete(basics, a) {
		t.Fatal("empty answers must not complete the section")
	}

	a.SetScale("basics", "adventure-level", 3)
	a.Toggle("basics", findQuestion(t, "basics", "travel-motivations"), "cultura")
	a.SetChoice("basics", "trip-occasion", "pareja")
	if !SectionComplete(basics, a) {
		t.Fatal("all required questions answered, section must be complete")
	}

	style := Sections[2]
	a.SetChoice("style", "travel-style", "flexible")
	// accommodation-type и sustainability необязательны.
	if !SectionComplete(style, a) {
		t.Fatal("optional questions must not block completion")
	}
}

// TestIncompleteSections проверяет список незавершенных разделов.
func TestIncompleteSections(t *testing.T) {
	a := Answers{}
	a.SetScale("basics", "adventure-level", 2)
	a.Toggle("basics", findQuestion(t, "basics", "travel-motivations"), "deporte")
	a.SetChoice("basics", "trip-occasion", "solo")

	got := IncompleteSections(a)
	want := []string{"budget", "style"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestBuildPreferences проверяет маппинг ответов в предпочтения и нулевые
// поля для пропущенных вопросов.
func TestBuildPreferences(t *testing.T) {
	a := Answers{}
	a.SetScale("basics", "adventure-level", 4)
	a.SetChoice("budget", "budget-level", "moderado")
	a.Toggle("budget", findQuestion(t, "budget", "budget-priority"), "experiencias")

	prefs := BuildPreferences(a, "Granada", 3)
	if prefs.Destination != "Granada" || prefs.DurationDays != 3 {
		t.Fatalf("destination/days lost: %+v", prefs)
	}
	if prefs.AdventureLevel != 4 || prefs.BudgetLevel != "moderado" {
		t.Fatalf("answers not mapped: %+v", prefs)
	}
	if !reflect.DeepEqual(prefs.BudgetPriorities, []string{"experiencias"}) {
		t.Fatalf("priorities = %v", prefs.BudgetPriorities)
	}
	if prefs.TravelStyle != "" || prefs.Accommodation != "" || prefs.EnvironmentalConsciousness != 0 {
		t.Fatalf("unanswered questions must stay zero: %+v", prefs)
	}
}

// TestAnswersValidate проверяет отбраковку чужих ключей и значений вне диапазона.
func TestAnswersValidate(t *testing.T) {
	a := Answers{"basics_adventure-level": {Number: 3}}
	if err := a.Validate(); err != nil {
		t.Fatalf("valid answers rejected: %v", err)
	}

	if err := (Answers{"nope_nope": {Text: "x"}}).Validate(); err == nil {
		t.Fatal("unknown question accepted")
	}
	if err := (Answers{"basics_adventure-level": {Number: 9}}).Validate(); err == nil {
		t.Fatal("out of range slider accepted")
	}
}
