package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/questionnaire"
)

type QuestionnaireHandler struct{}

func NewQuestionnaireHandler() *QuestionnaireHandler {
	return &QuestionnaireHandler{}
}

// Definitions отдает вопросы квиза и полной анкеты. Клиент рисует формы
// по этим описаниям и не хранит их копию.
func (h *QuestionnaireHandler) Definitions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"quiz":     questionnaire.QuizQuestions,
		"sections": questionnaire.Sections,
	})
}

type BuildPreferencesRequest struct {
	Destination string                `json:"destination" validate:"required"`
	Days        int                   `json:"days" validate:"omitempty,min=1,max=30"`
	Answers     questionnaire.Answers `json:"answers"`
	Quiz        map[string]string     `json:"quiz"`
}

// BuildPreferences переводит ответы анкеты или квиза в предпочтения для
// генератора. Анкета принимается только целиком: недоотвеченные разделы
// возвращаются клиенту списком.
func (h *QuestionnaireHandler) BuildPreferences(c echo.Context) error {
	var req BuildPreferencesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "destination is required")
	}

	if len(req.Answers) > 0 {
		if err := req.Answers.Validate(); err != nil {
			return badRequest(c, err.Error())
		}
		if incomplete := questionnaire.IncompleteSections(req.Answers); len(incomplete) > 0 {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":               "questionnaire is incomplete",
				"incomplete_sections": incomplete,
			})
		}
		prefs := questionnaire.BuildPreferences(req.Answers, req.Destination, req.Days)
		return c.JSON(http.StatusOK, map[string]any{"preferences": prefs})
	}

	if len(req.Quiz) > 0 {
		prefs := questionnaire.BuildQuizPreferences(req.Quiz, req.Destination, req.Days)
		return c.JSON(http.StatusOK, map[string]any{"preferences": prefs})
	}

	return badRequest(c, "answers or quiz responses are required")
}
