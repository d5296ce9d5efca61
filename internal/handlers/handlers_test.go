package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// perform прогоняет один запрос через изолированный роутер с единственным
// обработчиком. БД в этих тестах не поднимается: проверяются ветки валидации,
// которые обязаны отвечать до обращения к хранилищу.
func perform(method, target, body string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, "/test", handler)
	r.Handle(method, "/test/:id", handler)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateGroupValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: "{", want: http.StatusBadRequest},
		{name: "missing name", body: `{"totalStudents": 20}`, want: http.StatusBadRequest},
		{name: "zero roster", body: `{"name": "G1", "totalStudents": 0}`, want: http.StatusBadRequest},
		{name: "negative roster", body: `{"name": "G1", "totalStudents": -5}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodPost, "/test", tt.body, CreateGroupHandler)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestDeleteGroupRequiresName(t *testing.T) {
	w := perform(http.MethodDelete, "/test", "", DeleteGroupHandler)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateSubjectValidation(t *testing.T) {
	w := perform(http.MethodPost, "/test", `{"targetGroup": "G1"}`, CreateSubjectHandler)
	if w.Code != http.StatusBadRequest {
		t.Errorf("subject without name: status = %d, want 400", w.Code)
	}
}

func TestCreateLessonValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: "{"},
		{name: "missing group", body: `{"date": "2024-09-03", "lessonNumber": 1, "subject": "Алгебра"}`},
		{name: "missing subject", body: `{"group": "G1", "date": "2024-09-03", "lessonNumber": 1}`},
		{name: "bad date format", body: `{"group": "G1", "date": "03.09.2024", "lessonNumber": 1, "subject": "Алгебра"}`},
		{name: "zero lesson number", body: `{"group": "G1", "date": "2024-09-03", "lessonNumber": 0, "subject": "Алгебра"}`},
		{name: "negative hours", body: `{"group": "G1", "date": "2024-09-03", "lessonNumber": 1, "subject": "Алгебра", "hours": -2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodPost, "/test", tt.body, CreateLessonHandler)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpsertTemplateSlotValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing group", body: `{"dayOfWeek": 2, "lessonNumber": 1, "subject": "Алгебра"}`},
		{name: "day too small", body: `{"group": "G1", "dayOfWeek": 0, "lessonNumber": 1, "subject": "Алгебра"}`},
		{name: "day too large", body: `{"group": "G1", "dayOfWeek": 8, "lessonNumber": 1, "subject": "Алгебра"}`},
		{name: "zero lesson number", body: `{"group": "G1", "dayOfWeek": 2, "lessonNumber": 0, "subject": "Алгебра"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodPost, "/test", tt.body, UpsertTemplateSlotHandler)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestApplyTemplateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing group", body: `{"date": "2024-09-03"}`},
		{name: "bad date", body: `{"group": "G1", "date": "сентябрь"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodPost, "/test", tt.body, ApplyTemplateHandler)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestCopyDayValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing groups", body: `{"date": "2024-09-02"}`},
		{name: "same source and target", body: `{"sourceGroup": "A", "targetGroup": "A", "date": "2024-09-02"}`},
		{name: "bad date", body: `{"sourceGroup": "A", "targetGroup": "B", "date": "02.09.2024"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodPost, "/test", tt.body, CopyDayHandler)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestQueryParamGuards(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		want    int
	}{
		{name: "stats without group", handler: GetStatsHandler, want: http.StatusBadRequest},
		{name: "export without group", handler: ExportScheduleHandler, want: http.StatusBadRequest},
		{name: "templates without group", handler: ListTemplatesHandler, want: http.StatusBadRequest},
		{name: "delete subject without name", handler: DeleteSubjectHandler, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodGet, "/test", "", tt.handler)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestSuggestTemplateDisabledWithoutKey(t *testing.T) {
	// GeminiClient в тестах не инициализирован, обработчик обязан отвечать
	// 503 до любых обращений к хранилищу.
	w := perform(http.MethodGet, "/test?group=G1", "", SuggestTemplateHandler)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
