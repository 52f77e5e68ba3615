package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjaecho/teacherdesk/internal/app/controllers"
	"github.com/minjaecho/teacherdesk/internal/app/repositories"
	"github.com/minjaecho/teacherdesk/internal/app/routes"
	"github.com/minjaecho/teacherdesk/internal/app/services"
	"github.com/minjaecho/teacherdesk/internal/testutil/testdb"
)

// scriptedGenerator answers every prompt with the same canned text.
type scriptedGenerator struct {
	text string
}

func (g *scriptedGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	return g.text, nil
}

func newTestRouter(t *testing.T, gen *scriptedGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := testdb.Open(t)
	repos := repositories.NewRepositories(store.DB)

	studentService := services.NewStudentService(repos.StudentRepository)
	workLogService := services.NewWorkLogService(repos.WorkLogRepository)
	todoService := services.NewTodoService(repos.TodoRepository)

	var assistantService services.AssistantService
	if gen == nil {
		assistantService = services.NewAssistantService(nil, repos.TodoRepository, zerolog.Nop())
	} else {
		assistantService = services.NewAssistantService(gen, repos.TodoRepository, zerolog.Nop())
	}

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewStudentController(studentService, assistantService),
		controllers.NewWorkLogController(workLogService),
		controllers.NewTodoController(todoService, assistantService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func TestStudentLifecycle(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/students/", gin.H{
		"grade": 1, "class_num": 2, "student_num": 3, "name": "Kim",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, "Kim", created["name"])
	assert.Equal(t, []any{}, created["consultations"])
	id := int64(created["id"].(float64))
	require.Greater(t, id, int64(0))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/students/%d/consultations", id), gin.H{
		"date": "2024-01-01", "content": "met parent",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/students/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched map[string]any
	decodeBody(t, rec, &fetched)
	consultations := fetched["consultations"].([]any)
	require.Len(t, consultations, 1)
	entry := consultations[0].(map[string]any)
	assert.Equal(t, "2024-01-01", entry["date"])
	assert.Equal(t, "met parent", entry["content"])

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/students/%d", id), gin.H{
		"grade": 2, "class_num": 2, "student_num": 3, "name": "Kim Minji",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Kim Minji", updated["name"])
	assert.Equal(t, float64(2), updated["grade"])

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/students/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/students/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateStudent_MissingName(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/students/", gin.H{
		"grade": 1, "class_num": 2, "student_num": 3,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VAL_001", errObj["code"])
}

func TestStudentEndpoints_MissingStudent(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/students/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/students/42", gin.H{
		"grade": 1, "class_num": 1, "student_num": 1, "name": "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/students/42/consultations", gin.H{
		"date": "2024-01-01", "content": "x",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudent_BadIDPath(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/students/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAllStudents(t *testing.T) {
	router := newTestRouter(t, nil)

	for i := 1; i <= 3; i++ {
		rec := doJSON(t, router, http.MethodPost, "/students/", gin.H{
			"grade": 1, "class_num": 1, "student_num": i, "name": fmt.Sprintf("S%d", i),
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodDelete, "/students/", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/students/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []any
	decodeBody(t, rec, &list)
	assert.Empty(t, list)
}

func TestWorkLogUpsertOverHTTP(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/work-logs/", gin.H{
		"date": "2024-03-15", "content": "first draft",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/work-logs/", gin.H{
		"date": "2024-03-15", "content": "revised",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/work-logs/2024-03-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var log map[string]any
	decodeBody(t, rec, &log)
	assert.Equal(t, "revised", log["content"])

	rec = doJSON(t, router, http.MethodGet, "/work-logs/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []any
	decodeBody(t, rec, &logs)
	assert.Len(t, logs, 1)
}

func TestWorkLog_MalformedDateRejected(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/work-logs/", gin.H{
		"date": "not-a-date", "content": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkLog_MissingDate(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/work-logs/2024-12-31", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/work-logs/2024-12-31", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTodoEndpoints(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/todos/", gin.H{"content": "grade essays"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, false, created["is_completed"])
	id := int64(created["id"].(float64))

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/todos/%d", id), gin.H{
		"is_completed": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decodeBody(t, rec, &updated)
	assert.Equal(t, true, updated["is_completed"])
	assert.Equal(t, "grade essays", updated["content"])

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummarizeConsultationsOverHTTP(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{text: "**성실한 학생입니다.**"})

	rec := doJSON(t, router, http.MethodPost, "/students/", gin.H{
		"grade": 1, "class_num": 2, "student_num": 3, "name": "Kim",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	decodeBody(t, rec, &created)
	id := int64(created["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/students/%d/summarize-consultations", id), gin.H{
		"consultations": []gin.H{
			{"date": "2024-01-01", "content": "met parent"},
			{"date": "2024-02-01", "content": "grades improving"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "성실한 학생입니다.", body["summary"])
}

func TestSummarize_EmptyListReturnsFallbackMessage(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{text: "unused"})

	rec := doJSON(t, router, http.MethodPost, "/students/", gin.H{
		"grade": 1, "class_num": 2, "student_num": 3, "name": "Kim",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	decodeBody(t, rec, &created)
	id := int64(created["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/students/%d/summarize-consultations", id), gin.H{
		"consultations": []gin.H{},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "상담 기록이 없습니다.", body["summary"])
}

func TestSummarize_AssistantDisabled(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/students/", gin.H{
		"grade": 1, "class_num": 2, "student_num": 3, "name": "Kim",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	decodeBody(t, rec, &created)
	id := int64(created["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/students/%d/summarize-consultations", id), gin.H{
		"consultations": []gin.H{{"date": "2024-01-01", "content": "x"}},
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "SRV_003", errObj["code"])
}

func TestExtractTodosOverHTTP(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{text: "- 학생 A 상담 진행, - 학부모 B 전화하기"})

	rec := doJSON(t, router, http.MethodPost, "/todos/from-log/", gin.H{
		"date": "2024-03-15", "content": "바쁜 하루였다",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var items []map[string]any
	decodeBody(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "- 학생 A 상담 진행", items[0]["content"])
	assert.Equal(t, "- 학부모 B 전화하기", items[1]["content"])

	rec = doJSON(t, router, http.MethodGet, "/todos/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var persisted []any
	decodeBody(t, rec, &persisted)
	assert.Len(t, persisted, 2)
}

func TestExtractTodos_NoneSentinelOverHTTP(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{text: "없음"})

	rec := doJSON(t, router, http.MethodPost, "/todos/from-log/", gin.H{
		"date": "2024-03-15", "content": "조용한 하루",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var items []any
	decodeBody(t, rec, &items)
	assert.Empty(t, items)

	rec = doJSON(t, router, http.MethodGet, "/todos/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var persisted []any
	decodeBody(t, rec, &persisted)
	assert.Empty(t, persisted)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}
