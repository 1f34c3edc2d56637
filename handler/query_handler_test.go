package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/soumya721644/docqa-be/service"
	"github.com/soumya721644/docqa-be/types"
)

type fakeAI struct{}

func (fakeAI) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1}
	}
	return vectors, nil
}

func (fakeAI) Chat(ctx context.Context, prompt string) (string, error) {
	return "fake answer", nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	queryService := service.NewQueryService(
		service.NewDocumentService(service.DefaultDocumentServiceConfig),
		fakeAI{},
		4,
	)
	h := NewQueryHandler(queryService)
	router := gin.New()
	router.POST("/api/v1/hackrx/run", h.HandleRun)
	router.POST("/api/v1/hackrx/upload", h.HandleUpload)
	return router
}

func postRun(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hackrx/run", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleRun_InvalidBody(t *testing.T) {
	router := newTestRouter()
	w := postRun(t, router, "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleRun_MissingDocuments(t *testing.T) {
	router := newTestRouter()
	w := postRun(t, router, `{"questions":["q?"]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleRun_FetchFailureMapsTo400(t *testing.T) {
	docServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer docServer.Close()

	router := newTestRouter()
	body, _ := json.Marshal(types.QueryRequest{
		Documents: docServer.URL + "/missing.pdf",
		Questions: []string{"q?"},
	})
	w := postRun(t, router, string(body))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var resp types.DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error response: %v", err)
	}
	if resp.Status != "error" || resp.Message == "" {
		t.Errorf("expected error envelope with a message, got %+v", resp)
	}
}

func TestHandleRun_ParseFailureMapsTo400(t *testing.T) {
	docServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a pdf"))
	}))
	defer docServer.Close()

	router := newTestRouter()
	body, _ := json.Marshal(types.QueryRequest{
		Documents: docServer.URL + "/doc.pdf",
		Questions: []string{"q?"},
	})
	w := postRun(t, router, string(body))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleRun_EmptyQuestions(t *testing.T) {
	router := newTestRouter()
	w := postRun(t, router, `{"documents":"http://127.0.0.1:1/never.pdf","questions":[]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty questions, got %d", w.Code)
	}

	var resp types.QueryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Answers == nil || len(resp.Answers) != 0 {
		t.Errorf("expected empty answers array, got %v", resp.Answers)
	}
}

// postUpload sends a multipart request to the upload route. A nil file
// slice omits the file part entirely.
func postUpload(t *testing.T, router *gin.Engine, file []byte, questions string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if file != nil {
		fw, err := mw.CreateFormFile("file", "document.pdf")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := mw.WriteField("questions", questions); err != nil {
		t.Fatalf("failed to write questions field: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hackrx/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleUpload_MissingFile(t *testing.T) {
	router := newTestRouter()
	w := postUpload(t, router, nil, `["q?"]`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleUpload_InvalidQuestions(t *testing.T) {
	router := newTestRouter()
	w := postUpload(t, router, []byte("payload"), `not a json array`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp types.DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error response: %v", err)
	}
	if resp.Message != "Invalid questions" {
		t.Errorf("expected invalid questions message, got %q", resp.Message)
	}
}

func TestHandleUpload_FileTooLarge(t *testing.T) {
	router := newTestRouter()
	w := postUpload(t, router, bytes.Repeat([]byte("a"), maxUploadSize+1), `["q?"]`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp types.DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error response: %v", err)
	}
	if resp.Message != "File too large" {
		t.Errorf("expected size limit message, got %q", resp.Message)
	}
}

func TestHandleUpload_ParseFailureMapsTo400(t *testing.T) {
	router := newTestRouter()
	w := postUpload(t, router, []byte("this is not a pdf"), `["q?"]`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp types.DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error response: %v", err)
	}
	if resp.Status != "error" || resp.Message == "" {
		t.Errorf("expected error envelope with a message, got %+v", resp)
	}
}

func TestHandleUpload_EmptyQuestions(t *testing.T) {
	router := newTestRouter()
	w := postUpload(t, router, []byte("ignored"), `[]`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty questions, got %d", w.Code)
	}
	var resp types.QueryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Answers == nil || len(resp.Answers) != 0 {
		t.Errorf("expected empty answers array, got %v", resp.Answers)
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{types.NewFetchError("x", nil), http.StatusBadRequest},
		{types.NewParseError("x", nil), http.StatusBadRequest},
		{types.NewEmptyIndexError("x"), http.StatusBadRequest},
		{types.NewEmbeddingError("x", nil), http.StatusBadGateway},
		{types.NewGenerationError("x", nil), http.StatusBadGateway},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusForError(tt.err); got != tt.want {
			t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", NewHealthHandler().HandleHealth)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var resp types.DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected ok status, got %q", resp.Status)
	}
}
