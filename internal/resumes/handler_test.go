package resumes

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobhunt-backend/internal/shared/storage/object/local"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(local.New(t.TempDir()))).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func uploadRequest(t *testing.T, fileName, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadListDownloadDelete(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "my_resume.pdf", "%PDF-1.4 fake body"))
	if w.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body = %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "my_resume.pdf") {
		t.Fatalf("list status = %d, body = %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/my_resume.pdf", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d", w.Code)
	}
	if w.Body.String() != "%PDF-1.4 fake body" {
		t.Fatalf("download body = %q", w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "my_resume.pdf") {
		t.Fatalf("content disposition = %q", cd)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/my_resume.pdf", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/my_resume.pdf", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("download after delete status = %d", w.Code)
	}
}

func TestUploadOverwritesByName(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "resume.pdf", "first version"))
	if w.Code != http.StatusCreated {
		t.Fatalf("first upload status = %d", w.Code)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "resume.pdf", "second version"))
	if w.Code != http.StatusCreated {
		t.Fatalf("second upload status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/resume.pdf", nil))
	if w.Body.String() != "second version" {
		t.Fatalf("body = %q, want overwrite", w.Body.String())
	}
}

func TestUploadRejectsNonPDFName(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "resume.docx", "nope"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_error") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestUploadRequiresFile(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteMissingResume(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/missing.pdf", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
