package applications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(repo).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestApplicationCRUD(t *testing.T) {
	r := newTestRouter(NewMemoryRepo())

	w := doJSON(t, r, http.MethodPost, "/api/v1/applications",
		`{"applied_on": "2024-06-03", "position": "Staff Engineer", "company": "Acme", "location": "Remote"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created ApplicationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("missing id: %+v", created)
	}
	if created.Status != string(StatusApplied) {
		t.Fatalf("default status = %q", created.Status)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/applications/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/applications/"+created.ID,
		`{"applied_on": "2024-06-03", "position": "Staff Engineer", "company": "Acme", "status": "Interviewing"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	var updated ApplicationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if updated.Status != string(StatusInterviewing) {
		t.Fatalf("updated status = %q", updated.Status)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed id: %q -> %q", created.ID, updated.ID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/applications", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), created.ID) {
		t.Fatalf("list status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/applications/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/applications/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", w.Code)
	}
}

func TestApplicationValidation(t *testing.T) {
	r := newTestRouter(NewMemoryRepo())

	tests := []struct {
		name string
		body string
	}{
		{"missing position", `{"company": "Acme"}`},
		{"missing company", `{"position": "Engineer"}`},
		{"bad date", `{"position": "Engineer", "company": "Acme", "applied_on": "06/03/2024"}`},
		{"bad status", `{"position": "Engineer", "company": "Acme", "status": "Ghosted"}`},
		{"malformed json", `{nope`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/applications", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestApplicationListOrder(t *testing.T) {
	r := newTestRouter(NewMemoryRepo())

	for _, day := range []string{"2024-06-01", "2024-06-10", "2024-06-05"} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/applications",
			`{"applied_on": "`+day+`", "position": "Engineer", "company": "Acme"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("create %s status = %d", day, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/applications", "")
	var body struct {
		Applications []ApplicationResponse `json:"applications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := []string{}
	for _, app := range body.Applications {
		got = append(got, app.AppliedOn)
	}
	want := []string{"2024-06-10", "2024-06-05", "2024-06-01"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list order = %v, want %v", got, want)
		}
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	r := newTestRouter(NewMemoryRepo())

	seed := []string{
		`{"applied_on": "2024-06-03", "position": "Staff Engineer", "company": "Acme"}`,
		`{"applied_on": "2024-06-04", "position": "Staff Engineer", "company": "Acme", "status": "Interviewing"}`,
		`{"applied_on": "2024-07-01", "position": "Platform Engineer", "company": "Globex", "status": "Rejected"}`,
	}
	for _, body := range seed {
		if w := doJSON(t, r, http.MethodPost, "/api/v1/applications", body); w.Code != http.StatusCreated {
			t.Fatalf("seed status = %d", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/applications/analytics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("analytics status = %d", w.Code)
	}
	var a Analytics
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Total != 3 {
		t.Fatalf("total = %d, want 3", a.Total)
	}
	if a.StatusCounts["Applied"] != 1 || a.StatusCounts["Interviewing"] != 1 || a.StatusCounts["Rejected"] != 1 {
		t.Fatalf("status counts = %v", a.StatusCounts)
	}
	if len(a.Monthly) != 2 || a.Monthly[0].Month != "2024-06" || a.Monthly[0].Count != 2 {
		t.Fatalf("monthly = %v", a.Monthly)
	}
	if len(a.TopCompanies) == 0 || a.TopCompanies[0].Name != "Acme" || a.TopCompanies[0].Count != 2 {
		t.Fatalf("top companies = %v", a.TopCompanies)
	}
	if a.TopPositions[0].Name != "Staff Engineer" {
		t.Fatalf("top positions = %v", a.TopPositions)
	}
	// 2024-06-03 is a Monday.
	if a.Weekdays["Monday"] != 2 {
		t.Fatalf("weekdays = %v", a.Weekdays)
	}
}
