package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := config.Config{
		Env:              "test",
		Port:             0,
		JWTSecret:        "router-test-secret",
		JWTExpireMinutes: 30,
		MaxBodyBytes:     1 << 20,
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(Deps{Cfg: cfg, Log: log})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)

		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any

	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}

	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine, name, email, password string) (token, learnerID string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}

	reg := decodeBody(t, w)
	learnerID, _ = reg["learner_id"].(string)

	if learnerID == "" {
		t.Fatal("register returned empty learner_id")
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	login := decodeBody(t, w)
	token, _ = login["access_token"].(string)

	if token == "" {
		t.Fatal("login returned empty access_token")
	}

	if tt, _ := login["token_type"].(string); tt != "bearer" {
		t.Fatalf("token_type = %q, want bearer", tt)
	}

	return token, learnerID
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := newTestRouter(t)

	token, learnerID := registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/auth/me", token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", w.Code, w.Body.String())
	}

	me := decodeBody(t, w)

	if me["email"] != "ann@x.com" {
		t.Fatalf("me email = %v, want ann@x.com", me["email"])
	}
	if me["learner_id"] != learnerID {
		t.Fatalf("me learner_id = %v, want %s", me["learner_id"], learnerID)
	}
	if me["join_date"] == nil {
		t.Fatal("me join_date missing")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Other",
		"email":    "ann@x.com",
		"password": "secret456",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ann@x.com",
		"password": "not-the-password",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", w.Code)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(t)

	paths := []string{"/auth/me", "/courses", "/enrollments", "/progress", "/feedback", "/learning-records", "/recommendations"}

	for _, path := range paths {
		w := doJSON(t, r, http.MethodGet, path, "", nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want 401", path, w.Code)
		}
	}
}

func TestSeededCourseCatalog(t *testing.T) {
	r := newTestRouter(t)

	token, _ := registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/courses", token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("list courses status = %d, body %s", w.Code, w.Body.String())
	}

	var courses []map[string]any

	if err := json.Unmarshal(w.Body.Bytes(), &courses); err != nil {
		t.Fatalf("decode course list: %v", err)
	}

	if len(courses) < 3 {
		t.Fatalf("seeded catalog has %d courses, want at least 3", len(courses))
	}

	w = doJSON(t, r, http.MethodGet, "/courses/course-001", token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("get course-001 status = %d", w.Code)
	}

	c := decodeBody(t, w)

	if c["title"] != "Python Fundamentals" {
		t.Fatalf("course-001 title = %v", c["title"])
	}

	modules, ok := c["modules"].([]any)

	if !ok || len(modules) == 0 {
		t.Fatal("course-001 has no modules")
	}

	w = doJSON(t, r, http.MethodGet, "/courses/nope", token, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("missing course status = %d, want 404", w.Code)
	}
}

func TestEnrollAndMyCourses(t *testing.T) {
	r := newTestRouter(t)

	token, _ := registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/courses/course-001/enroll", token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("enroll status = %d, body %s", w.Code, w.Body.String())
	}

	res := decodeBody(t, w)

	if res["message"] != "Successfully enrolled in course" {
		t.Fatalf("enroll message = %v", res["message"])
	}
	if res["course_id"] != "course-001" {
		t.Fatalf("enroll course_id = %v", res["course_id"])
	}

	// a second attempt is a client error, not another enrollment
	w = doJSON(t, r, http.MethodPost, "/courses/course-001/enroll", token, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate enroll status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/courses/my-courses", token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("my-courses status = %d", w.Code)
	}

	var mine []map[string]any

	if err := json.Unmarshal(w.Body.Bytes(), &mine); err != nil {
		t.Fatalf("decode my-courses: %v", err)
	}

	if len(mine) != 1 || mine[0]["course_id"] != "course-001" {
		t.Fatalf("my-courses = %v, want just course-001", mine)
	}
}

func TestEnrollMissingCourse(t *testing.T) {
	r := newTestRouter(t)

	token, _ := registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/courses/ghost/enroll", token, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("enroll missing course status = %d, want 404", w.Code)
	}
}

func TestCourseAuthoringFlow(t *testing.T) {
	r := newTestRouter(t)

	token, _ := registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/courses", token, gin.H{
		"title":         "Go for Backend Engineers",
		"description":   "Build services in Go",
		"instructor_id": "instr-001",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("create course status = %d, body %s", w.Code, w.Body.String())
	}

	created := decodeBody(t, w)
	courseID, _ := created["course_id"].(string)

	if courseID == "" {
		t.Fatal("created course has no course_id")
	}

	w = doJSON(t, r, http.MethodPost, "/courses/"+courseID+"/modules", token, gin.H{
		"title": "Getting Started",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("add module status = %d, body %s", w.Code, w.Body.String())
	}

	c := decodeBody(t, w)
	modules, _ := c["modules"].([]any)

	if len(modules) != 1 {
		t.Fatalf("course has %d modules, want 1", len(modules))
	}

	module, _ := modules[0].(map[string]any)
	moduleID, _ := module["module_id"].(string)

	if moduleID == "" {
		t.Fatal("added module has no module_id")
	}

	w = doJSON(t, r, http.MethodPost, "/courses/"+courseID+"/modules/"+moduleID+"/lessons", token, gin.H{
		"title": "Installing the toolchain",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("add lesson status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/courses/"+courseID+"/modules/"+moduleID+"/lessons", token, nil)

	if w.Code == http.StatusOK {
		t.Fatal("add lesson with no body should fail validation")
	}

	w = doJSON(t, r, http.MethodPost, "/courses/"+courseID+"/modules/nope/lessons", token, gin.H{
		"title": "Dangling",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("add lesson to missing module status = %d, want 404", w.Code)
	}
}

func TestLearnersDirectoryIsOpen(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/learners", "", gin.H{
		"name":     "Bob",
		"email":    "bob@x.com",
		"password": "secret123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("create learner status = %d, body %s", w.Code, w.Body.String())
	}

	created := decodeBody(t, w)
	id, _ := created["learner_id"].(string)

	if id == "" {
		t.Fatal("created learner has no learner_id")
	}
	if _, leaked := created["password_hash"]; leaked {
		t.Fatal("learner response leaks password hash")
	}

	w = doJSON(t, r, http.MethodGet, "/learners/"+id, "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("get learner status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/learners/ghost", "", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("missing learner status = %d, want 404", w.Code)
	}
}

func TestEntityRoutesRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	token, learnerID := registerAndLogin(t, r, "Ann", "ann@x.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/progress", token, gin.H{
		"learner_id":      learnerID,
		"course_id":       "course-001",
		"completion_rate": 0.42,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("create progress status = %d, body %s", w.Code, w.Body.String())
	}

	p := decodeBody(t, w)
	progressID, _ := p["progress_id"].(string)

	if progressID == "" {
		t.Fatal("created progress has no progress_id")
	}

	w = doJSON(t, r, http.MethodGet, "/progress/"+progressID, token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("get progress status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/feedback", token, gin.H{
		"learner_id": learnerID,
		"course_id":  "course-001",
		"comment":    "Great course",
		"rating":     gin.H{"value": 4, "comment_category": "content"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("create feedback status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/learning-records", token, gin.H{
		"learner_id":           learnerID,
		"completed_course_ids": []string{"course-001"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("create record status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/recommendations", token, gin.H{
		"learner_id": learnerID,
		"course_ids": []string{"course-002", "course-003"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("create recommendation status = %d, body %s", w.Code, w.Body.String())
	}

	rec := decodeBody(t, w)

	if rec["generated_date"] == nil {
		t.Fatal("recommendation has no generated_date")
	}

	w = doJSON(t, r, http.MethodGet, "/recommendations/ghost", token, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("missing recommendation status = %d, want 404", w.Code)
	}
}

func TestHealthAndRoot(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/", "/healthz", "/readyz"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/metrics", "", nil)

	if w.Code != http.StatusOK {
		t.Errorf("GET /metrics status = %d, want 200", w.Code)
	}
}
