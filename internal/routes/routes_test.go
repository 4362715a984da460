package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/templui/challenge/internal/app"
	"github.com/templui/challenge/internal/catalog"
	"github.com/templui/challenge/internal/config"
	"github.com/templui/challenge/internal/db"
	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/routes"
	"github.com/templui/challenge/internal/service"
)

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "challenge.db")
	database, err := db.Init("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close(database) })

	if err := db.RunMigrations(context.Background(), database.DB, "sqlite"); err != nil {
		t.Fatal(err)
	}

	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(routes.SetupRoutes(app.Wire(cfg, database, cat, nil)))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:         "The Challenge",
		AppEnv:          "development",
		SessionSecret:   "test-secret",
		SessionExpiry:   time.Hour,
		Timezone:        "UTC",
		Locale:          "de",
		RateLimitWrites: 100,
		RateLimitWindow: time.Minute,
	}
}

func do(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := do(t, srv.Client(), http.MethodGet, srv.URL+"/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	decode(t, resp, &body)
	if body["status"] != "ok" || body["app"] != "The Challenge" || body["env"] != "development" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestCatalog(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := do(t, srv.Client(), http.MethodGet, srv.URL+"/api/catalog", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var entries []catalog.Entry
	decode(t, resp, &entries)
	if len(entries) == 0 || entries[0].Exercise != "Pushups" {
		t.Errorf("unexpected catalog %+v", entries)
	}
}

func TestRegisterLogAndDashboard(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := srv.Client()

	resp := do(t, client, http.MethodPost, srv.URL+"/api/register", map[string]any{
		"name": "Ana", "exercise": "Pushups", "tier": "M",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register by tier: expected 201, got %d", resp.StatusCode)
	}
	var goal model.Goal
	decode(t, resp, &goal)
	if goal.Target != 7200 || goal.Unit != "reps" {
		t.Errorf("expected 7200 reps, got %v %s", goal.Target, goal.Unit)
	}

	resp = do(t, client, http.MethodPost, srv.URL+"/api/register", map[string]any{
		"name": "Ana", "exercise": "Rowing", "target": 1200, "unit": "km",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register by target: expected 201, got %d", resp.StatusCode)
	}

	today := time.Now().UTC().Format(model.DateLayout)
	resp = do(t, client, http.MethodPost, srv.URL+"/api/achievements", map[string]any{
		"userName": "Ana", "exercise": "Pushups", "value": 600, "date": today,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("log: expected 201, got %d", resp.StatusCode)
	}

	resp = do(t, client, http.MethodGet, srv.URL+"/api/users", nil)
	var users []model.Participant
	decode(t, resp, &users)
	if len(users) != 1 || len(users[0].Goals) != 2 {
		t.Fatalf("expected Ana with 2 goals, got %+v", users)
	}

	resp = do(t, client, http.MethodGet, srv.URL+"/api/dashboard?user=Ana&mode=month", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", resp.StatusCode)
	}
	var dashboard service.Dashboard
	decode(t, resp, &dashboard)

	if dashboard.Detail == nil {
		t.Fatal("expected detail for Ana")
	}
	pushups := dashboard.Detail.Goals[0]
	if pushups.Exercise != "Pushups" || pushups.Sum != 600 || pushups.Percent != 100 {
		t.Errorf("unexpected pushups progress %+v", pushups)
	}
	if dashboard.Detail.Overall != 50 {
		t.Errorf("expected overall 50, got %v", dashboard.Detail.Overall)
	}
	if len(dashboard.MonthChart) != 2 || dashboard.MonthChart[1].Progress != 50 {
		t.Errorf("unexpected month chart %+v", dashboard.MonthChart)
	}

	resp = do(t, client, http.MethodGet, srv.URL+"/api/stats", nil)
	var stats []model.Participant
	decode(t, resp, &stats)
	if len(stats) != 1 || len(stats[0].Achievements) != 1 {
		t.Errorf("expected one achievement in stats, got %+v", stats)
	}
}

func TestErrorMapping(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := srv.Client()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"empty name", http.MethodPost, "/api/register", map[string]any{"name": "", "exercise": "Pushups", "target": 10, "unit": "reps"}, http.StatusBadRequest},
		{"missing target", http.MethodPost, "/api/register", map[string]any{"name": "Ana", "exercise": "Pushups", "unit": "reps"}, http.StatusBadRequest},
		{"unknown tier", http.MethodPost, "/api/register", map[string]any{"name": "Ana", "exercise": "Pushups", "tier": "XXL"}, http.StatusBadRequest},
		{"tier with target", http.MethodPost, "/api/register", map[string]any{"name": "Ana", "exercise": "Pushups", "tier": "M", "target": 10, "unit": "reps"}, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/register", map[string]any{"nickname": "Ana"}, http.StatusBadRequest},
		{"unknown user", http.MethodPost, "/api/achievements", map[string]any{"userName": "Nobody", "exercise": "Pushups", "value": 1}, http.StatusNotFound},
		{"missing value", http.MethodPost, "/api/achievements", map[string]any{"userName": "Nobody", "exercise": "Pushups"}, http.StatusBadRequest},
		{"bad date", http.MethodPost, "/api/achievements", map[string]any{"userName": "Nobody", "exercise": "Pushups", "value": 1, "date": "tomorrow"}, http.StatusBadRequest},
		{"archive disabled", http.MethodPost, "/api/export/archive", nil, http.StatusServiceUnavailable},
		{"select unknown", http.MethodPut, "/api/participant", map[string]any{"name": "Nobody"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, client, tt.method, srv.URL+tt.path, tt.body)
			if resp.StatusCode != tt.want {
				t.Errorf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}

func TestUniqueGoalConflict(t *testing.T) {
	cfg := testConfig()
	cfg.GoalUniquePerExercise = true
	srv := newTestServer(t, cfg)

	body := map[string]any{"name": "Ana", "exercise": "Pushups", "tier": "S"}
	if resp := do(t, srv.Client(), http.MethodPost, srv.URL+"/api/register", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if resp := do(t, srv.Client(), http.MethodPost, srv.URL+"/api/register", body); resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", resp.StatusCode)
	}
}

func TestParticipantSelection(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := srv.Client()

	do(t, client, http.MethodPost, srv.URL+"/api/register", map[string]any{"name": "Ana", "exercise": "Pushups", "tier": "S"})

	resp := do(t, client, http.MethodPut, srv.URL+"/api/participant", map[string]any{"name": "Ana"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == service.ParticipantCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected participant cookie")
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/dashboard", nil)
	req.AddCookie(cookie)
	dashResp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer dashResp.Body.Close()

	var dashboard service.Dashboard
	decode(t, dashResp, &dashboard)
	if dashboard.Selected != "Ana" || dashboard.Detail == nil {
		t.Errorf("expected dashboard for the selected participant, got %q", dashboard.Selected)
	}

	resp = do(t, client, http.MethodPut, srv.URL+"/api/participant", map[string]any{"name": service.PacerName})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected the pacer to be selectable, got %d", resp.StatusCode)
	}

	resp = do(t, client, http.MethodDelete, srv.URL+"/api/participant", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
}

func TestExportCSV(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := srv.Client()

	do(t, client, http.MethodPost, srv.URL+"/api/register", map[string]any{"name": "Ana", "exercise": "Pushups", "tier": "S"})
	do(t, client, http.MethodPost, srv.URL+"/api/achievements", map[string]any{"userName": "Ana", "exercise": "Pushups", "value": 25, "date": "2026-03-15"})

	resp := do(t, client, http.MethodGet, srv.URL+"/api/export", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv, got %s", ct)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	want := "user,exercise,value,unit,date,goal\nAna,Pushups,25,reps,2026-03-15,true\n"
	if buf.String() != want {
		t.Errorf("unexpected export:\n%s", buf.String())
	}
}
