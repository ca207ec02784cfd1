package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"treasure-hunt/internal/config"
	"treasure-hunt/internal/db"
	"treasure-hunt/internal/geo"
	"treasure-hunt/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	treasureAddr     = "871 Magnolia St., Los Angeles, CA 90051"
	nearAddr         = "873 Magnolia St., Los Angeles, CA 90051"
	farAddr          = "1 Ocean Ave., Santa Monica, CA 90401"
	unresolvableAddr = "999 Nowhere Rd., Springfield"
)

type fakeGeocoder struct{}

func (fakeGeocoder) Resolve(_ context.Context, address string) (geo.Coordinates, error) {
	switch address {
	case treasureAddr:
		return geo.Coordinates{Latitude: 34.0522, Longitude: -118.2437}, nil
	case nearAddr:
		return geo.Coordinates{Latitude: 34.0550, Longitude: -118.2437}, nil
	case farAddr:
		return geo.Coordinates{Latitude: 34.0195, Longitude: -118.4912}, nil
	}
	return geo.Coordinates{}, geo.ErrUnresolved
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notify.Winner
}

func (r *recordingNotifier) Dispatch(w notify.Winner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, w)
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notices)
}

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB, *recordingNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	notifier := &recordingNotifier{}
	srv := New(conn, config.Default(), fakeGeocoder{}, notifier)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, conn, notifier
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func createTreasure(t *testing.T, ts *httptest.Server, answer string) float64 {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/treasures", map[string]string{"answer": answer})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	id, ok := body["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("expected treasure id, got %v", body["id"])
	}
	return id
}

func assertErrorList(t *testing.T, body map[string]any, want string) {
	t.Helper()
	messages, ok := body["error"].([]any)
	if !ok {
		t.Fatalf("expected error list, got %v", body["error"])
	}
	if len(messages) != 1 || messages[0] != want {
		t.Fatalf("expected [%q], got %v", want, messages)
	}
}
