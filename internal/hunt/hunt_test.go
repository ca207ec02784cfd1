package hunt

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"treasure-hunt/internal/db"
	"treasure-hunt/internal/geo"
	"treasure-hunt/internal/notify"

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

var (
	treasureCoords = geo.Coordinates{Latitude: 34.0522, Longitude: -118.2437}
	nearCoords     = geo.Coordinates{Latitude: 34.0550, Longitude: -118.2437}
	farCoords      = geo.Coordinates{Latitude: 34.0195, Longitude: -118.4912}
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

type fakeGeocoder struct {
	table map[string]geo.Coordinates
}

func newFakeGeocoder() *fakeGeocoder {
	return &fakeGeocoder{table: map[string]geo.Coordinates{
		treasureAddr: treasureCoords,
		nearAddr:     nearCoords,
		farAddr:      farCoords,
	}}
}

func (f *fakeGeocoder) Resolve(_ context.Context, address string) (geo.Coordinates, error) {
	coords, ok := f.table[address]
	if !ok {
		return geo.Coordinates{}, geo.ErrUnresolved
	}
	return coords, nil
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

func newTestRegistry(t *testing.T) (*Registry, *gorm.DB) {
	t.Helper()
	conn := newTestDB(t)
	return NewRegistry(conn, newFakeGeocoder()), conn
}

func newTestLedger(t *testing.T) (*Ledger, *Registry, *gorm.DB, *recordingNotifier) {
	t.Helper()
	conn := newTestDB(t)
	geocoder := newFakeGeocoder()
	registry := NewRegistry(conn, geocoder)
	notifier := &recordingNotifier{}
	return NewLedger(conn, registry, geocoder, notifier), registry, conn, notifier
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func assertValidationMessage(t *testing.T, err error, want string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Messages) != 1 || verr.Messages[0] != want {
		t.Fatalf("expected message %q, got %v", want, verr.Messages)
	}
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
