package hunt

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"treasure-hunt/internal/db"
	"treasure-hunt/internal/geo"

	"gorm.io/gorm"
)

// Registry owns the treasure lifecycle: creation, deactivation, removal and
// lookups scoped to active hunts.
type Registry struct {
	conn     *gorm.DB
	geocoder geo.Geocoder
}

func NewRegistry(conn *gorm.DB, geocoder geo.Geocoder) *Registry {
	return &Registry{conn: conn, geocoder: geocoder}
}

// Create validates and geocodes the answer, enforces answer uniqueness among
// active hunts, then persists an active treasure. The active-uniqueness
// pre-check is backed by a partial unique index, so a concurrent duplicate
// surfaces here as the same validation failure.
func (r *Registry) Create(ctx context.Context, rawAnswer string) (*db.Treasure, error) {
	if strings.TrimSpace(rawAnswer) == "" {
		return nil, invalid(MsgAnswerBlank)
	}
	answer, ok := geo.ValidStreetAddress(rawAnswer)
	if !ok {
		return nil, invalid(MsgAnswerInvalid)
	}

	coords, err := r.geocoder.Resolve(ctx, answer)
	if err != nil {
		return nil, invalid(MsgAnswerUnresolved)
	}

	var count int64
	if err := r.conn.WithContext(ctx).Model(&db.Treasure{}).
		Where("answer = ? AND active", answer).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, invalid(MsgAnswerDuplicate)
	}

	record := db.Treasure{
		Answer:    answer,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Active:    true,
	}
	if err := r.conn.WithContext(ctx).Create(&record).Error; err != nil {
		if uniqueViolation(err) {
			return nil, invalid(MsgAnswerDuplicate)
		}
		return nil, err
	}

	recordEvent(r.conn, "treasure_created", &record.ID, nil, map[string]any{
		"treasure_id": record.ID,
	})
	return &record, nil
}

// Deactivate stops a hunt from accepting guesses. Repeating the call is
// harmless; only a missing id fails.
func (r *Registry) Deactivate(ctx context.Context, id string) (*db.Treasure, error) {
	record, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.conn.WithContext(ctx).Model(record).Update("active", false).Error; err != nil {
		return nil, err
	}
	recordEvent(r.conn, "treasure_deactivated", &record.ID, nil, map[string]any{
		"treasure_id": record.ID,
	})
	return record, nil
}

// Destroy removes a treasure and every guess made against it.
func (r *Registry) Destroy(ctx context.Context, id string) error {
	record, err := r.find(ctx, id)
	if err != nil {
		return err
	}
	err = r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("treasure_id = ?", record.ID).Delete(&db.Guess{}).Error; err != nil {
			return err
		}
		return tx.Delete(record).Error
	})
	if err != nil {
		return err
	}
	recordEvent(r.conn, "treasure_destroyed", &record.ID, nil, map[string]any{
		"treasure_id": record.ID,
	})
	return nil
}

// FindActive resolves a treasure accepting guesses. An id that exists but is
// deactivated fails the same way as a missing one.
func (r *Registry) FindActive(ctx context.Context, id string) (*db.Treasure, error) {
	numeric, ok := parseID(id)
	if !ok {
		return nil, notFoundActive(id)
	}
	var record db.Treasure
	err := r.conn.WithContext(ctx).
		Where("id = ? AND active", numeric).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundActive(id)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Registry) find(ctx context.Context, id string) (*db.Treasure, error) {
	numeric, ok := parseID(id)
	if !ok {
		return nil, notFound(id)
	}
	var record db.Treasure
	err := r.conn.WithContext(ctx).First(&record, numeric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func parseID(raw string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
