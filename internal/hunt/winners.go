package hunt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"treasure-hunt/internal/db"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

var pageOrders = []string{"asc", "desc"}

// PageOptions is a validated winners-list query.
type PageOptions struct {
	Page    int
	PerPage int
	Order   string
}

// ParsePageOptions validates raw query values, applying defaults for absent
// ones. It runs before any treasure lookup: bad options are rejected even for
// ids that do not exist.
func ParsePageOptions(page, perPage, order string) (PageOptions, error) {
	opts := PageOptions{Page: 1, PerPage: DefaultPerPage, Order: "asc"}

	if raw := strings.TrimSpace(page); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return PageOptions{}, &PageOptionError{Message: "page must be a positive integer"}
		}
		opts.Page = value
	}
	if raw := strings.TrimSpace(perPage); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 || value > MaxPerPage {
			return PageOptions{}, &PageOptionError{
				Message: fmt.Sprintf("per_page must be a value between 1 and %d", MaxPerPage),
			}
		}
		opts.PerPage = value
	}
	if raw := strings.TrimSpace(order); raw != "" {
		valid := false
		for _, option := range pageOrders {
			if raw == option {
				valid = true
				break
			}
		}
		if !valid {
			return PageOptions{}, &PageOptionError{
				Message: fmt.Sprintf("order must be one of the following values: %s", strings.Join(pageOrders, ", ")),
			}
		}
		opts.Order = raw
	}
	return opts, nil
}

// Winners returns the winning guesses for a treasure ordered by winning
// distance, ties broken by insertion order. A page past the end is an empty
// list, not an error. Deactivated treasures keep their winners listable.
func (r *Registry) Winners(ctx context.Context, id string, opts PageOptions) ([]db.Guess, error) {
	record, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}

	guesses := make([]db.Guess, 0, opts.PerPage)
	err = r.conn.WithContext(ctx).
		Where("treasure_id = ? AND is_winner", record.ID).
		Order("winning_distance " + opts.Order).
		Order("id asc").
		Offset((opts.Page - 1) * opts.PerPage).
		Limit(opts.PerPage).
		Find(&guesses).Error
	if err != nil {
		return nil, err
	}
	return guesses, nil
}
