package hunt

import (
	"context"
	"log"
	"strings"

	"treasure-hunt/internal/db"
	"treasure-hunt/internal/geo"
	"treasure-hunt/internal/notify"

	"gorm.io/gorm"
)

// Notifier receives winner notices. Dispatch must not block.
type Notifier interface {
	Dispatch(w notify.Winner)
}

// Ledger owns the guess lifecycle: recording guesses, deciding winners and
// handing winner notices to the dispatcher.
type Ledger struct {
	conn     *gorm.DB
	registry *Registry
	geocoder geo.Geocoder
	notifier Notifier
}

func NewLedger(conn *gorm.DB, registry *Registry, geocoder geo.Geocoder, notifier Notifier) *Ledger {
	return &Ledger{conn: conn, registry: registry, geocoder: geocoder, notifier: notifier}
}

// Submit records a guess against an active treasure. Each step short-circuits
// the rest; the returned guess never tells the caller whether it won, the
// notification is the only winner signal.
func (l *Ledger) Submit(ctx context.Context, treasureID, rawEmail, rawAnswer string) (*db.Guess, error) {
	treasure, err := l.registry.FindActive(ctx, treasureID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(rawEmail) == "" {
		return nil, invalid(MsgEmailBlank)
	}
	email, ok := geo.ValidEmail(rawEmail)
	if !ok {
		return nil, invalid(MsgEmailInvalid)
	}

	if strings.TrimSpace(rawAnswer) == "" {
		return nil, invalid(MsgAnswerBlank)
	}
	answer, ok := geo.ValidStreetAddress(rawAnswer)
	if !ok {
		return nil, invalid(MsgAnswerInvalid)
	}

	coords, err := l.geocoder.Resolve(ctx, answer)
	if err != nil {
		return nil, invalid(MsgAnswerUnresolved)
	}

	alreadyWon, err := l.hasWinningGuess(ctx, treasure.ID, email)
	if err != nil {
		return nil, err
	}
	if alreadyWon {
		return nil, invalid(MsgEmailAlreadyWon)
	}

	guess := db.Guess{
		TreasureID: treasure.ID,
		Email:      email,
		Answer:     answer,
		Latitude:   coords.Latitude,
		Longitude:  coords.Longitude,
	}
	if err := l.conn.WithContext(ctx).Create(&guess).Error; err != nil {
		return nil, err
	}
	recordEvent(l.conn, "guess_recorded", &treasure.ID, &guess.ID, map[string]any{
		"treasure_id": treasure.ID,
		"guess_id":    guess.ID,
		"email":       email,
	})

	result := geo.Classify(
		geo.Coordinates{Latitude: treasure.Latitude, Longitude: treasure.Longitude},
		coords,
	)
	if !result.Winner {
		return &guess, nil
	}
	return &guess, l.markWinner(ctx, treasure, &guess, result)
}

// markWinner promotes a guess. The partial unique index on
// (treasure_id, email) WHERE is_winner closes the race between the already-won
// pre-check and this write: the loser of two concurrent submissions gets the
// same rejection the pre-check would have given it.
func (l *Ledger) markWinner(ctx context.Context, treasure *db.Treasure, guess *db.Guess, result geo.Classification) error {
	meters := geo.Meters(result.DistanceKm)
	err := l.conn.WithContext(ctx).Model(guess).Updates(map[string]any{
		"is_winner":        true,
		"winning_distance": meters,
	}).Error
	if err != nil {
		if uniqueViolation(err) {
			return invalid(MsgEmailAlreadyWon)
		}
		return err
	}
	guess.IsWinner = true
	guess.WinningDistance = &meters

	log.Printf("[!!! WINNER !!!] winning guess for treasure_id=%d email=%s answer=%q distance=%dm",
		treasure.ID, guess.Email, guess.Answer, meters)
	recordEvent(l.conn, "guess_won", &treasure.ID, &guess.ID, map[string]any{
		"treasure_id":      treasure.ID,
		"guess_id":         guess.ID,
		"email":            guess.Email,
		"winning_distance": meters,
	})

	if l.notifier != nil {
		l.notifier.Dispatch(notify.Winner{
			Email:          guess.Email,
			TreasureID:     treasure.ID,
			GuessID:        guess.ID,
			Answer:         guess.Answer,
			DistanceMeters: meters,
		})
	}
	return nil
}

func (l *Ledger) hasWinningGuess(ctx context.Context, treasureID uint, email string) (bool, error) {
	var count int64
	err := l.conn.WithContext(ctx).Model(&db.Guess{}).
		Where("treasure_id = ? AND email = ? AND is_winner", treasureID, email).
		Count(&count).Error
	return count > 0, err
}
