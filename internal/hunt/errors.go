package hunt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

// Client-facing validation messages, field-attributed.
const (
	MsgAnswerBlank      = "Answer can't be blank"
	MsgAnswerInvalid    = "Answer must be a valid street address"
	MsgAnswerUnresolved = "Answer geolocation failed - please enter a valid location"
	MsgAnswerDuplicate  = "Answer already exists for another active treasure hunt"
	MsgEmailBlank       = "Email can't be blank"
	MsgEmailInvalid     = "Email must be a valid email address"
	MsgEmailAlreadyWon  = "Email user has already won on this treasure hunt"
)

// NotFoundError covers a treasure id that does not exist, or, on the guess
// path, one that is no longer active. The two cases share a message shape so
// clients cannot probe for deactivated hunts.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func notFound(id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("could not find treasure hunt with id %s", id)}
}

func notFoundActive(id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("could not find active treasure hunt with id %s", id)}
}

// ValidationError carries one or more client-facing messages for a 400
// response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func invalid(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// PageOptionError rejects bad winners-list query parameters.
type PageOptionError struct {
	Message string
}

func (e *PageOptionError) Error() string {
	return e.Message
}

// uniqueViolation reports whether err is a storage-level unique constraint
// failure. Postgres raises 23505; the sqlite driver used in tests reports a
// message instead.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
