package geo

import (
	"context"
	"errors"
)

// ErrUnresolved means the geocoding service could not produce coordinates
// for an address. Callers treat it as a bad address, not an outage.
var ErrUnresolved = errors.New("geocoder: address could not be resolved")

// Geocoder resolves a street address to coordinates or fails. There are no
// partial results.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (Coordinates, error)
}
