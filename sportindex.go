// Package sportindex is a collection of thin clients that fetch sports data
// from unofficial providers and reshape it into a stable normalized JSON
// schema. The providers are not official APIs: their formats are
// undocumented and change without notice, which is why schema failures are a
// first-class error kind here.
package sportindex

import (
	"fmt"
	"strings"

	"github.com/sportindex/sportindex/f1"
	"github.com/sportindex/sportindex/football"
	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/pkg/contracts"
)

// Error kinds surfaced by every client; check with errors.Is.
var (
	ErrRequestFailed  = derr.ErrRequestFailed
	ErrSchemaMismatch = derr.ErrSchemaMismatch
	ErrRateLimited    = derr.ErrRateLimited
	ErrNotFound       = derr.ErrNotFound
	ErrUnsupported    = derr.ErrUnsupported
	ErrUnknownSport   = derr.ErrUnknownSport
)

// SportClient is the generic capability set; see pkg/contracts.
type SportClient = contracts.SportClient

// Query carries operation parameters for the generic capability set.
type Query = contracts.Query

// New returns the client for a sport. Prefer the typed constructors
// (football.New, f1.New) when the sport is known at compile time; the factory
// exists for generic multi-sport callers.
func New(sport string) (SportClient, error) {
	switch strings.ToLower(sport) {
	case "football":
		return football.New(), nil
	case "f1":
		return f1.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: football, f1)", ErrUnknownSport, sport)
	}
}
