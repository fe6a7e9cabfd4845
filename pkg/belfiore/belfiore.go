// Package belfiore provides the municipality directory the codice fiscale
// codec depends on.
//
// Every Italian municipality and every foreign country recognised by the
// civil registry carries a "codice Belfiore": one uppercase letter followed
// by three digits (Roma is H501, France is Z110). The directory maps names to
// codes and back; the codec only ever consumes the Directory interface and
// never touches the underlying data file.
//
// The package contains only pure lookups with no I/O after construction, so a
// loaded table can be shared across goroutines without locking.
package belfiore

import (
	"errors"
	"regexp"
	"strings"
)

// belfioreCodePattern is the mandated shape of a Belfiore code.
var belfioreCodePattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)

var (
	// ErrInvalidPlaceCode indicates a Belfiore code that is not one uppercase
	// letter followed by three digits.
	ErrInvalidPlaceCode = errors.New("invalid-belfiore-code: must be one letter followed by three digits, like E889")

	// ErrPlaceNotFound indicates a directory miss. Lookups return it
	// (optionally wrapped) so callers can translate it into domain errors.
	ErrPlaceNotFound = errors.New("place not found")
)

// Place is a municipality or foreign country as known to the civil registry.
//
// Invariants:
//   - Code is exactly one uppercase letter followed by three digits
//   - Province is empty for foreign countries
//
// Construct via NewPlace or obtain one from a Directory; the zero value only
// ever means "absent".
type Place struct {
	name     string
	province string
	code     string
}

// NewPlace creates a validated Place. The code is uppercased before
// validation; name and province are carried as-is.
func NewPlace(name, province, code string) (Place, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !belfioreCodePattern.MatchString(code) {
		return Place{}, ErrInvalidPlaceCode
	}
	return Place{name: name, province: province, code: code}, nil
}

// MustPlace creates a Place, panicking if the code is invalid.
// Use only in tests or when the value is known to be valid.
func MustPlace(name, province, code string) Place {
	p, err := NewPlace(name, province, code)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the municipality or country name.
func (p Place) Name() string { return p.name }

// Province returns the two-letter province, empty for foreign countries.
func (p Place) Province() string { return p.province }

// Code returns the Belfiore code.
func (p Place) Code() string { return p.code }

// IsForeign reports whether the place is a foreign country rather than an
// Italian municipality.
func (p Place) IsForeign() bool { return p.code != "" && p.province == "" }

// IsZero returns true if this is the zero value (uninitialized).
func (p Place) IsZero() bool { return p.code == "" }

// String renders the place for display, e.g. "ROMA (RM)" or "FRANCIA".
func (p Place) String() string {
	if p.province == "" {
		return p.name
	}
	return p.name + " (" + p.province + ")"
}

//go:generate mockgen -source=belfiore.go -destination=mocks/mocks.go -package=mocks Directory

// Directory resolves places by name or by Belfiore code. Misses return
// ErrPlaceNotFound. Implementations must be read-only after construction.
type Directory interface {
	LookupByName(name string) (Place, error)
	LookupByCode(code string) (Place, error)
}
