// Package codicefiscale encodes and decodes the Italian codice fiscale, the
// 16-character identifier assigned to natural persons. A code packs a
// surname fragment, a given name fragment, the date of birth and sex, the
// Belfiore code of the birthplace and a trailing check character.
//
// Encoding is deterministic. Decoding recovers the birthdate, sex and
// birthplace exactly, but names only as their three-letter fragments; use
// IsNameConsistent and IsSurnameConsistent to probe candidate names against
// a parsed code.
package codicefiscale

import (
	"fmt"
	"strings"
	"time"

	"codicefiscale/pkg/belfiore"
)

// Sex is the registered sex of a person, as recorded in the code.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// ParseSex converts user input into a Sex, accepting any casing of M or F.
func ParseSex(raw string) (Sex, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(Male):
		return Male, nil
	case string(Female):
		return Female, nil
	default:
		return "", newErrorf(CodeInvalidSex, "sex must be %s or %s, got %q", Male, Female, raw)
	}
}

// IsValid reports whether the Sex is one of the two known values.
func (s Sex) IsValid() bool {
	return s == Male || s == Female
}

func (s Sex) String() string { return string(s) }

// Person carries the personal data a code is derived from, and is what
// parsing gives back. Birthdate is an ISO 8601 date, YYYY-MM-DD.
type Person struct {
	Name      string
	Surname   string
	Birthdate string
	Sex       Sex
	Place     belfiore.Place
}

// CodiceFiscale is a validated code together with the person data it
// encodes. Instances only come out of a Codec and never change afterwards.
type CodiceFiscale struct {
	person Person
	code   string
}

// Code returns the 16-character code.
func (cf *CodiceFiscale) Code() string { return cf.code }

func (cf *CodiceFiscale) String() string { return cf.code }

// Person returns the person data behind the code. After Parse, Name and
// Surname hold the three-letter fragments rather than full names.
func (cf *CodiceFiscale) Person() Person { return cf.person }

// IsSurnameConsistent reports whether the candidate surname produces the
// surname fragment stored in the code. Fragments are lossy, so distinct
// surnames can collide on the same fragment.
func (cf *CodiceFiscale) IsSurnameConsistent(surname string) bool {
	return surnameFragment(surname) == cf.code[0:3]
}

// IsNameConsistent reports whether the candidate given name produces the
// name fragment stored in the code.
func (cf *CodiceFiscale) IsNameConsistent(name string) bool {
	return nameFragment(name) == cf.code[3:6]
}

// Codec encodes and parses codes against a municipality directory.
type Codec struct {
	dir belfiore.Directory

	// Now supplies the current time for resolving two-digit years. Override
	// it to make decoding deterministic in tests.
	Now func() time.Time
}

// NewCodec returns a Codec backed by the given directory.
func NewCodec(dir belfiore.Directory) *Codec {
	return &Codec{dir: dir, Now: time.Now}
}

// Encode derives the code for a person. The birthplace must be a resolved
// Place; name and surname may be any strings, including empty ones.
func (c *Codec) Encode(p Person) (*CodiceFiscale, error) {
	surname := surnameFragment(p.Surname)
	name := nameFragment(p.Name)

	birth, err := encodeBirthdate(p.Birthdate, p.Sex)
	if err != nil {
		return nil, err
	}

	if p.Place.IsZero() {
		return nil, newErrorf(CodeInvalidBelfioreCode, "person has no birthplace")
	}

	body := surname + name + birth + p.Place.Code()
	check, err := checksum(body)
	if err != nil {
		return nil, err
	}

	return &CodiceFiscale{
		person: p,
		code:   body + string(check),
	}, nil
}

// Parse validates a code and reconstructs the person data it encodes. Input
// is uppercased first; anything else about it must match the format exactly.
func (c *Codec) Parse(code string) (*CodiceFiscale, error) {
	up := strings.ToUpper(code)
	if len(up) != 16 {
		return nil, newErrorf(CodeInvalidLength, "code must be 16 characters, got %d", len(up))
	}

	body, check := up[:15], up[15]
	if !checksumValid(body, check) {
		return nil, newErrorf(CodeInvalidCheckChar, "check character %q does not match the code body", check)
	}

	if !isLetters(body[0:3]) {
		return nil, newErrorf(CodeInvalidSurname, "surname fragment %q must be three letters", body[0:3])
	}
	if !isLetters(body[3:6]) {
		return nil, newErrorf(CodeInvalidName, "name fragment %q must be three letters", body[3:6])
	}

	birthdate, sex, err := decodeBirthdate(body[6:11], c.now().Year())
	if err != nil {
		return nil, err
	}

	place, err := c.dir.LookupByCode(body[11:15])
	if err != nil {
		return nil, &Error{
			Code:       CodeInvalidBelfioreCode,
			Message:    fmt.Sprintf("no municipality or country with code %q", body[11:15]),
			Underlying: err,
		}
	}

	return &CodiceFiscale{
		person: Person{
			Name:      body[3:6],
			Surname:   body[0:3],
			Birthdate: birthdate,
			Sex:       sex,
			Place:     place,
		},
		code: up,
	}, nil
}

// IsValid reports whether the code parses cleanly.
func (c *Codec) IsValid(code string) bool {
	_, err := c.Parse(code)
	return err == nil
}

func (c *Codec) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
