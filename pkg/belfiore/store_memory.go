package belfiore

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	_ "embed"
)

// belfioreData is the bundled directory, a maintained subset of the official
// table: one "code,province,name" row per line, province empty for foreign
// countries.
//
//go:embed belfiore.txt
var belfioreData string

// Table is the in-memory Directory implementation. It favors clarity over
// memory: two maps keyed by uppercased name and by code, built once at load
// time and never mutated afterwards.
type Table struct {
	byName map[string]Place
	byCode map[string]Place
}

var _ Directory = (*Table)(nil)

// Load builds a Table from the bundled data file.
func Load() (*Table, error) {
	return LoadReader(strings.NewReader(belfioreData))
}

// LoadReader builds a Table from an external file in the bundled format.
// Blank lines are skipped; malformed rows fail with their line number.
func LoadReader(r io.Reader) (*Table, error) {
	t := &Table{
		byName: make(map[string]Place),
		byCode: make(map[string]Place),
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}
		fields := strings.Split(row, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("belfiore: line %d: expected 3 fields, got %d", line, len(fields))
		}
		place, err := NewPlace(fields[2], fields[1], fields[0])
		if err != nil {
			return nil, fmt.Errorf("belfiore: line %d: %w", line, err)
		}
		t.byName[strings.ToUpper(place.Name())] = place
		t.byCode[place.Code()] = place
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("belfiore: %w", err)
	}
	return t, nil
}

// LookupByName resolves a municipality or country by name, case-insensitively.
func (t *Table) LookupByName(name string) (Place, error) {
	if place, ok := t.byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return place, nil
	}
	return Place{}, ErrPlaceNotFound
}

// LookupByCode resolves a place by its Belfiore code, case-insensitively.
func (t *Table) LookupByCode(code string) (Place, error) {
	if place, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return place, nil
	}
	return Place{}, ErrPlaceNotFound
}

// Len returns the number of places in the table.
func (t *Table) Len() int { return len(t.byCode) }
