package codicefiscale

import (
	"fmt"
	"strings"
	"time"
)

// monthLetters maps months 1-12 to their registry letters. The sequence is
// fixed by the civil registry and is not alphabetically contiguous.
const monthLetters = "ABCDEHLMPRST"

const (
	birthdateLayout = "2006-01-02"
	femaleDayOffset = 40
	centuryBase     = 2000
)

// encodeBirthdate maps an ISO 8601 date and a sex to the five-character
// birth fragment: two year digits, the month letter and the two-digit day,
// with the day offset by 40 for women.
func encodeBirthdate(birthdate string, sex Sex) (string, error) {
	t, err := time.Parse(birthdateLayout, birthdate)
	if err != nil {
		return "", &Error{
			Code:       CodeInvalidBirthdate,
			Message:    fmt.Sprintf("%q is not a date in YYYY-MM-DD form", birthdate),
			Underlying: err,
		}
	}

	day := t.Day()
	switch sex {
	case Male:
	case Female:
		day += femaleDayOffset
	default:
		return "", newErrorf(CodeInvalidSex, "sex must be %s or %s, got %q", Male, Female, sex)
	}

	return fmt.Sprintf("%02d%c%02d", t.Year()%100, monthLetters[int(t.Month())-1], day), nil
}

// decodeBirthdate reverses the five-character birth fragment. Two-digit
// years are resolved against the 2000 century base; a year that would land
// in the future relative to nowYear is pushed back one century.
func decodeBirthdate(frag string, nowYear int) (string, Sex, error) {
	yy, ok := atoi2(frag[0:2])
	if !ok {
		return "", "", newErrorf(CodeInvalidBirthyear, "year digits %q are not a two-digit number", frag[0:2])
	}

	month := strings.IndexByte(monthLetters, frag[2])
	if month < 0 {
		return "", "", newErrorf(CodeInvalidBirthmonth, "%q is not a month letter", frag[2])
	}
	month++

	day, ok := atoi2(frag[3:5])
	if !ok {
		return "", "", newErrorf(CodeInvalidBirthdate, "day digits %q are not a two-digit number", frag[3:5])
	}
	sex := Male
	if day > femaleDayOffset {
		sex = Female
		day -= femaleDayOffset
	}

	year := centuryBase + yy
	if year > nowYear {
		year -= 100
	}
	if !validDate(year, month, day) {
		return "", "", newErrorf(CodeInvalidBirthdate, "%04d-%02d-%02d is not a calendar date", year, month, day)
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), sex, nil
}

// validDate reports whether the components form a real calendar date.
// time.Date silently normalizes out-of-range values, so the round trip is
// compared instead.
func validDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func atoi2(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
