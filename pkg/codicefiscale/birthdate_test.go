package codicefiscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBirthdate(t *testing.T) {
	tests := []struct {
		name      string
		birthdate string
		sex       Sex
		want      string
	}{
		{name: "male day unchanged", birthdate: "1977-11-04", sex: Male, want: "77S04"},
		{name: "female day offset by 40", birthdate: "1970-01-01", sex: Female, want: "70A41"},
		{name: "leap day", birthdate: "2004-02-29", sex: Male, want: "04B29"},
		{name: "december", birthdate: "1999-12-31", sex: Female, want: "99T71"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeBirthdate(tt.birthdate, tt.sex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeBirthdateErrors(t *testing.T) {
	tests := []struct {
		name      string
		birthdate string
		sex       Sex
		wantCode  ErrorCode
	}{
		{name: "day out of range", birthdate: "1977-11-31", sex: Male, wantCode: CodeInvalidBirthdate},
		{name: "day thirty-two", birthdate: "1977-04-32", sex: Male, wantCode: CodeInvalidBirthdate},
		{name: "month out of range", birthdate: "1977-13-01", sex: Male, wantCode: CodeInvalidBirthdate},
		{name: "not a leap year", birthdate: "2001-02-29", sex: Male, wantCode: CodeInvalidBirthdate},
		{name: "wrong layout", birthdate: "04/11/1977", sex: Male, wantCode: CodeInvalidBirthdate},
		{name: "empty date", birthdate: "", sex: Male, wantCode: CodeInvalidBirthdate},
		{name: "unknown sex", birthdate: "1977-11-04", sex: Sex("X"), wantCode: CodeInvalidSex},
		{name: "empty sex", birthdate: "1977-11-04", sex: Sex(""), wantCode: CodeInvalidSex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encodeBirthdate(tt.birthdate, tt.sex)
			require.Error(t, err)
			assert.True(t, HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestDecodeBirthdate(t *testing.T) {
	const nowYear = 2026

	tests := []struct {
		name     string
		frag     string
		wantDate string
		wantSex  Sex
	}{
		{name: "male day", frag: "77S04", wantDate: "1977-11-04", wantSex: Male},
		{name: "female day", frag: "70A41", wantDate: "1970-01-01", wantSex: Female},
		{name: "female low day", frag: "77S44", wantDate: "1977-11-04", wantSex: Female},
		{name: "current year stays in this century", frag: "26A01", wantDate: "2026-01-01", wantSex: Male},
		{name: "next year falls back a century", frag: "27A01", wantDate: "1927-01-01", wantSex: Male},
		{name: "leap day this century", frag: "00B29", wantDate: "2000-02-29", wantSex: Male},
		{name: "leap day last century", frag: "96B29", wantDate: "1996-02-29", wantSex: Male},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, sex, err := decodeBirthdate(tt.frag, nowYear)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantSex, sex)
		})
	}
}

func TestDecodeBirthdateErrors(t *testing.T) {
	const nowYear = 2026

	tests := []struct {
		name     string
		frag     string
		wantCode ErrorCode
	}{
		{name: "letter in year", frag: "A7S04", wantCode: CodeInvalidBirthyear},
		{name: "sign in year", frag: "-7S04", wantCode: CodeInvalidBirthyear},
		{name: "unknown month letter", frag: "77Z04", wantCode: CodeInvalidBirthmonth},
		{name: "letter in day", frag: "77SA4", wantCode: CodeInvalidBirthdate},
		{name: "day zero", frag: "77S00", wantCode: CodeInvalidBirthdate},
		{name: "day past month end", frag: "77S32", wantCode: CodeInvalidBirthdate},
		{name: "day forty is neither sex", frag: "77S40", wantCode: CodeInvalidBirthdate},
		{name: "female day past month end", frag: "77S72", wantCode: CodeInvalidBirthdate},
		{name: "leap day off a leap year", frag: "97B29", wantCode: CodeInvalidBirthdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeBirthdate(tt.frag, nowYear)
			require.Error(t, err)
			assert.True(t, HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}
