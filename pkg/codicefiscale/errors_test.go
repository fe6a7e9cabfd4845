package codicefiscale_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"codicefiscale/pkg/codicefiscale"
)

func TestErrorString(t *testing.T) {
	err := &codicefiscale.Error{
		Code:    codicefiscale.CodeInvalidCheckChar,
		Message: "check character 'Y' does not match the code body",
	}
	assert.Equal(t, "invalid-checkchar: check character 'Y' does not match the code body", err.Error())

	cause := errors.New("no such row")
	wrapped := &codicefiscale.Error{
		Code:       codicefiscale.CodeInvalidBelfioreCode,
		Message:    `no municipality or country with code "Z999"`,
		Underlying: cause,
	}
	assert.Equal(t, `invalid-belfiore-code: no municipality or country with code "Z999": no such row`, wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestHasCode(t *testing.T) {
	err := &codicefiscale.Error{Code: codicefiscale.CodeInvalidLength, Message: "code must be 16 characters, got 3"}

	assert.True(t, codicefiscale.HasCode(err, codicefiscale.CodeInvalidLength))
	assert.False(t, codicefiscale.HasCode(err, codicefiscale.CodeInvalidName))

	wrapped := fmt.Errorf("checking %q: %w", "abc", err)
	assert.True(t, codicefiscale.HasCode(wrapped, codicefiscale.CodeInvalidLength))

	assert.False(t, codicefiscale.HasCode(errors.New("plain"), codicefiscale.CodeInvalidLength))
	assert.False(t, codicefiscale.HasCode(nil, codicefiscale.CodeInvalidLength))
}
