package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusPayload struct {
	Status   string `json:"status" validate:"required,is-application-status"`
	Currency string `json:"currency" validate:"omitempty,is-currency-code"`
}

func TestCustomStatusRule(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&statusPayload{Status: "ACCEPTED"}))

	err := v.Validate(&statusPayload{Status: "accepted"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
}

func TestCurrencyCodeRule(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&statusPayload{Status: "PENDING", Currency: "USD"}))

	for _, bad := range []string{"usd", "US", "DOLLARS", "U1D"} {
		err := v.Validate(&statusPayload{Status: "PENDING", Currency: bad})
		require.Error(t, err, "currency %q should fail", bad)
	}
}

func TestErrorsKeyedByJSONTag(t *testing.T) {
	v := New()

	err := v.Validate(&statusPayload{})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	_, hasStatus := vErr.Errors["status"]
	assert.True(t, hasStatus)
}
