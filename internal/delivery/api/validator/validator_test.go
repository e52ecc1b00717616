package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	RefreshToken string `json:"refresh_token" validate:"required,max=8"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{RefreshToken: "abc"}))

	err := v.Validate(&sample{})
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "is required", validationErr.Fields["refresh_token"])

	err = v.Validate(&sample{RefreshToken: "far-too-long"})
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields["refresh_token"], "at most 8")
	assert.Contains(t, err.Error(), "refresh_token")
}
