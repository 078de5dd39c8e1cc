package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Action   string `json:"action,omitempty" validate:"omitempty,oneof=approve reject"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	assert.NoError(t, cv.Validate(&loginForm{Email: "a@s.com", Password: "p1"}))

	err := cv.Validate(&loginForm{Email: "not-an-email", Action: "maybe"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"email", "password", "action"}, vErr.Fields())
	assert.Contains(t, err.Error(), "email failed on 'email'")
}
