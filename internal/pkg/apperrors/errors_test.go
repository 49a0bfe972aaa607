package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationErrorConstructors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "duplicate in request",
			err:      NewDuplicateInRequestError("1BM21CS042"),
			sentinel: ErrDuplicateInRequest,
			contains: "cannot be added twice",
		},
		{
			name:     "already registered names the existing team",
			err:      NewAlreadyRegisteredError("Asha", "1BM21CS042", "Beta"),
			sentinel: ErrAlreadyRegistered,
			contains: "already registered in team 'Beta'",
		},
		{
			name:     "no eligible mentor names the department",
			err:      NewNoEligibleMentorError("CS"),
			sentinel: ErrNoEligibleMentor,
			contains: "no eligible mentor found in CS department",
		},
		{
			name:     "storage fault wraps the cause",
			err:      NewStorageFaultError(errors.New("connection reset")),
			sentinel: ErrStorageFault,
			contains: "connection reset",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.sentinel)
			assert.Contains(t, tc.err.Error(), tc.contains)
		})
	}
}

func TestCustomError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	custom := NewCustomError(inner, "outer message")

	assert.ErrorIs(t, custom, inner)
	assert.Equal(t, "outer message", custom.Error())

	// Without a message the wrapped error's text is used.
	bare := &CustomError{Err: inner}
	assert.Equal(t, "inner", bare.Error())
}

func TestCustomError_Builders(t *testing.T) {
	custom := NewCustomError(ErrValidationFailed, "bad input").
		WithCode("VAL_001").
		WithDetails(map[string]interface{}{"field": "usn"}).
		WithStatusMsg("Please check the submitted USNs")

	assert.Equal(t, "VAL_001", custom.Code)
	assert.Equal(t, "Please check the submitted USNs", custom.StatusMsg)
	require.NotNil(t, custom.Details)
	assert.Equal(t, "usn", custom.Details["field"])
}

func TestIs(t *testing.T) {
	err := NewNoEligibleMentorError("EC")

	assert.True(t, Is(err, ErrNoEligibleMentor))
	assert.True(t, Is(err, ErrDuplicateInRequest, ErrAlreadyRegistered, ErrNoEligibleMentor))
	assert.False(t, Is(err, ErrDuplicateInRequest, ErrAlreadyRegistered))
	assert.False(t, Is(nil, ErrNoEligibleMentor))
}
