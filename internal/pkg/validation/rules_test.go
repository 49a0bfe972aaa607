package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{"asha@college.edu", "a@x", "first.last@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), email)
	}

	invalid := []string{"", "plain", "@nohost", "user@", "two@@ats", "space in@it"}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), email)
	}
}

func TestStringValidation(t *testing.T) {
	testCases := []struct {
		name  string
		build func() *StringValidation
		want  bool
	}{
		{
			name:  "required present",
			build: func() *StringValidation { return NewStringValidation("Alpha") },
			want:  true,
		},
		{
			name:  "required missing",
			build: func() *StringValidation { return NewStringValidation("") },
			want:  false,
		},
		{
			name:  "optional missing",
			build: func() *StringValidation { return NewStringValidation("").WithRequired(false) },
			want:  true,
		},
		{
			name: "below min length",
			build: func() *StringValidation {
				return NewStringValidation("ab").WithMinLength(3)
			},
			want: false,
		},
		{
			name: "above max length",
			build: func() *StringValidation {
				return NewStringValidation(strings.Repeat("a", TeamNameMaxLength+1)).
					WithMaxLength(TeamNameMaxLength)
			},
			want: false,
		},
		{
			name: "within bounds",
			build: func() *StringValidation {
				return NewStringValidation("Alpha").
					WithMinLength(TeamNameMinLength).
					WithMaxLength(TeamNameMaxLength)
			},
			want: true,
		},
		{
			name: "pattern mismatch",
			build: func() *StringValidation {
				return NewStringValidation("no-at-sign").WithPattern(CompiledPatterns.Email)
			},
			want: false,
		},
		{
			name: "pattern match",
			build: func() *StringValidation {
				return NewStringValidation("a@x").WithPattern(CompiledPatterns.Email)
			},
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.build().Validate())
		})
	}
}
