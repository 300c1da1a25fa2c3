package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.domain.org"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("alice"))
	assert.Error(t, ValidateEmail("alice@"))
	assert.Error(t, ValidateEmail("alice@example"))
	assert.Error(t, ValidateEmail("a lice@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("1234567"))
}

func TestValidateConfirmation(t *testing.T) {
	assert.NoError(t, ValidateConfirmation("secret", "secret"))
	assert.Error(t, ValidateConfirmation("secret", "other"))
}

func TestValidateRegistration_FirstFailureWins(t *testing.T) {
	err := ValidateRegistration("not-an-email", "short", "short")
	require.Error(t, err)

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	err = ValidateRegistration("alice@example.com", "short", "short")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)

	err = ValidateRegistration("alice@example.com", "longenough", "different")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "confirm-password", ve.Field)

	assert.NoError(t, ValidateRegistration("alice@example.com", "longenough", "longenough"))
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		score    int
		label    Strength
	}{
		{"", 0, StrengthWeak},
		{"abc", 1, StrengthWeak},
		{"abcdefgh", 2, StrengthWeak},
		{"abcdefg1", 4, StrengthMedium},
		{"Abcdefg1", 6, StrengthStrong},
		{"Abcdefg1!edcba", 8, StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := PasswordStrength(tt.password)
			assert.Equal(t, tt.score, got)
			assert.Equal(t, tt.label, ClassifyStrength(got))
		})
	}
}
