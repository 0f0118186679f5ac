package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword_AllValid(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"satisfies every rule", "Abcdef1!", true},
		{"longer valid password", "Sup3r$ecret", true},
		{"too short", "Ab1!", false},
		{"missing uppercase", "abcdef1!", false},
		{"missing lowercase", "ABCDEF1!", false},
		{"missing digit", "Abcdefg!", false},
		{"missing special", "Abcdefg1", false},
		{"special outside the fixed set", "Abcdefg1#", false},
		{"empty", "", false},
		{"trivially weak", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password).AllValid())
		})
	}
}

func TestCheckPassword_IndividualRules(t *testing.T) {
	c := CheckPassword("abc")
	assert.False(t, c.MinLength)
	assert.False(t, c.HasUppercase)
	assert.True(t, c.HasLowercase)
	assert.False(t, c.HasDigit)
	assert.False(t, c.HasSpecial)

	c = CheckPassword("PASS123%")
	assert.True(t, c.MinLength)
	assert.True(t, c.HasUppercase)
	assert.False(t, c.HasLowercase)
	assert.True(t, c.HasDigit)
	assert.True(t, c.HasSpecial)
}

func TestCheckPassword_EverySpecialCharCounts(t *testing.T) {
	for _, r := range SpecialChars {
		c := CheckPassword("Abcdef1" + string(r))
		assert.True(t, c.HasSpecial, "special char %q should satisfy the rule", r)
		assert.True(t, c.AllValid())
	}
}
