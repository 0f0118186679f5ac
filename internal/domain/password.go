package domain

import "strings"

// MinPasswordLength is the minimum acceptable password length.
const MinPasswordLength = 8

// SpecialChars is the fixed set of accepted special characters.
const SpecialChars = "@$!%*?&"

// PasswordChecks holds the five independent policy rule results for a
// candidate password. Satisfying all five is a hard gate on registration,
// independent from (and stricter than) the 0-4 strength score.
type PasswordChecks struct {
	MinLength    bool
	HasUppercase bool
	HasLowercase bool
	HasDigit     bool
	HasSpecial   bool
}

// CheckPassword evaluates the policy rules for a candidate password.
func CheckPassword(password string) PasswordChecks {
	c := PasswordChecks{
		MinLength: len(password) >= MinPasswordLength,
	}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			c.HasUppercase = true
		case r >= 'a' && r <= 'z':
			c.HasLowercase = true
		case r >= '0' && r <= '9':
			c.HasDigit = true
		case strings.ContainsRune(SpecialChars, r):
			c.HasSpecial = true
		}
	}
	return c
}

// AllValid returns true iff every policy rule is satisfied.
func (c PasswordChecks) AllValid() bool {
	return c.MinLength && c.HasUppercase && c.HasLowercase && c.HasDigit && c.HasSpecial
}
