package password

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")

	ErrTooShort    = errors.New("password must be at least 8 characters long")
	ErrNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrNoDigit     = errors.New("password must contain at least one number")
)

const DefaultCost = bcrypt.DefaultCost

const MinLength = 8

// ValidatePolicy enforces the signup/reset password policy.
func ValidatePolicy(password string) error {
	if len(password) < MinLength {
		return ErrTooShort
	}
	hasUpper := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		return ErrNoUppercase
	}
	if !hasDigit {
		return ErrNoDigit
	}
	return nil
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
