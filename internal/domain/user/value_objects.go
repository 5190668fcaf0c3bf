package user

import (
	"regexp"
	"strings"

	"booking-engine/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.New("invalid email format")
	ErrInvalidRole  = errs.New("invalid role")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}
