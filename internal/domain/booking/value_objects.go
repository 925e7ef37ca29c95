package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrEmptyName    = errors.New("name must not be empty")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// Phone is a normalized customer phone number, the booking identity anchor.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, raw)

	if !phonePattern.MatchString(cleaned) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: cleaned}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}

// Customer bundles the identity fields attached to a booking.
type Customer struct {
	phone Phone
	name  string
	email string
}

func NewCustomer(phone Phone, name, email string) (Customer, error) {
	if strings.TrimSpace(name) == "" {
		return Customer{}, ErrEmptyName
	}
	return Customer{phone: phone, name: strings.TrimSpace(name), email: strings.TrimSpace(email)}, nil
}

func (c Customer) Phone() Phone  { return c.phone }
func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
