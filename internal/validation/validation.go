// Package validation holds the field-level rules every contact must satisfy.
// The checks are pure and have no knowledge of where a contact is stored.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Field length limits
const (
	MaxNameLength    = 50
	MaxSurnameLength = 50
	MaxNumberLength  = 15
	MaxEmailLength   = 63
)

// ErrInvalidField is matched by every error returned from this package
var ErrInvalidField = errors.New("invalid field")

var emailRegex = regexp.MustCompile(`^[\w.-]+@[a-zA-Z]+\.[a-zA-Z]{2,}$`)

var v *validator.Validate

func init() {
	v = validator.New()
	mustRegister("alphaspace", isAlphaSpace)
	mustRegister("digits", isDigits)
	mustRegister("contactemail", isContactEmail)
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// FieldError describes why a single contact field was rejected
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Reason
}

// Unwrap lets callers test for ErrInvalidField with errors.Is
func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// rule binds a validator tag string to the messages reported per failing tag
type rule struct {
	field    string
	tags     string
	messages map[string]string
}

var (
	nameRule = rule{
		field: "name",
		tags:  fmt.Sprintf("required,max=%d,alphaspace", MaxNameLength),
		messages: map[string]string{
			"required":   "Name cannot be empty",
			"max":        fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength),
			"alphaspace": "Name can only contain alphabetic characters and spaces",
		},
	}
	surnameRule = rule{
		field: "surname",
		tags:  fmt.Sprintf("required,max=%d,alphaspace", MaxSurnameLength),
		messages: map[string]string{
			"required":   "Surname cannot be empty",
			"max":        fmt.Sprintf("Surname cannot exceed %d characters", MaxSurnameLength),
			"alphaspace": "Surname can only contain alphabetic characters and spaces",
		},
	}
	numberRule = rule{
		field: "number",
		tags:  fmt.Sprintf("required,max=%d,digits", MaxNumberLength),
		messages: map[string]string{
			"required": "Number cannot be empty",
			"max":      fmt.Sprintf("Number cannot exceed %d digits", MaxNumberLength),
			"digits":   "Number can only contain digits",
		},
	}
	emailRule = rule{
		field: "email",
		tags:  fmt.Sprintf("omitempty,max=%d,contactemail", MaxEmailLength),
		messages: map[string]string{
			"max":          fmt.Sprintf("Email cannot exceed %d characters", MaxEmailLength),
			"contactemail": "Invalid email format",
		},
	}
)

func (r rule) check(value string) error {
	err := v.Var(value, r.tags)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := r.messages[verrs[0].Tag()]; ok {
			return &FieldError{Field: r.field, Reason: msg}
		}
	}
	return &FieldError{Field: r.field, Reason: fmt.Sprintf("invalid %s", r.field)}
}

// ValidateName checks a contact first name
func ValidateName(s string) error {
	return nameRule.check(s)
}

// ValidateSurname checks a contact surname
func ValidateSurname(s string) error {
	return surnameRule.check(s)
}

// ValidateNumber checks a phone number
func ValidateNumber(s string) error {
	return numberRule.check(s)
}

// ValidateEmail checks an email address. The empty string is accepted.
func ValidateEmail(s string) error {
	return emailRule.check(s)
}

// ValidateAll runs every field validator in declaration order and returns the first failure
func ValidateAll(name, surname, number, email string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateSurname(surname); err != nil {
		return err
	}
	if err := ValidateNumber(number); err != nil {
		return err
	}
	return ValidateEmail(email)
}

func isAlphaSpace(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isDigits(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}
