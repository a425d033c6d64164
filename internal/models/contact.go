package models

import (
	"github.com/google/uuid"
	"github.com/thenoetrevino/phonebook/internal/validation"
)

// Fields is the raw, unvalidated form of a contact
type Fields struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Number  string `json:"number"`
	Email   string `json:"email"`
}

// Validate runs every field validator
func (f Fields) Validate() error {
	return validation.ValidateAll(f.Name, f.Surname, f.Number, f.Email)
}

// Contact is a validated phone book entry.
// The zero value is not usable; build contacts with NewContact.
type Contact struct {
	// ID is a surrogate assigned by the local store. It never takes part in equality.
	ID uuid.UUID

	name    string
	surname string
	number  string
	email   string
}

// NewContact validates all fields and returns a contact, or the first field error
func NewContact(name, surname, number, email string) (*Contact, error) {
	if err := validation.ValidateAll(name, surname, number, email); err != nil {
		return nil, err
	}
	return &Contact{
		name:    name,
		surname: surname,
		number:  number,
		email:   email,
	}, nil
}

// FromFields is NewContact for a Fields value
func FromFields(f Fields) (*Contact, error) {
	return NewContact(f.Name, f.Surname, f.Number, f.Email)
}

func (c *Contact) Name() string    { return c.name }
func (c *Contact) Surname() string { return c.surname }
func (c *Contact) Number() string  { return c.number }
func (c *Contact) Email() string   { return c.email }

// FullName returns "Name Surname"
func (c *Contact) FullName() string {
	return c.name + " " + c.surname
}

func (c *Contact) String() string {
	return c.FullName()
}

// Fields returns the four field values
func (c *Contact) Fields() Fields {
	return Fields{
		Name:    c.name,
		Surname: c.surname,
		Number:  c.number,
		Email:   c.email,
	}
}

// SetName replaces the name if it is valid
func (c *Contact) SetName(name string) error {
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

// SetSurname replaces the surname if it is valid
func (c *Contact) SetSurname(surname string) error {
	if err := validation.ValidateSurname(surname); err != nil {
		return err
	}
	c.surname = surname
	return nil
}

// SetNumber replaces the number if it is valid
func (c *Contact) SetNumber(number string) error {
	if err := validation.ValidateNumber(number); err != nil {
		return err
	}
	c.number = number
	return nil
}

// SetEmail replaces the email if it is valid
func (c *Contact) SetEmail(email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	c.email = email
	return nil
}

// Update replaces all four fields at once. Nothing changes unless every field is valid.
func (c *Contact) Update(f Fields) error {
	if err := f.Validate(); err != nil {
		return err
	}
	c.name = f.Name
	c.surname = f.Surname
	c.number = f.Number
	c.email = f.Email
	return nil
}

// Equal reports whether both contacts hold the same four field values
func (c *Contact) Equal(other *Contact) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Fields() == other.Fields()
}

// Clone returns a detached copy, ID included
func (c *Contact) Clone() *Contact {
	cp := *c
	return &cp
}
