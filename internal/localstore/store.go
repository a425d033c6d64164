// Package localstore keeps the process-local contact collection.
// Numbers and non-empty emails are unique within one Store.
// Members never leave the Store: every accessor returns copies, so Update is
// the only way to change one.
package localstore

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// Store is an in-memory set of contacts
type Store struct {
	mu       sync.Mutex
	contacts []*models.Contact
	byNumber map[string]*models.Contact
	byEmail  map[string]*models.Contact
}

// New returns an empty store
func New() *Store {
	return &Store{
		byNumber: make(map[string]*models.Contact),
		byEmail:  make(map[string]*models.Contact),
	}
}

// Create validates the fields, checks uniqueness and inserts a new contact.
// DuplicateNumber is checked before DuplicateEmail.
func (s *Store) Create(name, surname, number, email string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byNumber[number]; ok {
		return nil, models.ErrDuplicateNumber
	}
	if _, ok := s.byEmail[email]; ok && email != "" {
		return nil, models.ErrDuplicateEmail
	}

	c, err := models.NewContact(name, surname, number, email)
	if err != nil {
		return nil, err
	}
	c.ID = uuid.New()
	s.insert(c)
	return c.Clone(), nil
}

// Delete removes the member equal by value to c. It reports whether anything was removed.
func (s *Store) Delete(c *models.Contact) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(c)
	if i < 0 {
		return false
	}
	found := s.contacts[i]
	delete(s.byNumber, found.Number())
	if found.Email() != "" {
		delete(s.byEmail, found.Email())
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	return true
}

// Update edits the member equal by value to c. The fields are validated and checked for
// uniqueness against every other member before anything is changed.
func (s *Store) Update(c *models.Contact, f models.Fields) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(c)
	if i < 0 {
		return nil, models.ErrNotFound
	}
	target := s.contacts[i]

	if err := f.Validate(); err != nil {
		return nil, err
	}
	if other, ok := s.byNumber[f.Number]; ok && other != target {
		return nil, models.ErrDuplicateNumber
	}
	if other, ok := s.byEmail[f.Email]; ok && f.Email != "" && other != target {
		return nil, models.ErrDuplicateEmail
	}

	delete(s.byNumber, target.Number())
	if target.Email() != "" {
		delete(s.byEmail, target.Email())
	}
	// Cannot fail, the fields were validated above
	_ = target.Update(f)
	s.index(target)
	return target.Clone(), nil
}

// FindByFullName returns the first member whose name contains the first token and
// whose surname contains the second. The query must hold exactly two tokens.
func (s *Store) FindByFullName(fullName string) (*models.Contact, error) {
	tokens := strings.Fields(fullName)
	if len(tokens) != 2 {
		return nil, models.ErrInvalidQuery
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contacts {
		if strings.Contains(c.Name(), tokens[0]) && strings.Contains(c.Surname(), tokens[1]) {
			return c.Clone(), nil
		}
	}
	return nil, models.ErrNotFound
}

// FindByKeyword returns every member whose name or surname contains keyword, ignoring case
func (s *Store) FindByKeyword(keyword string) []*models.Contact {
	keyword = strings.ToLower(keyword)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*models.Contact
	for _, c := range s.contacts {
		if strings.Contains(strings.ToLower(c.Name()), keyword) ||
			strings.Contains(strings.ToLower(c.Surname()), keyword) {
			matches = append(matches, c.Clone())
		}
	}
	return matches
}

// FindByValue returns the member with the same fields as c
func (s *Store) FindByValue(c *models.Contact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(c)
	if i < 0 {
		return nil, models.ErrNotFound
	}
	return s.contacts[i].Clone(), nil
}

// FindByNumber returns the member with the given number
func (s *Store) FindByNumber(number string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byNumber[number]
	if !ok {
		return nil, models.ErrNotFound
	}
	return c.Clone(), nil
}

// Merge adds contacts that are not already members by value.
// A contact whose number or email is held by a different member is rejected
// and reported instead of being added.
func (s *Store) Merge(incoming []*models.Contact) models.BatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res models.BatchResult
	for _, c := range incoming {
		if s.indexOf(c) >= 0 {
			continue
		}
		if _, ok := s.byNumber[c.Number()]; ok {
			res.Failed = append(res.Failed, models.ItemError{Fields: c.Fields(), Err: models.ErrDuplicateNumber})
			continue
		}
		if _, ok := s.byEmail[c.Email()]; ok && c.Email() != "" {
			res.Failed = append(res.Failed, models.ItemError{Fields: c.Fields(), Err: models.ErrDuplicateEmail})
			continue
		}
		added := c.Clone()
		added.ID = uuid.New()
		s.insert(added)
		res.Succeeded = append(res.Succeeded, added.Clone())
	}
	return res
}

// All returns the members in insertion order
func (s *Store) All() []*models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*models.Contact, len(s.contacts))
	for i, c := range s.contacts {
		all[i] = c.Clone()
	}
	return all
}

// Len returns the number of members
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// insert and index expect s.mu to be held
func (s *Store) insert(c *models.Contact) {
	s.contacts = append(s.contacts, c)
	s.index(c)
}

func (s *Store) index(c *models.Contact) {
	s.byNumber[c.Number()] = c
	if c.Email() != "" {
		s.byEmail[c.Email()] = c
	}
}

func (s *Store) indexOf(c *models.Contact) int {
	if c == nil {
		return -1
	}
	return slices.IndexFunc(s.contacts, c.Equal)
}
