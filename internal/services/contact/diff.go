package contact

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Conflict pairs a local and a cloud contact that share a number or an email
// but differ in at least one field
type Conflict struct {
	Local *models.Contact
	Cloud *models.Contact
}

// Diff compares the local store against the cloud
type Diff struct {
	InSync    int
	OnlyLocal []*models.Contact
	OnlyCloud []*models.Contact
	Conflicts []Conflict
	Skipped   []models.ItemError // cloud rows that failed validation
}

// Empty reports whether both stores hold the same contacts
func (d *Diff) Empty() bool {
	return len(d.OnlyLocal) == 0 && len(d.OnlyCloud) == 0 && len(d.Conflicts) == 0
}

// Diff reports which contacts a backup or a restore would move
func (s *service) Diff(ctx context.Context) (*Diff, error) {
	fetched, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to diff against cloud: %w", err)
	}

	cloud := fetched.Succeeded
	matched := make([]bool, len(cloud))
	d := &Diff{Skipped: fetched.Failed}

	for _, l := range s.local.All() {
		if i := indexEqual(cloud, l); i >= 0 {
			matched[i] = true
			d.InSync++
			continue
		}
		if i := indexClash(cloud, matched, l); i >= 0 {
			matched[i] = true
			d.Conflicts = append(d.Conflicts, Conflict{Local: l, Cloud: cloud[i]})
			continue
		}
		d.OnlyLocal = append(d.OnlyLocal, l)
	}

	for i, c := range cloud {
		if !matched[i] {
			d.OnlyCloud = append(d.OnlyCloud, c)
		}
	}
	return d, nil
}

func indexEqual(contacts []*models.Contact, c *models.Contact) int {
	for i, other := range contacts {
		if other.Equal(c) {
			return i
		}
	}
	return -1
}

func indexClash(contacts []*models.Contact, matched []bool, c *models.Contact) int {
	for i, other := range contacts {
		if matched[i] {
			continue
		}
		if other.Number() == c.Number() || (c.Email() != "" && other.Email() == c.Email()) {
			return i
		}
	}
	return -1
}
