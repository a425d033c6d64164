// Package contact implements contact operations across the local and the persistent store,
// including backup, restore, file import/export and reconciliation.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/csvio"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// LocalStore is the in-memory store the service operates on
type LocalStore interface {
	Create(name, surname, number, email string) (*models.Contact, error)
	Delete(c *models.Contact) bool
	Update(c *models.Contact, f models.Fields) (*models.Contact, error)
	FindByFullName(fullName string) (*models.Contact, error)
	FindByKeyword(keyword string) []*models.Contact
	FindByNumber(number string) (*models.Contact, error)
	Merge(incoming []*models.Contact) models.BatchResult
	All() []*models.Contact
}

// Service defines all contact-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context, target models.Target) (models.BatchResult, error)
	Search(ctx context.Context, target models.Target, keyword string) ([]*models.Contact, error)
	FindByFullName(ctx context.Context, target models.Target, fullName string) (*models.Contact, error)
	Diff(ctx context.Context) (*Diff, error)

	// Write operations
	Create(ctx context.Context, target models.Target, req CreateContactRequest) (*models.Contact, error)
	Edit(ctx context.Context, target models.Target, number string, req UpdateContactRequest) (*models.Contact, error)
	EditBoth(ctx context.Context, number string, req UpdateContactRequest) (*EditResult, error)
	Delete(ctx context.Context, target models.Target, number string) (*models.Contact, error)

	// Synchronization
	Backup(ctx context.Context) (models.BatchResult, error)
	Restore(ctx context.Context) (models.BatchResult, error)
	Import(ctx context.Context, path string) (models.BatchResult, error)
	Export(ctx context.Context, path string) (int, error)
}

// CreateContactRequest encapsulates data for creating a contact
type CreateContactRequest struct {
	Name    string
	Surname string
	Number  string
	Email   string
}

// UpdateContactRequest encapsulates data for editing a contact.
// Nil fields keep their current value.
type UpdateContactRequest struct {
	Name    *string
	Surname *string
	Number  *string
	Email   *string
}

func (r UpdateContactRequest) empty() bool {
	return r.Name == nil && r.Surname == nil && r.Number == nil && r.Email == nil
}

// apply merges the request over the current fields
func (r UpdateContactRequest) apply(current models.Fields) models.Fields {
	if r.Name != nil {
		current.Name = *r.Name
	}
	if r.Surname != nil {
		current.Surname = *r.Surname
	}
	if r.Number != nil {
		current.Number = *r.Number
	}
	if r.Email != nil {
		current.Email = *r.Email
	}
	return current
}

// EditResult reports what an edit across both stores changed
type EditResult struct {
	Local        *models.Contact // nil when the contact is not in the local store
	CloudUpdated bool
	Fields       models.Fields
}

// service implements Service interface
type service struct {
	local  LocalStore
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new contact service. A nil logger selects slog.Default().
func NewService(local LocalStore, repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		local:  local,
		repo:   repo,
		logger: logger,
	}
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// List returns every contact of the target store. For the cloud, rows that fail
// validation are reported in Failed.
func (s *service) List(ctx context.Context, target models.Target) (models.BatchResult, error) {
	switch target {
	case models.TargetLocal:
		return models.BatchResult{Succeeded: s.local.All()}, nil
	case models.TargetCloud:
		res, err := s.repo.FetchAll(ctx)
		if err != nil {
			return models.BatchResult{}, fmt.Errorf("failed to list cloud contacts: %w", err)
		}
		s.logFailures("skipped invalid cloud contact", res.Failed)
		return res, nil
	default:
		return models.BatchResult{}, ErrInvalidTarget
	}
}

// Search matches name or surname locally, and name, surname, number or email in the cloud
func (s *service) Search(ctx context.Context, target models.Target, keyword string) ([]*models.Contact, error) {
	switch target {
	case models.TargetLocal:
		return s.local.FindByKeyword(keyword), nil
	case models.TargetCloud:
		contacts, err := s.repo.FindByKeyword(ctx, keyword)
		if err != nil {
			return nil, fmt.Errorf("failed to search cloud contacts: %w", err)
		}
		return contacts, nil
	default:
		return nil, ErrInvalidTarget
	}
}

// FindByFullName matches by substring locally and exactly in the cloud
func (s *service) FindByFullName(ctx context.Context, target models.Target, fullName string) (*models.Contact, error) {
	switch target {
	case models.TargetLocal:
		return s.local.FindByFullName(fullName)
	case models.TargetCloud:
		return s.repo.FindByFullName(ctx, fullName)
	default:
		return nil, ErrInvalidTarget
	}
}

// ============================================================================
// WRITE OPERATIONS
// ============================================================================

// Create adds a contact to the target store
func (s *service) Create(ctx context.Context, target models.Target, req CreateContactRequest) (*models.Contact, error) {
	switch target {
	case models.TargetLocal:
		c, err := s.local.Create(req.Name, req.Surname, req.Number, req.Email)
		if err != nil {
			return nil, err
		}
		s.logger.Info("contact created", "store", target, "number", c.Number())
		return c, nil
	case models.TargetCloud:
		id, err := s.repo.CreateContact(ctx, req.Name, req.Surname, req.Number, req.Email)
		if err != nil {
			return nil, err
		}
		s.logger.Info("contact created", "store", target, "number", req.Number, "row_id", id)
		return models.NewContact(req.Name, req.Surname, req.Number, req.Email)
	default:
		return nil, ErrInvalidTarget
	}
}

// Edit changes the contact holding number in the target store
func (s *service) Edit(ctx context.Context, target models.Target, number string, req UpdateContactRequest) (*models.Contact, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if req.empty() {
		return nil, ErrNothingToUpdate
	}

	switch target {
	case models.TargetLocal:
		existing, err := s.local.FindByNumber(number)
		if err != nil {
			return nil, err
		}
		return s.local.Update(existing, req.apply(existing.Fields()))
	case models.TargetCloud:
		existing, err := s.repo.FindByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		fields := req.apply(existing.Fields())
		ok, err := s.repo.UpdateContact(ctx, existing.Email(), existing.Number(), fields)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.ErrNotFound
		}
		return models.FromFields(fields)
	default:
		return nil, ErrInvalidTarget
	}
}

// EditBoth edits the local contact and then the cloud row that carries the
// contact's previous email and number. A missing cloud row is not an error.
func (s *service) EditBoth(ctx context.Context, number string, req UpdateContactRequest) (*EditResult, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if req.empty() {
		return nil, ErrNothingToUpdate
	}

	var old models.Fields
	local, err := s.local.FindByNumber(number)
	switch {
	case err == nil:
		old = local.Fields()
	case errors.Is(err, models.ErrNotFound):
		remote, err := s.repo.FindByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		old = remote.Fields()
	default:
		return nil, err
	}

	fields := req.apply(old)
	res := &EditResult{Fields: fields}

	if local != nil {
		res.Local, err = s.local.Update(local, fields)
		if err != nil {
			return nil, err
		}
	}

	res.CloudUpdated, err = s.repo.UpdateContact(ctx, old.Email, old.Number, fields)
	if err != nil {
		return res, fmt.Errorf("local contact edited but cloud update failed: %w", err)
	}
	return res, nil
}

// Delete removes the contact holding number from the target store only
func (s *service) Delete(ctx context.Context, target models.Target, number string) (*models.Contact, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}

	switch target {
	case models.TargetLocal:
		c, err := s.local.FindByNumber(number)
		if err != nil {
			return nil, err
		}
		s.local.Delete(c)
		s.logger.Info("contact deleted", "store", target, "number", number)
		return c, nil
	case models.TargetCloud:
		c, err := s.repo.FindByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		ok, err := s.repo.DeleteContact(ctx, c.Email(), c.Number())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.ErrNotFound
		}
		s.logger.Info("contact deleted", "store", target, "number", number)
		return c, nil
	default:
		return nil, ErrInvalidTarget
	}
}

// ============================================================================
// SYNCHRONIZATION
// ============================================================================

// Backup copies every local contact to the cloud. Rejected contacts are reported per
// item; only a storage fault stops the batch.
func (s *service) Backup(ctx context.Context) (models.BatchResult, error) {
	var res models.BatchResult
	for _, c := range s.local.All() {
		_, err := s.repo.CreateContact(ctx, c.Name(), c.Surname(), c.Number(), c.Email())
		if errors.Is(err, models.ErrStorage) {
			return res, fmt.Errorf("backup aborted after %d contact(s): %w", len(res.Succeeded), err)
		}
		if err != nil {
			res.Failed = append(res.Failed, models.ItemError{Fields: c.Fields(), Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, c)
	}

	s.logFailures("failed to back up contact", res.Failed)
	s.logger.Info("backup finished", "backed_up", len(res.Succeeded), "failed", len(res.Failed))
	return res, nil
}

// Restore merges the cloud contacts into the local store. Succeeded holds the
// contacts that were added; rows already present locally are neither added nor reported.
func (s *service) Restore(ctx context.Context) (models.BatchResult, error) {
	fetched, err := s.repo.FetchAll(ctx)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("failed to restore from cloud: %w", err)
	}

	merged := s.local.Merge(fetched.Succeeded)
	res := models.BatchResult{
		Succeeded: merged.Succeeded,
		Failed:    append(fetched.Failed, merged.Failed...),
	}

	s.logFailures("failed to restore contact", res.Failed)
	s.logger.Info("restore finished", "restored", len(res.Succeeded), "failed", len(res.Failed))
	return res, nil
}

// Import creates a local contact for every row of the file at path
func (s *service) Import(ctx context.Context, path string) (models.BatchResult, error) {
	if path == "" {
		return models.BatchResult{}, ErrEmptyPath
	}

	rows, err := csvio.Read(path)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("failed to import %s: %w", path, err)
	}

	var res models.BatchResult
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		f := row.Fields
		c, err := s.local.Create(f.Name, f.Surname, f.Number, f.Email)
		if err != nil {
			res.Failed = append(res.Failed, models.ItemError{Fields: f, Row: row.Line, Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, c)
	}

	s.logFailures("failed to import contact", res.Failed)
	s.logger.Info("import finished", "path", path, "imported", len(res.Succeeded), "failed", len(res.Failed))
	return res, nil
}

// Export writes every local contact to path, replacing the file
func (s *service) Export(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	contacts := s.local.All()
	fields := make([]models.Fields, len(contacts))
	for i, c := range contacts {
		fields[i] = c.Fields()
	}

	if err := csvio.Write(path, fields); err != nil {
		return 0, fmt.Errorf("failed to export %s: %w", path, err)
	}

	s.logger.Info("export finished", "path", path, "exported", len(fields))
	return len(fields), nil
}

func (s *service) logFailures(msg string, failed []models.ItemError) {
	for _, f := range failed {
		args := []any{"name", f.Fields.Name, "surname", f.Fields.Surname, "reason", f.Err}
		if f.Row > 0 {
			args = append(args, "row", f.Row)
		}
		s.logger.Warn(msg, args...)
	}
}
