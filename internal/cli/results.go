package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// ContactView is the JSON form of a contact
type ContactView struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Number  string `json:"number"`
	Email   string `json:"email"`
}

// NewContactView converts a contact. Cloud contacts carry no ID.
func NewContactView(c *models.Contact) ContactView {
	v := ContactView{
		Name:    c.Name(),
		Surname: c.Surname(),
		Number:  c.Number(),
		Email:   c.Email(),
	}
	if c.ID != uuid.Nil {
		v.ID = c.ID.String()
	}
	return v
}

func newContactViews(contacts []*models.Contact) []ContactView {
	views := make([]ContactView, len(contacts))
	for i, c := range contacts {
		views[i] = NewContactView(c)
	}
	return views
}

func (v ContactView) fullName() string {
	return v.Name + " " + v.Surname
}

func (v ContactView) row() []string {
	return []string{v.Name, v.Surname, v.Number, v.Email}
}

// ItemView reports one rejected item of a batch
type ItemView struct {
	Row     int    `json:"row,omitempty"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Number  string `json:"number"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

func newItemViews(failed []models.ItemError) []ItemView {
	views := make([]ItemView, len(failed))
	for i, f := range failed {
		views[i] = ItemView{
			Row:     f.Row,
			Name:    f.Fields.Name,
			Surname: f.Fields.Surname,
			Number:  f.Fields.Number,
			Code:    ErrorCode(f.Err),
			Error:   f.Err.Error(),
		}
	}
	return views
}

func renderFailures(b *strings.Builder, failed []ItemView) {
	for _, f := range failed {
		who := strings.TrimSpace(f.Name + " " + f.Surname)
		if f.Row > 0 {
			who = fmt.Sprintf("row %d (%s)", f.Row, who)
		}
		fmt.Fprintf(b, "  %s %s: %s\n", styles.WarningStyle.Render("!"), who, f.Error)
	}
}

// ============================================================================
// SINGLE CONTACT
// ============================================================================

// ContactResult reports a created, edited or found contact
type ContactResult struct {
	Action  string        `json:"action"`
	Store   models.Target `json:"store"`
	Contact ContactView   `json:"contact"`
}

// NewContactResult builds a ContactResult
func NewContactResult(action string, store models.Target, c *models.Contact) *ContactResult {
	return &ContactResult{Action: action, Store: store, Contact: NewContactView(c)}
}

// QuietOutput implements Quieter
func (r *ContactResult) QuietOutput() string {
	return r.Contact.Number
}

// Render implements Renderer
func (r *ContactResult) Render() string {
	var b strings.Builder
	if r.Action == "found" {
		fmt.Fprintf(&b, "%s\n", styles.TitleStyle.Render(r.Contact.fullName()))
	} else {
		fmt.Fprintf(&b, "%s Contact '%s' %s in %s store\n",
			styles.SuccessStyle.Render("✓"), r.Contact.fullName(), r.Action, r.Store)
	}
	renderDetails(&b, r.Contact)
	return b.String()
}

func renderDetails(b *strings.Builder, c ContactView) {
	email := c.Email
	if email == "" {
		email = styles.SubtleStyle.Render("(none)")
	}
	fmt.Fprintf(b, "  %s %s\n", styles.LabelStyle.Render("Number:"), c.Number)
	fmt.Fprintf(b, "  %s %s\n", styles.LabelStyle.Render("Email: "), email)
}

// EditBothResult reports an edit applied to both stores
type EditBothResult struct {
	Contact      ContactView `json:"contact"`
	LocalUpdated bool        `json:"local_updated"`
	CloudUpdated bool        `json:"cloud_updated"`
}

// NewEditBothResult converts the service result
func NewEditBothResult(res *contactservice.EditResult) *EditBothResult {
	f := res.Fields
	return &EditBothResult{
		Contact:      ContactView{Name: f.Name, Surname: f.Surname, Number: f.Number, Email: f.Email},
		LocalUpdated: res.Local != nil,
		CloudUpdated: res.CloudUpdated,
	}
}

// QuietOutput implements Quieter
func (r *EditBothResult) QuietOutput() string {
	return r.Contact.Number
}

// Render implements Renderer
func (r *EditBothResult) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Contact '%s' edited\n", styles.SuccessStyle.Render("✓"), r.Contact.fullName())
	fmt.Fprintf(&b, "  %s %s\n", styles.LabelStyle.Render("Local: "), updatedText(r.LocalUpdated))
	fmt.Fprintf(&b, "  %s %s\n", styles.LabelStyle.Render("Cloud: "), updatedText(r.CloudUpdated))
	renderDetails(&b, r.Contact)
	return b.String()
}

func updatedText(ok bool) string {
	if ok {
		return "updated"
	}
	return styles.SubtleStyle.Render("not found")
}

// DeleteResult reports a deletion, or its cancellation at the prompt
type DeleteResult struct {
	Store     models.Target `json:"store"`
	Contact   ContactView   `json:"contact"`
	Cancelled bool          `json:"cancelled"`
}

// QuietOutput implements Quieter
func (r *DeleteResult) QuietOutput() string {
	return ""
}

// Render implements Renderer
func (r *DeleteResult) Render() string {
	if r.Cancelled {
		return "Cancelled\n"
	}
	return fmt.Sprintf("%s Contact '%s' deleted from %s store\n",
		styles.DeleteStyle.Render("✓"), r.Contact.fullName(), r.Store)
}

// ============================================================================
// LISTS
// ============================================================================

// ContactListResult reports the contacts of a list or search
type ContactListResult struct {
	Store    models.Target `json:"store"`
	Contacts []ContactView `json:"contacts"`
	Skipped  []ItemView    `json:"skipped,omitempty"`
}

// NewContactListResult builds a ContactListResult
func NewContactListResult(store models.Target, contacts []*models.Contact, skipped []models.ItemError) *ContactListResult {
	return &ContactListResult{
		Store:    store,
		Contacts: newContactViews(contacts),
		Skipped:  newItemViews(skipped),
	}
}

// QuietOutput implements Quieter
func (r *ContactListResult) QuietOutput() string {
	numbers := make([]string, len(r.Contacts))
	for i, c := range r.Contacts {
		numbers[i] = c.Number
	}
	return strings.Join(numbers, "\n")
}

// Render implements Renderer
func (r *ContactListResult) Render() string {
	var b strings.Builder
	if len(r.Contacts) == 0 {
		fmt.Fprintf(&b, "No contacts found in %s store\n", r.Store)
	} else {
		fmt.Fprintf(&b, "%s\n", styles.TitleStyle.Render(fmt.Sprintf("Contacts in %s store (%d)", r.Store, len(r.Contacts))))
		rows := make([][]string, len(r.Contacts))
		for i, c := range r.Contacts {
			rows[i] = c.row()
		}
		b.WriteString(styles.RenderTable(models.Headers, rows))
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "%s %d invalid row(s) skipped:\n", styles.WarningStyle.Render("!"), len(r.Skipped))
		renderFailures(&b, r.Skipped)
	}
	return b.String()
}

// ============================================================================
// SYNCHRONIZATION
// ============================================================================

// BatchReport reports a backup, restore or import
type BatchReport struct {
	Operation string        `json:"operation"`
	Succeeded []ContactView `json:"succeeded"`
	Failed    []ItemView    `json:"failed"`
}

// NewBatchReport builds a BatchReport
func NewBatchReport(operation string, res models.BatchResult) *BatchReport {
	return &BatchReport{
		Operation: operation,
		Succeeded: newContactViews(res.Succeeded),
		Failed:    newItemViews(res.Failed),
	}
}

// QuietOutput implements Quieter
func (r *BatchReport) QuietOutput() string {
	return strconv.Itoa(len(r.Succeeded))
}

// Render implements Renderer
func (r *BatchReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d contact(s) succeeded, %d failed\n",
		styles.SuccessStyle.Render("✓"), r.Operation, len(r.Succeeded), len(r.Failed))
	renderFailures(&b, r.Failed)
	return b.String()
}

// ExportResult reports an export
type ExportResult struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// QuietOutput implements Quieter
func (r *ExportResult) QuietOutput() string {
	return strconv.Itoa(r.Count)
}

// Render implements Renderer
func (r *ExportResult) Render() string {
	return fmt.Sprintf("%s Exported %d contact(s) to %s\n", styles.SuccessStyle.Render("✓"), r.Count, r.Path)
}

// ConflictView pairs the two versions of a contact
type ConflictView struct {
	Local ContactView `json:"local"`
	Cloud ContactView `json:"cloud"`
}

// DiffReport reports how the local store differs from the cloud
type DiffReport struct {
	InSync    int            `json:"in_sync"`
	OnlyLocal []ContactView  `json:"only_local"`
	OnlyCloud []ContactView  `json:"only_cloud"`
	Conflicts []ConflictView `json:"conflicts"`
	Skipped   []ItemView     `json:"skipped,omitempty"`
}

// NewDiffReport converts the service diff
func NewDiffReport(d *contactservice.Diff) *DiffReport {
	r := &DiffReport{
		InSync:    d.InSync,
		OnlyLocal: newContactViews(d.OnlyLocal),
		OnlyCloud: newContactViews(d.OnlyCloud),
		Conflicts: make([]ConflictView, len(d.Conflicts)),
		Skipped:   newItemViews(d.Skipped),
	}
	for i, c := range d.Conflicts {
		r.Conflicts[i] = ConflictView{Local: NewContactView(c.Local), Cloud: NewContactView(c.Cloud)}
	}
	return r
}

// QuietOutput implements Quieter
func (r *DiffReport) QuietOutput() string {
	return strconv.Itoa(len(r.OnlyLocal) + len(r.OnlyCloud) + len(r.Conflicts))
}

// Render implements Renderer
func (r *DiffReport) Render() string {
	var b strings.Builder
	if len(r.OnlyLocal)+len(r.OnlyCloud)+len(r.Conflicts) == 0 {
		fmt.Fprintf(&b, "%s Stores are in sync (%d contact(s))\n", styles.SuccessStyle.Render("✓"), r.InSync)
	} else {
		fmt.Fprintf(&b, "%s\n", styles.TitleStyle.Render(fmt.Sprintf("%d contact(s) in sync", r.InSync)))
		renderSection(&b, "Only in local store", r.OnlyLocal, "+")
		renderSection(&b, "Only in cloud", r.OnlyCloud, "-")
		if len(r.Conflicts) > 0 {
			fmt.Fprintf(&b, "%s\n", styles.SectionStyle.Render("Conflicts"))
			for _, c := range r.Conflicts {
				fmt.Fprintf(&b, "  local: %s\n", strings.Join(c.Local.row(), ", "))
				fmt.Fprintf(&b, "  cloud: %s\n", strings.Join(c.Cloud.row(), ", "))
			}
		}
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "%s %d invalid cloud row(s) skipped:\n", styles.WarningStyle.Render("!"), len(r.Skipped))
		renderFailures(&b, r.Skipped)
	}
	return b.String()
}

func renderSection(b *strings.Builder, title string, contacts []ContactView, marker string) {
	if len(contacts) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", styles.SectionStyle.Render(title))
	for _, c := range contacts {
		fmt.Fprintf(b, "  %s %s\n", marker, strings.Join(c.row(), ", "))
	}
}
