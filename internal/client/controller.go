package client

import (
	"context"
	"strings"
	"time"

	"jobtrack/internal/models"
)

// Notifier receives transient outcome notifications from the controller.
// It is injected so the flows can be driven and tested without any
// rendering environment.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Mode is the current UI mode.
type Mode int

const (
	ModeList Mode = iota
	ModeAdd
	ModeEdit
	ModeDetail
)

const failureMessage = "Failed to perform action. Try again later!"

// Controller holds the client application state: the full in-memory
// collection, the derived filtered view, the UI mode, and the record
// currently selected for edit, detail, or pending deletion.
type Controller struct {
	api    *Client
	notify Notifier

	jobs       []models.JobApplication
	filtered   []models.JobApplication
	searchTerm string

	mode          Mode
	selected      *models.JobApplication
	pendingDelete *models.JobApplication
	loading       bool
}

// NewController creates a controller in list mode with an empty
// collection and the loading flag set.
func NewController(api *Client, notify Notifier) *Controller {
	return &Controller{
		api:      api,
		notify:   notify,
		jobs:     []models.JobApplication{},
		filtered: []models.JobApplication{},
		mode:     ModeList,
		loading:  true,
	}
}

// Load fetches the full collection from the gateway. On success both the
// collection and the filtered view are replaced; on failure the
// collection stays empty and a failure notification is surfaced. The
// loading flag is cleared in all cases.
func (ctl *Controller) Load(ctx context.Context) error {
	defer func() { ctl.loading = false }()

	jobs, err := ctl.api.ListJobs(ctx)
	if err != nil {
		ctl.notify.Failure(failureMessage)
		return err
	}

	ctl.jobs = jobs
	ctl.applyFilter()
	return nil
}

// SetSearch updates the search term and recomputes the filtered view.
func (ctl *Controller) SetSearch(term string) {
	ctl.searchTerm = term
	ctl.applyFilter()
}

// applyFilter recomputes the filtered view from the collection and the
// current search term. Called whenever either changes.
func (ctl *Controller) applyFilter() {
	ctl.filtered = FilterJobs(ctl.jobs, ctl.searchTerm)
}

// FilterJobs returns the records whose company, position, location, or
// status contains the search term, case-insensitively. A pure
// projection with no side effects.
func FilterJobs(jobs []models.JobApplication, term string) []models.JobApplication {
	needle := strings.ToLower(term)
	filtered := make([]models.JobApplication, 0, len(jobs))
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Company), needle) ||
			strings.Contains(strings.ToLower(job.Position), needle) ||
			strings.Contains(strings.ToLower(job.Location), needle) ||
			strings.Contains(strings.ToLower(string(job.Status)), needle) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// BeginAdd switches to the add form and returns its empty defaults:
// status Applied, date set to the current day.
func (ctl *Controller) BeginAdd() JobForm {
	ctl.mode = ModeAdd
	return JobForm{
		Status: string(models.StatusApplied),
		Date:   time.Now().Format("2006-01-02"),
	}
}

// SubmitAdd sends a create request. On success the new record is
// prepended to the collection and the controller returns to list view;
// on failure the form stays open.
func (ctl *Controller) SubmitAdd(ctx context.Context, form JobForm) error {
	created, err := ctl.api.CreateJob(ctx, form)
	if err != nil {
		ctl.notify.Failure(failureMessage)
		return err
	}

	ctl.jobs = append([]models.JobApplication{*created}, ctl.jobs...)
	ctl.applyFilter()
	ctl.mode = ModeList
	ctl.notify.Success("New Job Added!")
	return nil
}

// BeginEdit switches to the edit form pre-populated from the record.
func (ctl *Controller) BeginEdit(job models.JobApplication) JobForm {
	ctl.selected = &job
	ctl.mode = ModeEdit
	return JobForm{
		Company:  job.Company,
		Position: job.Position,
		Location: job.Location,
		Status:   string(job.Status),
		Date:     job.Date,
		Notes:    deref(job.Notes),
		Salary:   deref(job.Salary),
		Contact:  deref(job.Contact),
		URL:      deref(job.URL),
	}
}

// SubmitEdit sends an update for the selected record. On success the
// matching record is replaced by identifier and the controller returns
// to list view.
func (ctl *Controller) SubmitEdit(ctx context.Context, form JobForm) error {
	if ctl.selected == nil {
		return nil
	}

	updated, err := ctl.api.UpdateJob(ctx, ctl.selected.ID.String(), form)
	if err != nil {
		ctl.notify.Failure(failureMessage)
		return err
	}

	for i := range ctl.jobs {
		if ctl.jobs[i].ID == updated.ID {
			ctl.jobs[i] = *updated
		}
	}
	ctl.applyFilter()
	ctl.selected = nil
	ctl.mode = ModeList
	ctl.notify.Success("Job Edited!")
	return nil
}

// ViewDetails switches to the read-only detail view of one record.
func (ctl *Controller) ViewDetails(job models.JobApplication) {
	ctl.selected = &job
	ctl.mode = ModeDetail
}

// CloseDetails returns from detail view to the list.
func (ctl *Controller) CloseDetails() {
	ctl.selected = nil
	ctl.mode = ModeList
}

// RequestDelete marks a record as pending deletion; the deletion only
// happens after ConfirmDelete.
func (ctl *Controller) RequestDelete(job models.JobApplication) {
	ctl.pendingDelete = &job
}

// CancelDelete dismisses the pending deletion.
func (ctl *Controller) CancelDelete() {
	ctl.pendingDelete = nil
}

// ConfirmDelete issues the delete request for the pending record. On
// success the record is removed from the collection and, if it was the
// record shown in detail view, the detail view is exited.
func (ctl *Controller) ConfirmDelete(ctx context.Context) error {
	if ctl.pendingDelete == nil {
		return nil
	}
	id := ctl.pendingDelete.ID
	ctl.pendingDelete = nil

	if err := ctl.api.DeleteJob(ctx, id.String()); err != nil {
		ctl.notify.Failure(failureMessage)
		return err
	}

	remaining := ctl.jobs[:0]
	for _, job := range ctl.jobs {
		if job.ID != id {
			remaining = append(remaining, job)
		}
	}
	ctl.jobs = remaining
	ctl.applyFilter()

	if ctl.selected != nil && ctl.selected.ID == id {
		ctl.selected = nil
		if ctl.mode == ModeDetail {
			ctl.mode = ModeList
		}
	}

	ctl.notify.Success("Job Deleted!")
	return nil
}

// --- Accessors ---

func (ctl *Controller) Jobs() []models.JobApplication     { return ctl.jobs }
func (ctl *Controller) Filtered() []models.JobApplication { return ctl.filtered }
func (ctl *Controller) SearchTerm() string                { return ctl.searchTerm }
func (ctl *Controller) Mode() Mode                        { return ctl.mode }
func (ctl *Controller) Selected() *models.JobApplication  { return ctl.selected }
func (ctl *Controller) PendingDelete() *models.JobApplication {
	return ctl.pendingDelete
}
func (ctl *Controller) Loading() bool { return ctl.loading }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
