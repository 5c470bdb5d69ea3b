package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtrack/internal/client"
	"jobtrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notifications so the flows can be asserted
// without any rendering environment.
type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Failure(message string) { n.failures = append(n.failures, message) }

// fakeGateway is a minimal in-memory stand-in for the record store
// gateway, speaking the same wire contract.
type fakeGateway struct {
	jobs []models.JobApplication
}

func (g *fakeGateway) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, g.jobs)
		case http.MethodPost:
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			job := models.JobApplication{
				ID:       uuid.New(),
				Company:  r.FormValue("company"),
				Position: r.FormValue("position"),
				Location: r.FormValue("location"),
				Status:   models.Status(r.FormValue("status")),
				Date:     r.FormValue("date"),
				Notes:    formOptional(r, "notes"),
				Salary:   formOptional(r, "salary"),
				Contact:  formOptional(r, "contact"),
				URL:      formOptional(r, "url"),
			}
			g.jobs = append(g.jobs, job)
			writeJSON(w, http.StatusOK, job)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/jobs/"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid job ID"})
			return
		}
		idx := -1
		for i := range g.jobs {
			if g.jobs[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Job not found"})
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, g.jobs[idx])
		case http.MethodPut:
			var form client.JobForm
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			job := &g.jobs[idx]
			job.Company = form.Company
			job.Position = form.Position
			job.Location = form.Location
			job.Status = models.Status(form.Status)
			job.Date = form.Date
			job.Notes = optional(form.Notes)
			job.Salary = optional(form.Salary)
			job.Contact = optional(form.Contact)
			job.URL = optional(form.URL)
			writeJSON(w, http.StatusOK, job)
		case http.MethodDelete:
			g.jobs = append(g.jobs[:idx], g.jobs[idx+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func formOptional(r *http.Request, name string) *string {
	if _, ok := r.MultipartForm.Value[name]; !ok {
		return nil
	}
	value := r.FormValue(name)
	return &value
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newTestController(t *testing.T, gateway *fakeGateway) (*client.Controller, *recordingNotifier) {
	t.Helper()
	srv := httptest.NewServer(gateway.handler())
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{}
	return client.NewController(client.New(srv.URL), notifier), notifier
}

func sampleJobs() []models.JobApplication {
	return []models.JobApplication{
		{ID: uuid.New(), Company: "Acme", Position: "Engineer", Location: "Remote", Status: models.StatusApplied, Date: "2026-08-01"},
		{ID: uuid.New(), Company: "Globex", Position: "Analyst", Location: "NYC", Status: models.StatusOffer, Date: "2026-07-15"},
	}
}

func TestControllerLoad(t *testing.T) {
	gateway := &fakeGateway{jobs: sampleJobs()}
	ctl, notifier := newTestController(t, gateway)

	assert.True(t, ctl.Loading())
	require.NoError(t, ctl.Load(context.Background()))

	assert.False(t, ctl.Loading())
	assert.Len(t, ctl.Jobs(), 2)
	assert.Equal(t, ctl.Jobs(), ctl.Filtered())
	assert.Empty(t, notifier.failures)
}

func TestControllerLoadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{}
	ctl := client.NewController(client.New(srv.URL), notifier)

	err := ctl.Load(context.Background())
	require.Error(t, err)
	assert.False(t, ctl.Loading())
	assert.Empty(t, ctl.Jobs())
	assert.Equal(t, []string{"Failed to perform action. Try again later!"}, notifier.failures)
}

func TestFilterJobs(t *testing.T) {
	jobs := sampleJobs()

	t.Run("Matches company case-insensitively", func(t *testing.T) {
		filtered := client.FilterJobs(jobs, "acme")
		require.Len(t, filtered, 1)
		assert.Equal(t, "Acme", filtered[0].Company)
	})

	t.Run("Matches position", func(t *testing.T) {
		filtered := client.FilterJobs(jobs, "analyst")
		require.Len(t, filtered, 1)
		assert.Equal(t, "Globex", filtered[0].Company)
	})

	t.Run("Matches location", func(t *testing.T) {
		filtered := client.FilterJobs(jobs, "nyc")
		require.Len(t, filtered, 1)
		assert.Equal(t, "Globex", filtered[0].Company)
	})

	t.Run("Matches status", func(t *testing.T) {
		filtered := client.FilterJobs(jobs, "offer")
		require.Len(t, filtered, 1)
		assert.Equal(t, "Globex", filtered[0].Company)
	})

	t.Run("Empty term keeps everything", func(t *testing.T) {
		assert.Len(t, client.FilterJobs(jobs, ""), 2)
	})

	t.Run("No match yields empty slice", func(t *testing.T) {
		filtered := client.FilterJobs(jobs, "initech")
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}

func TestControllerSetSearch(t *testing.T) {
	gateway := &fakeGateway{jobs: sampleJobs()}
	ctl, _ := newTestController(t, gateway)
	require.NoError(t, ctl.Load(context.Background()))

	ctl.SetSearch("acme")
	assert.Equal(t, "acme", ctl.SearchTerm())
	require.Len(t, ctl.Filtered(), 1)
	assert.Equal(t, "Acme", ctl.Filtered()[0].Company)
	// The full collection is untouched.
	assert.Len(t, ctl.Jobs(), 2)

	ctl.SetSearch("")
	assert.Len(t, ctl.Filtered(), 2)
}

func TestControllerAddFlow(t *testing.T) {
	gateway := &fakeGateway{jobs: sampleJobs()}
	ctl, notifier := newTestController(t, gateway)
	require.NoError(t, ctl.Load(context.Background()))

	form := ctl.BeginAdd()
	assert.Equal(t, client.ModeAdd, ctl.Mode())
	assert.Equal(t, string(models.StatusApplied), form.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), form.Date)

	form.Company = "Initech"
	form.Position = "Developer"
	form.Location = "Austin"
	form.Notes = "referred by a friend"

	require.NoError(t, ctl.SubmitAdd(context.Background(), form))

	assert.Equal(t, client.ModeList, ctl.Mode())
	require.Len(t, ctl.Jobs(), 3)
	// New record goes to the front of the collection.
	assert.Equal(t, "Initech", ctl.Jobs()[0].Company)
	require.NotNil(t, ctl.Jobs()[0].Notes)
	assert.Equal(t, "referred by a friend", *ctl.Jobs()[0].Notes)
	assert.Nil(t, ctl.Jobs()[0].Salary)
	assert.Equal(t, []string{"New Job Added!"}, notifier.successes)
}

func TestControllerAddFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{}
	ctl := client.NewController(client.New(srv.URL), notifier)

	form := ctl.BeginAdd()
	form.Company = "Initech"
	form.Position = "Developer"
	form.Location = "Austin"

	require.Error(t, ctl.SubmitAdd(context.Background(), form))
	// Form stays open so the input is not lost.
	assert.Equal(t, client.ModeAdd, ctl.Mode())
	assert.Empty(t, ctl.Jobs())
	assert.Equal(t, []string{"Failed to perform action. Try again later!"}, notifier.failures)
}

func TestControllerEditFlow(t *testing.T) {
	gateway := &fakeGateway{jobs: sampleJobs()}
	ctl, notifier := newTestController(t, gateway)
	require.NoError(t, ctl.Load(context.Background()))

	target := ctl.Jobs()[0]
	form := ctl.BeginEdit(target)
	assert.Equal(t, client.ModeEdit, ctl.Mode())
	assert.Equal(t, target.Company, form.Company)
	assert.Equal(t, string(target.Status), form.Status)

	form.Status = string(models.StatusInterview)
	form.Contact = "jane@acme.example"

	require.NoError(t, ctl.SubmitEdit(context.Background(), form))

	assert.Equal(t, client.ModeList, ctl.Mode())
	assert.Nil(t, ctl.Selected())
	require.Len(t, ctl.Jobs(), 2)
	edited := ctl.Jobs()[0]
	assert.Equal(t, target.ID, edited.ID)
	assert.Equal(t, models.StatusInterview, edited.Status)
	require.NotNil(t, edited.Contact)
	assert.Equal(t, "jane@acme.example", *edited.Contact)
	assert.Equal(t, []string{"Job Edited!"}, notifier.successes)
}

func TestControllerDetailView(t *testing.T) {
	gateway := &fakeGateway{jobs: sampleJobs()}
	ctl, _ := newTestController(t, gateway)
	require.NoError(t, ctl.Load(context.Background()))

	job := ctl.Jobs()[1]
	ctl.ViewDetails(job)
	assert.Equal(t, client.ModeDetail, ctl.Mode())
	require.NotNil(t, ctl.Selected())
	assert.Equal(t, job.ID, ctl.Selected().ID)

	ctl.CloseDetails()
	assert.Equal(t, client.ModeList, ctl.Mode())
	assert.Nil(t, ctl.Selected())
}

func TestControllerDeleteFlow(t *testing.T) {
	gateway := &fakeGateway{jobs: sampleJobs()}
	ctl, notifier := newTestController(t, gateway)
	require.NoError(t, ctl.Load(context.Background()))

	target := ctl.Jobs()[0]

	t.Run("Cancel keeps the record", func(t *testing.T) {
		ctl.RequestDelete(target)
		require.NotNil(t, ctl.PendingDelete())

		ctl.CancelDelete()
		assert.Nil(t, ctl.PendingDelete())
		assert.Len(t, ctl.Jobs(), 2)
	})

	t.Run("Confirm removes the record", func(t *testing.T) {
		ctl.RequestDelete(target)
		require.NoError(t, ctl.ConfirmDelete(context.Background()))

		assert.Nil(t, ctl.PendingDelete())
		require.Len(t, ctl.Jobs(), 1)
		assert.NotEqual(t, target.ID, ctl.Jobs()[0].ID)
		assert.Equal(t, []string{"Job Deleted!"}, notifier.successes)
	})

	t.Run("Confirm without pending is a no-op", func(t *testing.T) {
		require.NoError(t, ctl.ConfirmDelete(context.Background()))
		assert.Len(t, ctl.Jobs(), 1)
		assert.Equal(t, []string{"Job Deleted!"}, notifier.successes)
	})
}

func TestControllerDeleteExitsDetailView(t *testing.T) {
	gateway := &fakeGateway{jobs: sampleJobs()}
	ctl, _ := newTestController(t, gateway)
	require.NoError(t, ctl.Load(context.Background()))

	job := ctl.Jobs()[0]
	ctl.ViewDetails(job)
	ctl.RequestDelete(job)
	require.NoError(t, ctl.ConfirmDelete(context.Background()))

	assert.Equal(t, client.ModeList, ctl.Mode())
	assert.Nil(t, ctl.Selected())
}
