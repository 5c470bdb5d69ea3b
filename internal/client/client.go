package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"jobtrack/internal/models"
)

// JobForm carries the editable fields of one application, as entered in
// the add/edit form. Empty optional fields are not sent on create.
type JobForm struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
	Salary   string `json:"salary"`
	Contact  string `json:"contact"`
	URL      string `json:"url"`
}

// Client talks to the record store gateway over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a gateway client for the given base URL
// (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListJobs fetches the full record collection, ordered by date descending.
func (c *Client) ListJobs(ctx context.Context) ([]models.JobApplication, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/jobs", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server not reachable (%w)", err)
	}

	var jobs []models.JobApplication
	if err := decodeJSON(resp, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob submits the form as multipart data. Optional fields left
// empty are omitted from the submission entirely.
func (c *Client) CreateJob(ctx context.Context, form JobForm) (*models.JobApplication, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"company":  form.Company,
		"position": form.Position,
		"location": form.Location,
		"date":     form.Date,
		"status":   form.Status,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	optionals := map[string]string{
		"notes":   form.Notes,
		"salary":  form.Salary,
		"contact": form.Contact,
		"url":     form.URL,
	}
	for name, value := range optionals {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server not reachable (%w)", err)
	}

	var job models.JobApplication
	if err := decodeJSON(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob fetches one record by identifier.
func (c *Client) GetJob(ctx context.Context, id string) (*models.JobApplication, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/jobs/"+id, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server not reachable (%w)", err)
	}

	var job models.JobApplication
	if err := decodeJSON(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob sends the complete form as a JSON object via PUT. The
// gateway merges provided fields; sending the whole form makes the edit
// a full overwrite of the editable fields.
func (c *Client) UpdateJob(ctx context.Context, id string, form JobForm) (*models.JobApplication, error) {
	data, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/jobs/"+id, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server not reachable (%w)", err)
	}

	var job models.JobApplication
	if err := decodeJSON(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes one record by identifier.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/jobs/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("server not reachable (%w)", err)
	}

	var ack map[string]string
	return decodeJSON(resp, &ack)
}

func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("server returned %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
