package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/google/uuid"
)

const jobColumns = "id, company, position, location, status, date, notes, salary, contact, url"

// Compile-time check to ensure Store implements JobRepository
var _ storage.JobRepository = (*Store)(nil)

func (s *Store) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY date DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error querying all jobs: %v\n", err)
		return nil, err
	}
	defer rows.Close()

	jobs := []models.JobApplication{}
	for rows.Next() {
		var job models.JobApplication
		if err := scanJob(rows.Scan, &job); err != nil {
			log.Printf("Error scanning job row: %v\n", err)
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	var job models.JobApplication
	if err := scanJob(row.Scan, &job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, err
	}
	return &job, nil
}

func (s *Store) Create(ctx context.Context, job *models.JobApplication) (*models.JobApplication, error) {
	job.ID = uuid.New()
	query := `INSERT INTO jobs (` + jobColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		job.ID, job.Company, job.Position, job.Location, job.Status,
		job.Date, job.Notes, job.Salary, job.Contact, job.URL)
	if err != nil {
		log.Printf("Error creating job: %v\n", err)
		return nil, err
	}

	return job, nil
}

func (s *Store) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.JobApplication, error) {
	if req.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	sets, args := buildJobUpdateSets(req)
	args = append(args, id)
	query := `UPDATE jobs SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating job %s: %v\n", id, err)
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	return s.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// buildJobUpdateSets constructs the SET clauses for a partial update from
// exactly the fields present in the request.
func buildJobUpdateSets(req *dto.UpdateJobRequest) ([]string, []interface{}) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if req.Company != nil {
		set("company", *req.Company)
	}
	if req.Position != nil {
		set("position", *req.Position)
	}
	if req.Location != nil {
		set("location", *req.Location)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	if req.Date != nil {
		set("date", *req.Date)
	}
	// A provided empty optional clears the column to NULL.
	if req.Notes != nil {
		set("notes", emptyToNil(*req.Notes))
	}
	if req.Salary != nil {
		set("salary", emptyToNil(*req.Salary))
	}
	if req.Contact != nil {
		set("contact", emptyToNil(*req.Contact))
	}
	if req.URL != nil {
		set("url", emptyToNil(*req.URL))
	}

	return sets, args
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanJob(scan func(dest ...any) error, job *models.JobApplication) error {
	// Order matches jobColumns
	return scan(&job.ID, &job.Company, &job.Position, &job.Location,
		&job.Status, &job.Date, &job.Notes, &job.Salary, &job.Contact, &job.URL)
}
