package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = "id, company, position, location, status, date, notes, salary, contact, url"

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY date DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all jobs: %v\n", err)
		return nil, err
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JobApplication])
	if err != nil {
		log.Printf("Error scanning jobs: %v\n", err)
		return nil, err
	}

	if jobs == nil {
		jobs = []models.JobApplication{}
	}

	return jobs, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1;`
	row := r.db.QueryRow(ctx, query, id)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, err
	}
	return job, nil
}

func (r *JobRepo) Create(ctx context.Context, job *models.JobApplication) (*models.JobApplication, error) {
	job.ID = uuid.New()
	query := `INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := r.db.Exec(ctx, query,
		job.ID, job.Company, job.Position, job.Location, job.Status,
		job.Date, job.Notes, job.Salary, job.Contact, job.URL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Check unique constraint
			log.Printf("Attempted to create job with duplicate ID: %v\n", err)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, err
	}

	return job, nil
}

func (r *JobRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.JobApplication, error) {
	if req.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	sets, args := buildJobUpdateSets(req)
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s;`,
		strings.Join(sets, ", "), len(args), jobColumns)

	row := r.db.QueryRow(ctx, query, args...)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", id, err)
		return nil, err
	}
	return job, nil
}

func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM jobs WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func scanJob(row pgx.Row) (*models.JobApplication, error) {
	var job models.JobApplication
	// Ensure the order matches jobColumns
	err := row.Scan(&job.ID, &job.Company, &job.Position, &job.Location,
		&job.Status, &job.Date, &job.Notes, &job.Salary, &job.Contact, &job.URL)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
