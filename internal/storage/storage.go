package storage

import (
	"context"

	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"

	"github.com/google/uuid"
)

// JobRepository defines the interface for job application data operations.
type JobRepository interface {
	// GetAll returns every record ordered by date descending. An empty
	// collection is a valid result, never nil.
	GetAll(ctx context.Context) ([]models.JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error)
	// Create assigns a new ID, inserts the row, and returns the stored record.
	Create(ctx context.Context, job *models.JobApplication) (*models.JobApplication, error)
	// Update overwrites exactly the fields present in req and returns the
	// updated record. Fields absent from req are left unchanged.
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.JobApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
