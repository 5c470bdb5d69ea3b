package app

import (
	"jobtrack/config"
	"jobtrack/internal/storage"

	"github.com/go-playground/validator/v10"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	JobRepo   storage.JobRepository
	Validator *validator.Validate
}
