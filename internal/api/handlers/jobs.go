package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job application operations.
type JobHandler struct {
	repo      storage.JobRepository
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(repo storage.JobRepository, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		repo:      repo,
		validator: validate,
	}
}

// Compile-time check to ensure JobHandler implements JobHandlerInterface
var _ JobHandlerInterface = (*JobHandler)(nil)

// GetJobs godoc
//	@Summary		List job applications
//	@Description	Retrieves all tracked job applications ordered by application date, newest first.
//	@Tags			jobs
//	@Produce		json
//	@Success		200	{array}		models.JobApplication	"Ordered list of applications (possibly empty)"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs [get]
func (h *JobHandler) GetJobs(c *gin.Context) {
	jobs, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("GetJobs: Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// CreateJob godoc
//	@Summary		Add a job application
//	@Description	Creates a new application from a form submission. Optional fields left empty are omitted from the stored record.
//	@Tags			jobs
//	@Accept			mpfd
//	@Produce		json
//	@Param			company		formData	string	true	"Company name"
//	@Param			position	formData	string	true	"Position title"
//	@Param			location	formData	string	true	"Location"
//	@Param			date		formData	string	true	"Application date (YYYY-MM-DD)"
//	@Param			status		formData	string	true	"Status (Applied, Interview, Offer, Rejected)"
//	@Param			notes		formData	string	false	"Notes"
//	@Param			salary		formData	string	false	"Salary"
//	@Param			contact		formData	string	false	"Contact"
//	@Param			url			formData	string	false	"Posting URL"
//	@Success		200	{object}	models.JobApplication	"Created application"
//	@Failure		400	{object}	map[string]string		"Bad Request - Missing or invalid fields"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	status := models.NormalizeStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value: " + req.Status})
		return
	}

	job := &models.JobApplication{
		Company:  req.Company,
		Position: req.Position,
		Location: req.Location,
		Status:   status,
		Date:     req.Date,
		Notes:    optional(req.Notes),
		Salary:   optional(req.Salary),
		Contact:  optional(req.Contact),
		URL:      optional(req.URL),
	}

	created, err := h.repo.Create(c.Request.Context(), job)
	if err != nil {
		log.Printf("CreateJob: Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetJobByID godoc
//	@Summary		Get a job application by ID
//	@Description	Retrieves a single application.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"	Format(uuid)
//	@Success		200	{object}	models.JobApplication	"Application"
//	@Failure		400	{object}	map[string]string		"Invalid ID format"
//	@Failure		404	{object}	map[string]string		"Job not found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	job, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("GetJobByID: Error fetching job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
//	@Summary		Update a job application
//	@Description	Overwrites exactly the fields present in the JSON payload; absent fields are left unchanged.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Application ID"	Format(uuid)
//	@Param			job		body		dto.UpdateJobRequest	true	"Fields to set"
//	@Success		200		{object}	models.JobApplication	"Updated application"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid ID or payload"
//	@Failure		404		{object}	map[string]string		"Job not found"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if req.Status != nil {
		status := models.NormalizeStatus(*req.Status)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value: " + *req.Status})
			return
		}
		normalized := string(status)
		req.Status = &normalized
	}

	updated, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("UpdateJob: Error updating job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteJob godoc
//	@Summary		Delete a job application
//	@Description	Removes an application permanently. Deleting an already-deleted application yields 404.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Application ID"	Format(uuid)
//	@Success		200	{object}	map[string]string	"Acknowledgement"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("DeleteJob: Error deleting job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
