package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	GetJobs(c *gin.Context)
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}
