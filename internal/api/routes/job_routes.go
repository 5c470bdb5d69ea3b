package routes

import (
	"jobtrack/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job applications.
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface) {
	jobsGroup := rg.Group("/jobs")
	{
		jobsGroup.GET("", jobHandler.GetJobs)
		jobsGroup.POST("", jobHandler.CreateJob)
		jobsGroup.GET("/:id", jobHandler.GetJobByID)
		jobsGroup.PUT("/:id", jobHandler.UpdateJob)
		jobsGroup.DELETE("/:id", jobHandler.DeleteJob)
	}
}
