package routes

import (
	"log"

	"jobtrack/internal/api/handlers"
	"jobtrack/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	jobHandler := handlers.NewJobHandler(app.JobRepo, app.Validator)

	// The collection lives at the root path, matching the wire contract
	// existing clients depend on.
	RegisterJobRoutes(&router.RouterGroup, jobHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
