package server

import (
	"fmt"
	"log"
	"time"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/api/routes"
	"jobtrack/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	app    *app.Application // Store the application container
}

func NewServer(app *app.Application) *Server {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// --- Configure and Apply CORS Middleware ---
	log.Printf("Configuring CORS for origins: %v", app.Config.CORS.AllowedOrigins)
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range app.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour, // How long the result of a preflight request can be cached
	}
	router.Use(cors.New(corsConfig))

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	return &Server{
		router: router,
		app:    app,
	}
}

func (s *Server) Start() error {
	routes.RegisterRoutes(s.router, s.app)

	addr := fmt.Sprintf("%s:%d", s.app.Config.Server.Host, s.app.Config.Server.Port)
	log.Printf("Server starting on %s", addr)
	return s.router.Run(addr)
}
