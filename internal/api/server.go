package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/raj-vbeasy/youtubeapi/internal/config"
	"github.com/raj-vbeasy/youtubeapi/internal/models"
)

// Server represents the API server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *models.Database
}

// NewServer creates a new API server. db may be nil, in which case the
// sheet sync history endpoints are disabled.
func NewServer(cfg *config.Config, db *models.Database) *Server {
	router := gin.Default()

	// The sheets endpoint must answer 405 to non-POST methods
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "method " + c.Request.Method + " not allowed",
		})
	})

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router: router,
		cfg:    cfg,
		db:     db,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// OAuth endpoints
	s.router.GET("/api/authorize", s.authorize)
	s.router.GET("/api/oauth2callback", s.oauth2Callback)

	// Analytics endpoint
	s.router.GET("/api/youtubeStats", s.getYouTubeStats)

	// Sheets endpoints
	s.router.POST("/api/googleSheets", s.updateGoogleSheet)
	s.router.GET("/api/syncHistory", s.getSyncHistory)
}

// getSyncHistory returns the most recent sheet writes, newest first
func (s *Server) getSyncHistory(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "sync history is not configured",
		})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := s.db.GetRecentSyncs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
	})
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
