package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"beamx-scorecard/backend/internal/ai"
)

const defaultCTAURL = "https://beamxsolutions.com"

// Config defines server dependencies.
type Config struct {
	AllowedOrigins []string
	AIConfig       ai.Config
	DisableAI      bool
	ReportCTAURL   string
}

// Server wires HTTP handlers with scoring, advisory generation, and report
// rendering. It holds no mutable state across requests.
type Server struct {
	advisor        ai.Advisor
	allowedOrigins []string
	model          string
	ctaURL         string
}

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	var advisor ai.Advisor
	if cfg.DisableAI {
		logrus.Info("advisory generation disabled via configuration")
	} else {
		client, err := ai.NewClient(cfg.AIConfig)
		switch {
		case err == nil:
			advisor = client
		case errors.Is(err, ai.ErrDisabled):
			logrus.Info("advisory generation disabled - no API key configured")
		default:
			return nil, fmt.Errorf("ai client: %w", err)
		}
	}

	ctaURL := strings.TrimSpace(cfg.ReportCTAURL)
	if ctaURL == "" {
		ctaURL = defaultCTAURL
	}

	return &Server{
		advisor:        advisor,
		allowedOrigins: cfg.AllowedOrigins,
		model:          strings.TrimSpace(cfg.AIConfig.Model),
		ctaURL:         ctaURL,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api")
	{
		api.POST("/report", s.handleReport)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"advisory_enabled": s.advisor != nil && s.advisor.Enabled(),
		"model":            s.model,
		"report_cta_url":   s.ctaURL,
	})
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
