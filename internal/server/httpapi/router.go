package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/careerpath/internal/logging"
)

type RouterConfig struct {
	Users          UserService
	Career         CareerService
	Logger         logging.Logger
	Metrics        *Metrics
	AllowedOrigins []string
}

// NewRouter wires middleware, /metrics and the /api routes.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := RegisterValidators(v); err != nil {
			return nil, fmt.Errorf("validators: %w", err)
		}
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(cfg.Logger),
		CORSMiddleware(cfg.AllowedOrigins),
		metrics.Middleware(),
	)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := &handler{users: cfg.Users, career: cfg.Career, logger: cfg.Logger}

	api := r.Group("/api")
	api.GET("/health", h.health)
	api.POST("/init", h.seed)
	api.GET("/user/:email", h.user)

	api.GET("/skills/:userId", h.skills)
	api.POST("/skills/add/:userId", h.addSkill)
	api.PUT("/skills/update/:skillId", h.updateSkill)

	api.GET("/roadmap/:userId", h.roadmap)
	api.POST("/roadmap/add/:userId", h.addStep)
	api.PUT("/roadmap/update/:stepId", h.updateStep)
	api.DELETE("/roadmap/delete/:stepId", h.deleteStep)

	auth := api.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)

	return r, nil
}
