package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/logging"
	"github.com/dmitrijs2005/careerpath/internal/server/models"
)

type UserService interface {
	Register(ctx context.Context, nu models.NewUser) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Seed(ctx context.Context) (string, error)
}

type CareerService interface {
	Skills(ctx context.Context, userID int64) ([]models.Skill, error)
	AddSkill(ctx context.Context, userID int64, skill models.Skill) (*models.Skill, error)
	UpdateSkillLevel(ctx context.Context, skillID int64, level string) (*models.Skill, error)
	Roadmap(ctx context.Context, userID int64) ([]models.RoadmapStep, error)
	AddStep(ctx context.Context, userID int64, step models.RoadmapStep) (*models.RoadmapStep, error)
	UpdateStep(ctx context.Context, stepID int64, patch models.StepPatch) (*models.RoadmapStep, error)
	DeleteStep(ctx context.Context, stepID int64) error
}

const (
	msgHealthy            = "Backend is running!"
	msgEmailTaken         = "Email already registered"
	msgInvalidCredentials = "Invalid email or password"
	msgInvalidID          = "Invalid id"
	msgInternal           = "Internal server error"
)

type registerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	CareerGoal string `json:"careerGoal"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type skillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required,category"`
	Level    string `json:"level" binding:"required,level"`
}

type levelRequest struct {
	Level string `json:"level" binding:"required,level"`
}

type stepRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"max=1000"`
	Status      string `json:"status" binding:"omitempty,status"`
	Duration    string `json:"duration"`
	Topics      string `json:"topics"`
}

type stepPatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status" binding:"omitempty,status"`
	Duration    *string `json:"duration"`
	Topics      *string `json:"topics"`
}

type handler struct {
	users  UserService
	career CareerService
	logger logging.Logger
}

func (h *handler) health(c *gin.Context) {
	c.String(http.StatusOK, msgHealthy)
}

func (h *handler) seed(c *gin.Context) {
	msg, err := h.users.Seed(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

// user answers 200 with a JSON null for an unknown email.
func (h *handler) user(c *gin.Context) {
	u, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if !bind(c, &req) {
		return
	}

	u, err := h.users.Register(c.Request.Context(), models.NewUser{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		CareerGoal: req.CareerGoal,
	})
	if errors.Is(err, common.ErrAlreadyExists) {
		c.String(http.StatusBadRequest, msgEmailTaken)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}

	u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, common.ErrInvalidCredentials) {
		c.String(http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handler) skills(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	list, err := h.career.Skills(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) addSkill(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	var req skillRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.career.AddSkill(c.Request.Context(), userID, models.Skill{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handler) updateSkill(c *gin.Context) {
	skillID, ok := idParam(c, "skillId")
	if !ok {
		return
	}
	var req levelRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.career.UpdateSkillLevel(c.Request.Context(), skillID, req.Level)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handler) roadmap(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	steps, err := h.career.Roadmap(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

func (h *handler) addStep(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	var req stepRequest
	if !bind(c, &req) {
		return
	}

	st, err := h.career.AddStep(c.Request.Context(), userID, models.RoadmapStep{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Duration:    req.Duration,
		Topics:      req.Topics,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *handler) updateStep(c *gin.Context) {
	stepID, ok := idParam(c, "stepId")
	if !ok {
		return
	}
	var req stepPatchRequest
	if !bind(c, &req) {
		return
	}

	st, err := h.career.UpdateStep(c.Request.Context(), stepID, models.StepPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Duration:    req.Duration,
		Topics:      req.Topics,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *handler) deleteStep(c *gin.Context) {
	stepID, ok := idParam(c, "stepId")
	if !ok {
		return
	}
	if err := h.career.DeleteStep(c.Request.Context(), stepID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// fail maps service errors onto plain-text responses.
func (h *handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.String(http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrValidation):
		c.String(http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.String(http.StatusInternalServerError, msgInternal)
	}
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.String(http.StatusBadRequest, bindMessage(err))
		return false
	}
	return true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}
