package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wayfinder/internal/auth"
	"wayfinder/internal/domain"
	"wayfinder/internal/metrics"
	"wayfinder/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	authSvc    service.AuthService
	users      service.UserService
	tasks      service.TaskService
	records    service.RecordService
	tags       service.TagService
	taskTags   service.TaskTagService
	tokens     *auth.TokenService
	metrics    *metrics.Metrics
	logger     *logrus.Logger
	loginRate  int
	loginBurst int
}

func NewHandler(
	authSvc service.AuthService,
	users service.UserService,
	tasks service.TaskService,
	records service.RecordService,
	tags service.TagService,
	taskTags service.TaskTagService,
	tokens *auth.TokenService,
	m *metrics.Metrics,
	logger *logrus.Logger,
	loginRate, loginBurst int,
) *Handler {
	return &Handler{
		authSvc:    authSvc,
		users:      users,
		tasks:      tasks,
		records:    records,
		tags:       tags,
		taskTags:   taskTags,
		tokens:     tokens,
		metrics:    m,
		logger:     logger,
		loginRate:  loginRate,
		loginBurst: loginBurst,
	}
}

// RegisterRoutes declares the full route table. The anonymous allow-list is
// exactly the set of routes registered outside the authenticated group:
// register, login, health and metrics. Everything else passes the gate.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	if h.metrics != nil {
		router.Use(h.metrics.Middleware())
		router.GET("/metrics", h.metrics.Handler())
	}

	api := router.Group("/api")

	credentialLimit := RateLimit(h.loginRate, h.loginBurst)
	api.POST("/auth/register", credentialLimit, h.register)
	api.POST("/auth/login", credentialLimit, h.login)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	authed := api.Group("", AuthRequired(h.tokens))
	{
		authed.POST("/auth/change-password", h.changePassword)

		authed.GET("/users/me", h.getCurrentUser)
		authed.GET("/users/:id", h.getUser)
		authed.PUT("/users/:id", h.updateUser)

		authed.POST("/tasks", h.createTask)
		authed.GET("/tasks", h.listTasks)
		authed.GET("/tasks/:id", h.getTask)
		authed.PUT("/tasks/:id", h.updateTask)
		authed.DELETE("/tasks/:id", h.deleteTask)

		authed.POST("/records", h.createRecord)
		authed.GET("/records", h.listRecords)
		authed.GET("/records/task/:taskId", h.listRecordsByTask)
		authed.GET("/records/:id", h.getRecord)
		authed.PUT("/records/:id", h.updateRecord)
		authed.DELETE("/records/:id", h.deleteRecord)

		authed.POST("/tags", h.createTag)
		authed.GET("/tags", h.listTags)
		authed.GET("/tags/task/:taskId", h.listTagsByTask)
		authed.GET("/tags/:id", h.getTag)
		authed.PUT("/tags/:id", h.updateTag)
		authed.DELETE("/tags/:id", h.deleteTag)

		authed.POST("/tasktags", h.createTaskTag)
		authed.GET("/tasktags", h.listTaskTags)
		authed.GET("/tasktags/task/:taskId", h.listTaskTagsByTask)
		authed.GET("/tasktags/tag/:tagId", h.listTaskTagsByTag)
		authed.GET("/tasktags/:id", h.getTaskTag)
		authed.DELETE("/tasktags/:id", h.deleteTaskTag)
	}
}

// writeError maps domain sentinels onto HTTP outcomes. Existence is decided
// before ownership upstream, so the ordering here is a straight translation.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, service.ErrCurrentPasswordIncorrect):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if h.logger != nil {
			h.logger.WithError(err).Error("request failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
