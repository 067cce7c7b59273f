// Package v1 contains the HTTP handlers for API version 1. Handlers bind
// and validate input, call the logic layer, and translate sentinel errors
// into HTTP statuses; they hold no business rules.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/edziennik/school-backend/config"
	logicv1 "github.com/edziennik/school-backend/internal/logic/v1"
)

// Handler groups the HTTP handlers for API v1. Dependencies are injected
// via the constructor; there is no global state.
type Handler struct {
	auth     *logicv1.AuthService
	sessions *logicv1.SessionResolver
	users    *logicv1.UserService
	roles    *logicv1.RoleService
	grades   *logicv1.GradeService
	schedule *logicv1.ScheduleService
	messages *logicv1.MessageService
	cookies  config.CookieConfig
}

// NewHandler creates a Handler with the given services.
func NewHandler(
	auth *logicv1.AuthService,
	sessions *logicv1.SessionResolver,
	users *logicv1.UserService,
	roles *logicv1.RoleService,
	grades *logicv1.GradeService,
	schedule *logicv1.ScheduleService,
	messages *logicv1.MessageService,
	cookies config.CookieConfig,
) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		users:    users,
		roles:    roles,
		grades:   grades,
		schedule: schedule,
		messages: messages,
		cookies:  cookies,
	}
}

// RegisterRoutes registers all API v1 routes on the given router group.
// The messages endpoints sit behind the bearer-token gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)
	rg.POST("/auth/register", h.Register)

	rg.GET("/users/", h.ListUsers)
	rg.GET("/users/:id", h.GetUser)

	rg.GET("/roles/", h.ListRoles)
	rg.POST("/roles/", h.CreateRole)

	rg.GET("/grades/", h.ListGrades)
	rg.GET("/grades/:id", h.GetGrade)
	rg.POST("/grades/", h.CreateGrade)
	rg.PATCH("/grades/:id", h.UpdateGrade)
	rg.DELETE("/grades/:id", h.DeleteGrade)

	rg.GET("/schedule/", h.ListScheduleItems)
	rg.GET("/schedule/:id", h.GetScheduleItem)
	rg.POST("/schedule/", h.CreateScheduleItem)
	rg.PATCH("/schedule/:id", h.UpdateScheduleItem)
	rg.DELETE("/schedule/:id", h.DeleteScheduleItem)

	messages := rg.Group("/messages", h.RequireAuth())
	messages.POST("/", h.SendMessage)
	messages.GET("/", h.ListMessages)
}
