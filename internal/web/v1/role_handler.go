package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edziennik/school-backend/internal/logger"
)

// ListRoles handles GET /roles/.
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("List roles failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	resp := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, roleResponse{ID: r.ID, Name: r.Name})
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRole handles POST /roles/.
func (h *Handler) CreateRole(c *gin.Context) {
	var req roleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	role, err := h.roles.Create(c.Request.Context(), req.Name)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Create role failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusCreated, roleResponse{ID: role.ID, Name: role.Name})
}
