package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edziennik/school-backend/internal/logger"
	logicv1 "github.com/edziennik/school-backend/internal/logic/v1"
)

// pathID parses the :id route parameter; on failure it writes a 404 and
// returns false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
		return 0, false
	}
	return id, true
}

// ListUsers handles GET /users/.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("List users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, logicv1.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Get user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, user)
}
