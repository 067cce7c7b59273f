package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edziennik/school-backend/internal/core/domain"
	"github.com/edziennik/school-backend/internal/logger"
)

// SendMessage handles POST /messages/ (authenticated). An omitted from_id
// defaults to the authenticated sender.
func (h *Handler) SendMessage(c *gin.Context) {
	var req messageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	m, err := h.messages.Send(c.Request.Context(), domain.Message{
		FromID:    req.FromID,
		ToID:      req.ToID,
		ClassName: req.ClassName,
		Content:   req.Content,
	}, currentUserID(c))
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Send message failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusCreated, toMessageResponse(m))
}

// ListMessages handles GET /messages/?from_id=&to_id=&class_name=
// (authenticated). With no filters it lists the caller's own sent messages.
func (h *Handler) ListMessages(c *gin.Context) {
	filter := domain.MessageFilter{
		FromID:    optionalIntQuery(c, "from_id"),
		ToID:      optionalIntQuery(c, "to_id"),
		ClassName: optionalStringQuery(c, "class_name"),
	}

	messages, err := h.messages.List(c.Request.Context(), filter, currentUserID(c))
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("List messages failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	resp := make([]messageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, toMessageResponse(&messages[i]))
	}
	c.JSON(http.StatusOK, resp)
}
