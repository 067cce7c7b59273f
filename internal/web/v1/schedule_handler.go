package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edziennik/school-backend/internal/core/domain"
	"github.com/edziennik/school-backend/internal/logger"
	logicv1 "github.com/edziennik/school-backend/internal/logic/v1"
)

// ListScheduleItems handles GET /schedule/?class_name=&weekday=.
func (h *Handler) ListScheduleItems(c *gin.Context) {
	items, err := h.schedule.List(c.Request.Context(),
		optionalStringQuery(c, "class_name"), optionalIntQuery(c, "weekday"))
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("List schedule failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	resp := make([]scheduleResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toScheduleResponse(&items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetScheduleItem handles GET /schedule/:id.
func (h *Handler) GetScheduleItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.schedule.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, logicv1.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Schedule item not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Get schedule item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, toScheduleResponse(item))
}

// CreateScheduleItem handles POST /schedule/.
func (h *Handler) CreateScheduleItem(c *gin.Context) {
	var req scheduleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	item, err := h.schedule.Create(c.Request.Context(), domain.ScheduleItem{
		ClassName: req.ClassName,
		Weekday:   req.Weekday,
		TimeFrom:  req.TimeFrom,
		TimeTo:    req.TimeTo,
		Subject:   req.Subject,
		TeacherID: req.TeacherID,
	})
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Create schedule item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusCreated, toScheduleResponse(item))
}

// UpdateScheduleItem handles PATCH /schedule/:id.
func (h *Handler) UpdateScheduleItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req scheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	item, err := h.schedule.Update(c.Request.Context(), id, domain.SchedulePatch{
		ClassName: req.ClassName,
		Weekday:   req.Weekday,
		TimeFrom:  req.TimeFrom,
		TimeTo:    req.TimeTo,
		Subject:   req.Subject,
		TeacherID: req.TeacherID,
	})
	if err != nil {
		if errors.Is(err, logicv1.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Schedule item not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Update schedule item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, toScheduleResponse(item))
}

// DeleteScheduleItem handles DELETE /schedule/:id.
func (h *Handler) DeleteScheduleItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.schedule.Delete(c.Request.Context(), id); err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Delete schedule item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.Status(http.StatusNoContent)
}
