package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edziennik/school-backend/internal/core/domain"
	"github.com/edziennik/school-backend/internal/logger"
	logicv1 "github.com/edziennik/school-backend/internal/logic/v1"
)

// optionalIntQuery parses an optional integer query parameter. A malformed
// value reads as absent.
func optionalIntQuery(c *gin.Context, name string) *int {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func optionalStringQuery(c *gin.Context, name string) *string {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &raw
}

// ListGrades handles GET /grades/?student_id=.
func (h *Handler) ListGrades(c *gin.Context) {
	grades, err := h.grades.List(c.Request.Context(), optionalIntQuery(c, "student_id"))
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("List grades failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	resp := make([]gradeResponse, 0, len(grades))
	for i := range grades {
		resp = append(resp, toGradeResponse(&grades[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetGrade handles GET /grades/:id.
func (h *Handler) GetGrade(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.grades.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, logicv1.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Grade not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Get grade failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, toGradeResponse(g))
}

// CreateGrade handles POST /grades/.
func (h *Handler) CreateGrade(c *gin.Context) {
	var req gradeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "date must be YYYY-MM-DD"})
		return
	}

	g, err := h.grades.Create(c.Request.Context(), domain.Grade{
		StudentID: req.StudentID,
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		Value:     req.Value,
		Date:      date,
		Comment:   req.Comment,
	})
	if err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Create grade failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusCreated, toGradeResponse(g))
}

// UpdateGrade handles PATCH /grades/:id. Only fields present in the body
// change.
func (h *Handler) UpdateGrade(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req gradeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	patch := domain.GradePatch{Subject: req.Subject, Value: req.Value, Comment: req.Comment}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "date must be YYYY-MM-DD"})
			return
		}
		patch.Date = &date
	}

	g, err := h.grades.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, logicv1.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Grade not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Update grade failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, toGradeResponse(g))
}

// DeleteGrade handles DELETE /grades/:id.
func (h *Handler) DeleteGrade(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.grades.Delete(c.Request.Context(), id); err != nil {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Delete grade failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
		return
	}
	c.Status(http.StatusNoContent)
}
