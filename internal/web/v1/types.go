package v1

import (
	"time"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// dateLayout is how grade dates travel on the wire.
const dateLayout = "2006-01-02"

type gradeCreateRequest struct {
	StudentID int     `json:"student_id" binding:"required"`
	TeacherID int     `json:"teacher_id" binding:"required"`
	Subject   string  `json:"subject" binding:"required"`
	Value     int     `json:"value" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	Comment   *string `json:"comment"`
}

type gradeUpdateRequest struct {
	Subject *string `json:"subject"`
	Value   *int    `json:"value"`
	Date    *string `json:"date"`
	Comment *string `json:"comment"`
}

type gradeResponse struct {
	ID        int     `json:"id"`
	StudentID int     `json:"student_id"`
	TeacherID int     `json:"teacher_id"`
	Subject   string  `json:"subject"`
	Value     int     `json:"value"`
	Date      string  `json:"date"`
	Comment   *string `json:"comment,omitempty"`
}

func toGradeResponse(g *domain.Grade) gradeResponse {
	return gradeResponse{
		ID:        g.ID,
		StudentID: g.StudentID,
		TeacherID: g.TeacherID,
		Subject:   g.Subject,
		Value:     g.Value,
		Date:      g.Date.Format(dateLayout),
		Comment:   g.Comment,
	}
}

type scheduleCreateRequest struct {
	ClassName string `json:"class_name" binding:"required"`
	Weekday   int    `json:"weekday" binding:"required,min=1,max=7"`
	TimeFrom  string `json:"time_from" binding:"required"`
	TimeTo    string `json:"time_to" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	TeacherID *int   `json:"teacher_id"`
}

type scheduleUpdateRequest struct {
	ClassName *string `json:"class_name"`
	Weekday   *int    `json:"weekday"`
	TimeFrom  *string `json:"time_from"`
	TimeTo    *string `json:"time_to"`
	Subject   *string `json:"subject"`
	TeacherID *int    `json:"teacher_id"`
}

type scheduleResponse struct {
	ID        int    `json:"id"`
	ClassName string `json:"class_name"`
	Weekday   int    `json:"weekday"`
	TimeFrom  string `json:"time_from"`
	TimeTo    string `json:"time_to"`
	Subject   string `json:"subject"`
	TeacherID *int   `json:"teacher_id,omitempty"`
}

func toScheduleResponse(item *domain.ScheduleItem) scheduleResponse {
	return scheduleResponse{
		ID:        item.ID,
		ClassName: item.ClassName,
		Weekday:   item.Weekday,
		TimeFrom:  item.TimeFrom,
		TimeTo:    item.TimeTo,
		Subject:   item.Subject,
		TeacherID: item.TeacherID,
	}
}

type messageCreateRequest struct {
	FromID    int     `json:"from_id"`
	ToID      *int    `json:"to_id"`
	ClassName *string `json:"class_name"`
	Content   string  `json:"content" binding:"required"`
}

type messageResponse struct {
	ID        int       `json:"id"`
	FromID    int       `json:"from_id"`
	ToID      *int      `json:"to_id,omitempty"`
	ClassName *string   `json:"class_name,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		FromID:    m.FromID,
		ToID:      m.ToID,
		ClassName: m.ClassName,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

type roleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type roleCreateRequest struct {
	Name string `json:"name" binding:"required"`
}
