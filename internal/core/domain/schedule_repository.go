package domain

import "context"

// ScheduleItem is one lesson slot in a class timetable. Weekday is 1..7,
// TimeFrom/TimeTo are "HH:MM".
type ScheduleItem struct {
	ID        int
	ClassName string
	Weekday   int
	TimeFrom  string
	TimeTo    string
	Subject   string
	TeacherID *int
}

// SchedulePatch holds a partial update; nil fields are left untouched.
type SchedulePatch struct {
	ClassName *string
	Weekday   *int
	TimeFrom  *string
	TimeTo    *string
	Subject   *string
	TeacherID *int
}

// ScheduleRepository is the data-access contract for timetable entries.
type ScheduleRepository interface {
	// List returns schedule items, optionally filtered by class and weekday.
	List(ctx context.Context, className *string, weekday *int) ([]ScheduleItem, error)

	// Get returns the item with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id int) (*ScheduleItem, error)

	// Create inserts an item and returns the stored row.
	Create(ctx context.Context, item ScheduleItem) (*ScheduleItem, error)

	// Update applies patch and returns the updated row, or (nil, nil) when
	// the item does not exist.
	Update(ctx context.Context, id int, patch SchedulePatch) (*ScheduleItem, error)

	// Delete removes the item. Deleting a missing item is not an error.
	Delete(ctx context.Context, id int) error
}
