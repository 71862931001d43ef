package model

import "time"

// Session is a single scheduled meeting of a course.
type Session struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"course_id"`
	DateTime  time.Time `json:"date_time"`
	Topic     *string   `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Course is embedded on list/get so clients don't need an extra lookup.
	Course *Course `json:"course,omitempty"`
}

// CreateSessionRequest is the payload for creating a session.
type CreateSessionRequest struct {
	CourseID int       `json:"course_id" binding:"required"`
	DateTime time.Time `json:"date_time" binding:"required"`
	Topic    *string   `json:"topic" binding:"omitempty,max=255"`
}

// UpdateSessionRequest is the payload for updating a session.
type UpdateSessionRequest struct {
	CourseID int       `json:"course_id" binding:"required"`
	DateTime time.Time `json:"date_time" binding:"required"`
	Topic    *string   `json:"topic" binding:"omitempty,max=255"`
}
