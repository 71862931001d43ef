package model

import "time"

// Student represents a student tracked by the attendance dashboard.
type Student struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for creating a student.
// Contact info is optional; name and surname must not be blank.
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Surname     string `json:"surname" binding:"required,min=1,max=100"`
	ContactInfo string `json:"contact_info" binding:"max=255"`
}

// UpdateStudentRequest is the payload for updating a student.
type UpdateStudentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Surname     string `json:"surname" binding:"required,min=1,max=100"`
	ContactInfo string `json:"contact_info" binding:"max=255"`
}
