package model

import "time"

// Attendance marks one student's presence at one session.
// At most one row exists per (student_id, session_id) pair; writes that hit an
// existing pair update it in place.
type Attendance struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	SessionID    int       `json:"session_id"`
	Attended     bool      `json:"attended"`
	NotesPrivate *string   `json:"notes_private"`
	NotesPublic  *string   `json:"notes_public"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Embedded relations for list responses.
	Student *Student `json:"student,omitempty"`
	Session *Session `json:"session,omitempty"`
}

// UpsertAttendanceRequest is the payload for the keyed attendance write.
// Attended intentionally has no "required" tag: false is a valid value.
type UpsertAttendanceRequest struct {
	StudentID    int     `json:"student_id" binding:"required"`
	SessionID    int     `json:"session_id" binding:"required"`
	Attended     bool    `json:"attended"`
	NotesPrivate *string `json:"notes_private" binding:"omitempty,max=1000"`
	NotesPublic  *string `json:"notes_public" binding:"omitempty,max=1000"`
}

// UpdateAttendanceRequest is the payload for updating a record by primary key.
type UpdateAttendanceRequest struct {
	Attended     bool    `json:"attended"`
	NotesPrivate *string `json:"notes_private" binding:"omitempty,max=1000"`
	NotesPublic  *string `json:"notes_public" binding:"omitempty,max=1000"`
}

// SheetEntry is one row of a session's merged attendance sheet: every known
// student appears exactly once, with a nil AttendanceID and attended=false
// where no row has been persisted yet.
type SheetEntry struct {
	StudentID    int     `json:"student_id"`
	Name         string  `json:"name"`
	Surname      string  `json:"surname"`
	AttendanceID *int    `json:"attendance_id"`
	Attended     bool    `json:"attended"`
	NotesPrivate *string `json:"notes_private"`
	NotesPublic  *string `json:"notes_public"`
}

// SheetRecord is one row of a bulk sheet save.
type SheetRecord struct {
	StudentID    int     `json:"student_id" binding:"required"`
	Attended     bool    `json:"attended"`
	NotesPrivate *string `json:"notes_private" binding:"omitempty,max=1000"`
	NotesPublic  *string `json:"notes_public" binding:"omitempty,max=1000"`
}

// SaveSheetRequest is the payload for the atomic per-session sheet save.
type SaveSheetRequest struct {
	Records []SheetRecord `json:"records" binding:"required,min=1,dive"`
}
