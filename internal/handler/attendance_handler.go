package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xezo360hye/DIP392-1337/internal/model"
	"github.com/xezo360hye/DIP392-1337/internal/repository"
	"github.com/xezo360hye/DIP392-1337/internal/response"
	"github.com/xezo360hye/DIP392-1337/internal/service"
	"github.com/xezo360hye/DIP392-1337/internal/validator"
)

// AttendanceHandler handles attendance records.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ListAttendance godoc
// GET /api/attendance?session_id=
// Lists attendance records with student and session embedded; ?session_id=
// restricts to one session.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	sessionID := 0
	if raw := c.Query("session_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		sessionID = id
	}

	records, err := h.attendanceService.List(c.Request.Context(), sessionID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if records == nil {
		records = []model.Attendance{}
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": records})
}

// GetAttendance godoc
// GET /api/attendance/:id
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	record, err := h.attendanceService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": record})
}

// UpsertAttendance godoc
// POST /api/attendance
// The keyed write path: creates a record for (student_id, session_id) or
// updates the existing one in place. Re-saving a sheet any number of times
// never produces duplicate rows.
func (h *AttendanceHandler) UpsertAttendance(c *gin.Context) {
	var req model.UpsertAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record := &model.Attendance{
		StudentID:    req.StudentID,
		SessionID:    req.SessionID,
		Attended:     req.Attended,
		NotesPrivate: req.NotesPrivate,
		NotesPublic:  req.NotesPublic,
	}

	if err := h.attendanceService.Upsert(c.Request.Context(), record); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Unknown student or session
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": record})
}

// UpdateAttendance godoc
// PUT /api/attendance/:id
// Direct update by primary key, used when the client already holds the id.
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record := &model.Attendance{
		ID:           id,
		Attended:     req.Attended,
		NotesPrivate: req.NotesPrivate,
		NotesPublic:  req.NotesPublic,
	}

	if err := h.attendanceService.Update(c.Request.Context(), record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, err := h.attendanceService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": updated})
}

// DeleteAttendance godoc
// DELETE /api/attendance/:id
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.attendanceService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
