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

// SessionHandler handles session management plus the per-session attendance
// sheet (read and atomic save).
type SessionHandler struct {
	sessionService    *service.SessionService
	attendanceService *service.AttendanceService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService, attendanceService *service.AttendanceService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, attendanceService: attendanceService}
}

// ListSessions godoc
// GET /api/sessions?month=YYYY-MM
// Lists sessions with their course embedded, newest first; ?month= restricts
// to one calendar month.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if sessions == nil {
		sessions = []model.Session{}
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

// ListMonths godoc
// GET /api/sessions/months
// Returns the distinct YYYY-MM keys that have sessions, newest first.
func (h *SessionHandler) ListMonths(c *gin.Context) {
	months, err := h.sessionService.Months(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if months == nil {
		months = []string{}
	}

	response.Success(c, http.StatusOK, gin.H{"months": months})
}

// GetSession godoc
// GET /api/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": session})
}

// CreateSession godoc
// POST /api/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req model.CreateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session := &model.Session{
		CourseID: req.CourseID,
		DateTime: req.DateTime,
		Topic:    req.Topic,
	}

	if err := h.sessionService.Create(c.Request.Context(), session); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Referenced course does not exist
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	// Fetch back with the course embedded.
	created, err := h.sessionService.GetByID(c.Request.Context(), session.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": created})
}

// UpdateSession godoc
// PUT /api/sessions/:id
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session := &model.Session{
		ID:       id,
		CourseID: req.CourseID,
		DateTime: req.DateTime,
		Topic:    req.Topic,
	}

	if err := h.sessionService.Update(c.Request.Context(), session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": updated})
}

// DeleteSession godoc
// DELETE /api/sessions/:id
// Deletes a session; its attendance rows cascade.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// GetSheet godoc
// GET /api/sessions/:id/attendance
// Returns the merged sheet: one entry per known student, attended=false
// where no record is stored yet.
func (h *SessionHandler) GetSheet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	entries, err := h.attendanceService.Sheet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sheet": entries})
}

// SaveSheet godoc
// POST /api/sessions/:id/attendance
// Atomically upserts the whole sheet for a session: all rows are applied in
// one transaction, so a mid-save failure writes nothing.
func (h *SessionHandler) SaveSheet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SaveSheetRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	saved, err := h.attendanceService.SaveSheet(c.Request.Context(), id, req.Records)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Unknown student in the sheet
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": saved})
}
