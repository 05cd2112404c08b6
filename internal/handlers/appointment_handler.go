package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/iswantosan/appointment/internal/domain/appointment"
	"github.com/iswantosan/appointment/internal/dto"
	"github.com/iswantosan/appointment/internal/httperr"
	"github.com/iswantosan/appointment/internal/httpresp"
	"github.com/iswantosan/appointment/internal/middleware"
	ucAppointment "github.com/iswantosan/appointment/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	getUC      *ucAppointment.GetAppointment
	listUC     *ucAppointment.ListAppointments
	deleteUC   *ucAppointment.DeleteAppointment
	conflictUC *ucAppointment.CheckConflict
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
	deleteUC *ucAppointment.DeleteAppointment,
	conflictUC *ucAppointment.CheckConflict,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		getUC:      getUC,
		listUC:     listUC,
		deleteUC:   deleteUC,
		conflictUC: conflictUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Notes must be present on the wire but may be empty, hence the pointer.
// Title emptiness is a business rule and is rejected by the use case with
// per-field detail, so it carries no binding tag.
type AppointmentRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date" binding:"required"`
	Notes *string   `json:"notes" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ownerID, ucAppointment.CreateAppointmentInput{
		Title: req.Title,
		Date:  req.Date,
		Notes: *req.Notes,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.Created(c, fmt.Sprintf("/api/appointment/%d", ap.ID), dto.FromAppointment(ap))
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	err := h.updateUC.Execute(c.Request.Context(), ownerID, id, ucAppointment.UpdateAppointmentInput{
		Title: req.Title,
		Date:  req.Date,
		Notes: *req.Notes,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	filter, ok := listFilterFromQuery(c)
	if !ok {
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointments(aps))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		respondAppointmentError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ======================================================
// CONFLICT CHECK
// ======================================================

func (h *AppointmentHandler) CheckConflict(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequestField(c, "missing_date", "date", "Query parameter date is required.")
		return
	}

	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		httperr.BadRequestField(c, "invalid_date", "date", "Date must be RFC 3339.")
		return
	}

	result, err := h.conflictUC.Execute(c.Request.Context(), ownerID, date)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.ConflictDTO{
		Conflict: result.Conflict,
		Matches:  dto.FromAppointments(result.Matches),
	})
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func listFilterFromQuery(c *gin.Context) (domain.ListFilter, bool) {
	var filter domain.ListFilter

	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.BadRequestField(c, "invalid_query", "from", "from must be RFC 3339.")
			return filter, false
		}
		filter.From = &from
	}

	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.BadRequestField(c, "invalid_query", "to", "to must be RFC 3339.")
			return filter, false
		}
		filter.To = &to
	}

	if v := c.Query("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			httperr.BadRequestField(c, "invalid_query", "skip", "skip must be a non-negative integer.")
			return filter, false
		}
		filter.Skip = &skip
	}

	if v := c.Query("take"); v != "" {
		take, err := strconv.Atoi(v)
		if err != nil || take < 0 {
			httperr.BadRequestField(c, "invalid_query", "take", "take must be a non-negative integer.")
			return filter, false
		}
		filter.Take = &take
	}

	return filter, true
}

func respondAppointmentError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Code {
	case domain.CodeTitleRequired:
		httperr.BadRequestField(c, be.Code, be.Field, "Title is required.")
	case domain.CodeInvalidDate:
		httperr.BadRequestField(c, be.Code, be.Field, "Date must not be in the past.")
	case domain.CodeDateConflict:
		httperr.BadRequestField(c, be.Code, be.Field, "Another appointment already exists at this date.")
	case domain.CodeNotFound:
		httperr.NotFound(c, be.Code, "Appointment not found.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
