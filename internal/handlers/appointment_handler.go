package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/birdchime/appointment-api/internal/domain/appointment"
	"github.com/birdchime/appointment-api/internal/dto"
	"github.com/birdchime/appointment-api/internal/httperr"
	"github.com/birdchime/appointment-api/internal/httpresp"
	ucAppointment "github.com/birdchime/appointment-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	deleteUC       *ucAppointment.DeleteAppointment
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		deleteUC:       deleteUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	rangeStartStr := c.Query("rangeStart")
	rangeEndStr := c.Query("rangeEnd")

	if rangeStartStr == "" || rangeEndStr == "" {
		httperr.BadRequest(c, "missing_range", "Please provide rangeStart and rangeEnd as ISO strings")
		return
	}

	rangeStart, err := time.Parse(time.RFC3339, rangeStartStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "rangeStart must be a valid ISO timestamp")
		return
	}
	rangeEnd, err := time.Parse(time.RFC3339, rangeEndStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "rangeEnd must be a valid ISO timestamp")
		return
	}
	if !rangeStart.Before(rangeEnd) {
		httperr.BadRequest(c, "invalid_range", "rangeStart must be before rangeEnd")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), rangeStart, rangeEnd)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_slots", "Could not compute availability.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in ucAppointment.CreateAppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body must be valid JSON.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(*ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be an integer.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, ucAppointment.CodeNotFound) {
			httperr.NotFound(c, ucAppointment.CodeNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete appointment.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment cancelled."})
}

// ======================================================
// ERROR MAPPING
// ======================================================

// Conflicts are a distinct status so clients can re-poll availability.
func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if code == domain.CodeTimeConflict {
			httperr.Conflict(c, code, err.Error())
			return
		}
		httperr.BadRequest(c, code, err.Error())
		return
	}

	httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
}
