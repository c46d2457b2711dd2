// Appointment HTTP handlers.
//
// Endpoints:
//   - POST /appointments            (book, idempotency-key aware)
//   - GET  /appointments            (filtered listing)
//   - GET  /appointments/{id}       (lookup by id)
//   - PUT  /appointments/{id}/done  (mark completed)
//
// Booking honors the Idempotency-Key header validated by the middleware:
// a retried request with the same key returns the originally created
// appointment instead of inserting a duplicate.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/http/middleware"
	"github.com/pawpoint/go-vet-backend/internal/repo"
	"github.com/pawpoint/go-vet-backend/internal/services"
	"github.com/pawpoint/go-vet-backend/internal/utils"
)

// AppointmentService defines the booking operations consumed by HTTP handlers.
type AppointmentService interface {
	// Book creates an appointment, replaying a prior booking when the
	// idempotency key matches.
	Book(ctx context.Context, in services.BookingInput) (appt *domain.Appointment, replayed bool, err error)
	// Get returns an appointment by primary key.
	Get(ctx context.Context, id int) (*domain.Appointment, error)
	// List returns appointments matching the filter, ordered by date.
	List(ctx context.Context, f repo.AppointmentFilter) ([]domain.Appointment, error)
	// MarkDone flips the completion flag.
	MarkDone(ctx context.Context, id int) error
}

// BookAppointmentRequest is the JSON payload for booking an appointment.
type BookAppointmentRequest struct {
	PetID      int       `json:"petId"           binding:"required" example:"1"`
	HospitalID int       `json:"hospitalId"      binding:"required" example:"2"`
	DoctorID   int       `json:"doctorId"        binding:"required" example:"3"`
	Date       time.Time `json:"appointmentDate" binding:"required" example:"2026-09-15T10:30:00Z"`
}

// BookAppointmentResponse wraps the booked appointment with a replay marker.
type BookAppointmentResponse struct {
	Message     string              `json:"message"`
	Replayed    bool                `json:"replayed"`
	Appointment *domain.Appointment `json:"appointment"`
}

// BookAppointment godoc
// @ID          bookAppointment
// @Summary     Book an appointment
// @Description Books a pet into a hospital with a doctor. Supply an Idempotency-Key header to make retries safe.
// @Tags        Appointments
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Client-generated key for safe retries"
// @Param       X-User-ID        header  string  false  "Caller identity scoping the idempotency key"
// @Param       body  body  handlers.BookAppointmentRequest  true  "Booking payload"
// @Success     200  {object}  handlers.BookAppointmentResponse
// @Failure     400  {object}  handlers.ErrorResponse "Validation error or doctor not at hospital"
// @Failure     404  {object}  handlers.ErrorResponse "Pet, hospital, or doctor not found"
// @Router      /appointments [post]
func (h *Handlers) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid booking payload")
		return
	}

	in := services.BookingInput{
		PetID:      req.PetID,
		HospitalID: req.HospitalID,
		DoctorID:   req.DoctorID,
		Date:       req.Date.UTC(),
	}
	if key, present := middleware.GetIdempotencyKey(c); present {
		in.IdempotencyKey = key
		in.UserKey = c.GetHeader("X-User-ID")
	}

	appt, replayed, err := h.apptSvc.Book(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
		case errors.Is(err, services.ErrHospitalNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "hospital not found")
		case errors.Is(err, services.ErrDoctorNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "doctor not found")
		case errors.Is(err, services.ErrDoctorNotInHospital):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "doctor does not work at the selected hospital")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "appointment could not be booked")
		}
		return
	}

	msg := "appointment booked successfully"
	if replayed {
		msg = "appointment already booked, returning the original"
	}
	ok(c, http.StatusOK, BookAppointmentResponse{Message: msg, Replayed: replayed, Appointment: appt})
}

// GetAppointment godoc
// @ID          getAppointment
// @Summary     Get an appointment by id
// @Tags        Appointments
// @Produce     json
// @Param       id  path  int  true  "Appointment ID"
// @Success     200  {object}  domain.Appointment
// @Failure     404  {object}  handlers.ErrorResponse "Appointment not found"
// @Router      /appointments/{id} [get]
func (h *Handlers) GetAppointment(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "appointment id must be a positive integer")
		return
	}

	a, err := h.apptSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
		return
	}
	ok(c, http.StatusOK, a)
}

// ListAppointments godoc
// @ID          listAppointments
// @Summary     List appointments
// @Description Lists appointments ordered by date. All filters are optional and combinable.
// @Tags        Appointments
// @Produce     json
// @Param       petId       query  int     false  "Filter by pet"
// @Param       userId      query  int     false  "Filter by owner"
// @Param       hospitalId  query  int     false  "Filter by hospital"
// @Param       from        query  string  false  "RFC3339 lower bound (inclusive)"
// @Param       to          query  string  false  "RFC3339 upper bound (exclusive)"
// @Success     200  {array}   domain.Appointment
// @Failure     400  {object}  handlers.ErrorResponse "Bad filter"
// @Router      /appointments [get]
func (h *Handlers) ListAppointments(c *gin.Context) {
	f := repo.AppointmentFilter{
		PetID:      utils.AtoiDefault(c.Query("petId"), 0),
		UserID:     utils.AtoiDefault(c.Query("userId"), 0),
		HospitalID: utils.AtoiDefault(c.Query("hospitalId"), 0),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "from must be an RFC3339 timestamp")
			return
		}
		f.From = t.UTC()
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "to must be an RFC3339 timestamp")
			return
		}
		f.To = t.UTC()
	}

	appts, err := h.apptSvc.List(c.Request.Context(), f)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "appointments could not be listed")
		return
	}
	ok(c, http.StatusOK, appts)
}

// CompleteAppointment godoc
// @ID          completeAppointment
// @Summary     Mark an appointment as done
// @Tags        Appointments
// @Produce     json
// @Param       id  path  int  true  "Appointment ID"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  handlers.ErrorResponse "Appointment not found"
// @Router      /appointments/{id}/done [put]
func (h *Handlers) CompleteAppointment(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "appointment id must be a positive integer")
		return
	}

	switch err := h.apptSvc.MarkDone(c.Request.Context(), id); {
	case err == nil:
		message(c, "appointment marked as done")
	case errors.Is(err, services.ErrAppointmentNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
	}
}
