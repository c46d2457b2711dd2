// Directory HTTP handlers: cities, hospitals, and doctors.
//
// Endpoints:
//   - GET    /cities                   (all provinces, plate-code order)
//   - GET    /cities/{id}/hospitals    (hospitals in a city, district filter)
//   - GET    /hospitals/{id}/doctors   (doctors at a hospital)
//   - DELETE /hospitals/{id}           (admin, cascades to doctors)
//   - POST   /doctors                  (admin)
//   - DELETE /doctors/{id}             (admin)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/services"
	"github.com/pawpoint/go-vet-backend/internal/utils"
)

// DirectoryService defines the reference-data operations consumed by HTTP
// handlers.
type DirectoryService interface {
	// Cities returns all cities.
	Cities(ctx context.Context) ([]domain.City, error)
	// HospitalsByCity returns the hospitals in a city, optionally
	// narrowed to a district.
	HospitalsByCity(ctx context.Context, cityID int, district string) ([]domain.Hospital, error)
	// DoctorsByHospital returns the doctors employed by a hospital.
	DoctorsByHospital(ctx context.Context, hospitalID int) ([]domain.Doctor, error)
	// CreateDoctor hires a doctor into a hospital.
	CreateDoctor(ctx context.Context, in services.DoctorInput) (*domain.Doctor, error)
	// DeleteDoctor removes a doctor.
	DeleteDoctor(ctx context.Context, id int) error
	// DeleteHospital removes a hospital and its doctors.
	DeleteHospital(ctx context.Context, id int) error
}

// CreateDoctorRequest is the JSON payload for hiring a doctor.
type CreateDoctorRequest struct {
	DoctorName string `json:"doctorName" binding:"required,max=100" example:"Dr. Mehmet Kaya"`
	Phone      string `json:"phone"      binding:"required,max=20" example:"5559876543"`
	HospitalID int    `json:"hospitalId" binding:"required" example:"2"`
}

// ListCities godoc
// @ID          listCities
// @Summary     List all cities
// @Description Returns the seeded provinces ordered by plate code.
// @Tags        Directory
// @Produce     json
// @Success     200  {array}   domain.City
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /cities [get]
func (h *Handlers) ListCities(c *gin.Context) {
	cities, err := h.dirSvc.Cities(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "cities could not be listed")
		return
	}
	ok(c, http.StatusOK, cities)
}

// ListCityHospitals godoc
// @ID          listCityHospitals
// @Summary     List hospitals in a city
// @Description Returns the hospitals located in the city, optionally filtered by district name (case-insensitive).
// @Tags        Directory
// @Produce     json
// @Param       id        path   int     true   "City ID (plate code)"
// @Param       district  query  string  false  "District name filter"
// @Success     200  {array}   domain.Hospital
// @Failure     404  {object}  handlers.ErrorResponse "City not found"
// @Router      /cities/{id}/hospitals [get]
func (h *Handlers) ListCityHospitals(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "city id must be a positive integer")
		return
	}

	hospitals, err := h.dirSvc.HospitalsByCity(c.Request.Context(), id, c.Query("district"))
	if err != nil {
		if errors.Is(err, services.ErrCityNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "city not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "hospitals could not be listed")
		return
	}
	ok(c, http.StatusOK, hospitals)
}

// ListHospitalDoctors godoc
// @ID          listHospitalDoctors
// @Summary     List doctors at a hospital
// @Tags        Directory
// @Produce     json
// @Param       id  path  int  true  "Hospital ID"
// @Success     200  {array}   domain.Doctor
// @Failure     404  {object}  handlers.ErrorResponse "Hospital not found"
// @Router      /hospitals/{id}/doctors [get]
func (h *Handlers) ListHospitalDoctors(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "hospital id must be a positive integer")
		return
	}

	doctors, err := h.dirSvc.DoctorsByHospital(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrHospitalNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "hospital not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "doctors could not be listed")
		return
	}
	ok(c, http.StatusOK, doctors)
}

// CreateDoctor godoc
// @ID          createDoctor
// @Summary     Hire a doctor (admin)
// @Tags        Directory
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateDoctorRequest  true  "Doctor payload"
// @Success     200  {object}  domain.Doctor
// @Failure     400  {object}  handlers.ErrorResponse "Validation error"
// @Failure     404  {object}  handlers.ErrorResponse "Hospital not found"
// @Router      /doctors [post]
func (h *Handlers) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid doctor payload")
		return
	}

	d, err := h.dirSvc.CreateDoctor(c.Request.Context(), services.DoctorInput{
		Name:       strings.TrimSpace(req.DoctorName),
		Phone:      strings.TrimSpace(req.Phone),
		HospitalID: req.HospitalID,
	})
	if err != nil {
		if errors.Is(err, services.ErrHospitalNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "hospital not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "doctor could not be created")
		return
	}
	ok(c, http.StatusOK, d)
}

// DeleteDoctor godoc
// @ID          deleteDoctor
// @Summary     Remove a doctor (admin)
// @Description Removes a doctor. Appointments that referenced them keep their history with a null doctor.
// @Tags        Directory
// @Produce     json
// @Param       id  path  int  true  "Doctor ID"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  handlers.ErrorResponse "Doctor not found"
// @Router      /doctors/{id} [delete]
func (h *Handlers) DeleteDoctor(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "doctor id must be a positive integer")
		return
	}

	switch err := h.dirSvc.DeleteDoctor(c.Request.Context(), id); {
	case err == nil:
		message(c, "doctor deleted successfully")
	case errors.Is(err, services.ErrDoctorNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "doctor not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
	}
}

// DeleteHospital godoc
// @ID          deleteHospital
// @Summary     Remove a hospital (admin)
// @Description Removes a hospital and, through the schema cascade, its doctors. Booked appointments survive.
// @Tags        Directory
// @Produce     json
// @Param       id  path  int  true  "Hospital ID"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  handlers.ErrorResponse "Hospital not found"
// @Router      /hospitals/{id} [delete]
func (h *Handlers) DeleteHospital(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "hospital id must be a positive integer")
		return
	}

	switch err := h.dirSvc.DeleteHospital(c.Request.Context(), id); {
	case err == nil:
		message(c, "hospital deleted successfully")
	case errors.Is(err, services.ErrHospitalNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "hospital not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
	}
}
