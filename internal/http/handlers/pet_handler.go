// Pet HTTP handlers.
//
// Endpoints:
//   - POST   /pets            (create a pet for an owner)
//   - GET    /pets/{id}       (lookup by id)
//   - GET    /pets/user/{id}  (list an owner's pets)
//   - DELETE /pets/{id}       (delete, guarded by appointments)
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

// PetService defines the pet operations consumed by HTTP handlers.
type PetService interface {
	// Create inserts a pet after verifying the owner exists.
	Create(ctx context.Context, in services.PetInput) (*domain.Pet, error)
	// Get returns a pet by primary key.
	Get(ctx context.Context, id int) (*domain.Pet, error)
	// ListByUser returns the pets owned by a user.
	ListByUser(ctx context.Context, userID int) ([]domain.Pet, error)
	// Delete removes a pet unless appointments depend on it.
	Delete(ctx context.Context, id int) error
}

// CreatePetRequest is the JSON payload for registering a pet.
type CreatePetRequest struct {
	PetName string  `json:"petName" binding:"required,max=50" example:"Boncuk"`
	PetType string  `json:"petType" binding:"required,max=50" example:"cat"`
	Age     *int    `json:"age,omitempty"    binding:"omitempty,gte=0,lte=100" example:"3"`
	Gender  *string `json:"gender,omitempty" binding:"omitempty,max=10" example:"female"`
	Breed   *string `json:"breed,omitempty"  binding:"omitempty,max=100" example:"tekir"`
	Notes   *string `json:"notes,omitempty"  binding:"omitempty,max=500" example:"allergic to chicken"`
	UserID  int     `json:"userId" binding:"required" example:"1"`
}

// CreatePet godoc
// @ID          createPet
// @Summary     Register a pet
// @Description Creates a pet owned by an existing user.
// @Tags        Pets
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreatePetRequest  true  "Pet payload"
// @Success     200  {object}  domain.Pet
// @Failure     400  {object}  handlers.ErrorResponse "Validation error"
// @Failure     404  {object}  handlers.ErrorResponse "Owner not found"
// @Router      /pets [post]
func (h *Handlers) CreatePet(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid pet payload")
		return
	}

	p, err := h.petSvc.Create(c.Request.Context(), services.PetInput{
		Name:   strings.TrimSpace(req.PetName),
		Type:   strings.TrimSpace(req.PetType),
		Age:    req.Age,
		Gender: req.Gender,
		Breed:  req.Breed,
		Notes:  req.Notes,
		UserID: req.UserID,
	})
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "owner not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "pet could not be created")
		return
	}
	ok(c, http.StatusOK, p)
}

// GetPet godoc
// @ID          getPet
// @Summary     Get a pet by id
// @Tags        Pets
// @Produce     json
// @Param       id  path  int  true  "Pet ID"
// @Success     200  {object}  domain.Pet
// @Failure     404  {object}  handlers.ErrorResponse "Pet not found"
// @Router      /pets/{id} [get]
func (h *Handlers) GetPet(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pet id must be a positive integer")
		return
	}

	p, err := h.petSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
		return
	}
	ok(c, http.StatusOK, p)
}

// ListUserPets godoc
// @ID          listUserPets
// @Summary     List a user's pets
// @Tags        Pets
// @Produce     json
// @Param       id  path  int  true  "User ID"
// @Success     200  {array}   domain.Pet
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /pets/user/{id} [get]
func (h *Handlers) ListUserPets(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a positive integer")
		return
	}

	pets, err := h.petSvc.ListByUser(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "pets could not be listed")
		return
	}
	ok(c, http.StatusOK, pets)
}

// DeletePet godoc
// @ID          deletePet
// @Summary     Delete a pet
// @Description Removes a pet. Fails while appointments still reference it.
// @Tags        Pets
// @Produce     json
// @Param       id  path  int  true  "Pet ID"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     400  {object}  handlers.ErrorResponse "Pet still has appointments"
// @Failure     404  {object}  handlers.ErrorResponse "Pet not found"
// @Router      /pets/{id} [delete]
func (h *Handlers) DeletePet(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pet id must be a positive integer")
		return
	}

	switch err := h.petSvc.Delete(c.Request.Context(), id); {
	case err == nil:
		message(c, "pet deleted successfully")
	case errors.Is(err, services.ErrPetNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
	case errors.Is(err, services.ErrPetHasAppointments):
		fail(c, http.StatusBadRequest, ErrCodeHasDependents, "pet cannot be deleted while appointments reference it")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
	}
}
