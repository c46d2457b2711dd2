// Auth HTTP handlers.
//
// This file exposes the identity endpoints:
//   - POST   /auth/send-otp           (issue a verification code)
//   - POST   /auth/verify-otp         (validate a submitted code)
//   - POST   /auth/register           (create a user)
//   - POST   /auth/login              (phone + password)
//   - GET    /auth/user/{id}          (lookup by id)
//   - GET    /auth/user/phone/{phone} (lookup by phone)
//   - GET    /auth/users              (admin listing, ETag support)
//   - DELETE /auth/user/{id}          (admin delete, guarded by pets)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses. User payloads are
// always sanitized: the password hash never appears in a response.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/otp"
	"github.com/pawpoint/go-vet-backend/internal/repo"
	"github.com/pawpoint/go-vet-backend/internal/services"
	"github.com/pawpoint/go-vet-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// VerificationService issues and validates one-time email codes.
//
// Implementations should be safe for concurrent use.
type VerificationService interface {
	// Issue generates a code for email and delivers it.
	Issue(email string) error
	// Validate consumes a submitted code for email.
	Validate(email, code string) error
}

// UserService defines user directory operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type UserService interface {
	// Register creates a user enforcing phone/email uniqueness.
	Register(ctx context.Context, in services.RegisterInput) (*domain.User, error)
	// Login authenticates a phone/password pair.
	Login(ctx context.Context, phone, password string) (*domain.User, error)
	// GetByID returns a user by primary key.
	GetByID(ctx context.Context, id int) (*domain.User, error)
	// GetByPhone returns a user by phone number.
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]domain.User, error)
	// Delete removes a user unless pets depend on it.
	Delete(ctx context.Context, id int) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for identity, pets, appointments,
// and the hospital directory. It depends on abstract service interfaces
// to keep transport concerns separate from business logic.
type Handlers struct {
	verSvc  VerificationService
	userSvc UserService
	petSvc  PetService
	apptSvc AppointmentService
	dirSvc  DirectoryService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(verSvc VerificationService, userSvc UserService, petSvc PetService, apptSvc AppointmentService, dirSvc DirectoryService) *Handlers {
	return &Handlers{verSvc: verSvc, userSvc: userSvc, petSvc: petSvc, apptSvc: apptSvc, dirSvc: dirSvc}
}

// phoneRE matches the 10-digit phone format required for registration.
var phoneRE = regexp.MustCompile(`^[0-9]{10}$`)

//
// DTOs
//

// SendOTPRequest is the JSON payload for requesting a verification code.
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"owner@example.com"`
}

// VerifyOTPRequest is the JSON payload for validating a verification code.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"owner@example.com"`
	OTP   string `json:"otp"   binding:"required" example:"123456"`
}

// VerifyOTPResponse confirms a successful email verification.
type VerifyOTPResponse struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

// RegisterRequest is the JSON payload for creating a user.
type RegisterRequest struct {
	UserName string `json:"userName" binding:"required,max=50" example:"Ayşe Yılmaz"`
	Phone    string `json:"phone"    binding:"required" example:"5551234567"`
	Email    string `json:"email"    binding:"required,email,max=100" example:"owner@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"s3cret!"`
	CityID   int    `json:"cityId"   binding:"required" example:"34"`
	Address  string `json:"address"  binding:"max=1000" example:"Kadıköy, İstanbul"`
}

// RegisterResponse echoes the created identity without credentials.
type RegisterResponse struct {
	Message  string `json:"message"`
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// LoginRequest is the JSON payload for logging in.
type LoginRequest struct {
	Phone    string `json:"phone"    binding:"required" example:"5551234567"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// UserResponse is the sanitized user view returned by lookups and login.
// It never carries the password hash.
type UserResponse struct {
	UserID    int       `json:"userId"`
	UserName  string    `json:"userName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CityID    int       `json:"cityId"`
	CreatedAt time.Time `json:"createdAt"`
}

// toUserResponse strips credential fields from a stored user record.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		UserName:  u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		CityID:    u.CityID,
		CreatedAt: u.CreatedAt,
	}
}

//
// Handlers
//

// SendOTP godoc
// @ID          sendOTP
// @Summary     Send a verification code
// @Description Issues a 6-digit one-time code for the email and delivers it. Re-issuing replaces any pending code.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SendOTPRequest  true  "Recipient email"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Delivery failure"
// @Router      /auth/send-otp [post]
func (h *Handlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "a valid email address is required")
		return
	}

	if err := h.verSvc.Issue(strings.TrimSpace(req.Email)); err != nil {
		if errors.Is(err, services.ErrDeliveryFailed) {
			fail(c, http.StatusInternalServerError, ErrCodeDeliveryFailed, "verification code could not be sent")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
		return
	}
	message(c, "verification code sent, please check your inbox")
}

// VerifyOTP godoc
// @ID          verifyOTP
// @Summary     Verify a one-time code
// @Description Validates the submitted code. Codes are single-use and expire after the configured TTL.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.VerifyOTPRequest  true  "Email and code"
// @Success     200  {object}  handlers.VerifyOTPResponse
// @Failure     400  {object}  handlers.ErrorResponse "Missing, expired, or wrong code"
// @Router      /auth/verify-otp [post]
func (h *Handlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and otp are required")
		return
	}

	switch err := h.verSvc.Validate(strings.TrimSpace(req.Email), strings.TrimSpace(req.OTP)); {
	case err == nil:
		ok(c, http.StatusOK, VerifyOTPResponse{Message: "email verified successfully", Verified: true})
	case errors.Is(err, otp.ErrCodeNotFound):
		fail(c, http.StatusBadRequest, ErrCodeInvalidCode, "no pending code, please request a new one")
	case errors.Is(err, otp.ErrCodeExpired):
		fail(c, http.StatusBadRequest, ErrCodeInvalidCode, "code expired, please request a new one")
	case errors.Is(err, otp.ErrCodeMismatch):
		fail(c, http.StatusBadRequest, ErrCodeInvalidCode, "code is incorrect")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
	}
}

// Register godoc
// @ID          registerUser
// @Summary     Register a new user
// @Description Creates a user after phone and email uniqueness checks. The password is stored only as a salted digest.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
// @Success     200  {object}  handlers.RegisterResponse
// @Failure     400  {object}  handlers.ErrorResponse "Validation or duplicate phone/email"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid registration payload")
		return
	}
	if !phoneRE.MatchString(req.Phone) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "phone must be exactly 10 digits")
		return
	}

	u, err := h.userSvc.Register(c.Request.Context(), services.RegisterInput{
		Name:     strings.TrimSpace(req.UserName),
		Phone:    req.Phone,
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		CityID:   req.CityID,
		Address:  strings.TrimSpace(req.Address),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicatePhone):
			fail(c, http.StatusBadRequest, ErrCodeConflict, "a user with this phone number already exists")
		case errors.Is(err, services.ErrDuplicateEmail):
			fail(c, http.StatusBadRequest, ErrCodeConflict, "a user with this email address already exists")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "user could not be registered")
		}
		return
	}

	ok(c, http.StatusOK, RegisterResponse{
		Message:  "user registered successfully",
		UserID:   u.ID,
		UserName: u.Name,
		Phone:    u.Phone,
		Email:    u.Email,
	})
}

// Login godoc
// @ID          loginUser
// @Summary     Log in with phone and password
// @Description Authenticates and returns the sanitized profile. Wrong phone and wrong password yield the same error.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
// @Success     200  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse "Invalid credentials"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "phone and password are required")
		return
	}

	u, err := h.userSvc.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusBadRequest, ErrCodeInvalidCredentials, "phone number or password is incorrect")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
		return
	}
	ok(c, http.StatusOK, toUserResponse(u))
}

// GetUser godoc
// @ID          getUser
// @Summary     Get a user by id
// @Tags        Auth
// @Produce     json
// @Param       id  path  int  true  "User ID"
// @Success     200  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad id"
// @Failure     404  {object}  handlers.ErrorResponse "User not found"
// @Router      /auth/user/{id} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a positive integer")
		return
	}

	u, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
		return
	}
	ok(c, http.StatusOK, toUserResponse(u))
}

// GetUserByPhone godoc
// @ID          getUserByPhone
// @Summary     Get a user by phone number
// @Tags        Auth
// @Produce     json
// @Param       phone  path  string  true  "Phone (10 digits)"
// @Success     200  {object}  handlers.UserResponse
// @Failure     404  {object}  handlers.ErrorResponse "User not found"
// @Router      /auth/user/phone/{phone} [get]
func (h *Handlers) GetUserByPhone(c *gin.Context) {
	u, err := h.userSvc.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
		return
	}
	ok(c, http.StatusOK, toUserResponse(u))
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List all users (admin)
// @Description Returns every user ordered by creation time descending. Supports weak ETag via If-None-Match.
// @Tags        Auth
// @Produce     json
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Success     200  {array}   handlers.UserResponse
// @Header      200  {string}  ETag "Weak ETag for current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /auth/users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, okCast := h.userSvc.(*services.UserService); okCast {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.UsersStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"users:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	users, err := h.userSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "users could not be listed")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	ok(c, http.StatusOK, out)
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete a user (admin)
// @Description Removes a user. Fails while the user still owns pets.
// @Tags        Auth
// @Produce     json
// @Param       id  path  int  true  "User ID"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     400  {object}  handlers.ErrorResponse "User still owns pets"
// @Failure     404  {object}  handlers.ErrorResponse "User not found"
// @Router      /auth/user/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a positive integer")
		return
	}

	switch err := h.userSvc.Delete(c.Request.Context(), id); {
	case err == nil:
		message(c, "user deleted successfully")
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
	case errors.Is(err, services.ErrUserHasPets):
		fail(c, http.StatusBadRequest, ErrCodeHasDependents, "user cannot be deleted while they own pets, delete the pets first")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred")
	}
}
