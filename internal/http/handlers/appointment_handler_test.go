package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/http/middleware"
	"github.com/pawpoint/go-vet-backend/internal/repo"
	"github.com/pawpoint/go-vet-backend/internal/services"
)

type stubApptSvc struct {
	book     func(context.Context, services.BookingInput) (*domain.Appointment, bool, error)
	get      func(context.Context, int) (*domain.Appointment, error)
	list     func(context.Context, repo.AppointmentFilter) ([]domain.Appointment, error)
	markDone func(context.Context, int) error
}

func (s stubApptSvc) Book(ctx context.Context, in services.BookingInput) (*domain.Appointment, bool, error) {
	if s.book != nil {
		return s.book(ctx, in)
	}
	did := in.DoctorID
	return &domain.Appointment{ID: 1, PetID: in.PetID, HospitalID: in.HospitalID, DoctorID: &did, Date: in.Date}, false, nil
}

func (s stubApptSvc) Get(ctx context.Context, id int) (*domain.Appointment, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Appointment{ID: id}, nil
}

func (s stubApptSvc) List(ctx context.Context, f repo.AppointmentFilter) ([]domain.Appointment, error) {
	if s.list != nil {
		return s.list(ctx, f)
	}
	return nil, nil
}

func (s stubApptSvc) MarkDone(ctx context.Context, id int) error {
	if s.markDone != nil {
		return s.markDone(ctx, id)
	}
	return nil
}

func newApptRouter(svc AppointmentService) *gin.Engine {
	h := New(stubVerSvc{}, stubUserSvc{}, nil, svc, nil)
	r := gin.New()
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))
	r.POST("/appointments", h.BookAppointment)
	r.GET("/appointments", h.ListAppointments)
	r.GET("/appointments/:id", h.GetAppointment)
	r.PUT("/appointments/:id/done", h.CompleteAppointment)
	return r
}

func TestBookAppointment_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if w := postJSON(newApptRouter(stubApptSvc{}), "/appointments", "{bad"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad json -> %d", w.Code)
	}

	body := `{"petId":1,"hospitalId":2,"doctorId":3,"appointmentDate":"2026-09-15T10:30:00Z"}`
	cases := []struct {
		err    error
		status int
	}{
		{services.ErrPetNotFound, http.StatusNotFound},
		{services.ErrHospitalNotFound, http.StatusNotFound},
		{services.ErrDoctorNotFound, http.StatusNotFound},
		{services.ErrDoctorNotInHospital, http.StatusBadRequest},
	}
	for _, tc := range cases {
		r := newApptRouter(stubApptSvc{book: func(context.Context, services.BookingInput) (*domain.Appointment, bool, error) {
			return nil, false, tc.err
		}})
		if w := postJSON(r, "/appointments", body); w.Code != tc.status {
			t.Fatalf("%v -> %d, want %d", tc.err, w.Code, tc.status)
		}
	}
}

func TestBookAppointment_KeyPassthroughAndReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got services.BookingInput
	replay := false
	r := newApptRouter(stubApptSvc{book: func(_ context.Context, in services.BookingInput) (*domain.Appointment, bool, error) {
		got = in
		did := in.DoctorID
		return &domain.Appointment{ID: 9, PetID: in.PetID, HospitalID: in.HospitalID, DoctorID: &did, Date: in.Date}, replay, nil
	}})

	body := `{"petId":1,"hospitalId":2,"doctorId":3,"appointmentDate":"2026-09-15T13:30:00+03:00"}`
	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderIdempotencyKey, "retry-abc")
		req.Header.Set("X-User-ID", "client-1")
		r.ServeHTTP(w, req)
		return w
	}

	w := do()
	if w.Code != http.StatusOK {
		t.Fatalf("book -> %d body=%s", w.Code, w.Body.String())
	}
	if got.IdempotencyKey != "retry-abc" || got.UserKey != "client-1" {
		t.Fatalf("key not forwarded: %+v", got)
	}
	// Dates normalize to UTC before the service sees them.
	want := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	if !got.Date.Equal(want) || got.Date.Location() != time.UTC {
		t.Fatalf("date = %v", got.Date)
	}

	var resp BookAppointmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Replayed || resp.Appointment == nil || resp.Appointment.ID != 9 {
		t.Fatalf("fresh booking: %+v", resp)
	}

	// Replayed booking is flagged in the envelope
	replay = true
	w = do()
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !resp.Replayed || resp.Message == "appointment booked successfully" {
		t.Fatalf("replay envelope: %+v", resp)
	}
}

func TestBookAppointment_RejectsMalformedKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newApptRouter(stubApptSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewBufferString(`{}`))
	req.Header.Set(middleware.HeaderIdempotencyKey, "bad key with spaces")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed key -> %d", w.Code)
	}
}

func TestListAppointments_Filters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got repo.AppointmentFilter
	r := newApptRouter(stubApptSvc{list: func(_ context.Context, f repo.AppointmentFilter) ([]domain.Appointment, error) {
		got = f
		return []domain.Appointment{{ID: 1}}, nil
	}})
	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/appointments?petId=1&userId=2&hospitalId=3&from=2026-09-01T00:00:00Z&to=2026-10-01T00:00:00Z")
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
	}
	if got.PetID != 1 || got.UserID != 2 || got.HospitalID != 3 {
		t.Fatalf("filter ids: %+v", got)
	}
	if !got.From.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) || !got.To.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("filter window: %+v", got)
	}

	if w := get("/appointments?from=yesterday"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad from -> %d", w.Code)
	}
	if w := get("/appointments?to=2026-13-99"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad to -> %d", w.Code)
	}
}

func TestGetAndCompleteAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newApptRouter(stubApptSvc{
		get: func(_ context.Context, id int) (*domain.Appointment, error) {
			if id != 7 {
				return nil, services.ErrAppointmentNotFound
			}
			return &domain.Appointment{ID: 7}, nil
		},
		markDone: func(_ context.Context, id int) error {
			if id != 7 {
				return services.ErrAppointmentNotFound
			}
			return nil
		},
	})
	do := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	if w := do(http.MethodGet, "/appointments/7"); w.Code != http.StatusOK {
		t.Fatalf("get -> %d", w.Code)
	}
	if w := do(http.MethodGet, "/appointments/8"); w.Code != http.StatusNotFound {
		t.Fatalf("missing -> %d", w.Code)
	}
	if w := do(http.MethodGet, "/appointments/abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}

	if w := do(http.MethodPut, "/appointments/7/done"); w.Code != http.StatusOK {
		t.Fatalf("done -> %d", w.Code)
	}
	if w := do(http.MethodPut, "/appointments/8/done"); w.Code != http.StatusNotFound {
		t.Fatalf("done missing -> %d", w.Code)
	}
}
