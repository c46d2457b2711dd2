package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/services"
)

type stubDirSvc struct {
	cities            func(context.Context) ([]domain.City, error)
	hospitalsByCity   func(context.Context, int, string) ([]domain.Hospital, error)
	doctorsByHospital func(context.Context, int) ([]domain.Doctor, error)
	createDoctor      func(context.Context, services.DoctorInput) (*domain.Doctor, error)
	deleteDoctor      func(context.Context, int) error
	deleteHospital    func(context.Context, int) error
}

func (s stubDirSvc) Cities(ctx context.Context) ([]domain.City, error) {
	if s.cities != nil {
		return s.cities(ctx)
	}
	return nil, nil
}

func (s stubDirSvc) HospitalsByCity(ctx context.Context, cityID int, district string) ([]domain.Hospital, error) {
	if s.hospitalsByCity != nil {
		return s.hospitalsByCity(ctx, cityID, district)
	}
	return nil, nil
}

func (s stubDirSvc) DoctorsByHospital(ctx context.Context, hospitalID int) ([]domain.Doctor, error) {
	if s.doctorsByHospital != nil {
		return s.doctorsByHospital(ctx, hospitalID)
	}
	return nil, nil
}

func (s stubDirSvc) CreateDoctor(ctx context.Context, in services.DoctorInput) (*domain.Doctor, error) {
	if s.createDoctor != nil {
		return s.createDoctor(ctx, in)
	}
	return &domain.Doctor{ID: 1, Name: in.Name, HospitalID: in.HospitalID}, nil
}

func (s stubDirSvc) DeleteDoctor(ctx context.Context, id int) error {
	if s.deleteDoctor != nil {
		return s.deleteDoctor(ctx, id)
	}
	return nil
}

func (s stubDirSvc) DeleteHospital(ctx context.Context, id int) error {
	if s.deleteHospital != nil {
		return s.deleteHospital(ctx, id)
	}
	return nil
}

func newDirRouter(svc DirectoryService) *gin.Engine {
	h := New(stubVerSvc{}, stubUserSvc{}, nil, nil, svc)
	r := gin.New()
	r.GET("/cities", h.ListCities)
	r.GET("/cities/:id/hospitals", h.ListCityHospitals)
	r.GET("/hospitals/:id/doctors", h.ListHospitalDoctors)
	r.DELETE("/hospitals/:id", h.DeleteHospital)
	r.POST("/doctors", h.CreateDoctor)
	r.DELETE("/doctors/:id", h.DeleteDoctor)
	return r
}

func doReq(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestListCities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newDirRouter(stubDirSvc{cities: func(context.Context) ([]domain.City, error) {
		return []domain.City{{ID: 6, Name: "Ankara"}, {ID: 34, Name: "İstanbul"}}, nil
	}})
	w := doReq(r, http.MethodGet, "/cities")
	if w.Code != http.StatusOK {
		t.Fatalf("cities -> %d", w.Code)
	}
	var out []domain.City
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 2 || out[0].ID != 6 {
		t.Fatalf("body: %s err=%v", w.Body.String(), err)
	}

	r = newDirRouter(stubDirSvc{cities: func(context.Context) ([]domain.City, error) {
		return nil, errors.New("db down")
	}})
	if w := doReq(r, http.MethodGet, "/cities"); w.Code != http.StatusInternalServerError {
		t.Fatalf("failure -> %d", w.Code)
	}
}

func TestListCityHospitals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotCity int
	var gotDistrict string
	r := newDirRouter(stubDirSvc{hospitalsByCity: func(_ context.Context, cityID int, district string) ([]domain.Hospital, error) {
		gotCity, gotDistrict = cityID, district
		if cityID != 34 {
			return nil, services.ErrCityNotFound
		}
		return []domain.Hospital{{ID: 1, CityID: cityID}}, nil
	}})

	if w := doReq(r, http.MethodGet, "/cities/34/hospitals?district=kad%C4%B1k%C3%B6y"); w.Code != http.StatusOK {
		t.Fatalf("hospitals -> %d body=%s", w.Code, w.Body.String())
	}
	if gotCity != 34 || gotDistrict != "kadıköy" {
		t.Fatalf("args: city=%d district=%q", gotCity, gotDistrict)
	}
	if w := doReq(r, http.MethodGet, "/cities/99/hospitals"); w.Code != http.StatusNotFound {
		t.Fatalf("missing city -> %d", w.Code)
	}
	if w := doReq(r, http.MethodGet, "/cities/abc/hospitals"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}
}

func TestListHospitalDoctors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newDirRouter(stubDirSvc{doctorsByHospital: func(_ context.Context, id int) ([]domain.Doctor, error) {
		if id != 2 {
			return nil, services.ErrHospitalNotFound
		}
		return []domain.Doctor{{ID: 5, HospitalID: id}}, nil
	}})

	w := doReq(r, http.MethodGet, "/hospitals/2/doctors")
	if w.Code != http.StatusOK {
		t.Fatalf("doctors -> %d", w.Code)
	}
	var out []domain.Doctor
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 1 || out[0].ID != 5 {
		t.Fatalf("body: %s err=%v", w.Body.String(), err)
	}
	if w := doReq(r, http.MethodGet, "/hospitals/99/doctors"); w.Code != http.StatusNotFound {
		t.Fatalf("missing hospital -> %d", w.Code)
	}
}

func TestCreateDoctor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if w := postJSON(newDirRouter(stubDirSvc{}), "/doctors", "{bad"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad json -> %d", w.Code)
	}

	r := newDirRouter(stubDirSvc{createDoctor: func(context.Context, services.DoctorInput) (*domain.Doctor, error) {
		return nil, services.ErrHospitalNotFound
	}})
	if w := postJSON(r, "/doctors", `{"doctorName":"Dr. Kaya","phone":"5559876543","hospitalId":99}`); w.Code != http.StatusNotFound {
		t.Fatalf("missing hospital -> %d", w.Code)
	}

	var got services.DoctorInput
	r = newDirRouter(stubDirSvc{createDoctor: func(_ context.Context, in services.DoctorInput) (*domain.Doctor, error) {
		got = in
		return &domain.Doctor{ID: 5, Name: in.Name, Phone: in.Phone, HospitalID: in.HospitalID}, nil
	}})
	w := postJSON(r, "/doctors", `{"doctorName":"  Dr. Kaya ","phone":"5559876543","hospitalId":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
	}
	if got.Name != "Dr. Kaya" || got.HospitalID != 2 {
		t.Fatalf("service input: %+v", got)
	}
}

func TestDeleteDoctorAndHospital_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newDirRouter(stubDirSvc{
		deleteDoctor: func(_ context.Context, id int) error {
			if id != 5 {
				return services.ErrDoctorNotFound
			}
			return nil
		},
		deleteHospital: func(_ context.Context, id int) error {
			if id != 2 {
				return services.ErrHospitalNotFound
			}
			return nil
		},
	})

	if w := doReq(r, http.MethodDelete, "/doctors/5"); w.Code != http.StatusOK {
		t.Fatalf("delete doctor -> %d", w.Code)
	}
	if w := doReq(r, http.MethodDelete, "/doctors/6"); w.Code != http.StatusNotFound {
		t.Fatalf("missing doctor -> %d", w.Code)
	}
	if w := doReq(r, http.MethodDelete, "/hospitals/2"); w.Code != http.StatusOK {
		t.Fatalf("delete hospital -> %d", w.Code)
	}
	if w := doReq(r, http.MethodDelete, "/hospitals/3"); w.Code != http.StatusNotFound {
		t.Fatalf("missing hospital -> %d", w.Code)
	}
	if w := doReq(r, http.MethodDelete, "/doctors/abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}
}
