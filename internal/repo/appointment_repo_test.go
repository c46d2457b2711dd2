package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// bookingFixture seeds the full parent chain for appointment tests:
// a city, a hospital with one doctor, and an owner with one pet.
type bookingFixture struct {
	owner    *domain.User
	pet      *domain.Pet
	hospital *domain.Hospital
	doctor   *domain.Doctor
}

func newBookingFixture(t *testing.T, db *gorm.DB) bookingFixture {
	t.Helper()
	seedCityRow(t, db, 34, "İstanbul")
	owner := seedUser(t, db, "5551112233", "a@example.com")
	pet := seedPet(t, db, owner.ID, "Boncuk")
	hospital := seedHospitalRow(t, db, 34, "A Kliniği", "Kadıköy")
	doctor := seedDoctorRow(t, db, hospital.ID, "Dr. Zeynep")
	return bookingFixture{owner: owner, pet: pet, hospital: hospital, doctor: doctor}
}

func seedAppointment(t *testing.T, db *gorm.DB, f bookingFixture, date time.Time) *domain.Appointment {
	t.Helper()
	a := &domain.Appointment{PetID: f.pet.ID, HospitalID: f.hospital.ID, DoctorID: &f.doctor.ID, Date: date}
	if err := CreateAppointment(context.Background(), db, a); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return a
}

func TestCreateAppointment_DefaultsNotDone(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	f := newBookingFixture(t, db)

	a := seedAppointment(t, db, f, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC))
	if a.ID == 0 {
		t.Fatal("expected autoincrement id")
	}

	got, err := GetAppointment(context.Background(), db, a.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if got.IsDone {
		t.Fatal("new appointment must not be done")
	}
	if got.DoctorID == nil || *got.DoctorID != f.doctor.ID {
		t.Fatalf("doctor reference lost: %+v", got)
	}
}

func TestGetAppointment_NotFound(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	if _, err := GetAppointment(context.Background(), db, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAppointments_FiltersCombine(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	f := newBookingFixture(t, db)

	// Second owner with their own pet and hospital.
	other := seedUser(t, db, "5554445566", "b@example.com")
	otherPet := seedPet(t, db, other.ID, "Karabaş")
	otherHosp := seedHospitalRow(t, db, 34, "B Kliniği", "Şişli")

	jan := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	jun := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	a1 := seedAppointment(t, db, f, mar)
	a2 := seedAppointment(t, db, f, jan)
	foreign := &domain.Appointment{PetID: otherPet.ID, HospitalID: otherHosp.ID, Date: jun}
	if err := CreateAppointment(context.Background(), db, foreign); err != nil {
		t.Fatalf("seed foreign appointment: %v", err)
	}

	ctx := context.Background()

	// No filter: all three, date ascending.
	all, err := ListAppointments(ctx, db, AppointmentFilter{})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(all) != 3 || all[0].ID != a2.ID || all[1].ID != a1.ID || all[2].ID != foreign.ID {
		t.Fatalf("unexpected unfiltered order: %+v", all)
	}

	// By pet.
	byPet, err := ListAppointments(ctx, db, AppointmentFilter{PetID: f.pet.ID})
	if err != nil || len(byPet) != 2 {
		t.Fatalf("pet filter: got %d err=%v", len(byPet), err)
	}

	// By owner, through the pets join.
	byUser, err := ListAppointments(ctx, db, AppointmentFilter{UserID: other.ID})
	if err != nil || len(byUser) != 1 || byUser[0].ID != foreign.ID {
		t.Fatalf("user filter: got %+v err=%v", byUser, err)
	}

	// By hospital.
	byHosp, err := ListAppointments(ctx, db, AppointmentFilter{HospitalID: f.hospital.ID})
	if err != nil || len(byHosp) != 2 {
		t.Fatalf("hospital filter: got %d err=%v", len(byHosp), err)
	}

	// Date window covering only March.
	window, err := ListAppointments(ctx, db, AppointmentFilter{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil || len(window) != 1 || window[0].ID != a1.ID {
		t.Fatalf("date window: got %+v err=%v", window, err)
	}

	// Half-open window: an appointment exactly at From is returned,
	// one exactly at To is not.
	edge, err := ListAppointments(ctx, db, AppointmentFilter{From: jan, To: mar})
	if err != nil || len(edge) != 1 || edge[0].ID != a2.ID {
		t.Fatalf("half-open window: got %+v err=%v", edge, err)
	}
	atBound, err := ListAppointments(ctx, db, AppointmentFilter{To: jan})
	if err != nil || len(atBound) != 0 {
		t.Fatalf("appointment at the exclusive bound must be excluded, got %+v err=%v", atBound, err)
	}

	// Combined: owner + window with no overlap.
	empty, err := ListAppointments(ctx, db, AppointmentFilter{
		UserID: other.ID,
		To:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil || len(empty) != 0 {
		t.Fatalf("combined filter should be empty, got %+v err=%v", empty, err)
	}
}

func TestMarkAppointmentDone(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	f := newBookingFixture(t, db)
	a := seedAppointment(t, db, f, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC))

	ctx := context.Background()
	if err := MarkAppointmentDone(ctx, db, a.ID); err != nil {
		t.Fatalf("MarkAppointmentDone: %v", err)
	}
	got, err := GetAppointment(ctx, db, a.ID)
	if err != nil || !got.IsDone {
		t.Fatalf("expected done flag set, got %+v err=%v", got, err)
	}

	if err := MarkAppointmentDone(ctx, db, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestDeleteDoctor_NullsAppointmentReference(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	f := newBookingFixture(t, db)
	a := seedAppointment(t, db, f, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC))

	ctx := context.Background()
	if err := DeleteDoctor(ctx, db, f.doctor.ID); err != nil {
		t.Fatalf("DeleteDoctor: %v", err)
	}

	got, err := GetAppointment(ctx, db, a.ID)
	if err != nil {
		t.Fatalf("appointment should survive doctor deletion: %v", err)
	}
	if got.DoctorID != nil {
		t.Fatalf("doctor reference should be nulled, got %v", *got.DoctorID)
	}
}

func TestDeletePet_RestrictedWhileAppointmentsExist(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	f := newBookingFixture(t, db)
	seedAppointment(t, db, f, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC))

	// FK backstop: appointments reference the pet with RESTRICT.
	if err := DeletePet(context.Background(), db, f.pet.ID); err == nil {
		t.Fatal("expected FK restriction while appointments exist")
	}
}

func TestDeleteHospital_AppointmentsSurvive(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	f := newBookingFixture(t, db)
	a := seedAppointment(t, db, f, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC))

	ctx := context.Background()
	if err := DeleteHospital(ctx, db, f.hospital.ID); err != nil {
		t.Fatalf("DeleteHospital: %v", err)
	}

	// The hospital cascade removes its doctors, which nulls the doctor
	// reference; the booking row itself stays.
	got, err := GetAppointment(ctx, db, a.ID)
	if err != nil {
		t.Fatalf("appointment should survive hospital deletion: %v", err)
	}
	if got.DoctorID != nil {
		t.Fatalf("doctor reference should be nulled via cascade, got %v", *got.DoctorID)
	}
}
