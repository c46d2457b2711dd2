package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

func seedPet(t *testing.T, db *gorm.DB, userID int, name string) *domain.Pet {
	t.Helper()
	p := &domain.Pet{Name: name, Type: "cat", UserID: userID}
	if err := CreatePet(context.Background(), db, p); err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}

func TestCreatePet_PersistsWithOptionalFields(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	owner := seedUser(t, db, "5551112233", "a@example.com")

	age, gender := 3, "female"
	p := &domain.Pet{Name: "Boncuk", Type: "cat", Age: &age, Gender: &gender, UserID: owner.ID}
	if err := CreatePet(context.Background(), db, p); err != nil {
		t.Fatalf("CreatePet: %v", err)
	}
	if p.ID == 0 || p.CreatedAt.IsZero() {
		t.Fatalf("id/createdAt unset: %+v", p)
	}

	got, err := GetPet(context.Background(), db, p.ID)
	if err != nil {
		t.Fatalf("GetPet: %v", err)
	}
	if got.Age == nil || *got.Age != 3 || got.Gender == nil || *got.Gender != "female" {
		t.Fatalf("optional fields lost: %+v", got)
	}
	if got.Breed != nil || got.Notes != nil {
		t.Fatalf("absent optionals should stay nil: %+v", got)
	}
}

func TestCreatePet_UnknownOwnerRejectedByFK(t *testing.T) {
	db := newRepoDB(t, allModels()...)

	p := &domain.Pet{Name: "Ghost", Type: "dog", UserID: 12345}
	if err := CreatePet(context.Background(), db, p); err == nil {
		t.Fatal("expected FK violation for missing owner")
	}
}

func TestGetPet_NotFound(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	if _, err := GetPet(context.Background(), db, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPetsByUser_FiltersAndOrders(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	a := seedUser(t, db, "5551112233", "a@example.com")
	b := seedUser(t, db, "5554445566", "b@example.com")

	older := &domain.Pet{Name: "First", Type: "cat", UserID: a.ID,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &domain.Pet{Name: "Second", Type: "dog", UserID: a.ID,
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	other := &domain.Pet{Name: "Other", Type: "bird", UserID: b.ID,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	for _, p := range []*domain.Pet{older, newer, other} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := ListPetsByUser(context.Background(), db, a.ID)
	if err != nil {
		t.Fatalf("ListPetsByUser: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Second" || got[1].Name != "First" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCountPetsByUser(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	owner := seedUser(t, db, "5551112233", "a@example.com")
	seedPet(t, db, owner.ID, "One")
	seedPet(t, db, owner.ID, "Two")

	n, err := CountPetsByUser(context.Background(), db, owner.ID)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 pets, got n=%d err=%v", n, err)
	}
	n, err = CountPetsByUser(context.Background(), db, owner.ID+1)
	if err != nil || n != 0 {
		t.Fatalf("expected 0 pets for other user, got n=%d err=%v", n, err)
	}
}

func TestDeletePet_RemovesAndReportsMissing(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	owner := seedUser(t, db, "5551112233", "a@example.com")
	p := seedPet(t, db, owner.ID, "Boncuk")

	if err := DeletePet(context.Background(), db, p.ID); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if err := DeletePet(context.Background(), db, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeleteUser_RestrictedWhilePetsExist(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	owner := seedUser(t, db, "5551112233", "a@example.com")
	seedPet(t, db, owner.ID, "Boncuk")

	// FK backstop: pets reference the user with RESTRICT.
	if err := DeleteUser(context.Background(), db, owner.ID); err == nil {
		t.Fatal("expected FK restriction while pets exist")
	}
}
