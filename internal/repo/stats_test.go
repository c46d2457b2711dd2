package repo

import (
	"context"
	"testing"
	"time"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

func TestUsersStats_EmptyTable(t *testing.T) {
	db := newRepoDB(t, allModels()...)

	count, maxTS, err := UsersStats(context.Background(), db)
	if err != nil {
		t.Fatalf("UsersStats: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("expected (0, nil), got (%d, %v)", count, maxTS)
	}
}

func TestUsersStats_CountAndLatest(t *testing.T) {
	db := newRepoDB(t, allModels()...)
	seedCityRow(t, db, 1, "Adana")

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	users := []domain.User{
		{Name: "A", Phone: "5550000001", Email: "a@example.com", PasswordHash: "x", CityID: 1, CreatedAt: t1},
		{Name: "B", Phone: "5550000002", Email: "b@example.com", PasswordHash: "x", CityID: 1, CreatedAt: t2},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	count, maxTS, err := UsersStats(context.Background(), db)
	if err != nil {
		t.Fatalf("UsersStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
	if maxTS == nil || !maxTS.Equal(t2) {
		t.Fatalf("expected latest %v, got %v", t2, maxTS)
	}
}
