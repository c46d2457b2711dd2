package repo

import (
	"context"
	"testing"
	"time"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

func TestIdempotency_PutThenGet(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	ctx := context.Background()

	if err := PutIdempotency(ctx, db, "u1", "k1", 42, 200, time.Hour); err != nil {
		t.Fatalf("PutIdempotency: %v", err)
	}

	rec, err := GetIdempotency(ctx, db, "u1", "k1", time.Now().UTC())
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if rec == nil || rec.AppointmentID != 42 || rec.Status != 200 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.ID == "" {
		t.Fatal("expected uuid primary key")
	}
}

func TestIdempotency_MissAndWrongScope(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	ctx := context.Background()
	now := time.Now().UTC()

	rec, err := GetIdempotency(ctx, db, "u1", "absent", now)
	if err != nil || rec != nil {
		t.Fatalf("expected miss, got rec=%+v err=%v", rec, err)
	}

	if err := PutIdempotency(ctx, db, "u1", "k1", 42, 200, time.Hour); err != nil {
		t.Fatalf("PutIdempotency: %v", err)
	}
	// Same key under a different user must not match.
	rec, err = GetIdempotency(ctx, db, "u2", "k1", now)
	if err != nil || rec != nil {
		t.Fatalf("keys are user-scoped, got rec=%+v err=%v", rec, err)
	}
}

func TestIdempotency_ExpiryWindow(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	ctx := context.Background()

	if err := PutIdempotency(ctx, db, "u1", "k1", 42, 200, time.Minute); err != nil {
		t.Fatalf("PutIdempotency: %v", err)
	}

	rec, err := GetIdempotency(ctx, db, "u1", "k1", time.Now().UTC())
	if err != nil || rec == nil {
		t.Fatalf("expected hit inside ttl, got rec=%+v err=%v", rec, err)
	}

	later := time.Now().UTC().Add(2 * time.Minute)
	rec, err = GetIdempotency(ctx, db, "u1", "k1", later)
	if err != nil || rec != nil {
		t.Fatalf("expected miss past expiry, got rec=%+v err=%v", rec, err)
	}
}

func TestIdempotency_DuplicateKeyRejected(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	ctx := context.Background()

	if err := PutIdempotency(ctx, db, "u1", "k1", 1, 200, time.Hour); err != nil {
		t.Fatalf("PutIdempotency: %v", err)
	}
	if err := PutIdempotency(ctx, db, "u1", "k1", 2, 200, time.Hour); err == nil {
		t.Fatal("expected unique-constraint violation for duplicate (user, key)")
	}
	// Distinct user is fine.
	if err := PutIdempotency(ctx, db, "u2", "k1", 3, 200, time.Hour); err != nil {
		t.Fatalf("distinct user should insert: %v", err)
	}
}
