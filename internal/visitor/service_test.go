package visitor

import (
	"context"
	"testing"

	"github.com/alexjohnson-dev/portfolio-backend/internal/database"
)

func TestIncrementAndGetSequence(t *testing.T) {
	svc := NewService(database.NewMemoryStore())
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := svc.IncrementAndGet(ctx)
		if err != nil {
			t.Fatalf("unexpected error on increment %d: %v", want, err)
		}
		if got != want {
			t.Fatalf("IncrementAndGet() = %d, want %d", got, want)
		}
	}
}

func TestIncrementRefreshesLastVisit(t *testing.T) {
	store := database.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.IncrementAndGet(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var first Counter
	if err := store.FindOne(ctx, "visitors", filterCounter(), &first); err != nil {
		t.Fatalf("counter lookup failed: %v", err)
	}
	if first.LastVisit.IsZero() {
		t.Fatal("expected last_visit to be set")
	}

	if _, err := svc.IncrementAndGet(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var second Counter
	if err := store.FindOne(ctx, "visitors", filterCounter(), &second); err != nil {
		t.Fatalf("counter lookup failed: %v", err)
	}
	if second.Count != 2 {
		t.Fatalf("count = %d, want 2", second.Count)
	}
	if second.LastVisit.Before(first.LastVisit) {
		t.Fatalf("last_visit went backwards: %v -> %v", first.LastVisit, second.LastVisit)
	}
}
