package repository

import (
	"testing"
	"time"

	"trendcheck/internal/domain/models"
)

func TestRequestStoreLifecycle(t *testing.T) {
	store := NewInMemoryRequestStore()

	req := &models.AnalysisRequest{
		ID:        "r1",
		UserID:    "alice",
		Text:      "some text",
		Engine:    "local",
		CreatedAt: time.Now(),
		Status:    models.StatusPending,
	}
	store.Save(req)

	got, ok := store.Get("r1")
	if !ok {
		t.Fatal("expected request r1")
	}
	if got.Status != models.StatusPending {
		t.Fatalf("expected Pending, got %s", got.Status)
	}

	got.Status = models.StatusCompleted
	got.Result = &models.AnalysisResult{Direction: models.DirectionUp}
	store.Update(got)

	again, ok := store.Get("r1")
	if !ok {
		t.Fatal("expected request r1 after update")
	}
	if again.Status != models.StatusCompleted || again.Result == nil {
		t.Fatalf("update not applied: %+v", again)
	}
}

func TestRequestStoreGetMissing(t *testing.T) {
	store := NewInMemoryRequestStore()
	if _, ok := store.Get("nope"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestRequestStoreAllNewestFirst(t *testing.T) {
	store := NewInMemoryRequestStore()
	base := time.Now()
	for i, id := range []string{"a", "b", "c"} {
		store.Save(&models.AnalysisRequest{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Status:    models.StatusPending,
		})
	}

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(all))
	}
	if all[0].ID != "c" || all[2].ID != "a" {
		t.Fatalf("expected newest-first ordering, got %s %s %s", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestRequestStoreCopies(t *testing.T) {
	store := NewInMemoryRequestStore()
	req := &models.AnalysisRequest{ID: "r1", CreatedAt: time.Now(), Status: models.StatusPending}
	store.Save(req)

	req.Status = models.StatusFailed
	got, _ := store.Get("r1")
	if got.Status != models.StatusPending {
		t.Fatal("stored request should not alias the caller's pointer")
	}
}
