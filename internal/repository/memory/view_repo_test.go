package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/devikapo/budget-server/internal/domain"
)

func testDraft(name string) *domain.ViewFilterDraft {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	return &domain.ViewFilterDraft{
		Name:            name,
		DateRange:       domain.DateRange{Start: &start, End: &end},
		Categories:      []string{"FOOD_AND_DRINK", "TRAVEL"},
		TransactionType: domain.TransactionTypeSpending,
	}
}

func TestViewRepository_CreatePrepends(t *testing.T) {
	repo := NewViewRepository()

	first, err := repo.Create(testDraft("first"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := repo.Create(testDraft("second"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	views := repo.List()
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].ID != second.ID {
		t.Errorf("expected newest view first, got %q", views[0].Name)
	}
	if views[1].ID != first.ID {
		t.Errorf("expected oldest view last, got %q", views[1].Name)
	}
}

func TestViewRepository_RoundTrip(t *testing.T) {
	repo := NewViewRepository()

	created, err := repo.Create(testDraft("groceries"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	replacement := testDraft("eating out")
	replacement.Categories = []string{"FOOD_AND_DRINK"}
	replacement.TransactionType = domain.TransactionTypeIncome

	updated, err := repo.Update(created.ID, replacement)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update must keep the original id, got %q want %q", updated.ID, created.ID)
	}

	views := repo.List()
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0].Name != "eating out" {
		t.Errorf("expected replaced name, got %q", views[0].Name)
	}
	if len(views[0].Categories) != 1 || views[0].Categories[0] != "FOOD_AND_DRINK" {
		t.Errorf("expected replaced categories, got %v", views[0].Categories)
	}
	if views[0].TransactionType != domain.TransactionTypeIncome {
		t.Errorf("expected replaced type, got %q", views[0].TransactionType)
	}

	repo.Delete(created.ID)
	if got := len(repo.List()); got != 0 {
		t.Fatalf("expected empty store after delete, got %d views", got)
	}

	// Deleting twice is safe
	repo.Delete(created.ID)
}

func TestViewRepository_UpdateKeepsPosition(t *testing.T) {
	repo := NewViewRepository()

	older, _ := repo.Create(testDraft("older"))
	newer, _ := repo.Create(testDraft("newer"))

	if _, err := repo.Update(older.ID, testDraft("older renamed")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	views := repo.List()
	if views[0].ID != newer.ID {
		t.Errorf("expected untouched view to stay first, got %q", views[0].Name)
	}
	if views[1].ID != older.ID || views[1].Name != "older renamed" {
		t.Errorf("expected updated view to keep its position, got %q at index 1", views[1].Name)
	}
}

func TestViewRepository_UpdateNotFound(t *testing.T) {
	repo := NewViewRepository()

	if _, err := repo.Update("missing", testDraft("x")); err != domain.ErrViewNotFound {
		t.Errorf("expected ErrViewNotFound, got %v", err)
	}
}

func TestViewRepository_ListIsSnapshot(t *testing.T) {
	repo := NewViewRepository()
	created, _ := repo.Create(testDraft("original"))

	views := repo.List()
	views[0].Name = "tampered"
	views[0].Categories[0] = "tampered"

	fresh := repo.List()
	if fresh[0].Name != "original" {
		t.Errorf("stored name mutated through snapshot: %q", fresh[0].Name)
	}
	if fresh[0].Categories[0] != "FOOD_AND_DRINK" {
		t.Errorf("stored categories mutated through snapshot: %v", fresh[0].Categories)
	}
	if fresh[0].ID != created.ID {
		t.Errorf("unexpected id %q", fresh[0].ID)
	}
}

func TestViewRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewViewRepository()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.Create(testDraft("concurrent")); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		}()
	}
	wg.Wait()

	views := repo.List()
	if len(views) != n {
		t.Fatalf("expected %d views, got %d", n, len(views))
	}
	seen := make(map[string]bool, n)
	for _, view := range views {
		if seen[view.ID] {
			t.Fatalf("duplicate view id %q", view.ID)
		}
		seen[view.ID] = true
	}
}
