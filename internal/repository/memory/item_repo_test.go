package memory

import (
	"testing"

	"github.com/devikapo/budget-server/internal/domain"
)

func testItem(id string) *domain.Item {
	instID := "ins_1"
	instName := "First Platypus Bank"
	return &domain.Item{
		ItemID:          id,
		AccessToken:     "access-" + id,
		InstitutionID:   &instID,
		InstitutionName: &instName,
	}
}

func TestItemRepository_AddAndGet(t *testing.T) {
	repo := NewItemRepository()

	if err := repo.Add(testItem("item-1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	item, err := repo.Get("item-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.AccessToken != "access-item-1" {
		t.Errorf("expected access token to round-trip, got %q", item.AccessToken)
	}
	if item.InstitutionName == nil || *item.InstitutionName != "First Platypus Bank" {
		t.Errorf("expected institution name to round-trip, got %v", item.InstitutionName)
	}
}

func TestItemRepository_AddReplacesExisting(t *testing.T) {
	repo := NewItemRepository()

	_ = repo.Add(testItem("item-1"))
	relinked := testItem("item-1")
	relinked.AccessToken = "access-rotated"
	_ = repo.Add(relinked)

	items := repo.List()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after relink, got %d", len(items))
	}
	if items[0].AccessToken != "access-rotated" {
		t.Errorf("expected rotated access token, got %q", items[0].AccessToken)
	}
}

func TestItemRepository_GetNotFound(t *testing.T) {
	repo := NewItemRepository()

	if _, err := repo.Get("missing"); err != domain.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemRepository_Remove(t *testing.T) {
	repo := NewItemRepository()

	_ = repo.Add(testItem("item-1"))
	_ = repo.Add(testItem("item-2"))

	if err := repo.Remove("item-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.Remove("item-1"); err != domain.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound on second remove, got %v", err)
	}

	items := repo.List()
	if len(items) != 1 || items[0].ItemID != "item-2" {
		t.Errorf("expected only item-2 to remain, got %v", items)
	}
}

func TestItemRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewItemRepository()

	_ = repo.Add(testItem("item-1"))
	_ = repo.Add(testItem("item-2"))
	_ = repo.Add(testItem("item-3"))

	items := repo.List()
	want := []string{"item-1", "item-2", "item-3"}
	for i, id := range want {
		if items[i].ItemID != id {
			t.Errorf("expected %q at index %d, got %q", id, i, items[i].ItemID)
		}
	}
}
