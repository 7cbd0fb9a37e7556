package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/repository/memory"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/devikapo/budget-server/internal/testutil"
	"github.com/labstack/echo/v4"
)

func TestGetItemsWithAccounts_Success(t *testing.T) {
	e := echo.New()
	provider := testutil.NewMockProviderClient()
	itemRepo := memory.NewItemRepository()

	instName := "First Platypus Bank"
	_ = itemRepo.Add(&domain.Item{ItemID: "item-1", AccessToken: "access-1", InstitutionName: &instName})
	addCheckingAccount(provider, "access-1", "acc-1", 1000)

	handler := NewItemHandler(
		service.NewLinkService(provider, itemRepo),
		service.NewAccountService(provider, itemRepo),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/items-with-accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetItemsWithAccounts(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []domain.ItemAccounts
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(response))
	}
	if response[0].InstitutionName == nil || *response[0].InstitutionName != instName {
		t.Errorf("Expected institution name, got %v", response[0].InstitutionName)
	}
	if len(response[0].Accounts) != 1 {
		t.Errorf("Expected 1 account, got %d", len(response[0].Accounts))
	}
}

func TestDeleteItem_Success(t *testing.T) {
	e := echo.New()
	provider := testutil.NewMockProviderClient()
	itemRepo := memory.NewItemRepository()
	_ = itemRepo.Add(&domain.Item{ItemID: "item-1", AccessToken: "access-1"})

	handler := NewItemHandler(
		service.NewLinkService(provider, itemRepo),
		service.NewAccountService(provider, itemRepo),
	)

	req := httptest.NewRequest(http.MethodDelete, "/api/items/item-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("item_id")
	c.SetParamValues("item-1")

	if err := handler.DeleteItem(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if len(itemRepo.List()) != 0 {
		t.Errorf("Expected item removed, got %d items", len(itemRepo.List()))
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	e := echo.New()
	provider := testutil.NewMockProviderClient()
	itemRepo := memory.NewItemRepository()

	handler := NewItemHandler(
		service.NewLinkService(provider, itemRepo),
		service.NewAccountService(provider, itemRepo),
	)

	req := httptest.NewRequest(http.MethodDelete, "/api/items/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("item_id")
	c.SetParamValues("missing")

	if err := handler.DeleteItem(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
