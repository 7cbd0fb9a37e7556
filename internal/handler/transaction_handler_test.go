package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/repository/memory"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/devikapo/budget-server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func newTransactionTestHandler(provider *testutil.MockProviderClient) *TransactionHandler {
	itemRepo := memory.NewItemRepository()
	_ = itemRepo.Add(&domain.Item{ItemID: "item-1", AccessToken: "access-1"})
	return NewTransactionHandler(service.NewTransactionService(provider, itemRepo))
}

func TestGetTransactions_Success(t *testing.T) {
	e := echo.New()
	provider := testutil.NewMockProviderClient()
	merchant := "Corner Store"
	provider.AddTransaction("access-1", &domain.Transaction{
		ID:           "tx-1",
		AccountID:    "acc-1",
		Name:         "CORNER STORE 123",
		MerchantName: &merchant,
		Amount:       decimal.NewFromFloat(-42.50),
		Date:         mustDate(t, "2024-01-10"),
		Categories:   []string{"FOOD_AND_DRINK"},
	})
	handler := newTransactionTestHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?start=2024-01-01&end=2024-01-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(response))
	}
	if response[0].ID != "tx-1" {
		t.Errorf("Expected id 'tx-1', got %s", response[0].ID)
	}
	if response[0].ItemID != "item-1" {
		t.Errorf("Expected item tag 'item-1', got %s", response[0].ItemID)
	}
	if response[0].Amount != "-42.5" {
		t.Errorf("Expected amount '-42.5', got %s", response[0].Amount)
	}
	if response[0].Date != "2024-01-10" {
		t.Errorf("Expected date '2024-01-10', got %s", response[0].Date)
	}
}

func TestGetTransactions_EmptyFeed(t *testing.T) {
	e := echo.New()
	handler := newTransactionTestHandler(testutil.NewMockProviderClient())

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}
}

func TestGetTransactions_InvalidDate(t *testing.T) {
	e := echo.New()
	handler := newTransactionTestHandler(testutil.NewMockProviderClient())

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?start=Jan-10-2024", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetTransactions_ProviderFailure(t *testing.T) {
	e := echo.New()
	provider := testutil.NewMockProviderClient()
	provider.GetTransactionsFn = func(ctx context.Context, accessToken string, query domain.TransactionQuery) ([]*domain.Transaction, error) {
		return nil, errors.New("provider down")
	}
	handler := newTransactionTestHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", rec.Code)
	}
}
