package service

import (
	"context"
	"strings"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/rs/zerolog/log"
)

// LinkService drives the provider link flow and owns linked-item lifecycle.
type LinkService struct {
	provider domain.ProviderClient
	itemRepo domain.ItemRepository
}

// NewLinkService creates a new LinkService.
func NewLinkService(provider domain.ProviderClient, itemRepo domain.ItemRepository) *LinkService {
	return &LinkService{provider: provider, itemRepo: itemRepo}
}

// CreateLinkToken requests a fresh link token from the provider.
func (s *LinkService) CreateLinkToken(ctx context.Context) (*domain.LinkToken, error) {
	return s.provider.CreateLinkToken(ctx)
}

// LinkItem exchanges a public token for item credentials, resolves the
// institution, and stores the linked item.
func (s *LinkService) LinkItem(ctx context.Context, publicToken string) (*domain.Item, error) {
	publicToken = strings.TrimSpace(publicToken)
	if publicToken == "" {
		return nil, domain.ErrPublicTokenRequired
	}

	exchange, err := s.provider.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return nil, err
	}

	info, err := s.provider.GetItem(ctx, exchange.AccessToken)
	if err != nil {
		return nil, err
	}

	item := &domain.Item{
		ItemID:        exchange.ItemID,
		AccessToken:   exchange.AccessToken,
		InstitutionID: info.InstitutionID,
	}
	if info.InstitutionID != nil {
		name, err := s.provider.GetInstitutionName(ctx, *info.InstitutionID)
		if err != nil {
			return nil, err
		}
		item.InstitutionName = &name
	}

	if err := s.itemRepo.Add(item); err != nil {
		return nil, err
	}

	log.Info().
		Str("item_id", item.ItemID).
		Str("institution_id", strPtrValue(item.InstitutionID)).
		Msg("Linked item")

	return item, nil
}

// UnlinkItem removes the item at the provider and forgets it locally.
func (s *LinkService) UnlinkItem(ctx context.Context, itemID string) error {
	item, err := s.itemRepo.Get(itemID)
	if err != nil {
		return err
	}
	if err := s.provider.RemoveItem(ctx, item.AccessToken); err != nil {
		return err
	}
	return s.itemRepo.Remove(itemID)
}

func strPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
