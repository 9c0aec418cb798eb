package service

import (
	"context"
	"strings"

	"concierge-system/internal/domain"
	"concierge-system/internal/state"
)

type MenuService struct {
	state *state.Container
}

func NewMenuService(c *state.Container) *MenuService {
	return &MenuService{state: c}
}

func (s *MenuService) List() []domain.MenuItem { return s.state.MenuItems() }

// ListByCategory filters the catalog for a guest category page.
func (s *MenuService) ListByCategory(category domain.Category) ([]domain.MenuItem, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}
	var out []domain.MenuItem
	for _, m := range s.state.MenuItems() {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MenuService) Upsert(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	if strings.TrimSpace(item.Name.EN) == "" {
		return domain.MenuItem{}, domain.ErrMenuItemNameRequired
	}
	if item.Price < 0 {
		return domain.MenuItem{}, domain.ErrInvalidPrice
	}
	if !domain.ValidCategory(item.Category) {
		return domain.MenuItem{}, domain.ErrInvalidCategory
	}
	return s.state.UpsertMenuItem(ctx, item), nil
}

// Replace swaps the whole catalog, validating every item first so a bad
// entry cannot clobber the existing menu.
func (s *MenuService) Replace(ctx context.Context, items []domain.MenuItem) error {
	for _, item := range items {
		if strings.TrimSpace(item.Name.EN) == "" {
			return domain.ErrMenuItemNameRequired
		}
		if item.Price < 0 {
			return domain.ErrInvalidPrice
		}
		if !domain.ValidCategory(item.Category) {
			return domain.ErrInvalidCategory
		}
	}
	s.state.SetMenuItems(ctx, items)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return s.state.DeleteMenuItem(ctx, id)
}

func (s *MenuService) ToggleAvailability(ctx context.Context, id string) (domain.MenuItem, error) {
	return s.state.ToggleAvailability(ctx, id)
}
