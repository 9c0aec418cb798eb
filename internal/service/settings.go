package service

import (
	"context"
	"fmt"

	"concierge-system/internal/domain"
	"concierge-system/internal/state"
)

type SettingsService struct {
	state *state.Container
}

func NewSettingsService(c *state.Container) *SettingsService {
	return &SettingsService{state: c}
}

func (s *SettingsService) Get() domain.HotelSettings { return s.state.Settings() }

// View returns the settings plus everything presentation-side code derives
// from them, so every client renders the same theme after a replacement.
func (s *SettingsService) View() domain.SettingsView {
	hs := s.state.Settings()
	return domain.SettingsView{
		HotelSettings: hs,
		Theme:         ThemeVariables(hs),
		WhatsappLink:  WhatsappLink(hs.WhatsappNumber),
		TelegramLink:  TelegramLink(hs.TelegramUsername),
	}
}

func (s *SettingsService) Replace(ctx context.Context, hs domain.HotelSettings) domain.HotelSettings {
	if hs.HomeView != domain.ViewList {
		hs.HomeView = domain.ViewGrid
	}
	if hs.CategoryView != domain.ViewGrid {
		hs.CategoryView = domain.ViewList
	}
	s.state.SetHotelSettings(ctx, hs)
	return hs
}

// ThemeVariables maps settings onto the CSS custom properties the UI reads.
// The dark primary shade is the stored color with an alpha suffix.
func ThemeVariables(hs domain.HotelSettings) map[string]string {
	return map[string]string{
		"--primary-color":      hs.PrimaryColor,
		"--primary-color-dark": hs.PrimaryColor + "dd",
		"--button-color":       hs.ButtonColor,
		"--icon-size":          fmt.Sprintf("%dpx", hs.IconSize),
	}
}

func WhatsappLink(number string) string {
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number
}

func TelegramLink(username string) string {
	if username == "" {
		return ""
	}
	return "https://t.me/" + username
}
