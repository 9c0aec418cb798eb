// Package chat wraps the hosted generative model behind the concierge
// persona. Every failure path resolves to a fixed apology string so the
// guest-facing chat never surfaces an error state.
package chat

import (
	"context"
	"fmt"
	"strings"

	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
)

// FallbackReply is returned whenever the model call fails or yields nothing.
const FallbackReply = "I apologize, I'm having trouble connecting to my service. Please visit the reception for assistance."

// Generator produces one text reply for a prompt under a system instruction.
type Generator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

type Concierge struct {
	gen Generator
	lg  *logger.Logger
}

func NewConcierge(gen Generator, lg *logger.Logger) *Concierge {
	return &Concierge{gen: gen, lg: lg}
}

// BuildContext assembles the hotel context string handed to the model:
// hotel name, the service names guests can ask about, and active language.
func BuildContext(settings domain.HotelSettings, menu []domain.MenuItem, language string) string {
	names := make([]string, 0, len(menu))
	for _, m := range menu {
		names = append(names, m.Name.EN)
	}
	return fmt.Sprintf("Hotel Name: %s\nAvailable Services: %s\nCurrent Language: %s",
		settings.Name, strings.Join(names, ", "), language)
}

func systemInstruction(hotelContext string) string {
	return fmt.Sprintf(`You are a professional, helpful hotel concierge.
Use the following context to answer guest questions politely.
Context: %s.
Keep answers concise and luxurious.
If you don't know the answer, politely suggest they visit the front desk.`, hotelContext)
}

// Reply never returns an error: any failure degrades to FallbackReply.
func (c *Concierge) Reply(ctx context.Context, prompt, hotelContext string) string {
	if c.gen == nil {
		return FallbackReply
	}
	text, err := c.gen.Generate(ctx, prompt, systemInstruction(hotelContext))
	if err != nil {
		c.lg.Warn("chat_failed", err, nil)
		return FallbackReply
	}
	if strings.TrimSpace(text) == "" {
		return FallbackReply
	}
	return text
}
