package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
)

type stubGenerator struct {
	reply string
	err   error
	seen  struct {
		prompt string
		system string
	}
}

func (s *stubGenerator) Generate(_ context.Context, prompt, system string) (string, error) {
	s.seen.prompt = prompt
	s.seen.system = system
	return s.reply, s.err
}

func TestReplyPassesContextToModel(t *testing.T) {
	gen := &stubGenerator{reply: "The pool is open until 10pm."}
	c := NewConcierge(gen, logger.Nop())

	hctx := BuildContext(domain.DefaultSettings(), domain.SeedMenuItems(), "EN")
	got := c.Reply(context.Background(), "When does the pool close?", hctx)

	assert.Equal(t, "The pool is open until 10pm.", got)
	assert.Equal(t, "When does the pool close?", gen.seen.prompt)
	assert.Contains(t, gen.seen.system, "Green Amazon Residence")
	assert.Contains(t, gen.seen.system, "Classic Beef Burger")
	assert.Contains(t, gen.seen.system, "Current Language: EN")
}

func TestReplyFallsBackOnError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("network down")}
	c := NewConcierge(gen, logger.Nop())

	got := c.Reply(context.Background(), "hello", "Hotel Name: X")
	assert.Equal(t, FallbackReply, got)
}

func TestReplyFallsBackOnEmptyText(t *testing.T) {
	gen := &stubGenerator{reply: "  "}
	c := NewConcierge(gen, logger.Nop())
	assert.Equal(t, FallbackReply, c.Reply(context.Background(), "hello", ""))
}

func TestReplyFallsBackWithoutGenerator(t *testing.T) {
	c := NewConcierge(nil, logger.Nop())
	assert.Equal(t, FallbackReply, c.Reply(context.Background(), "hello", ""))
}
