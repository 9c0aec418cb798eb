package service

import (
	"context"
	"strings"

	"concierge-system/internal/domain"
	"concierge-system/internal/state"
)

type FeedbackService struct {
	state *state.Container
}

func NewFeedbackService(c *state.Container) *FeedbackService {
	return &FeedbackService{state: c}
}

// Submit rejects out-of-range ratings before anything is persisted.
func (s *FeedbackService) Submit(ctx context.Context, req domain.CreateFeedbackRequest) (domain.Feedback, error) {
	if strings.TrimSpace(req.RoomNumber) == "" {
		return domain.Feedback{}, domain.ErrRoomNumberRequired
	}
	if req.Rating < 1 || req.Rating > 5 {
		return domain.Feedback{}, domain.ErrInvalidRating
	}
	return s.state.AddFeedback(ctx, domain.Feedback{
		RoomNumber: req.RoomNumber,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}), nil
}

func (s *FeedbackService) List() []domain.Feedback { return s.state.Feedbacks() }
