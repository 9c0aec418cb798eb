package service

import (
	"context"
	"fmt"
	"strings"

	"concierge-system/internal/domain"
	"concierge-system/internal/state"
)

// RequestService validates guest submissions before any mutation reaches the
// state container: a failed check blocks the submission, so no partial record
// is ever created.
type RequestService struct {
	state *state.Container
}

func NewRequestService(c *state.Container) *RequestService {
	return &RequestService{state: c}
}

func (s *RequestService) SubmitOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.RequestItem, error) {
	if strings.TrimSpace(req.RoomNumber) == "" {
		return domain.RequestItem{}, domain.ErrRoomNumberRequired
	}
	if len(req.Items) == 0 {
		return domain.RequestItem{}, domain.ErrEmptyOrder
	}
	lines := make([]domain.RequestLine, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return domain.RequestItem{}, domain.ErrInvalidQuantity
		}
		lines = append(lines, domain.RequestLine{Name: it.Name, Quantity: it.Quantity})
	}
	return s.state.AddRequest(ctx, domain.RequestItem{
		Type:       domain.RequestOrder,
		RoomNumber: req.RoomNumber,
		Items:      lines,
		Details:    req.Details,
	}), nil
}

func (s *RequestService) SubmitService(ctx context.Context, req domain.CreateServiceRequest) (domain.RequestItem, error) {
	if strings.TrimSpace(req.RoomNumber) == "" {
		return domain.RequestItem{}, domain.ErrRoomNumberRequired
	}
	if strings.TrimSpace(req.Details) == "" {
		return domain.RequestItem{}, domain.ErrProblemRequired
	}
	details := req.Details
	if req.Service != "" {
		details = req.Service + ": " + details
	}
	return s.state.AddRequest(ctx, domain.RequestItem{
		Type:       domain.RequestService,
		RoomNumber: req.RoomNumber,
		Details:    details,
	}), nil
}

func (s *RequestService) SubmitCheckout(ctx context.Context, req domain.CreateCheckoutRequest) (domain.RequestItem, error) {
	if strings.TrimSpace(req.RoomNumber) == "" {
		return domain.RequestItem{}, domain.ErrRoomNumberRequired
	}
	if strings.TrimSpace(req.Time) == "" {
		return domain.RequestItem{}, domain.ErrTimeRequired
	}
	luggage := "No"
	if req.LuggageHelp {
		luggage = "Yes"
	}
	return s.state.AddRequest(ctx, domain.RequestItem{
		Type:       domain.RequestCheckout,
		RoomNumber: req.RoomNumber,
		Details:    fmt.Sprintf("Scheduled for: %s. Need luggage help: %s", req.Time, luggage),
	}), nil
}

// UpdateStatus forwards to the container, which holds the lifecycle guard.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return s.state.UpdateRequestStatus(ctx, id, status)
}

func (s *RequestService) List() []domain.RequestItem { return s.state.Requests() }
