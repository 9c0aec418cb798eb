package domain

type OrderLineInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	RoomNumber string           `json:"room_number"`
	Items      []OrderLineInput `json:"items"`
	Details    string           `json:"details,omitempty"`
}

type CreateServiceRequest struct {
	RoomNumber string `json:"room_number"`
	Service    string `json:"service,omitempty"`
	Details    string `json:"details"`
}

type CreateCheckoutRequest struct {
	RoomNumber  string `json:"room_number"`
	Time        string `json:"time"`
	LuggageHelp bool   `json:"luggage_help"`
}

type CreateFeedbackRequest struct {
	RoomNumber string `json:"room_number"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type CreateRequestResponse struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"` // EN | KH
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// SettingsView is the guest-facing settings payload: the stored record plus
// the display metadata derived from it.
type SettingsView struct {
	HotelSettings
	Theme        map[string]string `json:"theme"`
	WhatsappLink string            `json:"whatsappLink,omitempty"`
	TelegramLink string            `json:"telegramLink,omitempty"`
}
