package domain

// LocalizedString carries the English/Khmer pair shown to guests.
type LocalizedString struct {
	EN string `json:"en"`
	KH string `json:"kh"`
}

// Category is the closed set of service categories on the guest home screen.
type Category string

const (
	CategoryRoomService     Category = "Room Service"
	CategoryPoolside        Category = "Poolside"
	CategoryBreakfast       Category = "Breakfast"
	CategoryRestaurant      Category = "Restaurant"
	CategoryTours           Category = "Tours"
	CategoryRentals         Category = "Rentals"
	CategoryLaundry         Category = "Laundry"
	CategoryWellness        Category = "Wellness"
	CategoryTransport       Category = "Transport"
	CategoryHousekeeping    Category = "Housekeeping"
	CategoryMaintenance     Category = "Maintenance"
	CategoryLocalAttraction Category = "Local Attractions"
)

// Categories lists every valid category, in home-screen order.
var Categories = []Category{
	CategoryRoomService, CategoryPoolside, CategoryBreakfast, CategoryRestaurant,
	CategoryTours, CategoryRentals, CategoryLaundry, CategoryWellness,
	CategoryTransport, CategoryHousekeeping, CategoryMaintenance, CategoryLocalAttraction,
}

func ValidCategory(c Category) bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// MenuItem is a bookable or orderable catalog entry. Created and edited by
// staff only; guests never create or delete items.
type MenuItem struct {
	ID          string           `json:"id"`
	Category    Category         `json:"category"`
	SubCategory *LocalizedString `json:"subCategory,omitempty"`
	Name        LocalizedString  `json:"name"`
	Description LocalizedString  `json:"description"`
	Price       float64          `json:"price"` // 0 means "no price shown"
	Image       string           `json:"image"`
	Available   bool             `json:"available"`
	ExternalURL string           `json:"externalUrl,omitempty"`
}

// RequestType discriminates guest tickets.
type RequestType string

const (
	RequestOrder    RequestType = "order"
	RequestService  RequestType = "service"
	RequestFeedback RequestType = "feedback"
	RequestCheckout RequestType = "checkout"
)

// RequestLine is one {name, quantity} line of an order request.
type RequestLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// RequestItem is a guest-originated ticket. ID and Timestamp are immutable
// after creation; only Status changes, and only through the transition table.
// Requests are never deleted: cancellation is a terminal status, not removal.
type RequestItem struct {
	ID         string        `json:"id"`
	Type       RequestType   `json:"type"`
	RoomNumber string        `json:"roomNumber"`
	Items      []RequestLine `json:"items,omitempty"`
	Details    string        `json:"details,omitempty"`
	Status     Status        `json:"status"`
	Timestamp  int64         `json:"timestamp"` // milliseconds since epoch
}

// Feedback is immutable after creation: no update or delete operation exists.
type Feedback struct {
	ID         string `json:"id"`
	RoomNumber string `json:"roomNumber"`
	Rating     int    `json:"rating"` // 1..5
	Comment    string `json:"comment"`
	Timestamp  int64  `json:"timestamp"`
}

// ViewMode selects grid or list presentation for a settings view slot.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// HotelSettings is the single global configuration record. Exactly one
// instance exists; staff saves replace it wholesale and every replacement
// propagates to all connected clients.
type HotelSettings struct {
	Name             string   `json:"name"`
	Logo             string   `json:"logo"`
	Banner           string   `json:"banner"`
	PrimaryColor     string   `json:"primaryColor"`
	ButtonColor      string   `json:"buttonColor"`
	IconSize         int      `json:"iconSize"`
	HomeView         ViewMode `json:"homeView"`
	CategoryView     ViewMode `json:"categoryView"`
	WhatsappNumber   string   `json:"whatsappNumber"`
	TelegramUsername string   `json:"telegramUsername"`
}
