package domain

// DefaultSettings seeds the settings singleton on first run and whenever the
// persisted record is absent or unreadable.
func DefaultSettings() HotelSettings {
	return HotelSettings{
		Name:             "Green Amazon Residence",
		Logo:             "",
		Banner:           "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?auto=format&fit=crop&w=800&q=80",
		PrimaryColor:     "#2D5A27",
		ButtonColor:      "#1C1C1C",
		IconSize:         32,
		HomeView:         ViewGrid,
		CategoryView:     ViewList,
		WhatsappNumber:   "1234567890",
		TelegramUsername: "GreenAmazonConcierge",
	}
}

// SeedMenuItems is the catalog shown on a first-time setup, before staff
// have saved anything.
func SeedMenuItems() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Category:    CategoryRoomService,
			Name:        LocalizedString{EN: "Classic Beef Burger", KH: "ប៊ឺហ្គឺសាច់គោ"},
			Description: LocalizedString{EN: "Juicy beef patty with cheese and fries", KH: "សាច់គោស្រស់ៗជាមួយឈីស និងដំឡូងបារាំង"},
			Price:       12.50,
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=400&h=300&q=80",
			Available:   true,
		},
		{
			ID:          "2",
			Category:    CategoryPoolside,
			Name:        LocalizedString{EN: "Fresh Coconut Water", KH: "ទឹកដូងស្រស់"},
			Description: LocalizedString{EN: "Chilled local young coconut", KH: "ដូងខ្ចីត្រជាក់ៗពីចម្ការ"},
			Price:       3.00,
			Image:       "https://images.unsplash.com/photo-1550853024-fae8cd4be477?auto=format&fit=crop&w=400&h=300&q=80",
			Available:   true,
		},
		{
			ID:          "3",
			Category:    CategoryWellness,
			Name:        LocalizedString{EN: "Khmer Traditional Massage", KH: "ម៉ាស្សាបែបខ្មែរបុរាណ"},
			Description: LocalizedString{EN: "60 minutes of relaxing traditional techniques", KH: "ម៉ាស្សាបែបបច្ចេកទេសខ្មែរបុរាណ រយៈពេល ៦០ នាទី"},
			Price:       25.00,
			Image:       "https://images.unsplash.com/photo-1544161515-4ae6ce6ca8b8?auto=format&fit=crop&w=400&h=300&q=80",
			Available:   true,
		},
		{
			ID:          "4",
			Category:    CategoryLocalAttraction,
			SubCategory: &LocalizedString{EN: "Tourist Spot", KH: "កន្លែងទេសចរណ៍"},
			Name:        LocalizedString{EN: "Angkor Wat Temple", KH: "ប្រាសាទអង្គរវត្ត"},
			Description: LocalizedString{EN: "The largest religious monument in the world.", KH: "វិមានសាសនាដ៏ធំបំផុតនៅក្នុងពិភពលោក។"},
			Price:       0,
			Image:       "https://images.unsplash.com/photo-1500048993953-d23a436266cf?auto=format&fit=crop&w=400&h=300&q=80",
			Available:   true,
			ExternalURL: "https://goo.gl/maps/AngkorWat",
		},
		{
			ID:          "5",
			Category:    CategoryLocalAttraction,
			SubCategory: &LocalizedString{EN: "Local", KH: "ក្នុងស្រុក"},
			Name:        LocalizedString{EN: "Phsar Chas (Old Market)", KH: "ផ្សារចាស់"},
			Description: LocalizedString{EN: "Traditional market in the heart of Siem Reap.", KH: "ផ្សារប្រពៃណីនៅចំកណ្តាលក្រុងសៀមរាប។"},
			Price:       0,
			Image:       "https://images.unsplash.com/photo-1561053140-2771003463a5?auto=format&fit=crop&w=400&h=300&q=80",
			Available:   true,
			ExternalURL: "https://goo.gl/maps/PhsarChas",
		},
	}
}
