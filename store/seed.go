package store

import "github.com/anashany189-droid/ShareEstate1/models"

// SeedProperties returns the demo catalog. Values mirror the marketplace
// the frontend ships with.
func SeedProperties() []models.Property {
	return []models.Property{
		{
			ID:              "1",
			Title:           "Luxury Apartment - The New Capital",
			Location:        "New Administrative Capital, R7 District",
			Category:        models.CategoryResidential,
			ImageURL:        "https://picsum.photos/id/122/800/600",
			TotalPrice:      4500000,
			FundedAmount:    3200000,
			MinInvestment:   10000,
			ExpectedROI:     18.5,
			RentalYield:     6.2,
			Description:     "A premium 3-bedroom apartment overlooking the Green River. High potential for capital appreciation as the government relocates.",
			Amenities:       []string{"Security", "Parking", "Gym", "Green Area"},
			Status:          models.StatusFunding,
			FundingDeadline: "2024-12-31",
		},
		{
			ID:              "2",
			Title:           "Commercial Unit - Sheikh Zayed",
			Location:        "Sheikh Zayed City, Arkan Plaza Area",
			Category:        models.CategoryCommercial,
			ImageURL:        "https://picsum.photos/id/192/800/600",
			TotalPrice:      12000000,
			FundedAmount:    1200000,
			MinInvestment:   50000,
			ExpectedROI:     22.0,
			RentalYield:     9.5,
			Description:     "Prime retail space in a high-traffic area. Tenant contract secured for 5 years with a multinational coffee chain.",
			Amenities:       []string{"High Visibility", "Finished", "HVAC"},
			Status:          models.StatusFunding,
			FundingDeadline: "2025-03-15",
		},
		{
			ID:              "3",
			Title:           "Sea View Villa - North Coast",
			Location:        "Ras El Hekma, North Coast",
			Category:        models.CategoryVacation,
			ImageURL:        "https://picsum.photos/id/238/800/600",
			TotalPrice:      8500000,
			FundedAmount:    8000000,
			MinInvestment:   25000,
			ExpectedROI:     25.0,
			RentalYield:     12.0,
			Description:     "Seasonal rental powerhouse. Fully furnished villa with private pool, walking distance to the beach.",
			Amenities:       []string{"Pool", "Beach Access", "Furnished", "Concierge"},
			Status:          models.StatusFunding,
			FundingDeadline: "2024-10-30",
		},
		{
			ID:              "4",
			Title:           "Office Space - 5th Settlement",
			Location:        "New Cairo, 5th Settlement",
			Category:        models.CategoryAdministrative,
			ImageURL:        "https://picsum.photos/id/48/800/600",
			TotalPrice:      5500000,
			FundedAmount:    5500000,
			MinInvestment:   20000,
			ExpectedROI:     16.0,
			RentalYield:     8.0,
			Description:     "Modern office space in a business hub. Fully leased to a software company.",
			Amenities:       []string{"Meeting Rooms", "High Speed Internet", "24/7 Access"},
			Status:          models.StatusCompleted,
			FundingDeadline: "2024-01-15",
		},
	}
}

// SeedProfile is the mock logged-in investor.
func SeedProfile() models.UserProfile {
	return models.UserProfile{
		Name:          "Ahmed Hassan",
		WalletBalance: 250000,
		TotalInvested: 0,
		TotalReturns:  0,
	}
}

// NewDemoStore builds the session state the demo boots with.
func NewDemoStore() *Store {
	return New(NewCatalog(SeedProperties()), NewLedger(SeedProfile()))
}
