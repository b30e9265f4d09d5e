package models

import "math"

// PropertyCategory is the closed set of property types offered on the
// marketplace. Values match what the frontend renders.
type PropertyCategory string

const (
	CategoryResidential    PropertyCategory = "Residential"
	CategoryCommercial     PropertyCategory = "Commercial"
	CategoryAdministrative PropertyCategory = "Administrative"
	CategoryVacation       PropertyCategory = "Vacation"
)

func (c PropertyCategory) Valid() bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryAdministrative, CategoryVacation:
		return true
	}
	return false
}

// PropertyStatus is the funding lifecycle of a property. Completed is
// derived: a property moves there once FundedAmount reaches TotalPrice.
type PropertyStatus string

const (
	StatusFunding   PropertyStatus = "Funding"
	StatusCompleted PropertyStatus = "Completed"
	StatusSold      PropertyStatus = "Sold"
)

type Property struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Location        string           `json:"location"`
	Category        PropertyCategory `json:"category"`
	ImageURL        string           `json:"image_url"`
	TotalPrice      float64          `json:"total_price"`
	FundedAmount    float64          `json:"funded_amount"`
	MinInvestment   float64          `json:"min_investment"`
	ExpectedROI     float64          `json:"expected_roi"`
	RentalYield     float64          `json:"rental_yield"`
	Description     string           `json:"description"`
	Amenities       []string         `json:"amenities"`
	Status          PropertyStatus   `json:"status"`
	FundingDeadline string           `json:"funding_deadline"`
}

// Progress returns the funded fraction in [0, 1]. Clamped so listings never
// render past 100% even if FundedAmount drifts above TotalPrice.
func (p Property) Progress() float64 {
	if p.TotalPrice <= 0 {
		return 0
	}
	return math.Min(p.FundedAmount/p.TotalPrice, 1)
}
