package insight

import (
	"context"
	"fmt"

	"github.com/anashany189-droid/ShareEstate1/models"
)

// Static serves deterministic prose built from the property numbers. It is
// the zero-credential default and the degradation target for the real
// providers.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) AnalyzeProperty(_ context.Context, property models.Property) (string, error) {
	verdict := "Neutral"
	if property.ExpectedROI >= 20 {
		verdict = "Bullish"
	}
	return fmt.Sprintf(
		"**Investment Verdict:** %s\n\n"+
			"%s is a %s opportunity in %s seeking EGP %.0f in total funding "+
			"(%.0f%% funded). Expected annual ROI is %.1f%% with a rental yield "+
			"of %.1f%%. Minimum ticket: EGP %.0f. Review the funding deadline "+
			"and your own risk appetite before committing.",
		verdict,
		property.Title, property.Category, property.Location, property.TotalPrice,
		property.Progress()*100, property.ExpectedROI, property.RentalYield,
		property.MinInvestment,
	), nil
}

func (s *Static) MarketSummary(_ context.Context) (string, error) {
	return "Egyptian real estate continues to attract micro-investors, with the " +
		"New Capital, North Coast and Sheikh Zayed leading demand. Fractional " +
		"funding lets retail investors enter from small tickets while rental " +
		"yields remain attractive. As always, diversify across property types " +
		"and mind each project's funding deadline.", nil
}
