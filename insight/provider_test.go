package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anashany189-droid/ShareEstate1/models"
)

type failingProvider struct{}

func (failingProvider) AnalyzeProperty(context.Context, models.Property) (string, error) {
	return "", errors.New("upstream down")
}

func (failingProvider) MarketSummary(context.Context) (string, error) {
	return "", errors.New("upstream down")
}

func TestFallbackSwallowsProviderErrors(t *testing.T) {
	p := WithFallback(failingProvider{})

	text, err := p.AnalyzeProperty(context.Background(), models.Property{ID: "1"})
	if err != nil {
		t.Fatalf("fallback must never error, got %v", err)
	}
	if text != FallbackAnalysis {
		t.Fatalf("expected fallback analysis text, got %q", text)
	}

	text, err = p.MarketSummary(context.Background())
	if err != nil {
		t.Fatalf("fallback must never error, got %v", err)
	}
	if text != FallbackMarket {
		t.Fatalf("expected fallback market text, got %q", text)
	}
}

func TestFallbackPassesThroughSuccess(t *testing.T) {
	p := WithFallback(NewStatic())
	text, err := p.AnalyzeProperty(context.Background(), models.Property{
		Title: "Test Villa", Category: models.CategoryVacation, Location: "North Coast",
		TotalPrice: 1000000, ExpectedROI: 25, RentalYield: 12, MinInvestment: 25000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Test Villa") {
		t.Fatalf("expected the property title in the analysis, got %q", text)
	}
}

func TestMarketCacheServesAndCaches(t *testing.T) {
	cache := NewMarketCache(WithFallback(NewStatic()))

	first, at := cache.Summary(context.Background())
	if first == "" || at.IsZero() {
		t.Fatalf("expected a summary on first call")
	}
	second, at2 := cache.Summary(context.Background())
	if second != first || !at2.Equal(at) {
		t.Fatalf("expected cached summary on second call")
	}
}

func TestStaticMarketSummaryNonEmpty(t *testing.T) {
	text, err := NewStatic().MarketSummary(context.Background())
	if err != nil || strings.TrimSpace(text) == "" {
		t.Fatalf("static provider must always answer, got %q err=%v", text, err)
	}
}
