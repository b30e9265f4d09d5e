package insight

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/anashany189-droid/ShareEstate1/models"
)

// Provider generates human-readable investment prose. Both calls are
// best-effort: the core never depends on their content, and callers at the
// HTTP boundary always go through WithFallback so a provider failure can
// never surface as a ledger or catalog error.
type Provider interface {
	AnalyzeProperty(ctx context.Context, property models.Property) (string, error)
	MarketSummary(ctx context.Context) (string, error)
}

const (
	// FallbackAnalysis is served when the configured provider errors out.
	FallbackAnalysis = "An error occurred while analyzing the property. Please try again later."
	// FallbackMarket is served when the market summary cannot be fetched.
	FallbackMarket = "Failed to fetch market insights."
)

type fallbackProvider struct {
	next Provider
}

// WithFallback wraps a provider so failures degrade to static text instead
// of propagating.
func WithFallback(next Provider) Provider {
	return &fallbackProvider{next: next}
}

func (f *fallbackProvider) AnalyzeProperty(ctx context.Context, property models.Property) (string, error) {
	text, err := f.next.AnalyzeProperty(ctx, property)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("[insight] property analysis failed for %s: %v", property.ID, err)
		return FallbackAnalysis, nil
	}
	return text, nil
}

func (f *fallbackProvider) MarketSummary(ctx context.Context) (string, error) {
	text, err := f.next.MarketSummary(ctx)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("[insight] market summary failed: %v", err)
		return FallbackMarket, nil
	}
	return text, nil
}

// FromEnv selects the provider named by INSIGHT_PROVIDER ("gemini", "groq"
// or "static"). When unset, it picks whichever backend has credentials
// configured and falls back to static so the demo boots with zero config.
func FromEnv(ctx context.Context) Provider {
	name := strings.ToLower(strings.TrimSpace(os.Getenv("INSIGHT_PROVIDER")))
	if name == "" {
		switch {
		case os.Getenv("GEMINI_API_KEY") != "":
			name = "gemini"
		case os.Getenv("GROQ_API_KEY") != "":
			name = "groq"
		default:
			name = "static"
		}
	}

	switch name {
	case "gemini":
		g, err := NewGemini(ctx)
		if err != nil {
			log.Printf("[insight] gemini unavailable, using static provider: %v", err)
			return NewStatic()
		}
		log.Printf("[insight] using gemini provider (model %s)", g.model)
		return g
	case "groq":
		log.Printf("[insight] using groq provider")
		return NewGroq()
	default:
		log.Printf("[insight] using static provider")
		return NewStatic()
	}
}
