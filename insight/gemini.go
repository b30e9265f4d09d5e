package insight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/anashany189-droid/ShareEstate1/models"
)

// Gemini generates analysis through the Gemini API. The client reads
// GEMINI_API_KEY from the environment.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context) (*Gemini, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) AnalyzeProperty(ctx context.Context, property models.Property) (string, error) {
	prompt := fmt.Sprintf(
		"Act as a senior real estate investment analyst for the Egyptian market.\n"+
			"Analyze the following investment opportunity concisely for a retail investor.\n\n"+
			"Property Details:\n"+
			"- Title: %s\n- Location: %s\n- Type: %s\n- Total Price: EGP %.0f\n"+
			"- Expected ROI: %.1f%%\n- Rental Yield: %.1f%%\n- Description: %s\n\n"+
			"Provide a response in the following format (Markdown):\n"+
			"**Investment Verdict:** (Bullish/Neutral/Bearish)\n\n"+
			"**Pros:**\n* (Point 1)\n* (Point 2)\n\n"+
			"**Risks:**\n* (Point 1)\n* (Point 2)\n\n"+
			"**Recommendation:** (Short summary sentence)",
		property.Title, property.Location, property.Category, property.TotalPrice,
		property.ExpectedROI, property.RentalYield, property.Description,
	)
	return g.generate(ctx, prompt)
}

func (g *Gemini) MarketSummary(ctx context.Context) (string, error) {
	return g.generate(ctx,
		"Provide a 3-sentence summary of the current real estate investment climate in Egypt (New Capital, North Coast, Sheikh Zayed) for micro-investors.")
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}
