package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/anashany189-droid/ShareEstate1/models"
)

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type groqResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Groq talks to an OpenAI-compatible chat-completions endpoint. Credentials
// are read per call so the key can be rotated without a restart.
type Groq struct {
	client *http.Client
}

func NewGroq() *Groq {
	return &Groq{client: &http.Client{Timeout: 30 * time.Second}}
}

const groqSystemPrompt = "You are a senior real estate investment analyst for the Egyptian market, writing concise Markdown for retail investors."

func (g *Groq) AnalyzeProperty(ctx context.Context, property models.Property) (string, error) {
	prompt := fmt.Sprintf(
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
	return g.chat(ctx, []groqMessage{{Role: "user", Content: prompt}}, groqSystemPrompt)
}

func (g *Groq) MarketSummary(ctx context.Context) (string, error) {
	return g.chat(ctx, []groqMessage{{
		Role:    "user",
		Content: "Provide a 3-sentence summary of the current real estate investment climate in Egypt (New Capital, North Coast, Sheikh Zayed) for micro-investors.",
	}}, groqSystemPrompt)
}

func (g *Groq) chat(ctx context.Context, messages []groqMessage, systemPrompt string) (string, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY not set")
	}

	allMessages := []groqMessage{}
	if systemPrompt != "" {
		allMessages = append(allMessages, groqMessage{Role: "system", Content: systemPrompt})
	}
	allMessages = append(allMessages, messages...)

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.1-70b-versatile"
	}

	endpoint := os.Getenv("GROQ_BASE_URL")
	if endpoint == "" {
		endpoint = "https://api.groq.com/openai/v1/chat/completions"
	}

	reqBody := groqRequest{
		Model:       model,
		Messages:    allMessages,
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("groq API error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return chatResp.Choices[0].Message.Content, nil
}
