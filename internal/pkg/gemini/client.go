package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guonaihong/gout"
)

var (
	ErrEmptyReply   = errors.New("empty model reply")
	ErrInvalidReply = errors.New("invalid model reply")
)

// Client calls the generateContent REST endpoint of the Gemini API and asks
// for a structured JSON reply. It is the only outbound network dependency of
// the whole service.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
}

func New(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Suggestion is the structured reply the model is asked to produce.
type Suggestion struct {
	RecommendedMethod string `json:"recommendedMethod"`
	Reason            string `json:"reason"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// SuggestPaymentMethod sends the prompt and returns the decoded suggestion.
// A reply whose method is not in allowed is rejected as invalid.
func (c *Client) SuggestPaymentMethod(ctx context.Context, prompt string, allowed []string) (*Suggestion, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"recommendedMethod": map[string]any{"type": "STRING", "enum": allowed},
					"reason":            map[string]any{"type": "STRING"},
				},
				"required": []string{"recommendedMethod", "reason"},
			},
		},
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	var resp generateResponse
	var code int
	err := gout.POST(url).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetQuery(gout.H{"key": c.apiKey}).
		SetJSON(req).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, err
	}
	if code != 200 {
		return nil, fmt.Errorf("gemini returned status %d", code)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyReply
	}

	raw := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	var out Suggestion
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}

	for _, name := range allowed {
		if out.RecommendedMethod == name {
			return &out, nil
		}
	}
	return nil, ErrInvalidReply
}
