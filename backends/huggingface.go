package backends

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"draftmail/config"

	"github.com/valyala/fasthttp"
)

// HuggingFaceGenerator calls a hosted text-generation pipeline
type HuggingFaceGenerator struct {
	url     string
	token   string
	params  hfParameters
	timeout time.Duration
	client  *fasthttp.Client
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHuggingFaceGenerator creates a generator for cfg.Model under cfg.Endpoint
func NewHuggingFaceGenerator(cfg config.HuggingFaceConfig) *HuggingFaceGenerator {
	return &HuggingFaceGenerator{
		url:   strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Model,
		token: cfg.Token,
		params: hfParameters{
			MaxNewTokens: cfg.MaxNewTokens,
			Temperature:  cfg.Temperature,
			DoSample:     cfg.DoSample,
		},
		timeout: seconds(cfg.TimeoutSeconds),
		client:  &fasthttp.Client{Name: userAgent},
	}
}

// Generate implements drafter.Generator
func (g *HuggingFaceGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload := hfRequest{Inputs: prompt, Parameters: g.params}
	payload.Options.WaitForModel = true

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if g.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+g.token)
	}
	req.SetBody(body)

	if err := do(ctx, g.client, req, resp, g.timeout); err != nil {
		return "", fmt.Errorf("huggingface request: %w", err)
	}

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		var apiErr hfError
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("huggingface: %d %s", status, apiErr.Error)
		}
		return "", fmt.Errorf("huggingface: unexpected status %d", status)
	}

	var generations []hfGeneration
	if err := json.Unmarshal(resp.Body(), &generations); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("huggingface: empty response")
	}
	return generations[0].GeneratedText, nil
}
