package backends

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"draftmail/config"
	"draftmail/utils"

	"github.com/ollama/ollama/api"
)

// OllamaGenerator sends prompts to a locally hosted instruction model
type OllamaGenerator struct {
	host    string
	model   string
	timeout time.Duration

	once    sync.Once
	client  *api.Client
	initErr error
}

// NewOllamaGenerator creates a generator; the client is built on first use
// and reused for the life of the process.
func NewOllamaGenerator(cfg config.OllamaConfig) *OllamaGenerator {
	return &OllamaGenerator{
		host:    cfg.Host,
		model:   cfg.Model,
		timeout: seconds(cfg.TimeoutSeconds),
	}
}

func (g *OllamaGenerator) handle() (*api.Client, error) {
	g.once.Do(func() {
		base, err := url.Parse(g.host)
		if err != nil {
			g.initErr = fmt.Errorf("invalid ollama host %q: %w", g.host, err)
			return
		}
		g.client = api.NewClient(base, &http.Client{Timeout: g.timeout})
		utils.Log.Info("Ollama client ready (host=%s, model=%s)", base.Host, g.model)
	})
	return g.client, g.initErr
}

// Generate implements drafter.Generator
func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := g.handle()
	if err != nil {
		return "", err
	}

	stream := false
	req := &api.GenerateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var out strings.Builder
	err = client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return out.String(), nil
}
