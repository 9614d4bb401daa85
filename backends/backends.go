// Package backends holds the external services a draft passes through: the
// text-generation backends and the translation backend.
package backends

import (
	"context"
	"fmt"
	"time"

	"draftmail/config"
	"draftmail/drafter"

	"github.com/valyala/fasthttp"
)

const userAgent = "draftmail/1.0"

// NewGenerator builds the generation backend chosen in cfg
func NewGenerator(cfg *config.Config) (drafter.Generator, error) {
	switch cfg.Generator.Backend {
	case config.BackendOllama:
		return NewOllamaGenerator(cfg.Ollama), nil
	case config.BackendHuggingFace:
		return NewHuggingFaceGenerator(cfg.HuggingFace), nil
	default:
		return nil, fmt.Errorf("unknown generator backend %q", cfg.Generator.Backend)
	}
}

// NewTranslator builds the translation backend
func NewTranslator(cfg *config.Config) drafter.Translator {
	return NewGoogleTranslator(cfg.Translator)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// do runs req on client, honouring whichever comes first of ctx's deadline
// and timeout. A zero timeout means the request waits for ctx alone.
func do(ctx context.Context, client *fasthttp.Client, req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline, hasDeadline := ctx.Deadline()
	if timeout > 0 {
		if limit := time.Now().Add(timeout); !hasDeadline || limit.Before(deadline) {
			deadline, hasDeadline = limit, true
		}
	}

	if hasDeadline {
		return client.DoDeadline(req, resp, deadline)
	}
	return client.Do(req, resp)
}
