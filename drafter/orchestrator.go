// Package drafter turns a DraftRequest into the email shown to the user.
//
// A run moves through Validating, Generating and Finalizing before ending in
// Rendered. Any generation problem ends the run in Fallback instead, with a
// draft built from the request alone. Translation problems never do: the
// untranslated draft is kept and a warning is attached.
package drafter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"draftmail/models"
	"draftmail/utils"
)

// MinDraftLength is the number of characters a trimmed backend answer must
// exceed to be accepted.
const MinDraftLength = 20

// Warning message IDs, resolved against the UI catalogs by the handlers
const (
	WarningMissingFields     = "warning_missing_fields"
	WarningTranslationFailed = "warning_translation_failed"
)

var (
	// ErrMissingFields rejects a request before any backend is called
	ErrMissingFields = errors.New("subject and details are required")
	// ErrGenerationFailed covers backend errors and unusable output alike
	ErrGenerationFailed = errors.New("generation failed")
	// ErrTranslationFailed is recovered inside Finalize and never returned by Draft
	ErrTranslationFailed = errors.New("translation failed")
)

// State is a step of a single drafting run
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateGenerating State = "generating"
	StateFinalizing State = "finalizing"
	StateRendered   State = "rendered"
	StateFallback   State = "fallback"
)

// Observer is told about every state a run enters
type Observer func(State)

// Generator produces email text for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Translator converts text into the target language. Target is a lower-cased
// English language name such as "hindi".
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Orchestrator runs the drafting flow against one generator and one translator
type Orchestrator struct {
	generator  Generator
	translator Translator
	log        *utils.Logger
}

// New creates an orchestrator. translator may be nil, in which case every
// non-English request ends with a translation warning.
func New(generator Generator, translator Translator) *Orchestrator {
	return &Orchestrator{
		generator:  generator,
		translator: translator,
		log:        utils.Log.WithField("component", "drafter"),
	}
}

// Generate makes exactly one backend call and validates its answer
func (o *Orchestrator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := o.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) <= MinDraftLength {
		return "", fmt.Errorf("%w: output too short or incoherent", ErrGenerationFailed)
	}
	return text, nil
}

// Finalize signs the draft and translates it when needed
func (o *Orchestrator) Finalize(ctx context.Context, draft, senderName string, language models.OutputLanguage) *models.FinalDraft {
	final := &models.FinalDraft{
		Text:     Sign(draft, senderName),
		Language: language,
		Filename: models.DownloadFilename,
	}

	if language == models.English {
		return final
	}

	translated, err := o.translate(ctx, final.Text, language)
	if err != nil {
		o.log.WithField("language", language).Warn("Keeping English draft: %v", err)
		final.Language = models.English
		final.Warnings = append(final.Warnings, WarningTranslationFailed)
		return final
	}

	final.Text = translated
	return final
}

func (o *Orchestrator) translate(ctx context.Context, text string, language models.OutputLanguage) (string, error) {
	if o.translator == nil {
		return "", fmt.Errorf("%w: no translator configured", ErrTranslationFailed)
	}
	translated, err := o.translator.Translate(ctx, text, "auto", language.TranslationTarget())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	return translated, nil
}

// Fallback wraps RenderFallback in a FinalDraft
func Fallback(req models.DraftRequest) *models.FinalDraft {
	return &models.FinalDraft{
		Text:     RenderFallback(req),
		Fallback: true,
		Language: models.English,
		Filename: models.DownloadFilename,
	}
}

// Draft runs the whole flow for req. The only error it returns is
// ErrMissingFields; every other failure is folded into the returned draft.
func (o *Orchestrator) Draft(ctx context.Context, req models.DraftRequest, observe Observer) (*models.FinalDraft, error) {
	notify := func(s State) {
		if observe != nil {
			observe(s)
		}
	}

	req.Normalize()
	log := o.log.WithFields(map[string]interface{}{
		"category": req.Category,
		"tone":     req.Tone,
		"language": req.Language,
	})

	notify(StateValidating)
	if !Valid(req) {
		notify(StateIdle)
		return nil, ErrMissingFields
	}

	prompt := BuildPrompt(req)

	notify(StateGenerating)
	text, err := o.Generate(ctx, prompt)
	if err != nil {
		log.Warn("Serving fallback draft: %v", err)
		notify(StateFallback)
		final := Fallback(req)
		final.Prompt = prompt
		return final, nil
	}

	notify(StateFinalizing)
	final := o.Finalize(ctx, text, req.SenderName, req.Language)
	final.Prompt = prompt

	log.Debug("Draft rendered (%d characters)", utf8.RuneCountInString(final.Text))
	notify(StateRendered)
	return final, nil
}
