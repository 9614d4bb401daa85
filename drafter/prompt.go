package drafter

import (
	"fmt"
	"strings"

	"draftmail/models"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// NormalizeContext trims the context and folds line breaks into single spaces
func NormalizeContext(context string) string {
	return lineBreaks.Replace(strings.TrimSpace(context))
}

// Valid reports whether req carries enough to attempt generation
func Valid(req models.DraftRequest) bool {
	return strings.TrimSpace(req.Subject) != "" && strings.TrimSpace(req.Context) != ""
}

// BuildPrompt formats the instruction sent to the generation backend.
// Callers must check Valid first.
func BuildPrompt(req models.DraftRequest) string {
	return fmt.Sprintf(
		"Write a %s and professional email.\nSubject: %s\nDetails: %s\nThe email should be polite, clear, and well-structured.",
		strings.ToLower(string(req.Tone)),
		req.Subject,
		NormalizeContext(req.Context),
	)
}

const fallbackTemplate = `
Subject: %s

Dear [Recipient's Name],

I hope you're doing well. I am writing to discuss the following matter: %s. Please let me know if you need any additional information.

Thank you for your time and consideration.

Best regards,
%s
`

// PlaceholderSender signs the fallback when no sender name was given
const PlaceholderSender = "[Your Name]"

// RenderFallback builds the offline draft used whenever generation fails
func RenderFallback(req models.DraftRequest) string {
	sender := strings.TrimSpace(req.SenderName)
	if sender == "" {
		sender = PlaceholderSender
	}
	return fmt.Sprintf(fallbackTemplate, req.Subject, NormalizeContext(req.Context), sender)
}

// Sign appends the signature block for sender, if any
func Sign(draft, sender string) string {
	if sender == "" {
		return draft
	}
	return draft + "\n\nBest regards,\n" + sender
}
