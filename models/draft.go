package models

import "strings"

// DownloadFilename is the name offered for every downloaded draft
const DownloadFilename = "email_draft.txt"

// Tone controls the register the generated email is written in
type Tone string

const (
	ToneFormal     Tone = "Formal"
	ToneFriendly   Tone = "Friendly"
	TonePersuasive Tone = "Persuasive"
)

// Tones lists the tones in the order the form offers them
var Tones = []Tone{ToneFormal, ToneFriendly, TonePersuasive}

// ParseTone matches a tone case-insensitively, falling back to Formal
func ParseTone(s string) Tone {
	for _, t := range Tones {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t
		}
	}
	return ToneFormal
}

// OutputLanguage is the language the final draft is delivered in
type OutputLanguage string

const (
	English  OutputLanguage = "English"
	Hindi    OutputLanguage = "Hindi"
	Gujarati OutputLanguage = "Gujarati"
	French   OutputLanguage = "French"
	Spanish  OutputLanguage = "Spanish"
)

// Languages lists the output languages in the order the form offers them
var Languages = []OutputLanguage{English, Hindi, Gujarati, French, Spanish}

// ParseLanguage matches a language case-insensitively, falling back to English
func ParseLanguage(s string) OutputLanguage {
	for _, l := range Languages {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l
		}
	}
	return English
}

// TranslationTarget returns the lower-cased name sent to the translator
func (l OutputLanguage) TranslationTarget() string {
	return strings.ToLower(string(l))
}

// DraftRequest holds everything the user typed into the form
type DraftRequest struct {
	Category   Category       `json:"category" form:"category"`
	Subject    string         `json:"subject" form:"subject"`
	Context    string         `json:"context" form:"context"`
	Tone       Tone           `json:"tone" form:"tone"`
	Language   OutputLanguage `json:"language" form:"language"`
	SenderName string         `json:"sender_name" form:"sender_name"`
}

// Normalize resolves tone, language and category to known values
func (r *DraftRequest) Normalize() {
	r.Category = ParseCategory(string(r.Category))
	r.Tone = ParseTone(string(r.Tone))
	r.Language = ParseLanguage(string(r.Language))
	r.SenderName = strings.TrimSpace(r.SenderName)
}

// FinalDraft is the text presented to the user, real or fallback
type FinalDraft struct {
	Text     string         `json:"text"`
	Fallback bool           `json:"fallback"`
	Warnings []string       `json:"warnings,omitempty"`
	Prompt   string         `json:"-"`
	Language OutputLanguage `json:"language"`
	Filename string         `json:"filename"`
}
