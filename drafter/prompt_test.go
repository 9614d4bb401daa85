package drafter

import (
	"strings"
	"testing"

	"draftmail/models"
)

func TestBuildPrompt(t *testing.T) {
	req := models.DraftRequest{
		Subject: "Quarterly review",
		Context: "  Let's meet on Friday.\nBring the numbers.\r\nThanks  ",
		Tone:    models.ToneFriendly,
	}

	want := "Write a friendly and professional email.\n" +
		"Subject: Quarterly review\n" +
		"Details: Let's meet on Friday. Bring the numbers. Thanks\n" +
		"The email should be polite, clear, and well-structured."

	got := BuildPrompt(req)
	if got != want {
		t.Errorf("BuildPrompt =\n%q\nwant\n%q", got, want)
	}
	if again := BuildPrompt(req); again != got {
		t.Errorf("BuildPrompt is not deterministic: %q vs %q", got, again)
	}
}

func TestBuildPromptLowercasesTone(t *testing.T) {
	for _, tone := range models.Tones {
		prompt := BuildPrompt(models.DraftRequest{Subject: "s", Context: "c", Tone: tone})
		want := "Write a " + strings.ToLower(string(tone)) + " and professional email."
		if !strings.HasPrefix(prompt, want) {
			t.Errorf("prompt for %s = %q, want prefix %q", tone, prompt, want)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		context string
		want    bool
	}{
		{"both present", "Hello", "Details", true},
		{"empty subject", "", "Details", false},
		{"blank subject", "   ", "Details", false},
		{"empty context", "Hello", "", false},
		{"blank context", "Hello", " \n\t ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Valid(models.DraftRequest{Subject: tt.subject, Context: tt.context})
			if got != tt.want {
				t.Errorf("Valid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderFallback(t *testing.T) {
	req := models.DraftRequest{
		Subject: "Server outage",
		Context: "The API was down\nfor an hour.",
	}

	want := "\nSubject: Server outage\n\n" +
		"Dear [Recipient's Name],\n\n" +
		"I hope you're doing well. I am writing to discuss the following matter: The API was down for an hour.. " +
		"Please let me know if you need any additional information.\n\n" +
		"Thank you for your time and consideration.\n\n" +
		"Best regards,\n[Your Name]\n"

	if got := RenderFallback(req); got != want {
		t.Errorf("RenderFallback =\n%q\nwant\n%q", got, want)
	}

	req.SenderName = "Asha"
	if got := RenderFallback(req); !strings.HasSuffix(got, "Best regards,\nAsha\n") {
		t.Errorf("fallback with sender = %q", got)
	}
}

func TestSign(t *testing.T) {
	if got := Sign("Body", ""); got != "Body" {
		t.Errorf("Sign without sender = %q", got)
	}
	if got := Sign("Body", "Asha"); got != "Body\n\nBest regards,\nAsha" {
		t.Errorf("Sign = %q", got)
	}
}
