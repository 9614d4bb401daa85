package backends

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"draftmail/config"

	"github.com/valyala/fasthttp"
	"golang.org/x/net/html"
)

// MaxTranslationLength is the largest text, in characters, the service accepts
const MaxTranslationLength = 5000

// resultClasses are the elements of the mobile page holding the translation,
// in the order they are tried.
var resultClasses = []string{"t0", "result-container"}

// GoogleTranslator scrapes the Google Translate mobile page
type GoogleTranslator struct {
	endpoint string
	timeout  time.Duration
	client   *fasthttp.Client
}

// NewGoogleTranslator creates a translator for cfg.Endpoint
func NewGoogleTranslator(cfg config.TranslatorConfig) *GoogleTranslator {
	return &GoogleTranslator{
		endpoint: cfg.Endpoint,
		timeout:  seconds(cfg.TimeoutSeconds),
		client:   &fasthttp.Client{Name: userAgent},
	}
}

// Translate implements drafter.Translator
func (t *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if n := utf8.RuneCountInString(text); n > MaxTranslationLength {
		return "", fmt.Errorf("text is %d characters, limit is %d", n, MaxTranslationLength)
	}

	sl, err := LanguageCode(source)
	if err != nil {
		return "", err
	}
	tl, err := LanguageCode(target)
	if err != nil {
		return "", err
	}
	if sl == tl {
		return text, nil
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(t.endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	args := req.URI().QueryArgs()
	args.Add("sl", sl)
	args.Add("tl", tl)
	args.Add("q", text)

	if err := do(ctx, t.client, req, resp, t.timeout); err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusTooManyRequests:
		return "", fmt.Errorf("translate: too many requests")
	case status != fasthttp.StatusOK:
		return "", fmt.Errorf("translate: unexpected status %d", status)
	}

	translated, err := extractTranslation(resp.Body())
	if err != nil {
		return "", err
	}
	return translated, nil
}

// extractTranslation pulls the text of the first result element out of page
func extractTranslation(page []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse translation page: %w", err)
	}

	for _, class := range resultClasses {
		if node := findByClass(doc, class); node != nil {
			if text := strings.TrimSpace(textContent(node)); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("translation not found in response")
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			sb.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
