package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"penulis/internal/network"
)

const defaultBaseURL = "https://translate.googleapis.com"

// GoogleTranslator calls the unauthenticated Google web translation
// endpoint (the same one the gtx web client uses). No API key needed.
type GoogleTranslator struct {
	baseURL string
	clients *network.ClientFactory
	timeout time.Duration
}

// NewGoogleTranslator creates a translator against baseURL (empty selects
// the public endpoint).
func NewGoogleTranslator(baseURL string, clients *network.ClientFactory) *GoogleTranslator {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GoogleTranslator{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		clients: clients,
		timeout: 30 * time.Second,
	}
}

// Translate translates text from sourceLang to targetLang in one call.
func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	form := url.Values{}
	form.Set("client", "gtx")
	form.Set("sl", sourceLang)
	form.Set("tl", targetLang)
	form.Set("dt", "t")
	form.Set("q", text)

	endpoint := g.baseURL + "/translate_a/single"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := g.clients.NewHTTPClient(g.timeout)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}

	translated, err := decodePayload(body)
	if err != nil {
		return "", err
	}
	return translated, nil
}

// decodePayload extracts the translated text from the endpoint's nested
// array payload: [[["<translated>","<original>",...], ...], ...]. Long
// inputs come back as multiple segments that concatenate to the full text.
func decodePayload(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode translate payload: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate payload")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode translate segments: %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(segment[0], &part); err != nil {
			// Trailing segments may carry non-text metadata.
			continue
		}
		sb.WriteString(part)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("translate payload contained no text")
	}
	return sb.String(), nil
}
