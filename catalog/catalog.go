// Package catalog fetches the language-scoped JSON catalog documents with
// a fixed fallback order: requested language, then German, then the
// language-neutral file.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"backend/models"
)

// FallbackLang is tried after the requested language.
const FallbackLang = "de"

// NotFoundError is returned when every candidate resource failed. Tried
// lists the attempted URLs in order; Last is the final candidate's error.
type NotFoundError struct {
	Tried []string
	Last  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("none of the files found: %s", strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return e.Last
}

// Loader fetches catalog documents from a base URL (the static site that
// also serves the browsing UI). Pure lookup, no state beyond the client.
type Loader struct {
	baseURL string
	client  *http.Client
}

// NewLoader returns a Loader for the given base URL, e.g.
// "https://example.com/data" or "http://localhost:5174/data".
func NewLoader(baseURL string) *Loader {
	return &Loader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NormalizeLang reduces a language tag to its base ("de-AT" -> "de").
// Unparseable input falls back to FallbackLang.
func NormalizeLang(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return FallbackLang
	}
	base, _ := tag.Base()
	return base.String()
}

// PriceList fetches the pricelist document for the given language.
func (l *Loader) PriceList(ctx context.Context, lang string) (*models.PriceList, error) {
	return fetchLocalized[models.PriceList](ctx, l, "pricelist", lang)
}

// Labor fetches the labor cost document for the given language.
func (l *Loader) Labor(ctx context.Context, lang string) (*models.LaborData, error) {
	return fetchLocalized[models.LaborData](ctx, l, "labor", lang)
}

// GroupInfo fetches the group description document for the given language.
func (l *Loader) GroupInfo(ctx context.Context, lang string) (*models.GroupInfoData, error) {
	return fetchLocalized[models.GroupInfoData](ctx, l, "groupinfo", lang)
}

// fetchLocalized tries base.<lang>.json, base.de.json, base.json in order
// and returns the first candidate that fetches and parses. A miss on a
// non-final candidate is swallowed; after the last one a NotFoundError
// carrying all attempted URLs surfaces.
func fetchLocalized[T any](ctx context.Context, l *Loader, base, lang string) (*T, error) {
	lang = NormalizeLang(lang)
	candidates := []string{fmt.Sprintf("%s/%s.%s.json", l.baseURL, base, lang)}
	if lang != FallbackLang {
		candidates = append(candidates, fmt.Sprintf("%s/%s.%s.json", l.baseURL, base, FallbackLang))
	}
	candidates = append(candidates, fmt.Sprintf("%s/%s.json", l.baseURL, base))

	var lastErr error
	for _, url := range candidates {
		var doc T
		if err := l.fetchJSON(ctx, url, &doc); err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return &doc, nil
	}
	return nil, &NotFoundError{Tried: candidates, Last: lastErr}
}

func (l *Loader) fetchJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decode: %w", url, err)
	}
	return nil
}
