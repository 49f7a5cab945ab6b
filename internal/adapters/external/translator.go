package external

import (
	"context"
	"net/http"
	"strings"

	"citycast.app/internal/ports"
	"citycast.app/pkg/errors"
)

// TranslatorAdapter implements the Translator port against a translation
// proxy that answers POST {text, from, to}
type TranslatorAdapter struct {
	url     string
	fetcher *Fetcher
}

// TranslatorParams holds parameters for creating the translator adapter
type TranslatorParams struct {
	URL     string
	Fetcher *Fetcher
}

type translateRequest struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

// NewTranslatorAdapter creates a new translator adapter
func NewTranslatorAdapter(params TranslatorParams) *TranslatorAdapter {
	fetcher := params.Fetcher
	if fetcher == nil {
		fetcher = NewFetcher(FetcherParams{})
	}
	return &TranslatorAdapter{url: params.URL, fetcher: fetcher}
}

// Translate returns the first translation. A success:false body or an empty
// result is a translation error.
func (t *TranslatorAdapter) Translate(ctx context.Context, text, from, to string) (string, error) {
	resp, err := Fetch[translatorResponse](ctx, t.fetcher, Request{
		Method:   http.MethodPost,
		URL:      t.url,
		Endpoint: "translate",
		Body:     translateRequest{Text: text, From: from, To: to},
	})
	if err != nil {
		return "", errors.NewTranslationError("translator request failed", err)
	}

	if resp.Success != nil && !*resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "translator reported failure"
		}
		return "", errors.NewTranslationError(msg, nil)
	}
	if resp.Data == nil || resp.Data.Result == nil || len(resp.Data.Result.TransResult) == 0 {
		return "", errors.NewTranslationError("translator returned no result", nil)
	}

	translated := strings.TrimSpace(*resp.Data.Result.TransResult[0].Dst)
	if translated == "" {
		return "", errors.NewTranslationError("translator returned an empty result", nil)
	}
	return translated, nil
}

var _ ports.Translator = (*TranslatorAdapter)(nil)
