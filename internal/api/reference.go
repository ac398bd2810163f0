package api

import (
	"context"
	"net/url"

	"github.com/unbabel/tapi/client/internal/types"
)

// GetLanguagePairs lists the language pairs available to the account.
func GetLanguagePairs(ctx context.Context, d *Dispatcher) (*types.Response, error) {
	return d.Request(ctx, "/language_pair/", url.Values{}, MethodGet)
}

// GetTones lists the tones available in the platform.
func GetTones(ctx context.Context, d *Dispatcher) (*types.Response, error) {
	return d.Request(ctx, "/tone/", url.Values{}, MethodGet)
}

// GetTopics lists the topics available in the platform.
func GetTopics(ctx context.Context, d *Dispatcher) (*types.Response, error) {
	return d.Request(ctx, "/topic/", url.Values{}, MethodGet)
}

// GetWordCount asks the API to count the words in text.
func GetWordCount(ctx context.Context, d *Dispatcher, text string) (*types.Response, error) {
	return d.Request(ctx, "/wordcount/", types.WordCountRequest{Text: text}, MethodPost)
}
