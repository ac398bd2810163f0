package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/unbabel/tapi/client/internal/types"
)

// SubmitTranslation requests a single translation. opts are merged after
// text and target_language and override them on collision.
func SubmitTranslation(ctx context.Context, d *Dispatcher, text, targetLanguage string, opts types.Options) (*types.Response, error) {
	body, err := types.EncodeJSON(types.TranslationRequest{Text: text, TargetLanguage: targetLanguage})
	if err != nil {
		return nil, err
	}
	body, err = types.MergeOptions(body, opts, true)
	if err != nil {
		return nil, err
	}
	return d.Request(ctx, "/translation/", json.RawMessage(body), MethodPost)
}

// SubmitBulkTranslation submits entries in one PATCH. opts act as defaults:
// a field already set on an entry is kept. The objects array preserves entry
// order since the response correlates with it positionally.
func SubmitBulkTranslation(ctx context.Context, d *Dispatcher, entries []types.TranslationRequest, opts types.Options) (*types.Response, error) {
	bulk := types.BulkTranslationRequest{Objects: make([]json.RawMessage, 0, len(entries))}
	for i, entry := range entries {
		obj, err := types.EncodeJSON(entry)
		if err != nil {
			return nil, fmt.Errorf("bulk entry %d: %w", i, err)
		}
		obj, err = types.MergeOptions(obj, opts, false)
		if err != nil {
			return nil, fmt.Errorf("bulk entry %d: %w", i, err)
		}
		bulk.Objects = append(bulk.Objects, obj)
	}
	return d.Request(ctx, "/translation/", bulk, MethodPatch)
}

// GetTranslation fetches a job by uid.
func GetTranslation(ctx context.Context, d *Dispatcher, uid string) (*types.Response, error) {
	return d.Request(ctx, fmt.Sprintf("/translation/%s/", url.PathEscape(uid)), url.Values{}, MethodGet)
}

// GetJobsWithStatus lists jobs in the given status. The status is validated
// locally and nothing is sent when it is not recognised.
func GetJobsWithStatus(ctx context.Context, d *Dispatcher, status string) (*types.Response, error) {
	s, err := types.ValidateJobStatus(status)
	if err != nil {
		invalidArgumentsTotal.WithLabelValues("status").Inc()
		return nil, err
	}
	return d.Request(ctx, "/translation/", url.Values{"status": {string(s)}}, MethodGet)
}
