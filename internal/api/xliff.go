package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/unbabel/tapi/client/internal/types"
)

// SubmitXliffOrder submits an XLIFF document. opts are merged after content
// and target_language and override them on collision.
func SubmitXliffOrder(ctx context.Context, d *Dispatcher, content, targetLanguage string, opts types.Options) (*types.Response, error) {
	body, err := types.EncodeJSON(types.XliffOrderRequest{Content: content, TargetLanguage: targetLanguage})
	if err != nil {
		return nil, err
	}
	body, err = types.MergeOptions(body, opts, true)
	if err != nil {
		return nil, err
	}
	return d.Request(ctx, "/xliff_order/", json.RawMessage(body), MethodPost)
}

// GetXliffOrder fetches an XLIFF order by uid.
func GetXliffOrder(ctx context.Context, d *Dispatcher, uid string) (*types.Response, error) {
	return d.Request(ctx, fmt.Sprintf("/xliff_order/%s/", url.PathEscape(uid)), url.Values{}, MethodGet)
}
