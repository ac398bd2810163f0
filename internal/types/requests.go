package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ------------------------------
// Request Types
// ------------------------------

// Options holds arbitrary request fields merged into a payload.
type Options map[string]any

// TranslationRequest is one translation job. Extra carries fields the struct
// does not model; they are written after the typed fields and win on
// collision.
type TranslationRequest struct {
	Text           string         `json:"text"`
	TargetLanguage string         `json:"target_language"`
	SourceLanguage string         `json:"source_language,omitempty"`
	CallbackURL    string         `json:"callback_url,omitempty"`
	Formality      string         `json:"formality,omitempty"`
	Instructions   string         `json:"instructions,omitempty"`
	TextFormat     string         `json:"text_format,omitempty"`
	Topics         []string       `json:"topics,omitempty"`
	Extra          map[string]any `json:"-"`
}

// MarshalJSON encodes the typed fields in declaration order followed by Extra.
func (r TranslationRequest) MarshalJSON() ([]byte, error) {
	type plain TranslationRequest
	body, err := EncodeJSON(plain(r))
	if err != nil {
		return nil, err
	}
	return MergeOptions(body, r.Extra, true)
}

// translationFields are the JSON names modelled by TranslationRequest.
var translationFields = []string{
	"text", "target_language", "source_language", "callback_url",
	"formality", "instructions", "text_format", "topics",
}

// UnmarshalJSON fills the typed fields and keeps every other field in Extra.
func (r *TranslationRequest) UnmarshalJSON(data []byte) error {
	type plain TranslationRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range translationFields {
		delete(all, k)
	}
	*r = TranslationRequest(p)
	r.Extra = nil
	if len(all) > 0 {
		r.Extra = make(map[string]any, len(all))
		for k, v := range all {
			r.Extra[k] = v
		}
	}
	return nil
}

// XliffOrderRequest is the base payload of an XLIFF order.
type XliffOrderRequest struct {
	Content        string `json:"content"`
	TargetLanguage string `json:"target_language"`
}

// WordCountRequest is the payload of a word count query.
type WordCountRequest struct {
	Text string `json:"text"`
}

// BulkTranslationRequest is the PATCH body of a bulk submission.
type BulkTranslationRequest struct {
	Objects []json.RawMessage `json:"objects"`
}

// EncodeJSON marshals v without HTML escaping, so markup in text and XLIFF
// content is sent as written.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MergeOptions writes opts into the JSON object body in sorted key order.
// With overwrite, existing keys are replaced in place; without it, opts only
// fill keys body does not already have.
func MergeOptions(body []byte, opts map[string]any, overwrite bool) ([]byte, error) {
	if len(opts) == 0 {
		return body, nil
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var err error
	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("merge options: empty field name")
		}
		path := gjson.Escape(k)
		if !overwrite && gjson.GetBytes(body, path).Exists() {
			continue
		}
		if raw, ok := opts[k].(json.RawMessage); ok {
			body, err = sjson.SetRawBytes(body, path, raw)
		} else {
			body, err = sjson.SetBytes(body, path, opts[k])
		}
		if err != nil {
			return nil, fmt.Errorf("merge option %q: %w", k, err)
		}
	}
	return body, nil
}
