package mock

import (
	"context"
	"net/http"
	"testing"
)

func TestReferenceData(t *testing.T) {
	t.Parallel()
	_, srv := newFakeAPI(t)
	c := newTestClient(srv)
	ctx := context.Background()

	pairs, err := c.GetLanguagePairs(ctx)
	if err != nil || pairs.StatusCode != http.StatusOK {
		t.Fatalf("GetLanguagePairs: resp=%v err=%v", pairs, err)
	}
	if got := pairs.Get("objects.0.lang_pair.target_language.shortname").String(); got != "pt" {
		t.Fatalf("unexpected language pair target %q", got)
	}

	tones, err := c.GetTones(ctx)
	if err != nil || tones.Get("objects.0.tone.name").String() != "Informal" {
		t.Fatalf("GetTones: body=%s err=%v", tones, err)
	}

	topics, err := c.GetTopics(ctx)
	if err != nil || topics.Get("objects.0.topic.name").String() != "politics" {
		t.Fatalf("GetTopics: body=%s err=%v", topics, err)
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()
	_, srv := newFakeAPI(t)
	c := newTestClient(srv)

	resp, err := c.GetWordCount(context.Background(), "the quick brown fox")
	if err != nil {
		t.Fatalf("GetWordCount: %v", err)
	}
	if got := resp.Get("word_count").Int(); got != 4 {
		t.Fatalf("word_count = %d, want 4", got)
	}
	v, err := resp.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if _, ok := v.(map[string]any); !ok {
		t.Fatalf("expected object body, got %T", v)
	}
}
