package types

import (
	"encoding/json"
	"testing"
)

func TestResponse_Accessors(t *testing.T) {
	t.Parallel()
	r := &Response{StatusCode: 201, Body: []byte(`{"uid":"f94ec485db","status":"new","price":12.5,"objects":[{"uid":"a"}]}`)}
	if !r.IsSuccess() {
		t.Fatalf("201 should be success")
	}
	if got := r.Get("uid").String(); got != "f94ec485db" {
		t.Fatalf("uid = %q", got)
	}
	if got := r.Get("objects.0.uid").String(); got != "a" {
		t.Fatalf("objects.0.uid = %q", got)
	}
	v, err := r.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	if n, ok := m["price"].(json.Number); !ok || n.String() != "12.5" {
		t.Fatalf("price decoded as %#v", m["price"])
	}
	if r.String() != string(r.Body) {
		t.Fatalf("String mismatch")
	}
}

func TestResponse_NonJSONAndFailureStatus(t *testing.T) {
	t.Parallel()
	r := &Response{StatusCode: 401, Body: []byte("Unauthorized")}
	if r.IsSuccess() {
		t.Fatalf("401 should not be success")
	}
	if _, err := r.JSON(); err == nil {
		t.Fatalf("expected decode error")
	}
	var dst map[string]any
	if err := r.Decode(&dst); err == nil {
		t.Fatalf("expected Decode error")
	}
	if r.Get("uid").Exists() {
		t.Fatalf("unexpected value from non-JSON body")
	}
}
