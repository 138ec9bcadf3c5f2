package validation

import (
	"errors"
	"testing"
)

func TestCollectorEmptyIsNil(t *testing.T) {
	if err := NewCollector("config").Result(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestCollectorAggregates(t *testing.T) {
	c := NewCollector("question set")
	c.Add("version", "is required")
	c.Add("offset", "must be at least 1")

	err := c.Result()
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	want := "question set validation failed: version: is required; offset: must be at least 1"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if !verr.Has("offset") || verr.Has("questions") {
		t.Fatalf("unexpected fields: %+v", verr.Issues)
	}
}

func TestAddFuncFeedsCollector(t *testing.T) {
	c := NewCollector("config")
	var add AddFunc = c.Add
	add("sets[0]", "one of file or builtin is required")
	if err := c.Result(); err == nil {
		t.Fatalf("expected error")
	}
}
