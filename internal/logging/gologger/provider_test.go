package gologger

import "testing"

func TestNewProviderCreatesLogger(t *testing.T) {
	p, err := NewProvider(Config{Level: "error", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	logger := p.GetLogger("interviewdocs.test")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	logger.Debug("provider.initialised")
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewProviderRejectsUnknownLevel(t *testing.T) {
	if _, err := NewProvider(Config{Level: "loud"}); err == nil {
		t.Fatal("expected error for unsupported level")
	}
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	if p.GetLogger("x") == nil {
		t.Fatal("expected no-op logger")
	}
}
