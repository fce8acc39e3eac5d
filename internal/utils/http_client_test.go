package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded *resty.Client")
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)

	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %v", got)
	}
}

func TestNewHTTPClient_NoRetries(t *testing.T) {
	client := NewHTTPClient(time.Second)

	if client.RetryCount != 0 {
		t.Fatalf("expected no retries, got %d", client.RetryCount)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(time.Second)
	client2 := NewHTTPClient(time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return independent *resty.Client instances")
	}
}

func TestNewHTTPClient_UserAgent(t *testing.T) {
	client := NewHTTPClient(0)

	if ua := client.Header.Get("User-Agent"); ua != UserAgent {
		t.Fatalf("expected User-Agent %q, got %q", UserAgent, ua)
	}
}
