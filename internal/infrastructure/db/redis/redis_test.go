package redis

import (
	"context"
	"testing"
	"time"
)

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatalf("expected ping error for unreachable address")
	}
}

func TestRevokedKey(t *testing.T) {
	if got := revokedKey("abc"); got != "revoked:abc" {
		t.Fatalf("unexpected key %q", got)
	}
}
