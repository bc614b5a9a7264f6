package redis

import (
	"context"
	"fmt"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestNewClientRoundTrip(t *testing.T) {
	s := miniredis.RunT(t)

	ctx := context.Background()
	client, err := NewClient(ctx, fmt.Sprintf("redis://%s", s.Addr()))
	if err != nil {
		t.Fatalf("expected client, got error: %v", err)
	}
	defer client.Close()

	if err := client.Set(ctx, "probe", "ok", 0).Err(); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := client.Get(ctx, "probe").Result()
	if err != nil || got != "ok" {
		t.Fatalf("round trip failed: got %q err %v", got, err)
	}
}

func TestNewClientFailures(t *testing.T) {
	downServer := miniredis.RunT(t)
	downURL := fmt.Sprintf("redis://%s", downServer.Addr())
	downServer.Close()

	tests := []struct {
		name string
		url  string
	}{
		{name: "unparseable url", url: "://bad-url"},
		{name: "unreachable server", url: downURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(context.Background(), tt.url); err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
		})
	}
}
