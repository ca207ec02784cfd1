package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type captureSender struct {
	mu   sync.Mutex
	sent []Winner
	fail map[string]bool
}

func (c *captureSender) Send(_ context.Context, w Winner) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail[w.Email] {
		return errors.New("delivery refused")
	}
	c.sent = append(c.sent, w)
	return nil
}

func (c *captureSender) delivered() []Winner {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Winner(nil), c.sent...)
}

func TestDispatcherDelivers(t *testing.T) {
	sender := &captureSender{}
	dispatcher := NewDispatcher(sender, 4)

	dispatcher.Dispatch(Winner{Email: "a@example.com", TreasureID: 1, DistanceMeters: 120})
	dispatcher.Dispatch(Winner{Email: "b@example.com", TreasureID: 1, DistanceMeters: 450})
	dispatcher.Close()

	sent := sender.delivered()
	if len(sent) != 2 {
		t.Fatalf("expected two notices, got %d", len(sent))
	}
	if sent[0].Email != "a@example.com" || sent[1].Email != "b@example.com" {
		t.Fatalf("unexpected delivery order %v", sent)
	}
}

func TestDispatcherSwallowsSendFailures(t *testing.T) {
	sender := &captureSender{fail: map[string]bool{"broken@example.com": true}}
	dispatcher := NewDispatcher(sender, 4)

	dispatcher.Dispatch(Winner{Email: "broken@example.com", TreasureID: 1})
	dispatcher.Dispatch(Winner{Email: "fine@example.com", TreasureID: 1})
	dispatcher.Close()

	sent := sender.delivered()
	if len(sent) != 1 || sent[0].Email != "fine@example.com" {
		t.Fatalf("expected the failure to be skipped, got %v", sent)
	}
}

func TestDispatchAfterCloseDropsNotice(t *testing.T) {
	sender := &captureSender{}
	dispatcher := NewDispatcher(sender, 1)
	dispatcher.Close()

	// Must not panic; the notice is dropped.
	dispatcher.Dispatch(Winner{Email: "late@example.com", TreasureID: 1})

	if sent := sender.delivered(); len(sent) != 0 {
		t.Fatalf("expected no deliveries after close, got %v", sent)
	}
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	dispatcher := NewDispatcher(&captureSender{}, 1)
	done := make(chan struct{})
	go func() {
		dispatcher.Close()
		dispatcher.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not return")
	}
}
