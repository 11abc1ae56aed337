package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmitDeliversToSubscriber(t *testing.T) {
	bus := NewBus()

	received := make(chan SnapshotRefreshedEvent, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeSnapshotRefreshed, func(ctx context.Context, event Event) {
		defer wg.Done()
		if refreshed, ok := event.(SnapshotRefreshedEvent); ok {
			received <- refreshed
		} else {
			t.Errorf("Expected SnapshotRefreshedEvent, got %T", event)
		}
	})

	sent := SnapshotRefreshedEvent{
		FetchedAt:  time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
		EntryCount: 42,
		TeamCount:  3,
		Forced:     true,
	}
	bus.Emit(context.Background(), sent)
	wg.Wait()

	select {
	case got := <-received:
		assert.Equal(t, sent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not received within timeout")
	}
}

func TestEmitReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(3)
	for range 3 {
		bus.Subscribe(EventTypeSnapshotRefreshed, func(ctx context.Context, event Event) {
			wg.Done()
		})
	}

	bus.Emit(context.Background(), SnapshotRefreshedEvent{EntryCount: 1})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Not all handlers were invoked within timeout")
	}
}

func TestEmitWithoutSubscribers(t *testing.T) {
	bus := NewBus()

	// Must not block or panic.
	bus.Emit(context.Background(), SnapshotRefreshedEvent{})
}

func TestHandlerPanicDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe(EventTypeSnapshotRefreshed, func(ctx context.Context, event Event) {
		panic("handler failure")
	})
	bus.Subscribe(EventTypeSnapshotRefreshed, func(ctx context.Context, event Event) {
		wg.Done()
	})

	bus.Emit(context.Background(), SnapshotRefreshedEvent{})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Surviving handler was not invoked")
	}
}
