package livefeed

import (
	"context"
	"sync"
	"testing"
	"time"

	"quotient/internal/shared/events"
)

func TestPublishReachesSubscriber(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := hub.Subscribe(ctx, "creator-1")
	event := events.Event{EventID: "evt-1", Name: "newNotification", UserID: "creator-1"}
	if err := hub.Publish(context.Background(), "creator-1", event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case received := <-feed:
		if received.EventID != "evt-1" {
			t.Fatalf("unexpected event %+v", received)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestPublishSkipsOtherUsers(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := hub.Subscribe(ctx, "creator-1")
	if err := hub.Publish(context.Background(), "creator-2", events.Event{EventID: "evt-1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case received := <-feed:
		t.Fatalf("unexpected delivery: %+v", received)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	hub := NewHub(nil)
	if err := hub.Publish(context.Background(), "creator-1", events.Event{EventID: "evt-1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if hub.HasSubscriber("creator-1") {
		t.Fatal("no subscriber expected")
	}
}

func TestSubscribeCancellationClosesChannel(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())

	feed := hub.Subscribe(ctx, "creator-1")
	if !hub.HasSubscriber("creator-1") {
		t.Fatal("expected registered subscriber")
	}

	cancel()

	select {
	case _, open := <-feed:
		if open {
			t.Fatal("expected closed channel after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancellation")
	}

	deadline := time.Now().Add(time.Second)
	for hub.HasSubscriber("creator-1") {
		if time.Now().After(deadline) {
			t.Fatal("subscriber not removed after cancellation")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPublishDuringUnsubscribeChurn(t *testing.T) {
	hub := NewHub(nil)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = hub.Publish(context.Background(), "creator-1", events.Event{EventID: "evt"})
				}
			}
		}()
	}

	// Repeatedly open and tear down subscriptions while publishes are in
	// flight. A send racing a teardown must never hit a closed channel.
	for i := 0; i < 200; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		feed := hub.Subscribe(ctx, "creator-1")
		cancel()
		for range feed {
		}
	}

	close(stop)
	wg.Wait()
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub.Subscribe(ctx, "creator-1")
	// Fill well past the channel buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			_ = hub.Publish(context.Background(), "creator-1", events.Event{EventID: "evt"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
