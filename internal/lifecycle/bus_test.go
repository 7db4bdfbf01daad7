package lifecycle

import "testing"

func TestBusPublishReachesSubscribers(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(EventBucketChanged, func(payload string) {
		got = append(got, payload)
	})

	bus.Publish(EventBucketChanged, "Round 5")
	bus.Publish(EventBucketChanged, "Round 6")

	if len(got) != 2 || got[0] != "Round 5" || got[1] != "Round 6" {
		t.Fatalf("unexpected payloads %v", got)
	}
}

func TestBusKindsAreIsolated(t *testing.T) {
	bus := NewBus()
	var fg, bg int
	bus.Subscribe(EventAppForeground, func(string) { fg++ })
	bus.Subscribe(EventAppBackground, func(string) { bg++ })

	bus.Publish(EventAppForeground, "")

	if fg != 1 || bg != 0 {
		t.Fatalf("fg=%d bg=%d", fg, bg)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	var calls int
	unsub := bus.Subscribe(EventAppForeground, func(string) { calls++ })

	bus.Publish(EventAppForeground, "")
	unsub()
	unsub() // second call is a no-op
	bus.Publish(EventAppForeground, "")

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestBusHandlerMayUnsubscribeItself(t *testing.T) {
	bus := NewBus()
	var calls int
	var unsub func()
	unsub = bus.Subscribe(EventAppForeground, func(string) {
		calls++
		unsub()
	})

	bus.Publish(EventAppForeground, "")
	bus.Publish(EventAppForeground, "")

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	NewBus().Publish(EventBucketChanged, "Round 1")
}
