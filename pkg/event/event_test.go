package event_test

import (
	"testing"

	"github.com/shashiranjanraj/quickstationery/pkg/event"
)

func TestFireReachesAllListenersInOrder(t *testing.T) {
	t.Cleanup(event.Flush)

	var got []int
	event.Listen("test.fired", func(payload interface{}) {
		got = append(got, 1)
	})
	event.Listen("test.fired", func(payload interface{}) {
		got = append(got, 2)
	})

	event.Fire("test.fired", nil)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected listeners in registration order, got %v", got)
	}
}

func TestFireCarriesPayload(t *testing.T) {
	t.Cleanup(event.Flush)

	var count int
	event.Listen("cart.updated", func(payload interface{}) {
		count, _ = payload.(int)
	})

	event.Fire("cart.updated", 5)

	if count != 5 {
		t.Errorf("expected payload 5, got %d", count)
	}
}

func TestFireUnknownEventIsNoOp(t *testing.T) {
	t.Cleanup(event.Flush)
	event.Fire("nobody.listens", "payload")
}
