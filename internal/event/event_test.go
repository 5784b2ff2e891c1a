package event

import "testing"

// TestDispatchOrder verifies listeners run in subscription order.
func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(TowerPlaced, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(TowerPlaced, ListenerFunc(func(Event) { order = append(order, 2) }))
	d.Subscribe(TowerSold, ListenerFunc(func(Event) { order = append(order, 99) }))

	d.Emit(TowerPlaced, TowerData{Level: 1})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected [1 2], got %v", order)
	}
}

// TestPanickingListenerIsIsolated verifies one failing collaborator does not
// stop the others.
func TestPanickingListenerIsIsolated(t *testing.T) {
	d := NewDispatcher()
	called := false
	d.Subscribe(AntDied, ListenerFunc(func(Event) { panic("audio device gone") }))
	d.Subscribe(AntDied, ListenerFunc(func(Event) { called = true }))

	d.Emit(AntDied, AntData{ID: 1})

	if !called {
		t.Error("Expected second listener to run after the first panicked")
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	count := 0
	listener := ListenerFunc(func(Event) { count++ })
	sub := d.Subscribe(WaveStarted, listener)
	d.Subscribe(WaveStarted, listener)

	d.Unsubscribe(sub)
	d.Emit(WaveStarted, WaveData{Wave: 2})

	if count != 1 {
		t.Errorf("Expected 1 call after unsubscribe, got %d", count)
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	seen := map[EventType]bool{}
	subs := d.SubscribeAll(ListenerFunc(func(e Event) { seen[e.Type] = true }), AllTypes...)
	if len(subs) != len(AllTypes) {
		t.Errorf("Expected %d subscriptions, got %d", len(AllTypes), len(subs))
	}
	for _, et := range AllTypes {
		d.Emit(et, nil)
	}
	if len(seen) != len(AllTypes) {
		t.Errorf("Expected every type delivered, got %d", len(seen))
	}
}
