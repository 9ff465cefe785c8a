package events

import (
	"errors"
	"reflect"
	"testing"
)

func TestBus_EmitFansOutInSubscriptionOrder(t *testing.T) {
	t.Parallel()
	bus := NewBus()
	var order []string

	bus.On(ShowSlide, func(ev Event) error { order = append(order, "first"); return nil })
	bus.On(ShowSlide, func(ev Event) error { order = append(order, "second"); return nil })
	bus.On(HideSlide, func(ev Event) error { order = append(order, "other"); return nil })

	if err := bus.Emit(ShowSlide, 2); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}

	want := []string{"first", "second"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("dispatch order = %v, want %v", order, want)
	}
}

func TestBus_EmitPassesArguments(t *testing.T) {
	t.Parallel()
	bus := NewBus()
	var got Event
	bus.On(ToggleBlackout, func(ev Event) error { got = ev; return nil })

	_ = bus.Emit(ToggleBlackout, true)

	if got.Name != ToggleBlackout {
		t.Errorf("Name = %q, want %q", got.Name, ToggleBlackout)
	}
	if v, ok := got.Bool(0); !ok || !v {
		t.Errorf("Bool(0) = %v, %v; want true, true", v, ok)
	}
	if _, ok := got.Bool(1); ok {
		t.Error("Bool(1) should report a missing argument")
	}
}

func TestBus_EmitWithoutSubscribers(t *testing.T) {
	t.Parallel()
	bus := NewBus()
	if err := bus.Emit(Resize); err != nil {
		t.Errorf("Emit with no subscribers = %v, want nil", err)
	}
}

func TestBus_EmitJoinsErrorsAndKeepsDelivering(t *testing.T) {
	t.Parallel()
	bus := NewBus()
	errBoom := errors.New("boom")
	delivered := 0

	bus.On(ShowSlide, func(ev Event) error { delivered++; return errBoom })
	bus.On(ShowSlide, func(ev Event) error { delivered++; return nil })

	err := bus.Emit(ShowSlide, 7)
	if !errors.Is(err, errBoom) {
		t.Errorf("Emit error = %v, want %v in chain", err, errBoom)
	}
	if delivered != 2 {
		t.Errorf("delivered = %d, want 2", delivered)
	}
}

func TestBus_SubscriberAddedDuringDispatchMissesInFlightEvent(t *testing.T) {
	t.Parallel()
	bus := NewBus()
	lateCalls := 0

	bus.On(SlidesChanged, func(ev Event) error {
		bus.On(SlidesChanged, func(ev Event) error { lateCalls++; return nil })
		return nil
	})

	_ = bus.Emit(SlidesChanged)
	if lateCalls != 0 {
		t.Fatalf("late subscriber received in-flight event %d times", lateCalls)
	}

	_ = bus.Emit(SlidesChanged)
	if lateCalls != 1 {
		t.Errorf("late subscriber calls after second emit = %d, want 1", lateCalls)
	}
}

func TestBus_ReentrantEmit(t *testing.T) {
	t.Parallel()
	bus := NewBus()
	var seen []Name

	bus.On(TogglePresenterMode, func(ev Event) error {
		seen = append(seen, ev.Name)
		return bus.Emit(ToggledPresenter, 3)
	})
	bus.On(ToggledPresenter, func(ev Event) error {
		seen = append(seen, ev.Name)
		return nil
	})

	if err := bus.Emit(TogglePresenterMode); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	want := []Name{TogglePresenterMode, ToggledPresenter}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
}

func TestBus_Observer(t *testing.T) {
	t.Parallel()
	counts := map[Name]int{}
	bus := NewBus(WithObserver(func(name Name, subscribers int) { counts[name] += subscribers + 1 }))
	bus.On(Tap, func(Event) error { return nil })

	_ = bus.Emit(Tap, 10.0)
	_ = bus.Emit(Resize)

	if counts[Tap] != 2 {
		t.Errorf("observer for tap = %d, want 2", counts[Tap])
	}
	if counts[Resize] != 1 {
		t.Errorf("observer for resize = %d, want 1", counts[Resize])
	}
	if bus.HandlerCount(Tap) != 1 {
		t.Errorf("HandlerCount(tap) = %d, want 1", bus.HandlerCount(Tap))
	}
}

func TestEvent_Accessors(t *testing.T) {
	t.Parallel()
	ev := Event{Name: Tap, Args: []any{12.5, 3, "x"}}

	if v, ok := ev.Float(0); !ok || v != 12.5 {
		t.Errorf("Float(0) = %v, %v", v, ok)
	}
	if v, ok := ev.Int(1); !ok || v != 3 {
		t.Errorf("Int(1) = %v, %v", v, ok)
	}
	if v, ok := ev.Float(1); !ok || v != 3 {
		t.Errorf("Float(1) = %v, %v", v, ok)
	}
	if v, ok := ev.String(2); !ok || v != "x" {
		t.Errorf("String(2) = %v, %v", v, ok)
	}
	if _, ok := ev.Int(2); ok {
		t.Error("Int(2) should fail on a string argument")
	}
	if _, ok := ev.String(5); ok {
		t.Error("String(5) should fail past the end")
	}
}

func TestKey_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Name: "left"}, "left"},
		{Key{Name: "left", Alt: true}, "alt+left"},
		{Key{Name: "space", Shift: true}, "shift+space"},
		{Key{Name: "c", Ctrl: true}, "ctrl+c"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
