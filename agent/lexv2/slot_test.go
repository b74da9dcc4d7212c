package lexv2

import "testing"

func TestSlotResolvePrefersResolvedValues(t *testing.T) {
	t.Parallel()

	slot := &Slot{
		Value: &SlotValue{
			OriginalValue:    "alexx",
			InterpretedValue: "alex",
			ResolvedValues:   []string{"alex", "alexander"},
		},
	}

	got, ok := slot.Resolve()
	if !ok {
		t.Fatalf("Resolve() ok = false, want true")
	}
	if got != "alex" {
		t.Fatalf("Resolve() = %q, want first resolved value %q", got, "alex")
	}
}

func TestSlotResolveFallsBackToOriginalValue(t *testing.T) {
	t.Parallel()

	slot := &Slot{
		Value: &SlotValue{
			OriginalValue: "3",
		},
	}

	got, ok := slot.Resolve()
	if !ok {
		t.Fatalf("Resolve() ok = false, want true")
	}
	if got != "3" {
		t.Fatalf("Resolve() = %q, want raw value %q", got, "3")
	}
}

func TestSlotResolveAbsent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		slot *Slot
	}{
		{name: "nil slot", slot: nil},
		{name: "nil value holder", slot: &Slot{}},
		{name: "empty value holder", slot: &Slot{Value: &SlotValue{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tc.slot.Resolve()
			if ok {
				t.Fatalf("Resolve() ok = true, want false")
			}
			if got != "" {
				t.Fatalf("Resolve() = %q, want empty", got)
			}
		})
	}
}
