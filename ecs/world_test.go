package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/rockgarden/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must differ from the destroyed handle")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("recycled entity inherited a component")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle should not resolve")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "mutation_through_pointer",
			setup: func() error { return Add(w, e2, h1.Kind(), intPtr(1)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				*v = 42
				again, _ := Get(w, e2, h1.Kind())
				if *again != 42 {
					t.Fatalf("expected stored value to change, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	alive := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	cases := []struct {
		name string
		add  func() error
		want error
	}{
		{"dead_entity", func() error { return Add(w, dead, kind, intPtr(1)) }, component.ErrEntityNotAlive},
		{"nil_value", func() error { return Add(w, alive, kind, nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, alive, component.ComponentKind[int]{}, intPtr(1)) }, component.ErrInvalidComponentKind},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.add(); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestForEachAndQuery(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("two"))
	_ = Add(w, e3, kb, stringPtr("three"))

	var ents []Entity
	ForEach(w, ka, func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)
	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; ok {
		t.Fatalf("did not expect e3 in ForEach result")
	}

	both := Query(w, ka, kb)
	if len(both) != 1 || both[0] != e2 {
		t.Fatalf("expected only e2, got %v", both)
	}

	DestroyEntity(w, e2)
	if got := Query(w, ka, kb); len(got) != 0 {
		t.Fatalf("destroyed entity still queried: %v", got)
	}

	first, ok := First(w, kb)
	if !ok || first != e3 {
		t.Fatalf("expected First to find e3, got %v ok=%v", first, ok)
	}
}

func TestSchedulerOrderAndEvents(t *testing.T) {
	w := NewWorld()

	var order []string
	var seen []Event
	s := NewScheduler(
		SystemFunc(func(w *World) {
			order = append(order, "push")
			w.Events().Push(Event{Type: EventPointerDown})
		}),
		nil,
		SystemFunc(func(w *World) {
			order = append(order, "drain")
			seen = append(seen, w.Events().Drain()...)
		}),
		SystemFunc(func(w *World) {
			w.Events().Push(Event{Type: EventPointerOut})
		}),
	)

	s.Update(w)

	if len(order) != 2 || order[0] != "push" || order[1] != "drain" {
		t.Fatalf("unexpected order %v", order)
	}
	if len(seen) != 1 || seen[0].Type != EventPointerDown {
		t.Fatalf("unexpected events %v", seen)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("undrained events should be dropped at end of frame")
	}
	if w.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", w.Frame())
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("nil system should be skipped, got %d systems", len(s.Systems()))
	}
}
