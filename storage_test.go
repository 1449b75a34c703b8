package ecs

import (
	"errors"
	"testing"
)

func TestColumnSlots(t *testing.T) {
	col := newColumn[Position](0)

	tests := []struct {
		name   string
		extend int
	}{
		{"Empty column", 0},
		{"Few slots", 3},
		{"Many slots", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := newColumn[Position](0)
			for i := 0; i < tt.extend; i++ {
				col.Extend()
			}
			if col.Len() != tt.extend {
				t.Errorf("Len() = %d, want %d", col.Len(), tt.extend)
			}
			for i := 0; i < tt.extend; i++ {
				if col.Has(Entity(i)) {
					t.Errorf("fresh slot %d reported present", i)
				}
			}
		})
	}

	if col.Key() != TypeKeyFor[Position]() {
		t.Errorf("Key() = %v, want %v", col.Key(), TypeKeyFor[Position]())
	}
}

func TestColumnSetGet(t *testing.T) {
	col := newColumn[Position](2)

	if err := col.set(Entity(1), Position{X: 2, Y: 3}); err != nil {
		t.Fatalf("set() error = %v", err)
	}
	if !col.Has(Entity(1)) {
		t.Error("Has() = false after set")
	}

	ptr, ok, err := col.get(Entity(1))
	if err != nil || !ok {
		t.Fatalf("get() = ok=%v, err=%v", ok, err)
	}
	if *ptr != (Position{X: 2, Y: 3}) {
		t.Errorf("get() = %+v", *ptr)
	}

	// Absent slot: not an error
	_, ok, err = col.get(Entity(0))
	if err != nil || ok {
		t.Errorf("get() on absent slot = ok=%v, err=%v, want absent without error", ok, err)
	}
}

func TestColumnOutOfRange(t *testing.T) {
	col := newColumn[Position](1)

	var oor OutOfRangeEntityError
	if err := col.set(Entity(5), Position{}); !errors.As(err, &oor) {
		t.Errorf("set() past length error = %v, want OutOfRangeEntityError", err)
	}
	if _, _, err := col.get(Entity(5)); !errors.As(err, &oor) {
		t.Errorf("get() past length error = %v, want OutOfRangeEntityError", err)
	}
	if col.Has(Entity(5)) {
		t.Error("Has() past length = true")
	}
}

func TestColumnBackfill(t *testing.T) {
	world := Factory.NewWorld()
	for i := 0; i < 4; i++ {
		world.CreateEntity()
	}

	// Lazy creation through first attachment backfills absent slots
	if err := AddComponent(world, Entity(2), Health{Current: 10, Max: 10}); err != nil {
		t.Fatalf("AddComponent() error = %v", err)
	}

	ct, ok := world.types.Lookup(TypeKeyFor[Health]())
	if !ok {
		t.Fatal("column not registered by lazy attachment")
	}
	if ct.column.Len() != 4 {
		t.Errorf("backfilled column length = %d, want 4", ct.column.Len())
	}
	for i := 0; i < 4; i++ {
		want := i == 2
		if got := ct.column.Has(Entity(i)); got != want {
			t.Errorf("Has(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestColumnTypeMismatch(t *testing.T) {
	world := Factory.NewWorld()
	if err := InitStorage[Position](world); err != nil {
		t.Fatal(err)
	}

	// Force the corruption condition: a column registered under one key but
	// holding another payload type.
	ct, _ := world.types.Lookup(TypeKeyFor[Position]())
	ct.column = newColumn[Velocity](0)

	_, _, err := GetComponent[Position](world, Entity(0))
	var mismatch ComponentTypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Errorf("GetComponent() on corrupted column error = %v, want ComponentTypeMismatchError", err)
	}
}
