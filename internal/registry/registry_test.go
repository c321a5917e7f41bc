package registry

import (
	"testing"
)

type Widget struct {
	ID   int64
	Name string
}

type Gadget struct {
	ID int64
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()
	if registry == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if registry.entities == nil {
		t.Fatal("entities map is nil")
	}
}

func TestRegister(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&Widget{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	e, ok := registry.Lookup("Widget")
	if !ok {
		t.Fatal("Entity not found after registration")
	}
	if e.Name != "Widget" {
		t.Errorf("Expected name 'Widget', got '%s'", e.Name)
	}
	if _, ok := e.New().(*Widget); !ok {
		t.Errorf("New should return *Widget, got %T", e.New())
	}
}

func TestRegisterByValueAndPointerIsSameEntity(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Widget{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := registry.Register(&Widget{}); err != nil {
		t.Fatalf("Re-register failed: %v", err)
	}
	if len(registry.All()) != 1 {
		t.Errorf("Expected 1 entity, got %d", len(registry.All()))
	}
}

func TestRegisterRejectsNonStruct(t *testing.T) {
	registry := NewRegistry()

	for _, v := range []interface{}{nil, 42, "product", []Widget{}, struct{ ID int }{}} {
		if err := registry.Register(v); err == nil {
			t.Errorf("Register(%T) should error", v)
		}
	}
}

func TestHas(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Widget{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if !registry.Has(&Widget{ID: 1}) {
		t.Error("Has should report registered *Widget")
	}
	if !registry.Has(Widget{}) {
		t.Error("Has should report registered Widget value")
	}
	if registry.Has(&Gadget{}) {
		t.Error("Has should not report unregistered Gadget")
	}
	if registry.Has(7) {
		t.Error("Has should not report non-struct values")
	}
}

func TestAllSortedByName(t *testing.T) {
	registry := NewRegistry()
	for _, v := range []interface{}{Widget{}, Gadget{}} {
		if err := registry.Register(v); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	all := registry.All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(all))
	}
	if all[0].Name != "Gadget" || all[1].Name != "Widget" {
		t.Errorf("Expected [Gadget Widget], got [%s %s]", all[0].Name, all[1].Name)
	}
}

func TestSelect(t *testing.T) {
	registry := NewRegistry()
	for _, v := range []interface{}{Widget{}, Gadget{}} {
		if err := registry.Register(v); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	sub, err := registry.Select([]string{"Widget"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !sub.Has(Widget{}) || sub.Has(Gadget{}) {
		t.Error("Select should keep only the named entities")
	}

	if _, err := registry.Select([]string{"Order"}); err == nil {
		t.Error("Select with an unknown entity should error")
	}
}
