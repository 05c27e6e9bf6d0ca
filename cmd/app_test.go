package cmd

import (
	"testing"
)

func TestFieldFlags_Set(t *testing.T) {
	var f fieldFlags

	if err := f.Set("Item=bolt"); err != nil {
		t.Errorf("Set(Item=bolt) error: %v", err)
	}
	if err := f.Set("Description=M8, steel"); err != nil {
		t.Errorf("Set() error on a value with a comma: %v", err)
	}
	if err := f.Set("Note="); err != nil {
		t.Errorf("Set() error on an empty value: %v", err)
	}
	if err := f.Set("novalue"); err == nil {
		t.Error("Set(novalue) did not fail")
	}
	if err := f.Set("=orphan"); err == nil {
		t.Error("Set(=orphan) did not fail")
	}

	if len(f) != 3 {
		t.Fatalf("collected %d assignments, want 3", len(f))
	}
	if f[1].Name != "Description" || f[1].Value != "M8, steel" {
		t.Errorf("second assignment = %+v", f[1])
	}
}

func TestCommandsAreRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range Commands {
		if names[c.Name()] {
			t.Errorf("duplicate command %q", c.Name())
		}
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "add", "edit", "delete", "export", "import", "projects", "tenants", "query"} {
		if !names[want] {
			t.Errorf("command %q is not registered", want)
		}
	}
}
