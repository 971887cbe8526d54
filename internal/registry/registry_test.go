package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

type fakeHost struct {
	name string
	runs int
}

func (h *fakeHost) Name() string        { return h.name }
func (h *fakeHost) Description() string { return "fake " + h.name }

func (h *fakeHost) Run(ctx context.Context, sim core.Simulation, opts Options) error {
	h.runs++
	return nil
}

func TestRegisterListCreate(t *testing.T) {
	Register("test-b", func() Host { return &fakeHost{name: "test-b"} })
	Register("test-a", func() Host { return &fakeHost{name: "test-a"} })

	if !Exists("test-a") || !Exists("test-b") {
		t.Fatal("registered hosts do not exist")
	}
	if Exists("test-missing") {
		t.Error("Exists(test-missing) = true")
	}

	var names []string
	for _, info := range List() {
		if strings.HasPrefix(info.Name, "test-") {
			names = append(names, info.Name)
			if info.Description != "fake "+info.Name {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if strings.Join(names, ",") != "test-a,test-b" {
		t.Errorf("List() names = %v, want sorted [test-a test-b]", names)
	}

	h1, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	h2, _ := Create("test-a")
	if h1 == h2 {
		t.Error("Create() returned a shared instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if err == nil {
		t.Fatal("Create(nope) succeeded")
	}
	if !strings.Contains(err.Error(), `unknown host "nope"`) {
		t.Errorf("error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Host { return &fakeHost{name: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-dup", func() Host { return &fakeHost{name: "test-dup"} })
}

func TestOptionsNormalize(t *testing.T) {
	o := Options{}.Normalize()
	if o.Config.TickRate != core.DefaultConfig().TickRate {
		t.Errorf("TickRate = %d", o.Config.TickRate)
	}
	if o.Logger == nil {
		t.Error("Logger is nil")
	}

	o = Options{Config: core.RuntimeConfig{TickRate: 30}}.Normalize()
	if o.Config.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", o.Config.TickRate)
	}
}
