package engines

import (
	"testing"

	"github.com/gogpu/enginehost"
)

func stubFactory(enginehost.DeviceHandle) (enginehost.Renderer, error) {
	return nil, nil
}

func TestRegisterAndGet(t *testing.T) {
	Register("test-engine", stubFactory)
	defer Unregister("test-engine")

	if !IsRegistered("test-engine") {
		t.Error("test-engine should be registered")
	}
	if Get("test-engine") == nil {
		t.Fatal("Get(test-engine) returned nil")
	}
}

func TestGetUnregistered(t *testing.T) {
	if Get("nonexistent") != nil {
		t.Error("Get(nonexistent) should return nil")
	}
	if IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}

func TestAvailable(t *testing.T) {
	Register("test-engine", stubFactory)
	defer Unregister("test-engine")

	found := false
	for _, name := range Available() {
		if name == "test-engine" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'test-engine'")
	}
}

func TestUnregister(t *testing.T) {
	Register("test-engine", stubFactory)
	Unregister("test-engine")

	if IsRegistered("test-engine") {
		t.Error("test-engine should be unregistered")
	}
}

func TestRegisterReplaces(t *testing.T) {
	called := ""
	Register("test-engine", func(enginehost.DeviceHandle) (enginehost.Renderer, error) {
		called = "first"
		return nil, nil
	})
	Register("test-engine", func(enginehost.DeviceHandle) (enginehost.Renderer, error) {
		called = "second"
		return nil, nil
	})
	defer Unregister("test-engine")

	_, _ = Get("test-engine")(enginehost.NullDeviceHandle{})
	if called != "second" {
		t.Errorf("later registration did not replace earlier: %q", called)
	}
}
