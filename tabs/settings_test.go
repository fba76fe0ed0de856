package tabs

import (
	"testing"

	"github.com/nor-os/nimbus-console/core"
)

func TestSettingsToggleFlipsCapability(t *testing.T) {
	rt := newTestRuntime("approvals.write", "audit.read")
	s := NewSettings(rt)

	// Cursor starts on topology.write (denied): toggling grants it.
	_, cmd := s.Update(key(" "))
	if !rt.Caps.Allowed("topology.write") {
		t.Fatalf("toggle should grant the capability")
	}
	if cmd == nil {
		t.Fatalf("toggle must broadcast the change")
	}
	if _, ok := cmd().(core.CapsChangedMsg); !ok {
		t.Fatalf("expected CapsChangedMsg from toggle")
	}

	s.Update(key(" "))
	if rt.Caps.Allowed("topology.write") {
		t.Fatalf("second toggle should revoke")
	}
}

func TestSettingsToggleDoesNotTouchFixedCaps(t *testing.T) {
	rt := newTestRuntime("audit.read")
	s := NewSettings(rt)

	s.Update(key("j"))
	s.Update(key(" ")) // approvals.write
	if !rt.Caps.Allowed("audit.read") {
		t.Fatalf("display-only capabilities must survive toggles")
	}
	if !rt.Caps.Allowed("approvals.write") {
		t.Fatalf("cursor row should have been granted")
	}
}
