package hostconfig

import "testing"

func TestDefaultHasImplicitSender(t *testing.T) {
	hc := Default()
	if len(hc.ImplicitComponentParams) != 1 || hc.ImplicitComponentParams[0].Name != "_sender" {
		t.Fatalf("expected implicit component param _sender, got %+v", hc.ImplicitComponentParams)
	}
}

func TestMapKeyDepthPrefersLocalDeclaration(t *testing.T) {
	hc := &HostConfig{FieldMapDepth: map[string]int{"balances": 2}}
	if got := hc.MapKeyDepth("balances", 1, true); got != 1 {
		t.Errorf("expected local depth 1 to win, got %d", got)
	}
	if got := hc.MapKeyDepth("balances", 0, false); got != 2 {
		t.Errorf("expected host-reported depth 2, got %d", got)
	}
	if got := hc.MapKeyDepth("unknown_field", 0, false); got != 0 {
		t.Errorf("expected default depth 0, got %d", got)
	}
}

func TestMapKeyDepthNilReceiver(t *testing.T) {
	var hc *HostConfig
	if got := hc.MapKeyDepth("x", 0, false); got != 0 {
		t.Errorf("expected 0 for nil receiver, got %d", got)
	}
}
