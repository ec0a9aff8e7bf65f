package player

import (
	"context"
	"strings"
	"testing"
)

func TestNew_MapsNamesToBackends(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "mpv"},
		{"mpv", "mpv"},
		{"vlc", "vlc"},
		{" celluloid ", "celluloid"},
	}
	for _, tt := range tests {
		p := New(tt.name)
		if p.Name() != tt.want {
			t.Errorf("New(%q).Name() = %q, want %q", tt.name, p.Name(), tt.want)
		}
	}
}

func TestGeneric_UnknownBinaryUnavailable(t *testing.T) {
	g := &Generic{bin: "definitely-not-a-player-binary"}
	if g.Available() {
		t.Fatal("Available() = true for a binary that should not exist")
	}
}

func TestProcess_StopWithoutStartIsNoop(t *testing.T) {
	var p process
	if err := p.stop(); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestProcess_StartMissingBinaryFails(t *testing.T) {
	var p process
	err := p.start(context.Background(), "definitely-not-a-player-binary", "x")
	if err == nil {
		t.Fatal("start returned nil error for missing binary")
	}
	if !strings.Contains(err.Error(), "start definitely-not-a-player-binary") {
		t.Fatalf("error = %v, want wrapped start error", err)
	}
}
