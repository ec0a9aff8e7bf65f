// Package player launches external media players as the playback surface.
// All invocations use exec.Command with explicit argument slices; nothing
// ever goes through a shell.
package player

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Player is a media playback backend driven over its command line.
type Player interface {
	// Name returns the backend binary name.
	Name() string

	// Available reports whether the backend binary is on PATH.
	Available() bool

	// Start begins playback of url, replacing any playback this backend
	// already has running. It blocks briefly to catch sources the player
	// rejects outright, then returns while playback continues.
	Start(ctx context.Context, url string) error

	// Stop terminates the active playback process, if any.
	Stop() error
}

// New creates a player backend by binary name.
func New(name string) Player {
	switch strings.TrimSpace(name) {
	case "", "mpv":
		return &MPV{}
	case "vlc":
		return &VLC{}
	default:
		return &Generic{bin: strings.TrimSpace(name)}
	}
}

// Detect returns the preferred backend when it is available, otherwise the
// first available known backend.
func Detect(preferred string) (Player, error) {
	var candidates []Player
	if strings.TrimSpace(preferred) != "" {
		candidates = append(candidates, New(preferred))
	}
	candidates = append(candidates, &MPV{}, &VLC{}, &Generic{bin: systemOpener()})

	for _, p := range candidates {
		if p.Available() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no media player found on PATH (tried mpv, vlc, %s)", systemOpener())
}

func systemOpener() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

func lookPath(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
