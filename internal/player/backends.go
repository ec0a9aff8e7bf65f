package player

import "context"

// MPV plays via mpv. The default backend.
type MPV struct {
	proc process
}

func (m *MPV) Name() string    { return "mpv" }
func (m *MPV) Available() bool { return lookPath("mpv") }

func (m *MPV) Start(ctx context.Context, url string) error {
	return m.proc.start(ctx, "mpv", "--really-quiet", "--force-window=yes", url)
}

func (m *MPV) Stop() error { return m.proc.stop() }

// VLC plays via vlc.
type VLC struct {
	proc process
}

func (v *VLC) Name() string    { return "vlc" }
func (v *VLC) Available() bool { return lookPath("vlc") }

func (v *VLC) Start(ctx context.Context, url string) error {
	return v.proc.start(ctx, "vlc", "--play-and-exit", url)
}

func (v *VLC) Stop() error { return v.proc.stop() }

// Generic passes the URL to an arbitrary binary, such as the platform opener.
type Generic struct {
	bin  string
	proc process
}

func (g *Generic) Name() string    { return g.bin }
func (g *Generic) Available() bool { return lookPath(g.bin) }

func (g *Generic) Start(ctx context.Context, url string) error {
	return g.proc.start(ctx, g.bin, url)
}

func (g *Generic) Stop() error { return g.proc.stop() }
