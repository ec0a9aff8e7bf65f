package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"

	"github.com/marquee-tv/marquee/internal/app"
	"github.com/marquee-tv/marquee/internal/server"
)

type watchCmd struct {
	URL    string `arg:"--url" help:"library endpoint (overrides config)"`
	Poll   int    `arg:"--poll" help:"catalog refresh interval in seconds"`
	Player string `arg:"--player" help:"preferred media player binary"`
}

type serveCmd struct {
	Dir  string `arg:"positional" help:"media directory to serve" default:"."`
	Addr string `arg:"--addr" help:"listen address" default:":8000"`
}

type args struct {
	Config string    `arg:"--config" help:"config file path (default ~/.config/marquee/config.toml)"`
	Watch  *watchCmd `arg:"subcommand:watch" help:"browse and play from a library (default)"`
	Serve  *serveCmd `arg:"subcommand:serve" help:"serve a local directory as a library"`
}

func (args) Description() string {
	return "marquee - terminal client for a LAN video library"
}

func main() {
	os.Exit(run())
}

func run() int {
	var cli args
	arg.MustParse(&cli)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch {
	case cli.Serve != nil:
		err = server.Run(ctx, server.Options{
			Dir:  cli.Serve.Dir,
			Addr: cli.Serve.Addr,
		})
	default:
		// watch is the default mode
		watch := cli.Watch
		if watch == nil {
			watch = &watchCmd{}
		}
		err = app.Run(ctx, app.Options{
			ConfigPath: cli.Config,
			LibraryURL: watch.URL,
			PollEvery:  watch.Poll,
			PlayerName: watch.Player,
		})
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}
