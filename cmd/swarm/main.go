// Command swarm drives the particle simulations outside of a host application.
//
// Usage
//
//	swarm run|serve|view [-config file.toml] [-seed n] [-ticks n] [-addr host:port] [-debug]
//
// run prints one JSON frame per tick on the standard output, serve streams the
// frames to websocket clients on ws://addr/ws, view draws the XY plane of the
// scene in the terminal.
//
// # Config file
//
// The config file is written in TOML, with the sections [flock], [bounce],
// [jiggle] and [server]. Missing keys keep their default value.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

const usage = `Usage: swarm run|serve|view [flags]

Commands:
  run    tick the scene and print one JSON frame per line
  serve  stream the frames over a websocket at /ws
  view   draw the scene in the terminal

Flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("missing command")
	}
	command := args[0]

	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	configPath := flags.String("config", "", "path to a TOML config file")
	seed := flags.Uint64("seed", 0, "seed of the initial velocities, overrides the config")
	ticks := flags.Int("ticks", -1, "number of ticks of the run command, overrides the config")
	addr := flags.String("addr", "", "listen address of the serve command, overrides the config")
	debug := flags.Bool("debug", false, "log simulation events on the standard error")
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	conf, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			conf.Seed = *seed
		case "ticks":
			conf.Ticks = *ticks
		case "addr":
			conf.Server.Addr = *addr
		}
	})

	setupLogging(*debug, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "run":
		return Run(conf, stdout)
	case "serve":
		return Serve(ctx, conf)
	case "view":
		// the terminal belongs to the view
		setupLogging(false, stderr)
		return View(ctx, conf)
	default:
		flags.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return ParseConfig(path)
}

// setupLogging routes the standard logger to w, or discards it
func setupLogging(enabled bool, w io.Writer) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if !enabled {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
}
