package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"pulsodoro/internal/control"
	"pulsodoro/internal/core/model"
	"pulsodoro/internal/core/timekeeper"
)

var (
	version = "dev"
	commit  = "unknown"
)

var errUsage = errors.New("usage: pulsodoroctl [flags] start|pause|reset|skip|status|durations FOCUS SHORT LONG")

func main() {
	var configPath string
	var socketPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is <user config dir>/pulsodoro/config.yml)")
	flag.StringVar(&socketPath, "socket", "", "override socket path of the running timer")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("pulsodoroctl %s (%s)\n", version, commit)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if socketPath != "" {
		cfg.SocketPath = socketPath
	}

	if err := run(cfg, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg cliConfig, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	call, err := command(args)
	if err != nil {
		return err
	}

	client, err := control.Dial(cfg.SocketPath, cfg.DialTimeout)
	if err != nil {
		return err
	}
	defer client.Close()

	status, err := call(client)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatStatus(status))
	return nil
}

func command(args []string) (func(*control.Client) (timekeeper.Status, error), error) {
	switch args[0] {
	case "start":
		return (*control.Client).Start, nil
	case "pause":
		return (*control.Client).Pause, nil
	case "reset":
		return (*control.Client).Reset, nil
	case "skip":
		return (*control.Client).Skip, nil
	case "status":
		return (*control.Client).Status, nil
	case "durations":
		if len(args) != 4 {
			return nil, errUsage
		}
		minutes := make([]int, 3)
		for i, arg := range args[1:] {
			value, err := strconv.Atoi(arg)
			if err != nil || value <= 0 {
				return nil, fmt.Errorf("invalid minutes %q: %w", arg, errUsage)
			}
			minutes[i] = value
		}
		return func(client *control.Client) (timekeeper.Status, error) {
			return client.SetDurations(minutes[0], minutes[1], minutes[2])
		}, nil
	default:
		return nil, fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func formatStatus(status timekeeper.Status) string {
	running := "paused"
	if status.IsRunning {
		running = "running"
	}
	return fmt.Sprintf("%s %s cycle %d/%d %s", status.State, status.Clock(), status.Cycle, model.CyclesBeforeLongBreak, running)
}
