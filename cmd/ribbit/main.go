package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/profile"

	"ribbit/internal/config"
	"ribbit/internal/tui"
)

var (
	configPath = flag.String("config", "", "config file (default: user config dir)")
	debug      = flag.String("debug", "", "write the log to this file")
	profMode   = flag.String("profile", "", "profile the session: cpu or mem")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [annotations.bed]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logFile := *debug
	if logFile == "" {
		logFile = os.Getenv("RIBBIT_DEBUG")
	}
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "ribbit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(nopWriter{})
	}

	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q", *profMode)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(flag.Arg(0), cfg)
	} else {
		m = tui.NewWithConfig(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// nopWriter drops log output so it never draws over the alt screen.
type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
