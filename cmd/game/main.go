package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/chickens/internal/config"
	loopconfig "github.com/tomz197/chickens/internal/loop/config"
	"github.com/tomz197/chickens/internal/loop/client"
	"github.com/tomz197/chickens/internal/loop/server"
)

// envLogFile names a file that receives debug logs. The terminal itself is
// owned by the game, so nothing is logged unless it is set.
const envLogFile = "CHICKENS_LOG_FILE"

func main() {
	settings, err := config.LoadSettings("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(config.GetEnv(envLogFile, ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	srv := server.NewServer(loopconfig.TopScoresKept, logger)
	c, err := client.NewClient(srv, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: config.GetEnv("USER", "player"),
		Config:   settings.GameConfig(),
		Seed:     settings.Seed,
		Logger:   logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "failed to start game: %v\n", err)
		os.Exit(1)
	}

	if err := c.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a logger writing to path, or a silent one when path is
// empty.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
