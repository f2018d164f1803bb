package main

import (
	"context"
	"io"

	"github.com/ktatarski/dailystoic"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    Config
	Fetcher   dailystoic.Fetcher
	Corrector dailystoic.Corrector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Show ShowCmd `cmd:"" default:"withargs" help:"Print one day's entry (default command)"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Date []string `arg:"" optional:"" help:"Calendar day as \"Month Day\", e.g. \"March 3\" (defaults to today)"`
	Raw  bool     `help:"Skip text correction and print the fields as scraped"`
}
