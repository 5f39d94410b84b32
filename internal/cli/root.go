// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cli implements the decnum command line tool.
package cli

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/avdva/decnum/internal/config"
	"github.com/avdva/decnum/round"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/avdva/decnum/internal/cli.Version=...".
var Version = "0.1.0-dev"

// app holds the settings resolved before a command runs.
type app struct {
	configFile string
	verbose    bool
	rounding   string
	format     string
	split      int
	scale      int

	cfg  *config.Config
	mode round.Mode
	verb byte
	log  *log.Logger
}

// NewRootCommand returns the decnum command with all the subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{log: log.New(io.Discard, "", 0)}
	root := &cobra.Command{
		Use:   "decnum",
		Short: "decnum - decimal arithmetic calculator",
		Long: `decnum evaluates operations on arbitrary-precision integers,
packed fixed-point decimal words and extended decimals.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file path (default ./decnum.{yaml,toml,json})")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging to stderr")
	flags.StringVarP(&a.rounding, "rounding", "r", "", "rounding mode: half-even, half-up, half-down, floor, ceiling, down, up, exact")
	flags.StringVarP(&a.format, "format", "f", "", "output format: plain or sci")

	root.AddCommand(
		newMagCommand(a),
		newPackedCommand(a),
		newDecCommand(a),
		newShortestCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the config and applies the flags set explicitly on top of it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.verbose {
		a.log = log.New(cmd.ErrOrStderr(), "decnum: ", log.Lmsgprefix)
	}
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("rounding") {
		cfg.Rounding = a.rounding
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("split") {
		cfg.Split = a.split
	}
	if flags.Changed("scale") {
		cfg.Scale = a.scale
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg
	// both are valid after Validate.
	a.mode, _ = cfg.Mode()
	a.verb, _ = cfg.Verb()
	a.log.Printf("rounding=%s split=%d scale=%d format=%s", a.mode, cfg.Split, cfg.Scale, cfg.Format)
	return nil
}

// print writes a result line to the command's output.
func (a *app) print(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// operation describes a calculator operation taking one or two operands.
type operation struct {
	arity int
	help  string
}

func checkArgs(ops map[string]operation, args []string) error {
	op, ok := ops[args[0]]
	if !ok {
		return fmt.Errorf("unknown operation %q", args[0])
	}
	if len(args)-1 != op.arity {
		return fmt.Errorf("%s: expected %d operand(s), got %d", args[0], op.arity, len(args)-1)
	}
	return nil
}

func opsUsage(ops map[string]operation) string {
	var s string
	for _, name := range slices.Sorted(maps.Keys(ops)) {
		s += fmt.Sprintf("  %-10s %s\n", name, ops[name].help)
	}
	return s
}
