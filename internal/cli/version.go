// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"runtime"

	"github.com/avdva/decnum/mag"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version information for decnum including the Go version and tunables.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "decnum version %s\n", Version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "Karatsuba threshold: %d words\n", mag.KaratsubaThreshold)
		},
	}
}
