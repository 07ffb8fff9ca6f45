// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valid8r/valid8r/internal/pkg/logging"
	"github.com/valid8r/valid8r/internal/pkg/must"
)

var (
	rootCmd = &cobra.Command{
		Use:     "valid8r",
		Short:   "Validate numerical results against reference data",
		Version: "0.1.0",
	}
	log = logging.Log()

	// Global Flags
	verbose    *int
	panicOnErr *bool
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")

	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
