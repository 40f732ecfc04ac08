package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/relaycore/internal/app"
	"github.com/vk/relaycore/internal/cli"
	"github.com/vk/relaycore/internal/value"
)

// main is the entrypoint for the relaycore validation binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// App startup panics on programmer/deployment errors; recover to
	// present them cleanly.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("startup failed: %v", r)
		}
	}()

	a := app.New(outW, cfg)
	for _, desc := range a.Registry().Descriptors() {
		fmt.Fprintf(outW, "%s(%s) -> (%s)\n", desc.QualifiedName(),
			joinSpecs(desc.Args), joinSpecs(desc.Returns))
	}
	return nil
}

// joinSpecs renders a signature side for the summary listing.
func joinSpecs(specs []value.TypeSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
