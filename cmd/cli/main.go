package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/structcmp/internal/app"
	"github.com/vk/structcmp/internal/cli"
)

// main is the entrypoint for the structcmp application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var diffErr *app.DifferencesError
		if errors.As(err, &diffErr) {
			// The report is already on stdout; the count goes to stderr.
			fmt.Fprintln(os.Stderr, diffErr.Error())
			os.Exit(1)
		}
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	comparisonApp := app.NewApp(outW, os.Stderr, appConfig)

	return comparisonApp.Run(context.Background())
}
