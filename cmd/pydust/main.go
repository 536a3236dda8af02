package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/cli"
)

// main is the entrypoint for the pydust command.
func main() {
	// Use a minimal logger until the command line configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := cli.Execute(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pydust:", err)
		os.Exit(1)
	}
}
