package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/mabrarov/greeter/cmd/app/root"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelWarn,
			TimeFormat: time.RFC3339,
		}),
	))

	// Exit code stays 0 even when stdout is gone.
	if err := root.Execute(os.Stdout, os.Args[1:]); err != nil {
		slog.Warn("failed to print greeting", "error", err)
	}
}
