package main

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch <file.html>",
		Short: "Regenerate <file>.html.kt whenever the HTML source changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			target, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("watching", "path", target, "interval", interval)
			return watchFile(ctx, target, interval, a.log, func([]byte) error {
				return a.generateFile(target)
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 300*time.Millisecond, "watch polling interval")
	return cmd
}

// watchFile polls path and calls onChange with the new content whenever its
// hash differs from the last seen one, including the first successful read.
// Read and generate errors are logged and the loop keeps going until ctx ends.
func watchFile(ctx context.Context, path string, interval time.Duration, log *slog.Logger, onChange func([]byte) error) error {
	var lastHash [32]byte
	var have bool

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Warn("read error", "path", path, "error", err)
		} else if h := sha256.Sum256(src); !have || h != lastHash {
			lastHash = h
			have = true
			if err := onChange(src); err != nil {
				log.Error("generate failed", "path", path, "error", err)
			} else {
				log.Info("generated", "path", path)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
