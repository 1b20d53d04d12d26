package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/nicwaller/gelfout"
	"github.com/nicwaller/gelfout/gelf"
	"github.com/nicwaller/gelfout/output"
	"github.com/nicwaller/gelfout/transport"
)

func main() {
	setupLogging()

	cfg := gelf.DefaultConfig()
	if path := os.Getenv("GELF_CONFIG"); path != "" {
		loaded, err := gelf.LoadConfig(path)
		if err != nil {
			slog.Error("bad config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	out, err := output.Gelf(output.GelfOptions{
		Config: cfg,
		Transport: transport.Options{
			Host:     "localhost",
			Port:     12201,
			Protocol: transport.UDP,
			Compress: true,
		},
	})
	if err != nil {
		slog.Error("failed to set up gelf output", "error", err)
		os.Exit(1)
	}

	hostname, _ := os.Hostname()
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("Hello, Graylog!")
	evt.Field("severity").SetString("info")
	evt.Field("host").SetString(hostname)
	evt.Field("tags").Set([]any{"demo", "gelfout"})

	_ = out.Run(context.Background(), evt)
}

func setupLogging() {
	w := os.Stderr

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
}
