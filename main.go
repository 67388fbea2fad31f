package main

import (
	"log"
	"log/slog"
	"os"

	"LocalSketch/internal/config"
	"LocalSketch/internal/session"
	"LocalSketch/internal/shape"
	"LocalSketch/internal/state"
	"LocalSketch/internal/ui"
)

func main() {
	path := os.Getenv(config.EnvPath)
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if path != "" {
		log.Printf("Loaded configuration from %s", path)
	}

	if os.Getenv("LOCALSKETCH_DEBUG") != "" {
		state.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	tool, _ := cfg.Tool()
	sess, err := session.New(session.WithTool(tool), session.WithStyle(cfg.Style()))
	if err != nil {
		log.Fatalf("Failed to start drawing session: %v", err)
	}
	defer sess.Close()

	board := ui.NewBoardWidget(sess, cfg.ExportCanvas())
	board.OnChange = func(shapes []shape.Shape) {
		log.Printf("[UI] Board now holds %d shapes", len(shapes))
	}

	log.Printf("Canvas %gx%g, tool %s", cfg.Canvas.Width, cfg.Canvas.Height, tool)
	ui.RunApp(cfg, board)
}
