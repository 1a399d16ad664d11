// mistery is a single-player terminal roguelike. Run it directly or host
// it for others with cmd/server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mistery/internal/config"
	"mistery/internal/game"
	"mistery/internal/logger"
	"mistery/internal/telemetry"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	seedFlag := flag.Int64("seed", 0, "Level seed; overrides game.seed when non-zero")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	// The screen owns stderr while the game runs.
	if cfg.Log.File == "" || cfg.Log.File == "-" {
		cfg.Log.File = "mistery.log"
	}
	logger.Init(cfg.Log)
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed; continuing without traces")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entry := log.WithField("seed", seed)

	engine, err := game.NewEngine(ctx, cfg, rand.New(rand.NewSource(seed)), entry)
	if err != nil {
		return err
	}
	if name := os.Getenv("USER"); name != "" {
		engine.SetPlayerName(name)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	err = game.New(screen, engine, cfg, entry).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
