package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"the-snake/audio"
	"the-snake/config"
	"the-snake/game"
	"the-snake/logs"
	"the-snake/ui"
	"the-snake/ui/term"

	goerrors "github.com/go-errors/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	cfg, err := config.Load(config.Flags(), args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 2
	}

	// tcell owns the terminal, so stderr logging would garble the board
	if cfg.Backend == config.BackendTerminal {
		cfg.Log.Console = false
	}
	if err := logs.Init("snake", cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "snake: init logger: %v\n", err)
		return 1
	}
	defer logs.Sync()

	display, err := openDisplay(cfg)
	if err != nil {
		logs.Error("display init failed", zap.String("backend", cfg.Backend), zap.Error(err))
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	defer func() {
		if r := recover(); r != nil {
			_ = display.Close()
			stack := goerrors.Wrap(r, 2).ErrorStack()
			logs.Error("crashed", zap.Any("panic", r), zap.String("stack", stack))
			fmt.Fprintln(os.Stderr, "snake crashed:", stack)
			code = 1
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(cfg.Screen.Grid(), seed)

	clock := game.NewTickerClock(cfg.TicksPerSecond)
	defer clock.Stop()

	loop := game.NewLoop(g, display, clock)
	if cfg.Sound {
		chime, err := audio.NewChime()
		if err != nil {
			logs.Warn("sound disabled", zap.Error(err))
		} else {
			defer chime.Close()
			loop.SetPlayer(chime)
		}
	}

	logs.Info("starting",
		zap.String("session", g.UUID),
		zap.String("backend", cfg.Backend),
		zap.Int("tps", cfg.TicksPerSecond),
		zap.Uint64("seed", seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		logs.Error("shutdown failed", zap.Error(err))
		return 1
	}
	return 0
}

func openDisplay(cfg *config.Config) (game.Display, error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		return term.NewScreen(cfg.Screen.Grid())
	default:
		return ui.NewRenderer(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.CellSize)
	}
}
