// cmd/tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"cake-defense/internal/app"
	"cake-defense/internal/audio"
	"cake-defense/internal/defs"
	"cake-defense/internal/input"
	"cake-defense/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "simulation seed, 0 picks one from the clock")
	balancePath := flag.String("balance", "", "JSON balance sheet overriding the defaults")
	mute := flag.Bool("mute", false, "start with sound off")
	logPath := flag.String("log", "", "write the log to this file; it is discarded otherwise")
	flag.Parse()

	// лог в терминал сломает экран
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	balance := defs.DefaultBalance()
	if *balancePath != "" {
		b, err := defs.LoadBalance(*balancePath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		balance = b
	}
	game, err := app.NewGame(balance, *seed)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	var sound *audio.SoundSystem
	if s := audio.NewSoundSystem(); s.Initialize() == nil {
		s.SetMuted(*mute)
		s.Subscribe(game.EventDispatcher)
		defer s.Close()
		sound = s
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := tui.NewApp(screen, input.NewController(game), sound).Run(ctx)
	screen.Fini()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
