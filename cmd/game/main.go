// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"cake-defense/internal/app"
	"cake-defense/internal/assets"
	"cake-defense/internal/audio"
	"cake-defense/internal/config"
	"cake-defense/internal/defs"
	"cake-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "simulation seed, 0 picks one from the clock")
	balancePath := flag.String("balance", "", "JSON balance sheet overriding the defaults")
	fontPath := flag.String("font", "", "TTF font for the UI, the bundled one if empty")
	mute := flag.Bool("mute", false, "start with sound off")
	skipMenu := flag.Bool("play", false, "skip the title screen")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	balance := defs.DefaultBalance()
	if *balancePath != "" {
		b, err := defs.LoadBalance(*balancePath)
		if err != nil {
			log.Fatal(err)
		}
		balance = b
	}
	game, err := app.NewGame(balance, *seed)
	if err != nil {
		log.Fatal(err)
	}

	sound := audio.NewSoundSystem()
	if err := sound.Initialize(); err == nil {
		sound.SetMuted(*mute)
		sound.Subscribe(game.EventDispatcher)
		defer sound.Close()
	} else {
		sound = nil
	}

	session := state.NewSession(game, assets.LoadFonts(*fontPath), sound)
	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewPlayState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cake Defense")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
