// cmd/archery/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-archery/internal/audio"
	"go-archery/internal/config"
	"go-archery/internal/state"

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
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "archery.toml", "path to the settings file")
	writeConfig := flag.Bool("write-config", false, "write default settings to -config and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.SaveSettings(*configPath, config.DefaultSettings()); err != nil {
			log.Fatal(err)
		}
		log.Printf("Default settings written to %s", *configPath)
		return
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	opts := state.Options{
		Seed:           settings.Seed,
		MaxSpentArrows: settings.MaxSpentArrows,
		SampleStep:     settings.FlightSampleStep,
	}
	if settings.Sound {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer sound.Cleanup()
			opts.Sound = sound
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, opts))
	} else {
		sm.SetState(state.NewGameState(sm, opts))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Archery")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
