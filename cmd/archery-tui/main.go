// cmd/archery-tui/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-archery/internal/app"
	"go-archery/internal/audio"
	"go-archery/internal/config"
	"go-archery/pkg/render"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "archery.toml", "path to the settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// Терминал занят tcell, лог пишем в файл
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)

	scene := render.NewScene(config.Pivot)
	game := app.NewGame(scene,
		app.WithSeed(settings.Seed),
		app.WithMaxSpentArrows(settings.MaxSpentArrows),
		app.WithSampleStep(settings.FlightSampleStep),
	)

	if settings.Sound {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sound.Cleanup()
			sound.Attach(game.EventDispatcher)
			defer sound.Detach(game.EventDispatcher)
		}
	}
	log.Printf("Terminal session started, seed %d", game.Rng.Seed())

	run(screen, game, scene)
	log.Printf("Session finished, score %d", game.Score().Total)
}

func run(screen tcell.Screen, game *app.Game, scene *render.Scene) {
	view := NewTerminalView(screen, game, scene)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !view.HandleEvent(ev) {
				game.ForceResolve()
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			game.Update(dt)
			scene.Update(dt)
			view.Draw()
		}
	}
}
