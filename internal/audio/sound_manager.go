// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-archery/internal/component"
	"go-archery/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Частоты сигналов по итогам выстрела
const (
	bullseyeFreq = 880.0
	hitFreq      = 660.0
	missFreq     = 120.0
)

// SoundManager озвучивает выстрелы. Без Initialize все вызовы молча ничего не делают,
// так что игра работает и без звуковой карты.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int // сколько звуков поставлено в микшер, для тестов и отладки
	heard       int // сколько событий пришло от диспетчера
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize открывает звуковое устройство. Повторный вызов ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит всё, что ещё звучит.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Attach подписывает менеджер на события выстрела.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.Subscribe(event.ArrowReleased, sm)
	d.Subscribe(event.ShotResolved, sm)
	d.Subscribe(event.DrawRejected, sm)
}

// Detach снимает подписки, сделанные Attach.
func (sm *SoundManager) Detach(d *event.Dispatcher) {
	d.Unsubscribe(event.ArrowReleased, sm)
	d.Unsubscribe(event.ShotResolved, sm)
	d.Unsubscribe(event.DrawRejected, sm)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	sm.mu.Lock()
	sm.heard++
	sm.mu.Unlock()

	switch e.Type {
	case event.ArrowReleased:
		sm.PlayRelease()
	case event.ShotResolved:
		if r, ok := e.Data.(component.ShotResult); ok {
			sm.PlayResult(r.Type)
		}
	case event.DrawRejected:
		sm.play(beep.Take(sampleRate.N(60*time.Millisecond), NewBuzzGenerator(sampleRate, missFreq*2)))
	}
}

// PlayRelease — короткий свист тетивы.
func (sm *SoundManager) PlayRelease() {
	sm.play(beep.Take(sampleRate.N(120*time.Millisecond), NewSwishGenerator(sampleRate)))
}

// PlayResult — сигнал по итогу выстрела.
func (sm *SoundManager) PlayResult(result component.ResultType) {
	switch result {
	case component.ResultBullseye:
		sm.playTone(bullseyeFreq, 150*time.Millisecond)
	case component.ResultHit:
		sm.playTone(hitFreq, 80*time.Millisecond)
	default:
		sm.play(beep.Take(sampleRate.N(150*time.Millisecond), NewBuzzGenerator(sampleRate, missFreq)))
	}
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(d), sine))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// Played возвращает число поставленных в очередь звуков.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// SwishGenerator — нисходящий свип с шумом, звук отпущенной тетивы.
type SwishGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

func NewSwishGenerator(sr beep.SampleRate) *SwishGenerator {
	return &SwishGenerator{sr: sr, seed: 0x2545f491}
}

func (g *SwishGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 400 - 250*math.Min(t/0.12, 1)
		envelope := math.Exp(-t * 20)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := envelope * (0.2*math.Sin(2*math.Pi*freq*t) + 0.1*noise)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SwishGenerator) Err() error {
	return nil
}

// BuzzGenerator — низкое жужжание промаха.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
