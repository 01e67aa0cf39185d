package tui

import (
	"github.com/pulsepad/pulsepad/internal/anim"
	"github.com/pulsepad/pulsepad/internal/config"
	"github.com/pulsepad/pulsepad/internal/logging"
	"github.com/pulsepad/pulsepad/internal/modal"
	"github.com/pulsepad/pulsepad/internal/scene"
	"github.com/pulsepad/pulsepad/internal/session"
)

// App holds the shared state threaded through the playground. Everything
// the screens read or mutate lives here instead of in package globals, so
// two sessions in one process never bleed into each other.
type App struct {
	Config   *config.Config
	Logger   *logging.Logger
	Recorder *session.Recorder // nil when artifact saving is off

	Scene *scene.Scene
	Anim  *anim.State

	// Two counters from the same seed demonstrate that each instance
	// owns its own count.
	CounterA *anim.Counter
	CounterB *anim.Counter

	Dialog *modal.Dialog
}

// NewApp wires the scene graph, animation state, and dialog for a session.
func NewApp(cfg *config.Config, logger *logging.Logger, recorder *session.Recorder) *App {
	scn := scene.New()
	return &App{
		Config:   cfg,
		Logger:   logger,
		Recorder: recorder,
		Scene:    scn,
		Anim:     anim.NewState(),
		CounterA: anim.NewCounter(cfg.CounterSeed),
		CounterB: anim.NewCounter(cfg.CounterSeed),
		Dialog:   modal.New(scn.Lookup(scene.ElementDialog)),
	}
}
