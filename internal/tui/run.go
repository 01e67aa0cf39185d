package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulsepad/pulsepad/internal/config"
	"github.com/pulsepad/pulsepad/internal/errors"
	"github.com/pulsepad/pulsepad/internal/logging"
	"github.com/pulsepad/pulsepad/internal/session"
)

// Run starts the playground and writes session artifacts on exit.
func Run(cfg *config.Config, logger *logging.Logger) error {
	var recorder *session.Recorder
	if cfg.Session.Save {
		r, err := session.NewRecorder(cfg.Session.Dir)
		if err != nil {
			return err
		}
		recorder = r
	}

	app := NewApp(cfg, logger, recorder)
	model := NewModel(app)

	// Console output would tear the alt screen; the file sink keeps going.
	logger.SetConsole(false)
	defer logger.SetConsole(true)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := program.Run()
	if err != nil {
		return errors.WrapTerminalError(err)
	}

	final, ok := finalModel.(*Model)
	if !ok || recorder == nil {
		return nil
	}

	if err := recorder.WriteArtifacts(cfg, final.Summary("completed"), final.EventLog()); err != nil {
		return err
	}
	if cfg.Session.KeepRuns > 0 {
		if err := session.Prune(cfg.Session.Dir, cfg.Session.KeepRuns); err != nil {
			return err
		}
	}

	fmt.Printf("Session saved: %s\n", recorder.Dir)
	return nil
}
