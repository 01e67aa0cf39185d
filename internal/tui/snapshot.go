package tui

import (
	"fmt"
	"strings"

	"github.com/pulsepad/pulsepad/internal/anim"
	"github.com/pulsepad/pulsepad/internal/config"
	"github.com/pulsepad/pulsepad/internal/logging"
)

// Snapshot renders one non-interactive frame of the playground plus the
// resolved configuration. Used by `pulsepad play --cli` and as the
// fallback when stdin is not a terminal.
func Snapshot(cfg *config.Config, logger *logging.Logger) string {
	app := NewApp(cfg, logger, nil)
	m := NewModel(app)

	var b strings.Builder
	b.WriteString(m.View())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("theme: %s\n", cfg.Theme))
	b.WriteString(fmt.Sprintf("speed: x%s\n", formatMultiplier(anim.ClampMultiplier(cfg.Multiplier))))
	b.WriteString(fmt.Sprintf("pulse: %dms (base %dms)\n", cfg.Duration().Milliseconds(), cfg.BaseMs))
	b.WriteString(fmt.Sprintf("counter seed: %d\n", cfg.CounterSeed))
	return b.String()
}
