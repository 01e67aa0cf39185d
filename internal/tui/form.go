package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/pulsepad/pulsepad/internal/anim"
	"github.com/pulsepad/pulsepad/internal/config"
)

// buildSetupForm returns the first-run configuration form. Current config
// values seed the defaults.
func buildSetupForm(cfg *config.Config) *huh.Form {
	theme := cfg.Theme
	multiplier := formatMultiplier(cfg.Multiplier)
	save := cfg.Session.Save

	lookGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Description("Color palette for the playground.").
			Key("theme").
			Options(
				huh.NewOption("Tokyo Night", "tokyo-night"),
				huh.NewOption("Mono", "mono"),
			).
			Value(&theme),
	)

	speedGroup := huh.NewGroup(
		huh.NewInput().
			Title("Speed multiplier").
			Description("Scales the 900ms base pulse. Values clamp to 0.25-4; anything unparseable falls back to 1.").
			Key("multiplier").
			Value(&multiplier),
	)

	artifactGroup := huh.NewGroup(
		huh.NewConfirm().
			Title("Save session artifacts?").
			Description("Writes resolved config, an event log, and a summary per session.").
			Key("save").
			Value(&save),
	)

	return huh.NewForm(lookGroup, speedGroup, artifactGroup)
}

// applySetupForm copies submitted values onto the config.
func applySetupForm(form *huh.Form, cfg *config.Config) {
	if theme := strings.TrimSpace(form.GetString("theme")); theme != "" {
		cfg.Theme = theme
	}
	cfg.Multiplier = anim.ParseMultiplier(form.GetString("multiplier"))
	cfg.Session.Save = form.GetBool("save")
}

// RunSetup walks the user through first-run configuration and applies the
// answers to cfg. The caller decides whether to persist the result.
func RunSetup(cfg *config.Config) error {
	form := buildSetupForm(cfg)
	if err := form.Run(); err != nil {
		return err
	}
	applySetupForm(form, cfg)
	return nil
}
