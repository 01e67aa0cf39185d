package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pulsepad/pulsepad/internal/anim"
	"github.com/pulsepad/pulsepad/internal/modal"
	"github.com/pulsepad/pulsepad/internal/scene"
	"github.com/pulsepad/pulsepad/internal/session"
)

// Fixed row geometry. The mouse handler relies on the view composing
// panels at these offsets.
const (
	headerRows       = 2 // title line plus spacer
	stageInnerRows   = 7
	panelInnerRows   = 5
	sessionInnerRows = 3
	eventInnerRows   = 5

	dialogWidth = 46

	maxEventLines = 64
	noticeTimeout = 2 * time.Second
)

// Model is the main playground model.
type Model struct {
	app    *App
	styles Styles
	layout Layout
	keys   KeyMap

	// Speed multiplier and its edit field
	multiplier  float64
	multInput   textinput.Model
	editingMult bool

	// Loader spinner
	spin     spinner.Model
	loaderOn bool

	// Active pulse window
	pulseStart time.Time
	pulseEnd   time.Time

	// Transient status notice
	notice      string
	noticeKind  string
	noticeUntil time.Time

	events    []string
	startedAt time.Time
	showHelp  bool
}

// NewModel creates a new playground model.
func NewModel(app *App) *Model {
	styles := NewStyles(ThemeByName(app.Config.Theme))

	ti := textinput.New()
	ti.Placeholder = "1.0"
	ti.CharLimit = 8
	ti.Width = 10
	ti.Prompt = "speed × "
	ti.PromptStyle = styles.Dim
	ti.TextStyle = styles.InputActive
	ti.PlaceholderStyle = styles.Placeholder

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = styles.Running

	return &Model{
		app:        app,
		styles:     styles,
		layout:     NewLayout(DefaultWidth, DefaultHeight),
		keys:       DefaultKeyMap,
		multiplier: anim.ClampMultiplier(app.Config.Multiplier),
		multInput:  ti,
		spin:       spin,
		startedAt:  time.Now(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
	)
}

// tickMsg drives the 100ms animation clock.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// dialogCloseMsg fires when a dialog close timer expires. Timers are never
// cancelled; whatever state the dialog is in settles to fully closed.
type dialogCloseMsg struct{}

func dialogCloseCmd() tea.Cmd {
	return tea.Tick(modal.CloseDelay, func(time.Time) tea.Msg {
		return dialogCloseMsg{}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case dialogCloseMsg:
		wasVisible := m.app.Dialog.Visible()
		m.app.Dialog.FinishClose()
		if wasVisible {
			m.app.Logger.LogModal(m.app.Dialog.Phase().String())
			m.logEvent("dialog closed")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loaderOn {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clipboardCopyMsg:
		if msg.err != nil || !msg.success {
			m.setNotice("clipboard copy failed", "error")
		} else {
			m.setNotice("summary copied to clipboard", "success")
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}

	if !m.pulseEnd.IsZero() && !now.Before(m.pulseEnd) {
		m.finishPulse()
	}
	if !m.noticeUntil.IsZero() && !now.Before(m.noticeUntil) {
		m.notice = ""
		m.noticeKind = ""
		m.noticeUntil = time.Time{}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The multiplier field captures keystrokes while editing.
	if m.editingMult {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleMultiplierKey(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// A visible dialog captures the keyboard. Only the close paths act.
	if m.app.Dialog.Visible() {
		return m.handleDialogKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Run):
		m.startPulse(time.Now())
		return m, nil

	case key.Matches(msg, m.keys.Flip):
		card := m.app.Scene.Lookup(scene.ElementCard)
		flipped := card.Toggle(scene.ClassFlipped, nil)
		m.app.Logger.LogToggle(scene.ElementCard, scene.ClassFlipped, flipped)
		if flipped {
			m.logEvent("card flipped to back")
		} else {
			m.logEvent("card flipped to front")
		}
		return m, nil

	case key.Matches(msg, m.keys.Loader):
		ind := m.app.Scene.Lookup(scene.ElementIndicator)
		m.loaderOn = ind.Toggle(scene.ClassOn, nil)
		m.app.Logger.LogToggle(scene.ElementIndicator, scene.ClassOn, m.loaderOn)
		if m.loaderOn {
			m.logEvent("loader on")
			return m, m.spin.Tick
		}
		m.logEvent("loader off")
		return m, nil

	case key.Matches(msg, m.keys.Dialog):
		if m.app.Dialog.Open() {
			m.app.Logger.LogModal("open")
			m.logEvent("dialog opened")
		}
		return m, nil

	case key.Matches(msg, m.keys.CountOne):
		n := m.app.CounterA.Next()
		m.logEvent(fmt.Sprintf("counter A: %d", n))
		return m, nil

	case key.Matches(msg, m.keys.CountTwo):
		n := m.app.CounterB.Next()
		m.logEvent(fmt.Sprintf("counter B: %d", n))
		return m, nil

	case key.Matches(msg, m.keys.Multiplier):
		m.editingMult = true
		m.multInput.SetValue("")
		return m, m.multInput.Focus()

	case key.Matches(msg, m.keys.Copy):
		return m, copyToClipboard(m.summaryText())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMultiplierKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		raw := m.multInput.Value()
		m.multiplier = anim.ParseMultiplier(raw)
		m.editingMult = false
		m.multInput.Blur()
		d := m.pulseDuration()
		m.setNotice(fmt.Sprintf("speed ×%s, next pulse %dms",
			formatMultiplier(m.effectiveMultiplier()), d.Milliseconds()), "info")
		m.logEvent(fmt.Sprintf("speed set to ×%s (%dms)",
			formatMultiplier(m.effectiveMultiplier()), d.Milliseconds()))
		return m, nil

	case tea.KeyEscape:
		m.editingMult = false
		m.multInput.Blur()
		m.multInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.multInput, cmd = m.multInput.Update(msg)
	return m, cmd
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dialog), msg.String() == "x":
		// The close control works during the closing phase too, which
		// arms another timer.
		return m, m.beginDialogClose("close control")

	case key.Matches(msg, m.keys.Escape):
		// Escape only acts on a fully open dialog.
		if m.app.Dialog.Phase() == modal.PhaseOpen {
			return m, m.beginDialogClose("escape")
		}
	}

	// Everything else is captured while the dialog is up.
	return m, nil
}

func (m *Model) beginDialogClose(cause string) tea.Cmd {
	if !m.app.Dialog.BeginClose() {
		return nil
	}
	m.app.Logger.LogModal("closing")
	m.logEvent("dialog closing (" + cause + ")")
	return dialogCloseCmd()
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if m.app.Dialog.Visible() {
		// A press outside the dialog is a backdrop click and closes it.
		if !m.dialogRect().contains(msg.X, msg.Y) {
			return m, m.beginDialogClose("backdrop")
		}
		return m, nil
	}

	if m.stageRect().contains(msg.X, msg.Y) {
		m.startPulse(time.Now())
	}
	return m, nil
}

// startPulse begins a pulse run at the configured speed. Triggering while
// a pulse is active restarts the timing window.
func (m *Model) startPulse(now time.Time) {
	d := m.pulseDuration()
	stage := m.app.Scene.Lookup(scene.ElementStage)
	stage.Add(scene.ClassRun)

	m.app.Anim.RecordRun(d)
	m.pulseStart = now
	m.pulseEnd = now.Add(d)

	m.app.Logger.LogToggle(scene.ElementStage, scene.ClassRun, true)
	m.logEvent(fmt.Sprintf("pulse ×%s for %dms",
		formatMultiplier(m.effectiveMultiplier()), d.Milliseconds()))
}

func (m *Model) finishPulse() {
	stage := m.app.Scene.Lookup(scene.ElementStage)
	stage.Remove(scene.ClassRun)

	m.pulseStart = time.Time{}
	m.pulseEnd = time.Time{}

	m.app.Logger.LogRun(m.app.Anim.Runs, m.app.Anim.LastDuration)
	m.logEvent(fmt.Sprintf("pulse run %d done", m.app.Anim.Runs))
}

func (m *Model) pulseDuration() time.Duration {
	return anim.DurationFrom(m.app.Config.Base(), m.multiplier)
}

func (m *Model) effectiveMultiplier() float64 {
	return anim.ClampMultiplier(m.multiplier)
}

func (m *Model) setNotice(text, kind string) {
	m.notice = text
	m.noticeKind = kind
	m.noticeUntil = time.Now().Add(noticeTimeout)
}

func (m *Model) logEvent(text string) {
	line := time.Now().Format("15:04:05") + " " + text
	m.events = append(m.events, line)
	if len(m.events) > maxEventLines {
		m.events = m.events[len(m.events)-maxEventLines:]
	}
}

// summaryText is the plain-text session summary placed on the clipboard.
func (m *Model) summaryText() string {
	a := m.app.Anim
	lines := []string{
		"pulsepad session",
		fmt.Sprintf("runs: %d", a.Runs),
		fmt.Sprintf("last pulse: %dms", a.LastDuration.Milliseconds()),
		fmt.Sprintf("counts: %d / %d", m.app.CounterA.Value(), m.app.CounterB.Value()),
		fmt.Sprintf("speed: x%s (%dms)",
			formatMultiplier(m.effectiveMultiplier()), m.pulseDuration().Milliseconds()),
	}
	if m.app.Recorder != nil {
		lines = append(lines, "session id: "+m.app.Recorder.ID)
	}
	return strings.Join(lines, "\n")
}

// Summary builds the artifact summary for the session.
func (m *Model) Summary(status string) session.Summary {
	id := ""
	if m.app.Recorder != nil {
		id = m.app.Recorder.ID
	}
	return session.Summary{
		ID:         id,
		Status:     status,
		StartedAt:  m.startedAt.UTC().Format(time.RFC3339),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
		Runs:       m.app.Anim.Runs,
		LastRunMs:  m.app.Anim.LastDuration.Milliseconds(),
		CounterA:   m.app.CounterA.Value(),
		CounterB:   m.app.CounterB.Value(),
		Multiplier: m.effectiveMultiplier(),
	}
}

// EventLog returns the logged events, one per line.
func (m *Model) EventLog() string {
	return strings.Join(m.events, "\n")
}

// rect is a hit-test region in screen cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// stageRect is where the stage panel lands in the composed view.
func (m *Model) stageRect() rect {
	return rect{x: 0, y: headerRows, w: m.layout.PanelWidth, h: stageInnerRows + 2}
}

// dialogRect is where the centered dialog lands in the overlay.
func (m *Model) dialogRect() rect {
	box := m.renderDialog()
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	return rect{
		x: (m.layout.Width - w) / 2,
		y: (m.layout.Height - h) / 2,
		w: w,
		h: h,
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.app.Dialog.Visible() {
		return m.renderDialogOverlay()
	}

	parts := []string{
		m.renderHeader(),
		JoinHorizontal(SpacingNormal, m.renderStage(), m.renderCard()),
		JoinHorizontal(SpacingNormal, m.renderLoader(), m.renderControls()),
		m.renderSession(),
		m.renderEvents(),
	}
	if m.showHelp {
		parts = append(parts, m.renderHelp())
	}
	parts = append(parts, m.styles.Footer.Render(KeyHints(m.keys.hints(), m.styles)))

	return JoinVertical(2, parts...)
}

func (m *Model) renderHeader() string {
	left := m.styles.Title.Render("PULSEPAD") +
		m.styles.Dim.Render("terminal animation playground")
	right := m.styles.Dim.Render("theme: " + m.app.Config.Theme)

	gap := m.layout.ContentWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderStage() string {
	stage := m.app.Scene.Lookup(scene.ElementStage)
	inner := m.layout.PanelWidth - 4
	running := stage.Has(scene.ClassRun)

	var status, bar, readout string
	if running {
		d := m.pulseEnd.Sub(m.pulseStart)
		progress := anim.Progress(m.pulseStart, time.Now(), d)
		status = StatusBadge("running", fmt.Sprintf("pulse ×%s",
			formatMultiplier(m.effectiveMultiplier())), m.styles)
		bar = ProgressBar("pulse", int(progress*100), inner, m.styles)
		readout = m.styles.Dim.Render(fmt.Sprintf("%dms / %dms",
			int64(float64(d.Milliseconds())*progress), d.Milliseconds()))
	} else {
		status = StatusBadge("pending", "idle", m.styles)
		bar = ProgressBar("pulse", 0, inner, m.styles)
		readout = m.styles.Dim.Render(fmt.Sprintf("next pulse %dms",
			m.pulseDuration().Milliseconds()))
	}

	lines := []string{
		status,
		"",
		bar,
		"",
		readout,
		"",
		m.classLine(stage),
	}
	return SectionBox("STAGE", strings.Join(lines, "\n"), m.layout.PanelWidth, m.styles)
}

func (m *Model) renderCard() string {
	card := m.app.Scene.Lookup(scene.ElementCard)
	inner := m.layout.PanelWidth - 4

	face := m.styles.CardFront.Render("FRONT")
	if card.Has(scene.ClassFlipped) {
		face = m.styles.CardBack.Render("BACK")
	}

	lines := []string{
		"",
		Center(face, inner), // three rows from the face padding
		"",
		"",
		m.classLine(card),
	}
	return SectionBox("CARD", strings.Join(lines, "\n"), m.layout.PanelWidth, m.styles)
}

func (m *Model) renderLoader() string {
	ind := m.app.Scene.Lookup(scene.ElementIndicator)

	var status string
	if m.loaderOn {
		status = m.spin.View() + " " + m.styles.Running.Render("working")
	} else {
		status = StatusBadge("pending", "off", m.styles)
	}

	lines := []string{
		status,
		"",
		m.styles.Dim.Render("l toggles the loader"),
		"",
		m.classLine(ind),
	}
	return SectionBox("LOADER", strings.Join(lines, "\n"), m.layout.PanelWidth, m.styles)
}

func (m *Model) renderControls() string {
	var speed string
	if m.editingMult {
		speed = m.multInput.View()
	} else {
		speed = m.styles.Bold.Render("speed ×"+formatMultiplier(m.effectiveMultiplier())) +
			m.styles.Dim.Render("  (m edits)")
	}

	counters := m.styles.Base.Render("counters  A ") +
		m.styles.Bold.Render(strconv.Itoa(m.app.CounterA.Value())) +
		m.styles.Base.Render("   B ") +
		m.styles.Bold.Render(strconv.Itoa(m.app.CounterB.Value()))

	lines := []string{
		speed,
		m.styles.Base.Render(fmt.Sprintf("pulse %dms", m.pulseDuration().Milliseconds())),
		"",
		counters,
		m.styles.Dim.Render("1/2 bumps a counter"),
	}
	return SectionBox("CONTROLS", strings.Join(lines, "\n"), m.layout.PanelWidth, m.styles)
}

func (m *Model) renderSession() string {
	a := m.app.Anim

	stats := fmt.Sprintf("runs %d   last %dms   counts %d/%d",
		a.Runs, a.LastDuration.Milliseconds(),
		m.app.CounterA.Value(), m.app.CounterB.Value())

	artifacts := CheckIcon(m.app.Recorder != nil, m.styles) + " "
	if m.app.Recorder != nil {
		artifacts += m.styles.Dim.Render("artifacts: " + m.app.Recorder.Dir)
	} else {
		artifacts += m.styles.Dim.Render("artifacts: disabled")
	}

	notice := ""
	if m.notice != "" {
		switch m.noticeKind {
		case "success":
			notice = m.styles.Success.Render(m.notice)
		case "error":
			notice = m.styles.Error.Render(m.notice)
		default:
			notice = m.styles.Info.Render(m.notice)
		}
	}

	lines := []string{
		m.styles.Base.Render(stats),
		artifacts,
		notice,
	}
	return SectionBox("SESSION", strings.Join(lines, "\n"), m.layout.ContentWidth, m.styles)
}

func (m *Model) renderEvents() string {
	inner := m.layout.ContentWidth - 4

	visible := m.events
	if len(visible) > eventInnerRows {
		visible = visible[len(visible)-eventInnerRows:]
	}

	lines := make([]string, 0, eventInnerRows)
	for _, ev := range visible {
		lines = append(lines, m.styles.Dim.Render(Truncate(ev, inner)))
	}
	for len(lines) < eventInnerRows {
		lines = append(lines, "")
	}
	return SectionBox("EVENTS", strings.Join(lines, "\n"), m.layout.ContentWidth, m.styles)
}

func (m *Model) renderHelp() string {
	rows := []struct {
		key  string
		what string
	}{
		{"r / enter", "run a pulse on the stage (clicking the stage works too)"},
		{"f", "flip the card"},
		{"l", "toggle the loader"},
		{"d", "open the dialog; x closes, esc closes while open, click outside closes"},
		{"1 / 2", "bump counter A / counter B"},
		{"m / tab", "edit the speed multiplier (enter applies, esc cancels)"},
		{"y", "copy the session summary to the clipboard"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var lines []string
	for _, r := range rows {
		lines = append(lines,
			m.styles.KeyBinding.Render(padRight("["+r.key+"]", 12))+m.styles.Dim.Render(r.what))
	}
	return SectionBox("HELP", strings.Join(lines, "\n"), m.layout.ContentWidth, m.styles)
}

func (m *Model) renderDialog() string {
	el := m.app.Scene.Lookup(scene.ElementDialog)
	a := m.app.Anim

	body := []string{
		m.styles.Header.Render("SESSION"),
		"",
		m.styles.Base.Render(fmt.Sprintf("runs    %d", a.Runs)),
		m.styles.Base.Render(fmt.Sprintf("last    %dms", a.LastDuration.Milliseconds())),
		m.styles.Base.Render(fmt.Sprintf("counts  %d / %d",
			m.app.CounterA.Value(), m.app.CounterB.Value())),
		m.styles.Base.Render(fmt.Sprintf("speed   ×%s", formatMultiplier(m.effectiveMultiplier()))),
		"",
		m.classLine(el),
		"",
		KeyHints([]KeyHint{{Key: "x", Label: "close"}, {Key: "esc", Label: "close"}}, m.styles),
	}

	style := m.styles.BoxFocused
	if m.app.Dialog.Phase() == modal.PhaseClosing {
		// Border dims while the close delay runs down.
		style = m.styles.Box
	}
	return style.Width(dialogWidth - 2).Render(strings.Join(body, "\n"))
}

func (m *Model) renderDialogOverlay() string {
	return lipgloss.Place(
		m.layout.Width, m.layout.Height,
		lipgloss.Center, lipgloss.Center,
		m.renderDialog(),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(m.styles.Theme.TextMuted),
	)
}

func (m *Model) classLine(el *scene.Element) string {
	text := "(none)"
	if el != nil && el.ClassString() != "" {
		text = el.ClassString()
	}
	return m.styles.Muted.Render("classes: " + text)
}

func formatMultiplier(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
