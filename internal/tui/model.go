package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/resumescan/internal/catalog"
	"github.com/agbru/resumescan/internal/config"
	apperrors "github.com/agbru/resumescan/internal/errors"
	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/logging"
	"github.com/agbru/resumescan/internal/metrics"
	"github.com/agbru/resumescan/internal/upload"
)

// Layout constants for the TUI screens.
const (
	headerHeight = 1
	footerHeight = 1
	// panelChrome is the border plus vertical padding of panelStyle.
	panelChrome = 4
	// resultsChrome is the title block and tab row above the results viewport.
	resultsChrome = 6
	// pickerMargin is the bottom margin bubbles/filepicker keeps when sizing
	// itself from a WindowSizeMsg.
	pickerMargin  = 5
	maxPanelWidth = 96
)

// Model is the root bubbletea model. It owns the flow controller; every
// controller operation runs inside Update.
type Model struct {
	ctrl     *flow.Controller
	timings  config.Timings
	catalog  *catalog.Catalog
	logger   logging.Logger
	recorder metrics.Recorder
	now      func() time.Time
	ctx      context.Context

	keymap   KeyMap
	header   HeaderModel
	footer   FooterModel
	spinner  spinner.Model
	upload   uploadModel
	location locationModel
	analysis analysisModel
	results  resultsModel

	stage      flow.Stage
	generation uint64
	alert      string
	showHelp   bool
	width      int
	height     int
	exitCode   int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. Defaults to logging.Discard.
func WithLogger(l logging.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithRecorder sets the metrics recorder for upload outcomes.
func WithRecorder(rec metrics.Recorder) Option {
	return func(m *Model) { m.recorder = rec }
}

// WithCatalog replaces the embedded mock catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(m *Model) { m.catalog = c }
}

// WithClock sets the clock used by the header.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates the root model for ctrl, starting at its current stage.
func NewModel(ctx context.Context, ctrl *flow.Controller, t config.Timings, version string, opts ...Option) Model {
	m := Model{
		ctrl:     ctrl,
		timings:  t,
		logger:   logging.Discard,
		recorder: metrics.Nop{},
		now:      time.Now,
		ctx:      ctx,
		keymap:   DefaultKeyMap(),
		footer:   NewFooterModel(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle)),
		upload:   newUploadModel(),
		location: newLocationModel(),
		analysis: newAnalysisModel(),
		results:  newResultsModel(),
		stage:    ctrl.Stage(),
		exitCode: apperrors.ExitSuccess,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.catalog == nil {
		m.catalog = catalog.Default()
	}
	m.header = NewHeaderModel(version, ctrl.Session().StartedAt)
	m.header.SetStage(m.stage)
	m.generation = 1
	return m
}

// Init starts the timers of the current stage and the background ticks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.stageCmd(),
		m.spinner.Tick,
		clockTickCmd(),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		var cmd tea.Cmd
		m.upload.picker, cmd = m.upload.picker.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: m.bodyHeight() - panelChrome - 3 + pickerMargin,
		})
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ClockTickMsg:
		m.header.Tick(time.Time(msg))
		if m.stage.Terminal() {
			return m, nil
		}
		return m, clockTickCmd()

	case ContextCancelledMsg:
		return m.quit()

	case introDoneMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		return m.advance(m.ctrl.CompleteIntro())

	case uploadDoneMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.upload.processing = false
		if err := m.ctrl.SubmitFile(msg.file); err != nil {
			return m.fail(err)
		}
		file := msg.file
		m.upload.file = &file
		return m, nil

	case fileInspectedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		details := msg.details
		m.upload.details = &details
		return m, nil

	case locationDoneMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.location.processing = false
		return m.advance(m.ctrl.SubmitLocation(msg.text))

	case stepTickMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.analysis.stepTicks++
		if m.analysis.step() < len(flow.AnalysisSteps)-1 {
			return m, m.stepTickCmd()
		}
		return m, nil

	case progressTickMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.analysis.progressTicks++
		if m.analysis.percent() < 100 {
			return m, m.progressTickCmd()
		}
		return m, nil

	case analysisDoneMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		return m.advance(m.ctrl.CompleteAnalysis())
	}

	// Directory listings and other internal file picker messages.
	if m.stage == flow.StageUpload && m.upload.browsing {
		var cmd tea.Cmd
		m.upload.picker, cmd = m.upload.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		return m.quit()
	}
	if m.alert != "" {
		if key.Matches(msg, m.keymap.Dismiss) {
			m.alert = ""
		}
		return m, nil
	}
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}
	// "?" is text while a field has focus; f1 always opens help.
	if key.Matches(msg, m.keymap.Help) && (msg.String() != "?" || !m.typing()) {
		m.showHelp = true
		return m, nil
	}

	switch m.stage {
	case flow.StageIntro:
		return m.advance(m.ctrl.CompleteIntro())
	case flow.StageUpload:
		return m.handleUploadKey(msg)
	case flow.StageLocation:
		return m.handleLocationKey(msg)
	case flow.StageResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	u := &m.upload
	switch {
	case u.uploaded():
		if key.Matches(msg, m.keymap.Confirm) {
			return m.advance(m.ctrl.AdvanceAfterUpload())
		}
		return m, nil

	case u.processing:
		return m, nil

	case key.Matches(msg, m.keymap.Toggle):
		u.browsing = !u.browsing
		if u.browsing {
			u.input.Blur()
			return m, u.picker.Init()
		}
		return m, u.input.Focus()

	case u.browsing:
		var cmd tea.Cmd
		u.picker, cmd = u.picker.Update(msg)
		if ok, path := u.picker.DidSelectFile(msg); ok {
			return m.acceptFile(path, cmd)
		}
		return m, cmd

	case key.Matches(msg, m.keymap.Confirm):
		return m.acceptFile(u.input.Value(), nil)
	}

	var cmd tea.Cmd
	u.input, cmd = u.input.Update(msg)
	return m, cmd
}

// acceptFile validates raw and, when accepted, starts the upload delay and
// the metadata inspection. A rejection only raises the alert.
func (m Model) acceptFile(raw string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	file, err := upload.Accept(raw)
	if err != nil {
		m.recorder.UploadRejected()
		m.logger.Info("upload rejected", logging.String("path", raw), logging.Err(err))
		m.alert = alertText(err)
		return m, cmd
	}
	m.recorder.UploadAccepted(upload.KindOf(file))
	m.logger.Info("upload accepted",
		logging.String("file", file.Name),
		logging.String("content_type", file.ContentType),
		logging.Int("size", int(file.Size)))
	m.upload.processing = true
	gen := m.generation
	return m, tea.Batch(
		cmd,
		tea.Tick(m.timings.UploadDelay, func(time.Time) tea.Msg {
			return uploadDoneMsg{gen: gen, file: file}
		}),
		inspectCmd(gen, file),
	)
}

func (m Model) handleLocationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := &m.location
	if l.processing {
		return m, nil
	}
	for i, b := range m.keymap.Quick {
		if key.Matches(msg, b) {
			l.selectQuick(i)
			return m, nil
		}
	}
	switch {
	case key.Matches(msg, m.keymap.NextLoc):
		l.cycle(1)
		return m, nil
	case key.Matches(msg, m.keymap.PrevLoc):
		l.cycle(-1)
		return m, nil
	case key.Matches(msg, m.keymap.Confirm):
		if !l.ready() {
			return m, nil
		}
		l.processing = true
		gen, text := m.generation, l.input.Value()
		return m, tea.Tick(m.timings.LocationDelay, func(time.Time) tea.Msg {
			return locationDoneMsg{gen: gen, text: text}
		})
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	l.syncQuick()
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Toggle) {
		m.results.toggleTab()
		return m, nil
	}
	var cmd tea.Cmd
	m.results.viewport, cmd = m.results.viewport.Update(msg)
	return m, cmd
}

// advance finishes a controller operation: on success the model enters the
// controller's new stage, on failure the error is shown.
func (m Model) advance(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		return m.fail(err)
	}
	return m.enterStage()
}

// enterStage syncs the model with the controller's stage and bumps the
// generation so timers scheduled by the previous stage are ignored.
func (m Model) enterStage() (tea.Model, tea.Cmd) {
	m.generation++
	m.stage = m.ctrl.Stage()
	m.header.SetStage(m.stage)

	var cmd tea.Cmd
	switch m.stage {
	case flow.StageUpload:
		cmd = m.upload.input.Focus()
	case flow.StageLocation:
		m.upload.input.Blur()
		cmd = m.location.input.Focus()
	case flow.StageAnalysis:
		m.location.input.Blur()
		m.analysis = newAnalysisModel()
		m.analysis.bar.Width = m.panelWidth() - 16
	case flow.StageResults:
		m.results.setReport(m.catalog.BuildReport(m.ctrl.Session()))
		m.header.SetDone(m.now())
	}
	return m, tea.Batch(cmd, m.stageCmd())
}

// stageCmd returns the timers the current stage starts on entry.
func (m Model) stageCmd() tea.Cmd {
	gen := m.generation
	switch m.stage {
	case flow.StageIntro:
		return tea.Tick(m.timings.Intro, func(time.Time) tea.Msg { return introDoneMsg{gen: gen} })
	case flow.StageAnalysis:
		return tea.Batch(
			m.stepTickCmd(),
			m.progressTickCmd(),
			tea.Tick(m.timings.Analysis, func(time.Time) tea.Msg { return analysisDoneMsg{gen: gen} }),
		)
	}
	return nil
}

func (m Model) stepTickCmd() tea.Cmd {
	gen := m.generation
	return tea.Tick(m.timings.Step, func(time.Time) tea.Msg { return stepTickMsg{gen: gen} })
}

func (m Model) progressTickCmd() tea.Cmd {
	gen := m.generation
	return tea.Tick(m.timings.Progress, func(time.Time) tea.Msg { return progressTickMsg{gen: gen} })
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("flow operation failed", err, logging.String("stage", m.stage.String()))
	m.alert = err.Error()
	return m, nil
}

// quit ends the program. Leaving before Results counts as a cancellation.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.stage.Terminal() {
		m.exitCode = apperrors.ExitSuccess
	} else {
		m.exitCode = apperrors.ExitErrorCanceled
	}
	return m, tea.Quit
}

// typing reports whether a text field currently has focus.
func (m Model) typing() bool {
	switch m.stage {
	case flow.StageUpload:
		return m.upload.editable() && !m.upload.browsing
	case flow.StageLocation:
		return !m.location.processing
	}
	return false
}

// ExitCode is the process exit code for the session so far.
func (m Model) ExitCode() int { return m.exitCode }

// View renders the current screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.alert != "" {
		return renderAlert(m.alert, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	spin := m.spinner.View()
	var body string
	switch m.stage {
	case flow.StageIntro:
		body = renderIntro(spin, m.width)
	case flow.StageUpload:
		body = m.panel(m.upload.view(spin))
	case flow.StageLocation:
		body = m.panel(m.location.view(spin))
	case flow.StageAnalysis:
		body = m.panel(m.analysis.view(spin))
	case flow.StageResults:
		body = m.panel(m.results.view())
	}
	body = lipgloss.NewStyle().Height(m.bodyHeight()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(m.keymap.keysFor(&m)),
	)
}

func (m Model) panel(content string) string {
	return centered(panelStyle.Width(m.panelWidth()).Render(content), m.width)
}

func (m Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 8)
}

func (m Model) panelWidth() int {
	return max(min(m.width-4, maxPanelWidth), 30)
}

func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	inner := m.panelWidth() - 6
	m.analysis.bar.Width = max(inner-10, 10)
	m.results.setSize(inner, m.bodyHeight()-panelChrome-resultsChrome)
}

// Run is the public entry point for the interactive mode. It runs the
// program until the user quits or ctx is cancelled and returns the exit code.
func Run(ctx context.Context, ctrl *flow.Controller, cfg config.AppConfig, version string, opts ...Option) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, ctrl, cfg.Timings(), version, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		model.logger.Error("tui failed", err)
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// inspectCmd reads the document metadata off the UI goroutine.
func inspectCmd(gen uint64, file flow.FileRef) tea.Cmd {
	return func() tea.Msg {
		details, _ := upload.Inspect(file)
		return fileInspectedMsg{gen: gen, details: details}
	}
}

// clockTickCmd refreshes the header clock once per second.
func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// watchContextCmd returns a command that waits for ctx to be done.
func watchContextCmd(ctx context.Context) tea.Cmd {
	if ctx == nil {
		return nil
	}
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
