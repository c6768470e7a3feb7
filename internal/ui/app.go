package ui

import (
	"context"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Options configures NewAppModel. Zero values fall back to defaults.
type Options struct {
	Tick   time.Duration // clock and timer refresh interval
	Layout GridLayout
	Logger *log.Logger
	Tracer trace.Tracer
}

// AppModel is the root model: clock, timer, START/STOP buttons and status
// panel on a grid, with arrow-key focus navigation.
type AppModel struct {
	Clock  *Clock
	Timer  *Timer
	Status *Status
	Start  *Button
	Stop   *Button

	Focus      *FocusManager
	KeyHandler *KeyHandler
	Layout     GridLayout
	Logger     *log.Logger
	Tracer     trace.Tracer

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	if opts.Layout.Columns == nil || opts.Layout.Rows == nil {
		opts.Layout = DefaultGridLayout()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("")
	}

	a := &AppModel{
		Clock:  NewClock(opts.Tick),
		Timer:  NewTimer(opts.Tick),
		Status: NewStatus(),
		Layout: opts.Layout,
		Logger: opts.Logger,
		Tracer: opts.Tracer,
	}
	a.Start = NewButton("start", "START", Bind(a.startTimer, "top_button"))
	a.Stop = NewButton("stop", "STOP", Bind(a.stopTimer, "bottom_button"))
	if !a.Layout.Fits(a.Panels()) {
		a.Logger.Warn("layout cannot hold every panel, using default",
			"columns", len(a.Layout.Columns), "rows", len(a.Layout.Rows))
		a.Layout = DefaultGridLayout()
	}

	a.Focus = NewFocusManager([][]Focusable{{a.Start}, {a.Stop}})
	a.Focus.OnChange = func(from, to Position) {
		a.Logger.Debug("focus changed", "from", from, "to", to)
	}

	reg := NewKeybindRegistry()
	for _, k := range []string{"up", "down", "left", "right"} {
		d, _ := ParseDirection(k)
		reg.BindWithDesc(k, moveFocus(d), "move")
	}
	reg.BindWithDesc("enter", func() tea.Msg { return ActivateMsg{} }, "activate")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	a.KeyHandler = NewKeyHandler(reg)
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Panels returns the widgets in their grid areas:
// clock and timer across both columns, the buttons side by side, then status.
func (a *AppModel) Panels() []Panel {
	return []Panel{
		{ID: "clock", View: a.Clock, Area: Area{Col: 0, Row: 0, ColSpan: 2}},
		{ID: "timer", View: a.Timer, Area: Area{Col: 0, Row: 1, ColSpan: 2}},
		{ID: "start", View: a.Start, Area: Area{Col: 0, Row: 2}},
		{ID: "stop", View: a.Stop, Area: Area{Col: 1, Row: 2}},
		{ID: "status", View: a.Status, Area: Area{Col: 0, Row: 3, ColSpan: 2}},
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("gridclock")}
	for _, p := range a.Panels() {
		cmds = append(cmds, p.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		return a, nil
	case MoveFocusMsg:
		a.Status.Value = msg.Dir.String() + "-arrow"
		a.Focus.Move(msg.Dir)
		return a, nil
	case ActivateMsg:
		a.Status.Value = "enter button"
		return a, a.activate()
	}

	var cmds []tea.Cmd
	for _, p := range a.Panels() {
		_, cmd := p.View.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	content := a.Layout.Render(a.Panels())
	if footer := RenderKeybindHelp(a.KeyHandler.Registry); footer != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, footer)
	}
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Bottom, content)
	}
	return content
}

// activate runs the focused button's command and records a span for it.
func (a *AppModel) activate() tea.Cmd {
	pos := a.Focus.Pos
	cmd := a.Focus.Activate()

	id, bound := "", false
	if b, ok := a.Focus.Current().(*Button); ok {
		id, bound = b.ID, b.Command.Bound()
	}
	_, span := a.Tracer.Start(context.Background(), "button.activate",
		trace.WithAttributes(
			attribute.String("button.id", id),
			attribute.Int("focus.x", pos.X),
			attribute.Int("focus.y", pos.Y),
			attribute.Bool("button.bound", bound),
		))
	span.End()

	a.Logger.Info("button activated", "button", id, "pos", pos, "bound", bound)
	return cmd
}

func (a *AppModel) startTimer(args ...string) tea.Cmd {
	return tea.Batch(SetStatus(strings.Join(args, " ")), a.Timer.Start())
}

func (a *AppModel) stopTimer(args ...string) tea.Cmd {
	return tea.Batch(SetStatus(strings.Join(args, " ")), a.Timer.Stop())
}

func moveFocus(d Direction) tea.Cmd {
	return func() tea.Msg { return MoveFocusMsg{Dir: d} }
}
