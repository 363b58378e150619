package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"serimux/internal/config"
	"serimux/internal/diag"
	"serimux/internal/layout"
	"serimux/internal/menu"
	"serimux/internal/serial"
	"serimux/internal/tabs"
)

// App is the root model. It owns the session/pane controller, the serial
// transport, the menu bar state, and the overlay stack. All per-session UI
// state (focus, scroll, input line) lives on the sessions themselves so
// panes can show different sessions without copying anything.
type App struct {
	Controller *tabs.Controller
	Transport  serial.Transport
	Store      *config.Store
	Recorder   *diag.Recorder

	Menu     *menu.State
	Overlays OverlayStack
	Keys     KeyMap
	HelpView help.Model

	ports   []string
	handles map[int]serial.Port // session id -> open port

	width, height  int
	prefs          config.Prefs
	showTimestamps bool
	pollEvery      time.Duration
}

// Ensure App can be used as tea.Model via adapter.
var _ tea.Model = (*appAdapter)(nil)

// appAdapter wraps App to implement tea.Model.
type appAdapter struct {
	*App
}

// NewApp creates the root model. A saved device config, if any, is applied
// to the first session; prefs shape the poll rate, log depth, and initial
// layout.
func NewApp(transport serial.Transport, store *config.Store, prefs config.Prefs, rec *diag.Recorder) *App {
	ctrl := tabs.NewController(prefs.LogCapacity)
	if store != nil {
		if cfg, ok := store.LoadConfig(); ok {
			ctrl.ActiveSession().Config = cfg
		}
	}
	if mode, ok := layout.ParseMode(prefs.DefaultLayout); ok {
		ctrl.SetLayoutMode(mode)
	}
	return &App{
		Controller:     ctrl,
		Transport:      transport,
		Store:          store,
		Recorder:       rec,
		Menu:           menu.New(menu.Default()),
		Keys:           DefaultKeyMap,
		HelpView:       help.New(),
		handles:        make(map[int]serial.Port),
		prefs:          prefs,
		showTimestamps: prefs.ShowTimestamps(),
		pollEvery:      time.Duration(prefs.PollIntervalMS) * time.Millisecond,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *App) AsTeaModel() tea.Model {
	return &appAdapter{App: a}
}

// Init implements tea.Model.
func (a *appAdapter) Init() tea.Cmd {
	return tea.Batch(a.tickCmd(), a.listPortsCmd())
}

// Update implements tea.Model.
func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.HelpView.Width = msg.Width
		// Modals re-wrap their content on resize.
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd

	case tickMsg:
		a.pollSessions()
		a.Controller.UpdateNotifications(time.Time(msg))
		return a, a.tickCmd()

	case portsLoadedMsg:
		if msg.err != nil {
			a.Controller.FocusedPaneSession().AddError("Port scan failed: " + msg.err.Error())
			return a, nil
		}
		a.setPorts(msg.ports)
		return a, nil

	case PortsChangedMsg:
		return a, a.listPortsCmd()

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case RenameSessionMsg:
		a.Overlays.Pop()
		a.Controller.RenameSession(msg.Index, msg.Name)
		return a, nil

	case CloseSessionMsg:
		a.Overlays.Pop()
		a.closeSession(msg.Index)
		return a, nil

	case SelectPortMsg:
		a.Overlays.Pop()
		s := a.Controller.FocusedPaneSession()
		if s.CanModifyConfig() {
			s.SelectPort(msg.Port)
		} else {
			s.AddWarning("Disconnect before changing the port")
		}
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	// Component messages (cursor blink and friends) reach the top modal.
	cmd, _ := a.Overlays.UpdateTop(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appAdapter) View() string {
	return a.render()
}

// setPorts installs a fresh port list and tells sessions whose selected
// port vanished.
func (a *App) setPorts(ports []string) {
	a.ports = ports
	known := make(map[string]bool, len(ports))
	for _, p := range ports {
		known[p] = true
	}
	for _, s := range a.Controller.Sessions().Sessions() {
		if s.Config.Port != "" && !known[s.Config.Port] && !s.Connected {
			s.AddWarning("Port " + s.Config.Port + " is gone")
		}
	}
}
