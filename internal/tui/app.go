package tui

import (
	"glim/internal/circle"
	"glim/internal/config"
	"glim/internal/journal/data"
	"glim/internal/journal/service"
	"glim/internal/logs"
	"glim/internal/tui/circleview"
	countryview "glim/internal/tui/countrypicker"
	drawerview "glim/internal/tui/drawer"
	editorview "glim/internal/tui/editor"
	feedview "glim/internal/tui/feed"
	"glim/internal/tui/messages"
	onboardview "glim/internal/tui/onboarding"
	recorderview "glim/internal/tui/recorder"
	"glim/internal/tui/shared"
	"glim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	entrySvc    service.EntryService
	currentView ViewType
	feedView    feedview.Model
	editorView  editorview.Model
	circleView  circleview.Model
	countryView countryview.Model
	onboardView onboardview.Model
	recordView  recorderview.Model
	drawer      drawerview.Model
	statusExtra string
	showHelp    bool
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, entrySvc service.EntryService, circleSvc *circle.LocalService) AppModel {
	view := ViewFeed
	switch cfg.DefaultView {
	case "circle":
		view = ViewCircle
	case "onboarding":
		view = ViewOnboarding
	}

	return AppModel{
		cfg:         cfg,
		entrySvc:    entrySvc,
		currentView: view,
		feedView:    feedview.NewModel(entrySvc, cfg.DateFormat, cfg.GridGap),
		editorView:  editorview.NewModel(entrySvc),
		circleView:  circleview.NewModel(circleSvc, circleSvc.Current()),
		countryView: countryview.NewModel(),
		onboardView: onboardview.NewModel(),
		recordView:  recorderview.NewModel(),
		drawer:      drawerview.NewModel(),
	}
}

func (m AppModel) Init() tea.Cmd {
	switch m.currentView {
	case ViewOnboarding:
		return m.onboardView.Init()
	case ViewCircle:
		return m.circleView.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.feedView.SetSize(msg.Width, contentHeight)
		m.editorView.SetSize(msg.Width, contentHeight)
		m.circleView.SetSize(msg.Width, contentHeight)
		m.countryView.SetSize(msg.Width, contentHeight)
		m.onboardView.SetSize(msg.Width, contentHeight)
		m.recordView.SetSize(msg.Width, contentHeight)
		m.drawer.SetHeight(contentHeight)
		return m, nil

	case SwitchViewMsg:
		return m.switchTo(msg.View)

	case EntrySavedMsg:
		logs.Logger.Printf("entry saved: %s", msg.Entry.ID)
		m.currentView = ViewFeed
		var cmd tea.Cmd
		m.feedView, cmd = m.feedView.Update(messages.DataRefreshMsg{})
		return m, cmd

	case EntryDiscardedMsg:
		m.currentView = ViewFeed
		return m, nil

	case RecordingDoneMsg:
		// A finished voice note opens the composer with audio attached
		m.currentView = ViewEditor
		m.editorView.Reset(data.Entry{
			AudioPath:    msg.AudioPath,
			AudioSeconds: msg.AudioSeconds,
		})
		return m, m.editorView.Init()

	case CountryChosenMsg:
		m.statusExtra = msg.Name + " " + msg.DialCode
		m.currentView = ViewCircle
		return m, nil

	case tea.KeyMsg:
		// Help popup swallows the next keypress
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.drawer.Open {
			var cmd tea.Cmd
			m.drawer, cmd = m.drawer.Update(msg)
			return m, cmd
		}

		if !m.isTyping() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "tab":
				return m, m.drawer.Toggle()
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateChild(msg)
}

func (m AppModel) switchTo(view ViewType) (tea.Model, tea.Cmd) {
	m.currentView = view
	switch view {
	case ViewEditor:
		m.editorView.Reset(data.Entry{})
		return m, m.editorView.Init()
	case ViewRecorder:
		return m, m.recordView.Start()
	case ViewCircle:
		return m, m.circleView.Init()
	case ViewOnboarding:
		return m, m.onboardView.Init()
	}
	return m, nil
}

func (m AppModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewFeed:
		m.feedView, cmd = m.feedView.Update(msg)
	case ViewEditor:
		m.editorView, cmd = m.editorView.Update(msg)
	case ViewCircle:
		m.circleView, cmd = m.circleView.Update(msg)
	case ViewCountryPicker:
		m.countryView, cmd = m.countryView.Update(msg)
	case ViewOnboarding:
		m.onboardView, cmd = m.onboardView.Update(msg)
	case ViewRecorder:
		m.recordView, cmd = m.recordView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) isTyping() bool {
	switch m.currentView {
	case ViewFeed:
		return m.feedView.IsTyping()
	case ViewEditor:
		return m.editorView.IsTyping()
	case ViewCircle:
		return m.circleView.IsTyping()
	case ViewCountryPicker:
		return m.countryView.IsTyping()
	}
	return false
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	var content string
	switch m.currentView {
	case ViewFeed:
		content = m.feedView.View()
	case ViewEditor:
		content = m.editorView.View()
	case ViewCircle:
		content = m.circleView.View()
	case ViewCountryPicker:
		content = m.countryView.View()
	case ViewOnboarding:
		content = m.onboardView.View()
	case ViewRecorder:
		content = m.recordView.View()
	}

	contentHeight := m.height - 3
	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)
	content = m.drawer.Overlay(content, m.width)

	return content + "\n" + m.statusBar()
}

func (m AppModel) statusBar() string {
	hints := m.hintText()
	if m.statusExtra != "" {
		hints = m.statusExtra + "  |  " + hints
	}
	return theme.StatusBar.Width(m.width).Render(hints)
}

func (m AppModel) hintText() string {
	if m.drawer.Open {
		return m.drawer.HintText()
	}
	switch m.currentView {
	case ViewFeed:
		return m.feedView.HintText()
	case ViewEditor:
		return m.editorView.HintText()
	case ViewCircle:
		return m.circleView.HintText()
	case ViewCountryPicker:
		return m.countryView.HintText()
	case ViewOnboarding:
		return m.onboardView.HintText()
	case ViewRecorder:
		return m.recordView.HintText()
	}
	return ""
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Feed",
			Binds: []shared.HelpBind{
				{Key: "j/k", Desc: "Move between entries"},
				{Key: "n", Desc: "Write a new entry"},
				{Key: "r", Desc: "Record a voice note"},
				{Key: "d", Desc: "Delete selected entry"},
				{Key: "c", Desc: "Open your circle"},
			},
		},
		{
			Title: "Everywhere",
			Binds: []shared.HelpBind{
				{Key: "tab", Desc: "Open the menu"},
				{Key: "?", Desc: "Toggle this help"},
				{Key: "q", Desc: "Quit"},
			},
		},
	}
}
