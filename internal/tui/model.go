package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zerohunger/internal/transcript"
	"zerohunger/internal/yield"
)

// AssistantPort is the TUI-facing subset of the assistant.
type AssistantPort interface {
	Respond(text string) string
	EstimateYield(in yield.Inputs) (float64, error)
}

type tab int

const (
	chatTab tab = iota
	yieldTab
)

var tabTitles = []string{"🤖 Chatbot", "🌱 Crop Yield Predictor"}

// replyMsg delivers an answer once the thinking delay has elapsed.
type replyMsg struct{ text string }

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service    AssistantPort
	transcript *transcript.Transcript
	delay      time.Duration

	active   tab
	input    textinput.Model
	viewport viewport.Model
	pending  int
	status   string
	ready    bool

	form form
}

// New creates a new TUI model. The transcript is owned by the model; delay is
// the pause before a reply is shown.
func New(service AssistantPort, tr *transcript.Transcript, delay time.Duration) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type your message..."
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:    service,
		transcript: tr,
		delay:      delay,
		input:      ti,
		viewport:   vp,
		status:     "Ask about farming, food security, sustainable agriculture — or just say hi! 🙂",
		form:       newForm(),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := historyBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 3 + 1 + qh + 1 // title + tabs + caption, status, input box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.refreshHistory()
		return m, nil
	case replyMsg:
		m.transcript.Append(transcript.Bot, msg.text)
		if m.pending > 0 {
			m.pending--
		}
		if m.pending == 0 {
			m.status = "Ready."
		}
		m.refreshHistory()
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab", "shift+tab":
			return m.switchTab(), nil
		}
		if m.active == chatTab && msg.Type == tea.KeyEnter {
			return m.submitChat()
		}
	}
	if m.active == yieldTab {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg, m.service)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) switchTab() Model {
	if m.active == chatTab {
		m.active = yieldTab
		m.input.Blur()
		m.form.focus()
	} else {
		m.active = chatTab
		m.form.blur()
		m.input.Focus()
	}
	return m
}

func (m Model) submitChat() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	m.input.Reset()
	m.transcript.Append(transcript.User, text)
	reply := m.service.Respond(text)
	m.pending++
	m.status = "Thinking..."
	m.refreshHistory()
	return m, m.deliver(reply)
}

func (m Model) deliver(reply string) tea.Cmd {
	if m.delay <= 0 {
		return func() tea.Msg { return replyMsg{text: reply} }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return replyMsg{text: reply} })
}

func (m *Model) refreshHistory() {
	m.viewport.SetContent(renderHistory(m.transcript.Entries(), m.viewport.Width))
	m.viewport.GotoBottom()
}

// View renders the TUI layout for the active tab.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("🌾 Zero Hunger Farming Chatbot") + "\n" + renderTabs(m.active)
	if m.active == yieldTab {
		return header + "\n" + m.form.view()
	}
	caption := captionStyle.Render("Conversation " + shortID(m.transcript.SessionID()))
	history := historyBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + caption + "\n" + history + "\n" + input + "\n" + status
}

func renderTabs(active tab) string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == active {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = tabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderHistory(entries []transcript.Entry, width int) string {
	if len(entries) == 0 {
		return "No messages yet."
	}
	wrap := lipgloss.NewStyle()
	if width > 4 {
		wrap = wrap.Width(width - 4)
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if e.Sender == transcript.User {
			b.WriteString(userStyle.Render("You"))
		} else {
			b.WriteString(botStyle.Render("Assistant"))
		}
		b.WriteString("\n")
		b.WriteString(wrap.Render(e.Message))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	captionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	historyBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	tabStyle        = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("8"))
	activeTabStyle  = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true)
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
