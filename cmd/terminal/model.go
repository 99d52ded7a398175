package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/repograph/internal/app"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/github"
	"github.com/sevigo/repograph/internal/session"
	"github.com/sevigo/repograph/internal/stream"
)

const asciiLogo = `
╔══════════════════════════════════════════════════════════════════╗
║                                                                  ║
║   ██████╗ ███████╗██████╗  ██████╗  ██████╗ ██████╗  █████╗ ██╗  ║
║   ██╔══██╗██╔════╝██╔══██╗██╔═══██╗██╔════╝ ██╔══██╗██╔══██╗██║  ║
║   ██████╔╝█████╗  ██████╔╝██║   ██║██║  ███╗██████╔╝███████║███║ ║
║   ██╔══██╗██╔══╝  ██╔═══╝ ██║   ██║██║   ██║██╔══██╗██╔══██║██╔╝ ║
║   ██║  ██║███████╗██║     ╚██████╔╝╚██████╔╝██║  ██║██║  ██║██║  ║
║   ╚═╝  ╚═╝╚══════╝╚═╝      ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ║
║                                                                  ║
║              REPOSITORY → ARCHITECTURE DIAGRAM                   ║
║                                                                  ║
╚══════════════════════════════════════════════════════════════════╝
`

type model struct {
	styles styles
	app    *app.App

	// UI Components
	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool

	// Session State
	repoArg     string
	repo        core.RepoRef
	repoInfo    *github.RepoInfo
	sess        *session.Session
	updates     chan session.Snapshot
	snapshot    session.Snapshot
	apiKeyMode  bool
	history     []string
	width       int
}

func initialModel(theme ThemeName, repoArg string) *model {
	styles := GetTheme(theme)
	ta := textarea.New()
	ta.Placeholder = "Type instructions to refine the diagram, or /help..."
	ta.Focus()
	ta.Prompt = styles.prompt.Render("► ")
	ta.CharLimit = core.MaxInstructionLength
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:    styles,
		textarea:  ta,
		spinner:   sp,
		repoArg:   repoArg,
		isLoading: true,
		width:     80,
		history:   []string{styles.ascii.Render(asciiLogo), "", "⚙ CONNECTING..."},
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(m.repoArg), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			m.textarea.Reset()
			return m, m.processInput(input)
		}

	case appInitializedMsg:
		if msg.err != nil {
			m.isLoading = false
			m.appendHistory(m.styles.error.Render(msg.err.Error()))
			return m, nil
		}
		m.app = msg.app
		m.repo = msg.repo
		m.sess = m.app.NewSession(m.repo)
		m.updates = make(chan session.Snapshot, 256)
		updates := m.updates
		m.sess.SetOnUpdate(func(snap session.Snapshot) {
			updates <- snap
		})
		m.appendHistory(m.styles.command.Render("→ Loading diagram for " + m.repo.FullName() + "..."))
		return m, tea.Batch(initialLoadCmd(m.sess), fetchRepoInfoCmd(m.app, m.repo), waitForUpdate(m.updates), m.spinner.Tick)

	case repoInfoMsg:
		m.repoInfo = msg.info
		if msg.info != nil && msg.info.Description != "" {
			m.appendHistory(m.styles.inactive.Render(msg.info.Description))
		}
		return m, nil

	case sessionUpdateMsg:
		m.snapshot = session.Snapshot(msg)
		m.renderSnapshot()
		return m, tea.Batch(waitForUpdate(m.updates), spCmd)

	case runFinishedMsg:
		m.isLoading = false
		m.snapshot = m.sess.Snapshot()
		m.renderResult()
		return m, nil

	case exportDoneMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendHistory(m.styles.error.Render("EXPORT FAILED: " + msg.err.Error()))
		} else {
			m.appendHistory(m.styles.success.Render("✓ Exported " + msg.path))
		}
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.appendHistory(m.styles.error.Render("⚠ " + msg.err.Error()))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.styles.header.Width(msg.Width - 4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.textarea.SetWidth(msg.Width - 10)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	if m.app == nil {
		return fmt.Sprintf("\n  %s starting...\n\n", m.spinner.View())
	}

	var statusParts []string
	statusParts = append(statusParts, fmt.Sprintf("REPO: %s", m.repo.FullName()))
	statusParts = append(statusParts, fmt.Sprintf("PROVIDER: %s", m.repo.Provider))
	if m.repoInfo != nil {
		statusParts = append(statusParts, fmt.Sprintf("★ %d", m.repoInfo.Stars))
		if m.repoInfo.Language != "" {
			statusParts = append(statusParts, m.repoInfo.Language)
		}
	}

	switch m.snapshot.State.Status {
	case stream.StatusComplete:
		statusParts = append(statusParts, m.styles.success.Render("● READY"))
	case stream.StatusError:
		statusParts = append(statusParts, m.styles.error.Render("● FAILED"))
	default:
		statusParts = append(statusParts, m.styles.inactive.Render("○ GENERATING"))
	}

	if m.snapshot.Cost != "" {
		statusParts = append(statusParts, fmt.Sprintf("COST: %s", m.snapshot.Cost))
	}
	if m.apiKeyMode {
		statusParts = append(statusParts, m.styles.prompt.Render("ENTER API KEY"))
	}

	status := m.styles.inactive.Render(strings.Join(statusParts, " │ "))

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.styles.success.Render("GENERATING...")
	}

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.viewport.Render(m.viewport.View()),
			"",
			m.styles.footer.Render(
				lipgloss.JoinHorizontal(lipgloss.Left,
					m.textarea.View(),
					loadingIndicator,
				),
			),
			status,
		),
	)
}

func (m *model) appendHistory(lines ...string) {
	m.history = append(m.history, "")
	m.history = append(m.history, lines...)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

// renderSnapshot shows in-flight progress: one line per phase message and
// a growing character count while chunks stream in.
func (m *model) renderSnapshot() {
	st := m.snapshot.State

	progress := fmt.Sprintf("   explanation %d │ mapping %d │ diagram %d chars",
		len(st.Explanation), len(st.Mapping), len(st.Diagram))

	last := ""
	if len(m.history) > 0 {
		last = m.history[len(m.history)-1]
	}
	if st.Message != "" && !strings.Contains(last, st.Message) {
		m.history = append(m.history, m.styles.command.Render("→ "+st.Message))
	} else if strings.HasPrefix(last, "   explanation") {
		m.history = m.history[:len(m.history)-1]
	}
	m.history = append(m.history, progress)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

// renderResult prints the final diagram source and the explanation as
// rendered markdown once a run ends.
func (m *model) renderResult() {
	st := m.snapshot.State

	if st.Status == stream.StatusError {
		m.appendHistory(m.styles.error.Render("⚠ " + st.Error))
		if strings.Contains(strings.ToLower(st.Error), "api key") {
			m.apiKeyMode = true
			m.textarea.Placeholder = "Paste your OpenAI API key and press Enter..."
			m.appendHistory(m.styles.prompt.Render("An API key is required to continue. Paste it below."))
		}
		return
	}

	if st.Status != stream.StatusComplete {
		return
	}

	separator := m.styles.inactive.Render(strings.Repeat("─", min(m.width-6, 70)))
	lines := []string{
		m.styles.success.Render("✓ DIAGRAM READY"),
		separator,
		st.Diagram,
		separator,
	}

	if st.Explanation != "" {
		rendered, err := renderMarkdown(st.Explanation, m.width-6)
		if err != nil {
			rendered = st.Explanation
		}
		lines = append(lines, rendered)
	}

	lines = append(lines, m.styles.inactive.Render("Type instructions to refine, /regenerate for a fresh run, /export for a PNG."))
	m.appendHistory(lines...)
}

func renderMarkdown(text string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}

func (m *model) processInput(input string) tea.Cmd {
	m.history = append(m.history, m.styles.prompt.Render("► ")+input)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()

	if m.sess == nil {
		m.appendHistory(m.styles.error.Render("Still starting up, try again in a moment."))
		return nil
	}

	// Session is not safe for concurrent use; one run at a time.
	if m.isLoading {
		switch input {
		case "/exit", "/quit", "/q":
			return tea.Quit
		}
		m.appendHistory(m.styles.inactive.Render("A run is already in progress, wait for it to finish."))
		return nil
	}

	if m.apiKeyMode {
		m.apiKeyMode = false
		m.textarea.Placeholder = "Type instructions to refine the diagram, or /help..."
		m.isLoading = true
		m.appendHistory(m.styles.command.Render("→ Retrying with your API key..."))
		return tea.Batch(m.spinner.Tick, submitAPIKeyCmd(m.sess, input), waitForUpdate(m.updates))
	}

	parts := strings.Fields(input)
	command := parts[0]
	args := strings.TrimSpace(strings.TrimPrefix(input, command))

	switch command {
	case "/regenerate", "/r":
		m.isLoading = true
		m.appendHistory(m.styles.command.Render("→ Regenerating..."))
		return tea.Batch(m.spinner.Tick, regenerateCmd(m.sess, args), waitForUpdate(m.updates))

	case "/export", "/e":
		m.isLoading = true
		m.appendHistory(m.styles.command.Render("→ Exporting PNG..."))
		return tea.Batch(m.spinner.Tick, exportPNGCmd(m.sess, m.repo))

	case "/copy", "/y":
		m.sess.CopyDiagram()
		m.appendHistory(m.styles.success.Render("✓ Diagram copied to clipboard"))
		return nil

	case "/key":
		m.apiKeyMode = true
		m.textarea.Placeholder = "Paste your OpenAI API key and press Enter..."
		m.appendHistory(m.styles.command.Render("→ Paste your API key below."))
		return nil

	case "/help", "/h":
		helpText := m.styles.success.Render("AVAILABLE COMMANDS:") + `

  [instructions]       Re-generate the diagram following your instructions.
  /regenerate [text]   Discard the cache and generate a fresh diagram.
  /export              Save the diagram as a PNG next to the terminal.
  /copy                Copy the Mermaid source to the clipboard.
  /key                 Store an API key for generation on your own account.
  /help                Show this help message.
  /exit, /quit         Exit repograph.

  ` + m.styles.inactive.Render("TIP: anything that is not a command is treated as instructions")
		m.appendHistory(helpText)
		return nil

	case "/exit", "/quit", "/q":
		return tea.Quit

	default:
		m.isLoading = true
		m.appendHistory(m.styles.command.Render("→ Refining diagram..."))
		return tea.Batch(m.spinner.Tick, modifyCmd(m.sess, input), waitForUpdate(m.updates))
	}
}
