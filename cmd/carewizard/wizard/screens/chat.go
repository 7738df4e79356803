package screens

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard/components"
	"github.com/mrsinham/carewizard/internal/advisor"
	"github.com/mrsinham/carewizard/internal/reports"
)

var (
	userBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("35")).
			Padding(0, 1)

	assistantBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// ChatScreen is the advisor conversation
type ChatScreen struct {
	ctx     context.Context
	conv    *advisor.Conversation
	input   textinput.Model
	spinner spinner.Model

	pending bool
	lastErr error
	width   int
	height  int
	done    bool
}

// NewChatScreen creates the chat screen for conv. Replies are awaited with ctx.
func NewChatScreen(ctx context.Context, conv *advisor.Conversation) *ChatScreen {
	in := textinput.New()
	in.Placeholder = "Type your health concern..."
	in.CharLimit = 500
	in.Width = 60
	in.Focus()

	return &ChatScreen{
		ctx:     ctx,
		conv:    conv,
		input:   in,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init implements tea.Model
func (s *ChatScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *ChatScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.done = true
			return s, tea.Quit
		case "enter":
			return s, s.send()
		}

	case ReplyMsg:
		s.pending = false
		s.lastErr = msg.Err
		return s, nil

	case spinner.TickMsg:
		if !s.pending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		if msg.Width > 10 {
			s.input.Width = msg.Width - 10
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send hands the typed text to the conversation. Only one reply is awaited at a time.
func (s *ChatScreen) send() tea.Cmd {
	if s.pending {
		return nil
	}

	reply, err := s.conv.Send(s.ctx, s.input.Value())
	if errors.Is(err, advisor.ErrEmptyMessage) {
		return nil
	}
	if err != nil {
		s.lastErr = err
		return nil
	}

	s.input.Reset()
	s.pending = true
	s.lastErr = nil
	return tea.Batch(WaitForReply(s.ctx, reply), s.spinner.Tick)
}

// View implements tea.Model
func (s *ChatScreen) View() string {
	var sb strings.Builder

	sb.WriteString(components.TitleStyle.Render("Health Advisor"))
	sb.WriteString("\n")
	sb.WriteString(components.SubtitleStyle.Render("AI-powered health guidance"))
	sb.WriteString("\n")

	sb.WriteString(s.transcript())

	if s.pending {
		sb.WriteString(s.spinner.View())
		sb.WriteString(" Advisor is typing...\n")
	}
	if s.lastErr != nil {
		sb.WriteString(components.ErrorStyle.Render("The advisor could not answer: " + s.lastErr.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Enter: Send | Esc: Exit"))
	sb.WriteString("\n")
	sb.WriteString(components.DisclaimerStyle.Render(reports.Disclaimer))

	return sb.String()
}

// transcript renders the messages, keeping only the most recent lines that fit.
func (s *ChatScreen) transcript() string {
	var lines []string
	bubbleWidth := 60
	if s.width > 20 {
		bubbleWidth = s.width * 3 / 4
	}

	for _, m := range s.conv.Messages() {
		var bubble string
		if m.Role == advisor.RoleUser {
			bubble = userBubbleStyle.Width(bubbleWidth).Render(m.Content)
		} else {
			bubble = assistantBubbleStyle.Width(bubbleWidth).Render(m.Content)
		}
		lines = append(lines, strings.Split(bubble, "\n")...)
		lines = append(lines, timestampStyle.Render(m.Timestamp.Format("15:04")), "")
	}

	// header, input, hints and disclaimer take about 12 lines
	if room := s.height - 12; s.height > 0 && room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	return strings.Join(lines, "\n") + "\n"
}

// Pending returns true while a reply is awaited
func (s *ChatScreen) Pending() bool {
	return s.pending
}

// Done returns true if the user left the chat
func (s *ChatScreen) Done() bool {
	return s.done
}
