package screens

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/carewizard/internal/advisor"
	"github.com/mrsinham/carewizard/internal/reports"
)

// ReportMsg is sent when the submitted checkup has been recorded
type ReportMsg struct {
	Report reports.Report
	Err    error
}

// ReplyMsg is sent when the advisor has answered
type ReplyMsg struct {
	Message advisor.Message
	Err     error
}

// WaitForReport returns a command that delivers the next recorder result.
func WaitForReport(results <-chan reports.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return ReportMsg{Err: errRecorderClosed}
		}
		return ReportMsg{Report: res.Report, Err: res.Err}
	}
}

// WaitForReply returns a command that delivers the advisor's answer.
func WaitForReply(ctx context.Context, reply *advisor.Reply) tea.Cmd {
	return func() tea.Msg {
		msg, err := reply.Wait(ctx)
		return ReplyMsg{Message: msg, Err: err}
	}
}
