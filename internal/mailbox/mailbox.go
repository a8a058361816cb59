// Package mailbox provides sinks through which UI-originated events become
// application messages for the Bubble Tea update loop.
package mailbox

import tea "github.com/charmbracelet/bubbletea"

// Mailbox accepts application messages.
type Mailbox interface {
	Dispatch(msg tea.Msg)
}

// Func adapts a plain function to Mailbox.
type Func func(msg tea.Msg)

// Dispatch calls f(msg)
func (f Func) Dispatch(msg tea.Msg) { f(msg) }

// Discard drops every message.
var Discard Mailbox = Func(func(tea.Msg) {})

// Sender is the part of *tea.Program a Program mailbox needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Program forwards messages into a running Bubble Tea program. Use it from
// goroutines outside the update loop.
type Program struct {
	p Sender
}

// NewProgram wraps a running program
func NewProgram(p Sender) Program {
	return Program{p: p}
}

// Dispatch sends msg to the program
func (p Program) Dispatch(msg tea.Msg) {
	if p.p != nil {
		p.p.Send(msg)
	}
}

// Queue collects messages dispatched during one Update call and hands them
// back to the runtime as commands. It is the mailbox for code running inside
// the update loop, where calling Program.Send would deadlock.
type Queue struct {
	pending []tea.Msg
}

// Dispatch appends msg to the queue
func (q *Queue) Dispatch(msg tea.Msg) {
	q.pending = append(q.pending, msg)
}

// Len returns the number of queued messages
func (q *Queue) Len() int {
	return len(q.pending)
}

// Messages returns a copy of the queued messages
func (q *Queue) Messages() []tea.Msg {
	out := make([]tea.Msg, len(q.pending))
	copy(out, q.pending)
	return out
}

// Drain empties the queue and returns a command delivering every message in
// dispatch order. Returns nil when nothing was queued.
func (q *Queue) Drain() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	msgs := q.pending
	q.pending = nil

	if len(msgs) == 1 {
		return deliver(msgs[0])
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, msg := range msgs {
		cmds[i] = deliver(msg)
	}
	return tea.Sequence(cmds...)
}

func deliver(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
