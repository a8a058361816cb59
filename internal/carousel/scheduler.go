package carousel

import tea "github.com/charmbracelet/bubbletea"

// Scheduler runs tasks on a later iteration of the UI loop, never
// synchronously inside Post.
type Scheduler interface {
	Post(task func())
}

// TickMsg carries deferred tasks back into Update. The receiver must call
// Run from the update loop.
type TickMsg struct {
	tasks []func()
}

// Run executes the carried tasks in post order
func (m TickMsg) Run() {
	for _, task := range m.tasks {
		task()
	}
}

// Len returns the number of carried tasks
func (m TickMsg) Len() int {
	return len(m.tasks)
}

// Deferred is a Scheduler backed by the Bubble Tea runtime. Tasks posted
// during one Update are handed to the runtime by Tick and come back as a
// TickMsg on the next Update.
type Deferred struct {
	tasks []func()
}

// NewDeferred creates an empty scheduler
func NewDeferred() *Deferred {
	return &Deferred{}
}

// Post queues task for the next tick
func (d *Deferred) Post(task func()) {
	if task == nil {
		return
	}
	d.tasks = append(d.tasks, task)
}

// Pending returns the number of queued tasks
func (d *Deferred) Pending() int {
	return len(d.tasks)
}

// Tick drains the queue into a command. Returns nil if nothing is queued.
func (d *Deferred) Tick() tea.Cmd {
	if len(d.tasks) == 0 {
		return nil
	}
	tasks := d.tasks
	d.tasks = nil
	return func() tea.Msg {
		return TickMsg{tasks: tasks}
	}
}

// Flush runs all queued tasks immediately. Hosts without a runtime (and
// tests) use it to advance one tick.
func (d *Deferred) Flush() int {
	tasks := d.tasks
	d.tasks = nil
	TickMsg{tasks: tasks}.Run()
	return len(tasks)
}
