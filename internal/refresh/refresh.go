// Package refresh models a pull-to-refresh affordance as a two-state machine
// whose trigger message can be re-typed for any parent.
package refresh

// Status identifies the refresh state. The zero value is StatusSearching so
// an unset State never reports a trigger action.
type Status int

const (
	StatusSearching Status = iota
	StatusIdle
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSearching:
		return "searching"
	default:
		return "unknown"
	}
}

// State is either Idle carrying the message that starts a search, or
// Searching, which carries nothing. The zero value is Searching.
type State[M any] struct {
	status Status
	action M
}

// Idle returns a state that emits action when triggered.
func Idle[M any](action M) State[M] {
	return State[M]{status: StatusIdle, action: action}
}

// Searching returns the in-flight state.
func Searching[M any]() State[M] {
	return State[M]{status: StatusSearching}
}

// Status returns the state tag
func (s State[M]) Status() Status { return s.status }

// IsSearching reports whether a search is in flight
func (s State[M]) IsSearching() bool { return s.status == StatusSearching }

// Action returns the trigger message. Searching has none.
func (s State[M]) Action() (M, bool) {
	if s.status != StatusIdle {
		var zero M
		return zero, false
	}
	return s.action, true
}

// MapState applies f to the Idle payload. f is not called for Searching.
func MapState[A, B any](s State[A], f func(A) B) State[B] {
	if s.status != StatusIdle {
		return Searching[B]()
	}
	return Idle(f(s.action))
}

// Properties configures a refresh control.
type Properties[M any] struct {
	State State[M]
	Title string
}

// Option configures Properties
type Option func(*options)

type options struct {
	title string
}

// WithTitle sets the display title
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// New builds Properties for state.
func New[M any](state State[M], opts ...Option) Properties[M] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return Properties[M]{State: state, Title: o.title}
}

// Map re-types the message carried by p. The title passes through.
//
// Map satisfies the functor laws: Map(p, id) equals p, and
// Map(Map(p, f), g) equals Map(p, g∘f).
func Map[A, B any](p Properties[A], f func(A) B) Properties[B] {
	return Properties[B]{
		State: MapState(p.State, f),
		Title: p.Title,
	}
}

// Trigger returns the message a pull emits, or false while searching.
func (p Properties[M]) Trigger() (M, bool) {
	return p.State.Action()
}
