package viewstate

import "time"

// Phase is the live variant of a State.
type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is what a screen renders from. Data is meaningful only when Phase is
// Ready and Error only when Phase is Failed.
type State[T any] struct {
	Phase Phase
	Data  T
	Error *PresentableError
}

// LoadingState returns the initial state.
func LoadingState[T any]() State[T] {
	return State[T]{Phase: Loading}
}

// ReadyState wraps fetched data.
func ReadyState[T any](data T) State[T] {
	return State[T]{Phase: Ready, Data: data}
}

// FailedState wraps a presented error.
func FailedState[T any](pe PresentableError) State[T] {
	return State[T]{Phase: Failed, Error: &pe}
}

// Snapshot is a State plus bookkeeping the store keeps alongside it.
type Snapshot[T any] struct {
	State[T]
	// LastUpdated is when a fetch last resolved, zero until the first one.
	LastUpdated time.Time
	// ConsecutiveFailures counts Failed transitions since the last Ready.
	ConsecutiveFailures int
}
