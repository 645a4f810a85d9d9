package session

// EventKind names the transition a controller call produced.
type EventKind int

const (
	EventNone EventKind = iota // call was not valid in the current state
	EventStarted
	EventPaused
	EventResumed
	EventStopped
	EventTicked
	EventAdvanced
	EventCompleted
)

var eventNames = [...]string{
	EventNone:      "none",
	EventStarted:   "started",
	EventPaused:    "paused",
	EventResumed:   "resumed",
	EventStopped:   "stopped",
	EventTicked:    "ticked",
	EventAdvanced:  "advanced",
	EventCompleted: "completed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is returned by every controller call. For EventStopped and
// EventCompleted the position fields describe the session just destroyed.
type Event struct {
	Kind          EventKind
	WorkoutID     string
	ExerciseIndex int
	TimeRemaining int
	GoalDelta     int // set on EventCompleted
	WeeklyGoal    WeeklyGoal
}

// Applied reports whether the call changed anything.
func (e Event) Applied() bool {
	return e.Kind != EventNone
}

// Ends reports whether the event destroyed the session.
func (e Event) Ends() bool {
	return e.Kind == EventStopped || e.Kind == EventCompleted
}

// Ticking reports whether a countdown tick must be scheduled after the event.
func (e Event) Ticking() bool {
	switch e.Kind {
	case EventStarted, EventResumed, EventTicked, EventAdvanced:
		return true
	}
	return false
}
