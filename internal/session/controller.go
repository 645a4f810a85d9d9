// Package session implements the workout session state machine. It has no
// clock of its own: the host calls Tick once per elapsed second while the
// controller is Running.
package session

import (
	"fmt"

	"github.com/naveenspark/fitflow/pkg/domain"
)

// ExerciseSeconds is the countdown every exercise starts from.
const ExerciseSeconds = 60

// State is the controller's lifecycle position.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the run-time record of the workout being played. It exists only
// while a workout is selected.
type Session struct {
	Workout       domain.Workout
	ExerciseIndex int
	TimeRemaining int
	Running       bool
}

// Controller owns the single active Session and the weekly goal.
type Controller struct {
	sess *Session
	goal WeeklyGoal
}

// NewController returns an idle controller with the given starting goal.
func NewController(goal WeeklyGoal) *Controller {
	return &Controller{goal: goal}
}

// Start begins a session for w. It is ignored unless the controller is Idle.
// An unplayable workout is rejected before any state changes.
func (c *Controller) Start(w domain.Workout) (Event, error) {
	if c.sess != nil {
		return Event{}, nil
	}
	if err := w.Validate(); err != nil {
		return Event{}, fmt.Errorf("session.Start: %w", err)
	}
	c.sess = &Session{
		Workout:       w,
		ExerciseIndex: 0,
		TimeRemaining: ExerciseSeconds,
		Running:       true,
	}
	return c.event(EventStarted), nil
}

// Pause stops the countdown. Valid from Running only.
func (c *Controller) Pause() Event {
	if c.State() != Running {
		return Event{}
	}
	c.sess.Running = false
	return c.event(EventPaused)
}

// Resume restarts the countdown from the exact remaining time. Valid from Paused only.
func (c *Controller) Resume() Event {
	if c.State() != Paused {
		return Event{}
	}
	c.sess.Running = true
	return c.event(EventResumed)
}

// Stop abandons the session without touching the weekly goal.
func (c *Controller) Stop() Event {
	if c.sess == nil {
		return Event{}
	}
	ev := c.event(EventStopped)
	c.sess = nil
	return ev
}

// Tick advances the countdown by one second. Ticks outside Running are ignored.
// The tick that brings the countdown to zero also performs the zero-second
// transition, so an exercise lasts exactly ExerciseSeconds ticks.
func (c *Controller) Tick() Event {
	if c.State() != Running {
		return Event{}
	}
	s := c.sess
	if s.TimeRemaining > 0 {
		s.TimeRemaining--
		if s.TimeRemaining > 0 {
			return c.event(EventTicked)
		}
	}
	return c.expire()
}

// expire handles an exercise whose countdown reached zero.
func (c *Controller) expire() Event {
	s := c.sess
	if s.ExerciseIndex < s.Workout.LastExercise() {
		s.ExerciseIndex++
		s.TimeRemaining = ExerciseSeconds
		return c.event(EventAdvanced)
	}

	ev := c.event(EventCompleted)
	c.sess = nil
	before := c.goal
	c.goal = c.goal.Add(CompletionBonus)
	ev.GoalDelta = int(c.goal - before)
	ev.WeeklyGoal = c.goal
	return ev
}

func (c *Controller) event(kind EventKind) Event {
	ev := Event{Kind: kind, WeeklyGoal: c.goal}
	if c.sess != nil {
		ev.WorkoutID = c.sess.Workout.ID
		ev.ExerciseIndex = c.sess.ExerciseIndex
		ev.TimeRemaining = c.sess.TimeRemaining
	}
	return ev
}

// State reports Idle, Running or Paused.
func (c *Controller) State() State {
	switch {
	case c.sess == nil:
		return Idle
	case c.sess.Running:
		return Running
	default:
		return Paused
	}
}

// Workout returns the selected workout, if any.
func (c *Controller) Workout() (domain.Workout, bool) {
	if c.sess == nil {
		return domain.Workout{}, false
	}
	return c.sess.Workout, true
}

// ExerciseIndex is 0 when Idle.
func (c *Controller) ExerciseIndex() int {
	if c.sess == nil {
		return 0
	}
	return c.sess.ExerciseIndex
}

// TimeRemaining is 0 when Idle.
func (c *Controller) TimeRemaining() int {
	if c.sess == nil {
		return 0
	}
	return c.sess.TimeRemaining
}

// CurrentExercise returns the name of the exercise being played, or "" when Idle.
func (c *Controller) CurrentExercise() string {
	if c.sess == nil {
		return ""
	}
	return c.sess.Workout.Exercises[c.sess.ExerciseIndex]
}

// Progress returns the percentage of the workout done, 0 when Idle.
func (c *Controller) Progress() float64 {
	if c.sess == nil {
		return 0
	}
	return Progress(c.sess.ExerciseIndex, c.sess.TimeRemaining, len(c.sess.Workout.Exercises))
}

// Clock renders the remaining time of the current exercise as m:ss.
func (c *Controller) Clock() string {
	return FormatClock(c.TimeRemaining())
}

// WeeklyGoal returns the current weekly goal percentage.
func (c *Controller) WeeklyGoal() WeeklyGoal {
	return c.goal
}

// Snapshot returns a copy of the active session.
func (c *Controller) Snapshot() (Session, bool) {
	if c.sess == nil {
		return Session{}, false
	}
	return *c.sess, true
}
