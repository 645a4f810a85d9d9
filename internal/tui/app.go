package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/naveenspark/fitflow/internal/config"
	"github.com/naveenspark/fitflow/internal/metrics"
	"github.com/naveenspark/fitflow/internal/session"
	"github.com/naveenspark/fitflow/pkg/domain"
)

type view int

const (
	viewCatalog view = iota
	viewSession
)

// sessionTickMsg is the one-second countdown tick. seq identifies the
// schedule that produced it; ticks from an older schedule are dropped.
type sessionTickMsg struct {
	seq int
}

func sessionTickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return sessionTickMsg{seq: seq}
	})
}

// Options configures NewApp. An empty Theme, Stats or Logger falls back to
// the default; Goal is taken as given.
type Options struct {
	Theme   string
	Goal    session.WeeklyGoal
	Stats   domain.MonthlyStats
	Metrics *metrics.Manager
	Logger  logrus.FieldLogger
}

// App is the root Bubbletea model.
type App struct {
	ctrl      *session.Controller
	catalog   catalogModel
	view      view
	palette   palette
	st        styles
	stats     domain.MonthlyStats
	metrics   *metrics.Manager
	log       logrus.FieldLogger
	tickSeq   int
	sessionID string
	helpOpen  bool
	status    string
	width     int
	height    int
	frame     int // logo shimmer animation frame
}

// NewApp creates a new TUI application over catalog.
func NewApp(catalog *domain.Catalog, opts Options) App {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	if opts.Theme == "" {
		opts.Theme = config.ThemeDark
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Stats == (domain.MonthlyStats{}) {
		opts.Stats = domain.DefaultMonthlyStats
	}
	p := paletteFor(opts.Theme)
	return App{
		ctrl:    session.NewController(opts.Goal),
		catalog: newCatalogModel(catalog),
		palette: p,
		st:      newStyles(p),
		stats:   opts.Stats,
		metrics: opts.Metrics,
		log:     opts.Logger,
	}
}

func (a App) Init() tea.Cmd {
	return shimmerTickCmd()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.catalog, _ = a.catalog.Update(msg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case sessionTickMsg:
		if msg.seq != a.tickSeq {
			return a, nil
		}
		return a.apply(a.ctrl.Tick())

	case startWorkoutMsg:
		ev, err := a.ctrl.Start(msg.workout)
		if err != nil {
			a.log.WithError(err).WithField("workout_id", msg.workout.ID).Warn("workout rejected")
			a.status = err.Error()
			return a, nil
		}
		return a.apply(ev)

	case copyResultMsg:
		if msg.err != nil {
			a.log.WithError(msg.err).Debug("clipboard write failed")
			a.status = "copy failed: " + msg.err.Error()
		} else {
			a.status = "workout plan copied"
		}
		return a, nil

	case tea.KeyMsg:
		a.status = ""

		// Help overlay captures all keys when open
		if a.helpOpen {
			switch {
			case key.Matches(msg, keys.Help), msg.String() == "esc":
				a.helpOpen = false
			case key.Matches(msg, keys.Quit):
				return a.quit()
			}
			return a, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a.quit()
		case key.Matches(msg, keys.Help):
			a.helpOpen = true
			return a, nil
		case key.Matches(msg, keys.Theme):
			a.palette = a.palette.toggled()
			a.st = newStyles(a.palette)
			a.log.WithField("theme", a.palette.name).Debug("theme toggled")
			return a, nil
		}

		if a.view == viewSession {
			return a.updateSession(msg)
		}
	}

	if a.view == viewCatalog {
		var cmd tea.Cmd
		a.catalog, cmd = a.catalog.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Pause):
		if a.ctrl.State() == session.Paused {
			return a.apply(a.ctrl.Resume())
		}
		return a.apply(a.ctrl.Pause())
	case key.Matches(msg, keys.Stop):
		return a.apply(a.ctrl.Stop())
	}
	return a, nil
}

// quit ends any active session before leaving so it is logged and counted.
func (a App) quit() (tea.Model, tea.Cmd) {
	if a.ctrl.State() != session.Idle {
		a, _ = a.applyEvent(a.ctrl.Stop())
	}
	return a, tea.Quit
}

func (a App) apply(ev session.Event) (tea.Model, tea.Cmd) {
	return a.applyEvent(ev)
}

// applyEvent reacts to a controller event: records it, switches views and
// reschedules the countdown. Every applied event bumps tickSeq, so at most
// one tick is ever live.
func (a App) applyEvent(ev session.Event) (App, tea.Cmd) {
	if !ev.Applied() {
		return a, nil
	}
	a.metrics.Observe(ev)
	a.tickSeq++

	if ev.Kind == session.EventStarted {
		a.sessionID = uuid.NewString()
		a.view = viewSession
	}
	a.logEvent(ev)

	if ev.Ends() {
		a.view = viewCatalog
		a.sessionID = ""
		if ev.Kind == session.EventCompleted {
			a.status = fmt.Sprintf("Workout complete, weekly goal +%d%%", ev.GoalDelta)
		}
	}

	if ev.Ticking() {
		return a, sessionTickCmd(a.tickSeq)
	}
	return a, nil
}

func (a App) logEvent(ev session.Event) {
	entry := a.log.WithFields(logrus.Fields{
		"session_id":  a.sessionID,
		"workout_id":  ev.WorkoutID,
		"exercise":    ev.ExerciseIndex,
		"remaining":   ev.TimeRemaining,
		"weekly_goal": ev.WeeklyGoal.String(),
	})
	switch ev.Kind {
	case session.EventTicked:
		entry.Trace("tick")
	case session.EventAdvanced, session.EventPaused, session.EventResumed:
		entry.Debugf("session %s", ev.Kind)
	default:
		entry.Infof("session %s", ev.Kind)
	}
}

func (a App) View() string {
	// Header: centered shimmer logo and tagline
	header := center(renderShimmerLogo(a.frame, a.palette), a.width) + "\n" +
		center(a.st.dim.Render("Your path to health"), a.width)

	var body, help string
	switch a.view {
	case viewSession:
		body = playerView(a.ctrl, a.st, a.palette, a.width)
		if a.ctrl.State() == session.Paused {
			resume := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "resume"))
			help = a.st.helpBar(resume, keys.Stop, keys.Theme, keys.Help, keys.Quit)
		} else {
			pause := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause"))
			help = a.st.helpBar(pause, keys.Stop, keys.Theme, keys.Help, keys.Quit)
		}
	default:
		body = a.catalog.View(a.st, a.palette, a.ctrl.WeeklyGoal(), a.stats)
		help = a.st.helpBar(keys.Up, keys.Down, keys.Start, keys.Copy, keys.Theme, keys.Help, keys.Quit)
	}

	if a.helpOpen {
		body = helpView(a.st, a.palette)
		closeHelp := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close"))
		help = a.st.helpBar(closeHelp, keys.Quit)
	}

	statusLine := ""
	if a.status != "" {
		statusLine = " " + a.st.accent.Render(a.status)
	}

	// Chrome budget: header(2) + blank(1) + status(1) + help(1) = 5 lines + body
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, body, statusLine, help)
}
