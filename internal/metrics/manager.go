package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/naveenspark/fitflow/internal/session"
)

type Manager struct {
	// counters
	CounterSessionEvents      *prometheus.CounterVec
	CounterExercisesCompleted prometheus.Counter

	// gauges
	GaugeWeeklyGoal prometheus.Gauge
}

func NewTestManager() *Manager {
	return NewManager("fitflow", prometheus.NewRegistry())
}

func NewManager(namespace string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterSessionEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_events_total",
			Help:      "Workout session transitions by event",
		}, []string{"event"}),
		CounterExercisesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exercises_completed_total",
			Help:      "The total number of exercises whose countdown ran out",
		}),
		GaugeWeeklyGoal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "weekly_goal_percent",
			Help:      "Current weekly goal percentage",
		}),
	}
}

// Observe records a controller event. Per-second ticks are not counted.
// A nil manager is a no-op.
func (m *Manager) Observe(ev session.Event) {
	if m == nil || !ev.Applied() {
		return
	}
	m.GaugeWeeklyGoal.Set(ev.WeeklyGoal.Percent())
	if ev.Kind == session.EventTicked {
		return
	}
	m.CounterSessionEvents.WithLabelValues(ev.Kind.String()).Inc()
	if ev.Kind == session.EventAdvanced || ev.Kind == session.EventCompleted {
		m.CounterExercisesCompleted.Inc()
	}
}

// Server exposes a registry on /metrics, plus a /healthz probe.
type Server struct {
	srv      *http.Server
	listener net.Listener
}

// Listen binds addr and prepares a /metrics handler for gatherer.
func Listen(addr string, gatherer prometheus.Gatherer) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET").Name("metrics")
	router.HandleFunc("/healthz", handleHealthz).Methods("GET").Name("healthz")
	return &Server{
		srv:      &http.Server{Handler: router, ReadHeaderTimeout: 5 * time.Second},
		listener: listener,
	}, nil
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok")) //nolint:errcheck
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve blocks until Shutdown is called.
func (s *Server) Serve() {
	if err := s.srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Errorf("metrics server: %s", err)
	}
}

// Shutdown stops the listener, waiting at most two seconds for requests.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.srv.Shutdown(ctx) //nolint:errcheck
}
