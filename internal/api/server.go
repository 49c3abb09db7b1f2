// Package api exposes the tutoring session lifecycle over HTTP.
package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avinashj/socratic/internal/progress"
	"github.com/avinashj/socratic/internal/tutor"
)

// Server hosts the session HTTP API. Sessions live in memory, keyed by
// their composite session key; progress reads go straight to the store.
type Server struct {
	engine   *tutor.Engine
	progress progress.Store

	mu       sync.Mutex
	sessions map[string]*tutor.Session

	router *gin.Engine
}

// NewServer creates a Server with its routes registered.
func NewServer(engine *tutor.Engine, ps progress.Store) *Server {
	s := &Server{
		engine:   engine,
		progress: ps,
		sessions: map[string]*tutor.Session{},
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	r.GET("/api/health", s.handleHealth)
	r.POST("/api/session/start", s.handleStart)
	r.POST("/api/session/answer", s.handleAnswer)
	r.GET("/api/session/:id/progress", s.handleSessionProgress)
	r.POST("/api/session/:id/end", s.handleEnd)
	r.GET("/api/progress/:student", s.handleStudentProgress)

	s.router = r
	return s
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// requestID tags every request with a correlation ID for log tracing.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) session(id string) (*tutor.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) putSession(sess *tutor.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.State.Key] = sess
}

func (s *Server) dropSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
