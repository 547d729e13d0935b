/*
Copyright (c) 2025 Git Tutor Contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	git "github.com/git-tutor/tutor"
	"github.com/git-tutor/tutor/internal/achievements"
	"github.com/git-tutor/tutor/internal/config"
	"github.com/git-tutor/tutor/internal/logging"
)

// Server wires the session Manager to a chi router: REST endpoints
// for session lifecycle, lesson selection and command dispatch, plus
// a WebSocket that mirrors every command's resulting Snapshot.
type Server struct {
	router  chi.Router
	manager *Manager
	log     *logging.Logger
}

// New builds a Server over manager, configuring CORS from cfg.
func New(manager *Manager, cfg config.Config, log *logging.Logger) *Server {
	s := &Server{manager: manager, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/sessions", s.handleCreateSession)
	r.Get("/sessions/{sessionID}", s.handleGetSession)
	r.Get("/sessions/{sessionID}/badges", s.handleListBadges)
	r.Post("/sessions/{sessionID}/lessons/{lessonID}", s.handleLoadLesson)
	r.Post("/sessions/{sessionID}/commands", s.handleCommand)
	r.Post("/sessions/{sessionID}/reset", s.handleResetRepo)
	r.Post("/sessions/{sessionID}/quiz/{index}", s.handleAnswerQuiz)
	r.Get("/sessions/{sessionID}/ws", s.handleWebSocket)

	s.router = r
	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("api server listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug("api request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) jsonOK(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonOK(w, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess, err := s.manager.Create()
	if err != nil {
		s.jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sess.mu.Lock()
	snap := sess.snapshot()
	sess.mu.Unlock()
	s.jsonOK(w, snap)
}

func (s *Server) sessionOrNotFound(w http.ResponseWriter, r *http.Request) *session {
	id := chi.URLParam(r, "sessionID")
	sess := s.manager.Get(id)
	if sess == nil {
		s.jsonError(w, http.StatusNotFound, "session not found")
		return nil
	}
	return sess
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionOrNotFound(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	snap := sess.snapshot()
	sess.mu.Unlock()
	s.jsonOK(w, snap)
}

// badgeView pairs a badge's static display metadata with the
// session's current earned/unearned record.
type badgeView struct {
	achievements.Definition
	State achievements.State `json:"state"`
}

func (s *Server) handleListBadges(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionOrNotFound(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	snapshot := sess.badges.Snapshot()
	defs := sess.defs
	sess.mu.Unlock()

	views := make([]badgeView, len(defs))
	for i, d := range defs {
		views[i] = badgeView{Definition: d, State: snapshot[d.ID]}
	}
	s.jsonOK(w, views)
}

func (s *Server) handleLoadLesson(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionOrNotFound(w, r)
	if sess == nil {
		return
	}
	lessonID := chi.URLParam(r, "lessonID")

	sess.mu.Lock()
	err := sess.engine.Load(lessonID)
	var snap Snapshot
	if err == nil {
		snap = sess.snapshot()
		sess.broadcast(snap)
	}
	sess.mu.Unlock()

	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.manager.persist(sess); err != nil {
		s.log.Warn("persist failed", "error", err)
	}
	s.jsonOK(w, snap)
}

type commandRequest struct {
	Command string `json:"command"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionOrNotFound(w, r)
	if sess == nil {
		return
	}

	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	sess.mu.Lock()
	hadConflict := false
	if r := sess.engine.Repo(sess.engine.Active()); r != nil {
		hadConflict = r.MergeState != nil && len(r.MergeState.Conflicts) > 0
	}

	stepResult, err := sess.engine.Dispatch(req.Command)
	var snap Snapshot
	if err == nil {
		var newly []string
		if r := sess.engine.Repo(sess.engine.Active()); r != nil {
			newly = sess.badges.OnEvent(r.LastEvent)
			if hadConflict && r.LastEvent.Kind == git.EventCommit {
				newly = append(newly, sess.badges.OnConflictResolved()...)
			}
		}
		newly = append(newly, sess.badges.SyncLessons(
			allLessonsComplete(sess), sess.engine.AllQuizzesPassed())...)

		snap = sess.snapshot()
		snap.LastCommand = req.Command
		snap.LastOutput = stepResult.Result
		snap.CompletedStep = stepResult.Completed
		snap.Finished = stepResult.Finished
		snap.NewBadges = newly
		sess.broadcast(snap)
	}
	sess.mu.Unlock()

	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.manager.persist(sess); err != nil {
		s.log.Warn("persist failed", "error", err)
	}
	s.jsonOK(w, snap)
}

func (s *Server) handleResetRepo(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionOrNotFound(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	err := sess.engine.ResetRepo()
	var snap Snapshot
	if err == nil {
		snap = sess.snapshot()
		sess.broadcast(snap)
	}
	sess.mu.Unlock()

	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.manager.persist(sess); err != nil {
		s.log.Warn("persist failed", "error", err)
	}
	s.jsonOK(w, snap)
}

type quizRequest struct {
	Choice int `json:"choice"`
}

func (s *Server) handleAnswerQuiz(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionOrNotFound(w, r)
	if sess == nil {
		return
	}

	idx, err := parseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid quiz index")
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	sess.mu.Lock()
	correct, err := sess.engine.AnswerQuiz(idx, req.Choice)
	var newly []string
	if err == nil {
		newly = sess.badges.SyncLessons(allLessonsComplete(sess), sess.engine.AllQuizzesPassed())
	}
	sess.mu.Unlock()

	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.manager.persist(sess); err != nil {
		s.log.Warn("persist failed", "error", err)
	}
	s.jsonOK(w, map[string]interface{}{"correct": correct, "newBadges": newly})
}

var errNotANumber = errors.New("not a number")

func allLessonsComplete(sess *session) bool {
	for _, id := range sess.engine.Definitions() {
		st := sess.engine.State(id)
		if st == nil || !st.Completed {
			return false
		}
	}
	return true
}

func parseIndex(raw string) (int, error) {
	n := 0
	if raw == "" {
		return 0, errNotANumber
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, errNotANumber
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
