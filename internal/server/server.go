// Package server exposes the trained session over HTTP. Each decision
// request is handled statelessly against the immutable model, so
// concurrent reads need no synchronization.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/akverma/loanlens/internal/analysis"
	"github.com/akverma/loanlens/internal/decision"
	"github.com/akverma/loanlens/internal/encode"
	"github.com/akverma/loanlens/internal/history"
)

// Server wires the decision engine and trained session into a chi
// router.
type Server struct {
	session *analysis.Session
	engine  *decision.Engine
	store   *history.Store
	log     *zap.Logger
	router  *chi.Mux
}

// New builds a Server. store may be nil to disable decision logging.
func New(session *analysis.Session, engine *decision.Engine, store *history.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{session: session, engine: engine, store: store, log: log}
	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler for mounting or testing.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("http server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/api/v1/health", s.handleHealth)
	r.Get("/api/v1/metrics", s.handleMetrics)
	r.Post("/api/v1/decisions", s.handleDecide)

	s.router = r
}

type decisionRequest struct {
	Gender            string   `json:"gender"`
	Married           string   `json:"married"`
	Dependents        string   `json:"dependents"`
	Education         string   `json:"education"`
	SelfEmployed      string   `json:"self_employed"`
	PropertyArea      string   `json:"property_area"`
	CreditHistory     string   `json:"credit_history"`
	ApplicantIncome   *float64 `json:"applicant_income"`
	CoapplicantIncome *float64 `json:"coapplicant_income"`
	LoanAmount        *float64 `json:"loan_amount"`
	LoanTerm          *float64 `json:"loan_term"`
}

// toRaw preserves the absent/present distinction: a field omitted from
// the payload stays missing in the raw application, so the engine's
// input validation sees it.
func (req *decisionRequest) toRaw() encode.RawApplication {
	raw := encode.RawApplication{}
	set := func(col, v string) {
		if v != "" {
			raw[col] = v
		}
	}
	set(encode.ColGender, req.Gender)
	set(encode.ColMarried, req.Married)
	set(encode.ColDependents, req.Dependents)
	set(encode.ColEducation, req.Education)
	set(encode.ColSelfEmployed, req.SelfEmployed)
	set(encode.ColPropertyArea, req.PropertyArea)
	set(encode.ColCreditHistory, req.CreditHistory)

	if req.ApplicantIncome != nil {
		raw[encode.ColApplicantIncome] = formatFloat(*req.ApplicantIncome)
	}
	if req.CoapplicantIncome != nil {
		raw[encode.ColCoapplicantIncome] = formatFloat(*req.CoapplicantIncome)
	}
	if req.LoanAmount != nil {
		raw[encode.ColLoanAmount] = formatFloat(*req.LoanAmount)
	}
	if req.LoanTerm != nil {
		raw[encode.ColLoanTerm] = formatFloat(*req.LoanTerm)
	}
	return raw
}

type decisionResponse struct {
	Verdict   string   `json:"verdict"`
	Reason    string   `json:"reason"`
	Reasons   []string `json:"reasons"`
	ModelVote int      `json:"model_vote"`
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	raw := req.toRaw()
	d, err := s.engine.Decide(raw, s.session.Model, s.session.Columns)
	if err != nil {
		var ie *decision.InputError
		if errors.As(err, &ie) {
			s.writeError(w, http.StatusBadRequest, ie.Error())
			return
		}
		s.log.Error("decide failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "prediction error")
		return
	}

	if s.store != nil {
		if err := s.store.Insert(r.Context(), history.NewRecord(raw, d)); err != nil {
			// Logging failures never block the decision.
			s.log.Warn("record decision", zap.Error(err))
		}
	}

	s.writeJSON(w, http.StatusOK, decisionResponse{
		Verdict:   string(d.Verdict),
		Reason:    d.Reason(),
		Reasons:   d.Reasons,
		ModelVote: d.ModelLabel,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	m := s.session.Metrics
	s.writeJSON(w, http.StatusOK, map[string]float64{
		"accuracy":  m.Accuracy,
		"precision": m.Precision,
		"recall":    m.Recall,
		"f1":        m.F1,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
