// Package web exposes the assistant's tools as JSON endpoints for the
// conversational client. Business verdicts (a rejected booking, a refused
// cancellation) come back as 200s with valid=false; HTTP errors are
// reserved for transport and programming failures.
package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/example/dats-assistant/internal/application/usecases"
)

type Server struct {
	addr   string
	book   usecases.BookTrip
	cancel usecases.CancelTrip
	list   usecases.ListTrips
}

func New(addr string, book usecases.BookTrip, cancel usecases.CancelTrip, list usecases.ListTrips) *Server {
	return &Server{addr: addr, book: book, cancel: cancel, list: list}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/tools/book_trip", s.handleBookTrip)
	mux.HandleFunc("/tools/cancel_trip", s.handleCancelTrip)
	mux.HandleFunc("/tools/trips", s.handleTrips)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           logging(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s", s.addr)
	return srv.ListenAndServe()
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleBookTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var p usecases.BookTripParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	res, err := s.book.Execute(ctx, p)
	if err != nil {
		writeErr(w, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleCancelTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var p usecases.CancelTripParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	res, err := s.cancel.Execute(ctx, p)
	if err != nil {
		writeErr(w, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleTrips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	res, err := s.list.Execute(ctx)
	if err != nil {
		writeErr(w, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: encode response: %v", err)
	}
}

func writeErr(w http.ResponseWriter, err error, code int) {
	w.WriteHeader(code)
	_, _ = w.Write([]byte(err.Error()))
}
