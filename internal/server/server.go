package server

import (
	"net/http"

	"github.com/kmaina/sokoboard/internal/utils"
	"github.com/kmaina/sokoboard/pkg/alerts"
	"github.com/kmaina/sokoboard/pkg/board"
	"github.com/kmaina/sokoboard/pkg/buyers"
	"github.com/kmaina/sokoboard/pkg/listings"
)

type Server struct {
	Board    *board.Board
	Buyers   []buyers.Profile
	Listings *listings.Board
	Alerts   *alerts.Book
	Username string
	Password string
}

func New(b *board.Board, l *listings.Board, a *alerts.Book, user, pass string) *Server {
	return &Server{
		Board:    b,
		Buyers:   buyers.Directory(),
		Listings: l,
		Alerts:   a,
		Username: user,
		Password: pass,
	}
}

// Handler builds the API mux; split from Start so tests can drive it
// with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/overview", s.basicAuth(s.handleOverview))
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))
	mux.HandleFunc("GET /api/prices", s.basicAuth(s.handlePrices))
	mux.HandleFunc("GET /api/history", s.basicAuth(s.handleHistory))
	mux.HandleFunc("GET /api/buyers", s.basicAuth(s.handleBuyers))
	mux.HandleFunc("GET /api/notifications", s.basicAuth(s.handleNotifications))
	mux.HandleFunc("POST /api/notifications/read", s.basicAuth(s.handleMarkRead))
	mux.HandleFunc("GET /api/listings", s.basicAuth(s.handleListings))
	mux.HandleFunc("POST /api/listings/toggle", s.basicAuth(s.handleToggleListing))
	mux.HandleFunc("DELETE /api/listings", s.basicAuth(s.handleRemoveListing))
	mux.HandleFunc("GET /api/alerts", s.basicAuth(s.handleListAlerts))
	mux.HandleFunc("POST /api/alerts", s.basicAuth(s.handleAddAlert))
	mux.HandleFunc("POST /api/refresh", s.basicAuth(s.handleRefresh))

	return mux
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
