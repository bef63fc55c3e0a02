package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kmaina/sokoboard/pkg/alerts"
	"github.com/kmaina/sokoboard/pkg/buyers"
	"github.com/kmaina/sokoboard/pkg/listings"
	"github.com/kmaina/sokoboard/pkg/market"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// handleOverview reports the enrichment values and freshness flags so a
// client can tell "loading" apart from "empty".
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	snap := s.Board.Snapshot()
	writeJSON(w, map[string]interface{}{
		"rate":         snap.Rate,
		"weather":      snap.Weather,
		"online":       snap.Online,
		"loading":      snap.Loading,
		"last_updated": snap.LastUpdated,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if tf := r.URL.Query().Get("timeframe"); tf != "" {
		s.Board.SetTimeframe(market.Timeframe(tf))
	}
	writeJSON(w, s.Board.Snapshot().Stats)
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := market.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	snap := s.Board.Snapshot()
	items := s.Board.Filtered(filter)
	writeJSON(w, map[string]interface{}{
		"items":   items,
		"loading": snap.Loading,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")
	if crop == "" {
		http.Error(w, "crop is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, s.Board.History(crop))
}

func (s *Server) handleBuyers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := buyers.Filter{
		Product:  q.Get("product"),
		Location: q.Get("location"),
	}
	if raw := q.Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "min_rating must be a number", http.StatusBadRequest)
			return
		}
		filter.MinRating = minRating
	}
	writeJSON(w, buyers.Apply(s.Buyers, filter))
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Board.Feed().Items())
}

type markReadRequest struct {
	ID int64 `json:"id"`
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]bool{"marked": s.Board.Feed().MarkRead(req.ID)})
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"items":   s.Listings.Items(),
		"metrics": s.Listings.Metrics(),
	})
}

type listingRequest struct {
	ID int `json:"id"`
}

func (s *Server) handleToggleListing(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := s.Listings.Toggle(req.ID)
	switch {
	case errors.Is(err, listings.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, listings.ErrSold):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		writeJSON(w, l)
	}
}

func (s *Server) handleRemoveListing(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.Listings.Remove(req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Alerts.Items())
}

type addAlertRequest struct {
	Crop   string `json:"crop"`
	Target string `json:"target"`
}

// handleAddAlert creates a price alert. A non-numeric target is rejected
// with 400 and no state changes.
func (s *Server) handleAddAlert(w http.ResponseWriter, r *http.Request) {
	var req addAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	current := 0.0
	for _, rec := range s.Board.Snapshot().Prices {
		if rec.Crop == req.Crop {
			current = rec.Price
			break
		}
	}

	alert, err := s.Alerts.Add(req.Crop, req.Target, current, time.Now())
	if errors.Is(err, alerts.ErrBadTarget) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, alert)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.Board.Refresh(r.Context())
	writeJSON(w, s.Board.Snapshot())
}
