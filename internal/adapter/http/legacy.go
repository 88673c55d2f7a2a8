package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"adserve/internal/core/port"
)

// handleLegacyServe is the pre-auction serve endpoint: random pick among
// eligible campaigns, JSON ad payload or an empty object when nothing is
// available. Storage failures are a 500 here — this endpoint predates the
// degrade-to-empty contract and its consumers check status codes.
func (h *Handler) handleLegacyServe(w http.ResponseWriter, r *http.Request) {
	pubID := r.URL.Query().Get("pub_id")
	if pubID == "" {
		http.Error(w, "missing pub_id", http.StatusBadRequest)
		return
	}

	ad, err := h.svc.ServeAd(r.Context(), pubID)
	if err != nil {
		h.logger.Error("legacy serve error", slog.Any("error", err))
		writeJSONError(w, http.StatusInternalServerError, "failed to serve ad")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if ad == nil {
		_, _ = w.Write([]byte("{}"))
		return
	}
	ad.ClickURL = h.absURL(ad.ClickURL)
	if err = json.NewEncoder(w).Encode(ad); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleLegacyClick charges a click for the given ad and publisher, then
// redirects to the landing page.
func (h *Handler) handleLegacyClick(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	adID, err := strconv.ParseInt(q.Get("ad_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid ad_id", http.StatusBadRequest)
		return
	}
	pubID := q.Get("pub_id")

	landingURL, err := h.svc.LegacyClick(r.Context(), adID, pubID)
	if errors.Is(err, port.ErrCreativeNotFound) || errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("legacy click error", slog.Any("error", err))
		writeJSONError(w, http.StatusInternalServerError, "failed to track click")
		return
	}
	http.Redirect(w, r, landingURL, http.StatusFound)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
