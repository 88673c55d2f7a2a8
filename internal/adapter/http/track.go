package httpadapter

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"adserve/internal/core/port"
)

// tinyGIF is a 1x1 transparent GIF. Pixel delivery must never fail
// visibly, so this is the answer to every /track/impression request.
var tinyGIF, _ = base64.StdEncoding.DecodeString(
	"R0lGODlhAQABAPAAAP///wAAACH5BAEAAAAALAAAAAABAAEAAAICRAEAOw==")

// handleImpressionPixel confirms delivery of a placed impression by its
// single-use token and returns the pixel. Errors are logged; the response
// is the GIF no matter what.
func (h *Handler) handleImpressionPixel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.TrackImpression(r.Context(), r.URL.Query().Get("t")); err != nil {
		h.logger.Error("impression track error", slog.Any("error", err))
	}
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, private")
	_, _ = w.Write(tinyGIF)
}

// handleAdClick charges the click and redirects to the advertiser landing
// page. Only an unresolvable creative is a 404; a rejected charge still
// redirects. Internal errors are logged and treated as 404 to avoid
// leaking information.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	creativeID, err := strconv.ParseInt(q.Get("creative_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid creative_id", http.StatusBadRequest)
		return
	}
	// slot id is attribution only; a missing one still redirects
	slotID, _ := strconv.ParseInt(q.Get("slot_id"), 10, 64)

	landingURL, err := h.svc.TrackClick(r.Context(), creativeID, slotID)
	if err != nil {
		if !errors.Is(err, port.ErrCreativeNotFound) && !errors.Is(err, port.ErrCampaignNotFound) {
			h.logger.Error("click error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, landingURL, http.StatusFound)
}
