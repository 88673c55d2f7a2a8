package httpadapter

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"adserve/internal/core/port"
)

// renderTmpl is the document served into the publisher's iframe: the
// clickable image creative plus the hidden tracking pixel.
var renderTmpl = template.Must(template.New("render").Parse(`<!doctype html>
<html>
<head>
<meta name="viewport" content="width=device-width,initial-scale=1">
<style>html,body{margin:0;padding:0}img{display:block;border:0}</style>
</head>
<body>
<a href="{{.ClickURL}}" target="_top" rel="noopener noreferrer">
<img src="{{.ImageURL}}" width="{{.Width}}" height="{{.Height}}" alt="{{.Title}}">
</a>
<img src="{{.PixelURL}}" width="1" height="1" style="display:none" alt="">
</body>
</html>`))

// noFillTmpl is the neutral placeholder sized to the slot. It is a 200:
// an embedded page must never see an error page in its ad frame.
var noFillTmpl = template.Must(template.New("nofill").Parse(`<!doctype html>
<html>
<body style="margin:0;padding:0;font-family:Arial,Helvetica,sans-serif">
<div style="width:{{.Width}}px;height:{{.Height}}px;display:flex;align-items:center;justify-content:center;background:#f8f8f8;color:#666">No ads right now</div>
</body>
</html>`))

type renderData struct {
	Title    string
	ImageURL string
	ClickURL string
	PixelURL string
	Width    int
	Height   int
}

// handleAdRender runs one placement for the slot key in the query and
// answers with the iframe document. Unknown slots are a 404; everything
// else — no fill, rejected charge, even internal failures — degrades to
// the placeholder so the embedding page keeps rendering.
func (h *Handler) handleAdRender(w http.ResponseWriter, r *http.Request) {
	slotKey := r.URL.Query().Get("slot")
	if slotKey == "" {
		http.Error(w, "missing slot", http.StatusBadRequest)
		return
	}

	p, err := h.svc.PlaceAd(r.Context(), slotKey)
	if errors.Is(err, port.ErrSlotNotFound) {
		http.Error(w, "slot not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("placement error", slog.String("slot", slotKey), slog.Any("error", err))
		h.writeNoFill(w, 300, 250)
		return
	}
	if !p.Filled {
		h.writeNoFill(w, p.Slot.Width, p.Slot.Height)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, private")
	err = renderTmpl.Execute(w, renderData{
		Title:    p.Title,
		ImageURL: p.ImageURL,
		ClickURL: h.absURL(p.ClickURL),
		PixelURL: h.absURL(p.PixelURL),
		Width:    p.Width,
		Height:   p.Height,
	})
	if err != nil {
		h.logger.Error("render template error", slog.Any("error", err))
	}
}

func (h *Handler) writeNoFill(w http.ResponseWriter, width, height int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, private")
	if err := noFillTmpl.Execute(w, renderData{Width: width, Height: height}); err != nil {
		h.logger.Error("nofill template error", slog.Any("error", err))
	}
}
