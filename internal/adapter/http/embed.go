package httpadapter

import (
	"fmt"
	"net/http"
)

// publisherScript is the snippet publishers paste into their pages. It
// reads data-slot (and optional data-width/data-height) off its own script
// tag and injects a sandboxed iframe pointed at /ad/render. %s is the
// public base URL.
const publisherScript = `(function(){
  var script = document.currentScript || (function(){var s=document.getElementsByTagName('script'); return s[s.length-1];})();
  var slot = script && script.getAttribute('data-slot');
  if (!slot) return;
  var iframe = document.createElement('iframe');
  iframe.width = script.getAttribute('data-width') || '300';
  iframe.height = script.getAttribute('data-height') || '250';
  iframe.style.border = '0';
  iframe.style.overflow = 'hidden';
  iframe.scrolling = 'no';
  iframe.setAttribute('sandbox','allow-forms allow-popups allow-scripts');
  iframe.src = "%s/ad/render?slot=" + encodeURIComponent(slot) + "&_=" + Date.now();
  script.parentNode.insertBefore(iframe, script);
})();`

// handlePublisherScript serves the embed script.
func (h *Handler) handlePublisherScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	_, _ = fmt.Fprintf(w, publisherScript, h.baseURL)
}
