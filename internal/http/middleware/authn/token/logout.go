package token

import (
	"net/http"
)

// Tokens are stateless: logging out only tells the client to drop its session.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
