package token

import (
	"net/http"

	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/pkg/errors"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := common.ReadJSON(w, r, &req); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	session, err := h.authManager.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err), "Internal server error")
		return
	}

	common.WriteJSON(w, r, http.StatusOK, toSessionResponse("Login successful", session))
}
