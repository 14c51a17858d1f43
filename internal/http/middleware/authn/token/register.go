package token

import (
	"net/http"

	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/pkg/errors"
)

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := common.ReadJSON(w, r, &req); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	session, err := h.authManager.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, toSessionResponse("User created successfully", session))
}
