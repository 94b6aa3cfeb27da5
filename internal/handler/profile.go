package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/planloop/planloop/internal/ctxkeys"
	"github.com/planloop/planloop/internal/repository"
	"github.com/planloop/planloop/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.profileService.ByUserID(user.ID)
	if err != nil {
		// No profile yet is not an error; the client gets null
		if errors.Is(err, repository.ErrProfileNotFound) {
			respondJSON(w, http.StatusOK, nil)
			return
		}
		slog.Error("failed to get profile", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		WhoIAm             string `json:"whoIAm"`
		WhatIWantToAchieve string `json:"whatIWantToAchieve"`
		WhatIWantInLife    string `json:"whatIWantInLife"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.Save(user.ID, req.WhoIAm, req.WhatIWantToAchieve, req.WhatIWantInLife)
	if err != nil {
		slog.Error("failed to save profile", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
