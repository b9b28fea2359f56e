package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leetcode_proxy/internal/common"
	"leetcode_proxy/internal/domain/model"
)

// ProfileFetcher is satisfied by *service.ProfileService.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*model.NormalizedProfile, error)
}

type ProfileHandler struct {
	profileService ProfileFetcher
}

func NewProfileHandler(ps ProfileFetcher) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// RegisterRoutes mounts the lookup under both the long and short paths.
// Static siblings such as /api/hello take precedence over {username}.
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/leetcode/{username}", h.getProfile) // GET /api/leetcode/alice
	r.Get("/{username}", h.getProfile)          // GET /api/alice
}

func (h *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.profileService.FetchProfile(r.Context(), username)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, profile)
}
