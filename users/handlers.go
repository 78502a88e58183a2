package users

import (
	"net/http"

	"github.com/user/immy-go/apperror"
	"github.com/user/immy-go/auth"
	"github.com/user/immy-go/response"
)

// UserHandlers provides HTTP handlers for profile retrieval.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the authenticated account plus the children it owns.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope "Profile retrieved successfully"
// @Failure 401 {object} response.Envelope "Invalid or missing token, or subject no longer exists"
// @Failure 500 {object} response.Envelope "Internal Server Error"
// @Router /profile [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			response.WriteError(w, r, apperror.NewAuthError("Authorization required", nil))
			return
		}

		profile, err := h.service.GetProfile(r.Context(), userID)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		response.WriteSuccess(w, http.StatusOK, "Profile retrieved successfully", profile)
	}
}
