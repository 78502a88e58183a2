package coach

import (
	"net/http"
	"strconv"

	"github.com/user/immy-go/apperror"
	"github.com/user/immy-go/auth"
	"github.com/user/immy-go/response"
)

// CoachHandlers provides HTTP handlers for the coach-data feed.
type CoachHandlers struct {
	service *CoachService
}

// NewCoachHandlers creates new CoachHandlers.
func NewCoachHandlers(service *CoachService) *CoachHandlers {
	return &CoachHandlers{service: service}
}

// HandleGetCoachData godoc
// @Summary Get coach data for a child
// @Description Serves the coach feed scoped to the requested child, or to the account's first child when no child_id is given.
// @Tags coach
// @Produce json
// @Security BearerAuth
// @Param child_id query int false "Child ID (defaults to the account's first child)"
// @Success 200 {object} response.Envelope "Coach data retrieved successfully"
// @Failure 401 {object} response.Envelope "Invalid or missing token"
// @Failure 404 {object} response.Envelope "Child not found or not authorized / no children"
// @Failure 500 {object} response.Envelope "Internal Server Error"
// @Router /coach_data [get]
func (h *CoachHandlers) HandleGetCoachData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			response.WriteError(w, r, apperror.NewAuthError("Authorization required", nil))
			return
		}

		// A missing or non-numeric child_id falls back to the first child.
		childID, _ := strconv.Atoi(r.URL.Query().Get("child_id"))

		data, err := h.service.GetCoachData(r.Context(), userID, childID)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		response.WriteSuccess(w, http.StatusOK, "Coach data retrieved successfully", data)
	}
}
