package controllers

import (
	"log/slog"
	"net/http"

	"speciallecture/internal/delivery/http/helpers"
	"speciallecture/internal/domain"
)

type LectureController struct {
	Logger  *slog.Logger
	Queries domain.LectureQueryService
}

func NewLectureController(logger *slog.Logger, queries domain.LectureQueryService) *LectureController {
	return &LectureController{
		Logger:  logger,
		Queries: queries,
	}
}

// ListAvailableLecturesSuccessResponse is the success response envelope for the available-lecture listings (200).
type ListAvailableLecturesSuccessResponse struct {
	Data  []*domain.LectureWithLecturer `json:"data"`
	Error *helpers.APIError             `json:"error"`
}

// ListAvailableLectures godoc
// @Summary List available lectures
// @Description Returns open lectures that have not started and still have free seats, with their lecturers, ordered by start time.
// @Tags special-lecture
// @Produce json
// @Success 200 {object} controllers.ListAvailableLecturesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /special-lecture/available/lectures [get]
func (c *LectureController) ListAvailableLectures(w http.ResponseWriter, r *http.Request) {
	lectures, err := c.Queries.ListAvailableLectures(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, lectures)
}

// ListAvailableLecturesForUser godoc
// @Summary List available lectures for a user
// @Description Same as the plain listing minus lectures the user already has a registration for. Unknown users get an empty list.
// @Tags special-lecture
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} controllers.ListAvailableLecturesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /special-lecture/available/lectures/user/{userID} [get]
func (c *LectureController) ListAvailableLecturesForUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}

	lectures, err := c.Queries.ListAvailableLecturesForUser(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, lectures)
}
