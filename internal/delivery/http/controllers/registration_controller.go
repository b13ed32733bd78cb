package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"speciallecture/internal/delivery/http/helpers"
	"speciallecture/internal/domain"
)

type RegistrationController struct {
	Logger       *slog.Logger
	Reservations domain.ReservationService
	Queries      domain.LectureQueryService
}

func NewRegistrationController(logger *slog.Logger, reservations domain.ReservationService, queries domain.LectureQueryService) *RegistrationController {
	return &RegistrationController{
		Logger:       logger,
		Reservations: reservations,
		Queries:      queries,
	}
}

// RegisterSuccessResponse is the success response envelope for POST /special-lecture/{userID}/{lectureID} (200 or 201).
type RegisterSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Register godoc
// @Summary Register a user for a special lecture
// @Description Runs one reservation attempt. Returns 201 with an APPROVED registration when a seat was claimed, 200 with a REJECTED registration when the lecture is full or already started. A second attempt for the same pair is rejected with 409.
// @Tags special-lecture
// @Produce json
// @Param userID path string true "User ID"
// @Param lectureID path int true "Lecture ID"
// @Success 200 {object} controllers.RegisterSuccessResponse "Seat not granted; data.status is REJECTED"
// @Success 201 {object} controllers.RegisterSuccessResponse "Seat granted; data.status is APPROVED"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown user or lecture)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable (retry the request)"
// @Router /special-lecture/{userID}/{lectureID} [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}
	lectureID, err := strconv.ParseInt(r.PathValue("lectureID"), 10, 64)
	if err != nil || lectureID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid lectureID")
		return
	}

	reg, err := c.Reservations.Reserve(r.Context(), userID, lectureID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
		case errors.Is(err, domain.ErrLectureNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "lecture not found")
		case errors.Is(err, domain.ErrDuplicateRegistration):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "already registered for this lecture")
		case errors.Is(err, domain.ErrTxConflict), errors.Is(err, domain.ErrStoreUnavailable):
			// Retryable: the whole reserve call must be re-attempted.
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeServiceUnavailable, "temporarily unavailable, retry the request")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	if reg.Status == domain.RegistrationStatusApproved {
		helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// ListUserRegistrationsSuccessResponse is the success response envelope for GET /special-lecture/{userID} (200).
type ListUserRegistrationsSuccessResponse struct {
	Data  []*domain.RegistrationWithLecture `json:"data"`
	Error *helpers.APIError                 `json:"error"`
}

// ListUserRegistrations godoc
// @Summary List a user's registrations
// @Description Returns every registration outcome recorded for the user, with lecture details. Unknown users get an empty list.
// @Tags special-lecture
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} controllers.ListUserRegistrationsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /special-lecture/{userID} [get]
func (c *RegistrationController) ListUserRegistrations(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}

	regs, err := c.Queries.ListUserRegistrations(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// GetRegistrationSuccessResponse is the success response envelope for GET /special-lecture/{userID}/{lectureID} (200).
type GetRegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// GetRegistration godoc
// @Summary Get one registration
// @Description Returns the single registration recorded for the (user, lecture) pair, or 404 when none exists.
// @Tags special-lecture
// @Produce json
// @Param userID path string true "User ID"
// @Param lectureID path int true "Lecture ID"
// @Success 200 {object} controllers.GetRegistrationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /special-lecture/{userID}/{lectureID} [get]
func (c *RegistrationController) GetRegistration(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}
	lectureID, err := strconv.ParseInt(r.PathValue("lectureID"), 10, 64)
	if err != nil || lectureID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid lectureID")
		return
	}

	reg, err := c.Queries.GetRegistration(r.Context(), userID, lectureID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}
