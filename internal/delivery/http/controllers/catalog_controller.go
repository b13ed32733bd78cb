package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"speciallecture/internal/delivery/http/helpers"
	"speciallecture/internal/domain"
)

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateLectureRequest is the request body for POST /lectures.
type CreateLectureRequest struct {
	Title           string    `json:"title"`
	LecturerID      int64     `json:"lecturer_id"`
	StartsAt        time.Time `json:"starts_at"`
	MaxParticipants int       `json:"max_participants"`
}

// Validate implements helpers.Validator.
func (r *CreateLectureRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	if r.LecturerID <= 0 {
		errs = append(errs, "lecturer_id is required")
	}
	if r.StartsAt.IsZero() {
		errs = append(errs, "starts_at is required")
	}
	if r.MaxParticipants < 0 {
		errs = append(errs, "max_participants must not be negative")
	}
	return errs
}

// CreateLectureSuccessResponse is the success response envelope for POST /lectures (201).
type CreateLectureSuccessResponse struct {
	Data  *domain.Lecture   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateLecture godoc
// @Summary Create a lecture
// @Description Creates an open lecture. max_participants of zero falls back to the default seat limit of 30.
// @Tags catalog
// @Accept json
// @Produce json
// @Param lecture body controllers.CreateLectureRequest true "Lecture data"
// @Success 201 {object} controllers.CreateLectureSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown lecturer)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /lectures [post]
func (c *CatalogController) CreateLecture(w http.ResponseWriter, r *http.Request) {
	var req CreateLectureRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	lecture, err := c.Service.CreateLecture(r.Context(), req.Title, req.LecturerID, req.StartsAt, req.MaxParticipants)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "lecturer not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, lecture)
}

// CreateLecturerRequest is the request body for POST /lecturers.
type CreateLecturerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements helpers.Validator.
func (r *CreateLecturerRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// CreateLecturerSuccessResponse is the success response envelope for POST /lecturers (201).
type CreateLecturerSuccessResponse struct {
	Data  *domain.Lecturer  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateLecturer godoc
// @Summary Create a lecturer
// @Tags catalog
// @Accept json
// @Produce json
// @Param lecturer body controllers.CreateLecturerRequest true "Lecturer data"
// @Success 201 {object} controllers.CreateLecturerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /lecturers [post]
func (c *CatalogController) CreateLecturer(w http.ResponseWriter, r *http.Request) {
	var req CreateLecturerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	lecturer, err := c.Service.CreateLecturer(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, lecturer)
}

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// Validate implements helpers.Validator.
func (r *CreateUserRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, "user_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateUserSuccessResponse is the success response envelope for POST /users (201).
type CreateUserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateUser godoc
// @Summary Create a user
// @Tags catalog
// @Accept json
// @Produce json
// @Param user body controllers.CreateUserRequest true "User data"
// @Success 201 {object} controllers.CreateUserSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (user id taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [post]
func (c *CatalogController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.Service.CreateUser(r.Context(), req.UserID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrAlreadyExists):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "user id already taken")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}
