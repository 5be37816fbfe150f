package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns the full catalog as an object mapping activity name to its description, schedule, max_participants, and participants (in signup order).
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, activities)
}

// Signup godoc
// @Summary Sign up a student for an activity
// @Description Adds the email to the activity's roster. Duplicate signups are rejected; capacity is not enforced.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Already signed up or missing email"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := r.URL.Query().Get("email")

	msg, err := c.Service.Signup(r.Context(), activityName, email)
	if err != nil {
		c.writeServiceError(w, r, err, "Student is already signed up")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, msg)
}

// Unregister godoc
// @Summary Unregister a student from an activity
// @Description Removes the email from the activity's roster.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Not registered or missing email"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Router /activities/{activityName}/unregister [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := r.URL.Query().Get("email")

	msg, err := c.Service.Unregister(r.Context(), activityName, email)
	if err != nil {
		c.writeServiceError(w, r, err, "Student is not registered for this activity")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, msg)
}

// writeServiceError maps service errors onto the fixed wire format:
// unknown activity → 404, roster conflicts and bad input → 400, anything
// else → 500 with a log line.
func (c *ActivityController) writeServiceError(w http.ResponseWriter, r *http.Request, err error, conflictDetail string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp), errors.Is(err, domain.ErrNotRegistered):
		helpers.WriteJSONDetail(w, http.StatusBadRequest, conflictDetail)
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONDetail(w, http.StatusBadRequest, "email is required")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
