package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
	"eventrsvp/internal/services"
)

// RSVPController handles guest and admin RSVP endpoints.
type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
	Links   services.UpdateLinks
}

// NewRSVPController creates an RSVPController with the given logger, service and link builder.
func NewRSVPController(logger *slog.Logger, svc domain.RSVPService, links services.UpdateLinks) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
		Links:   links,
	}
}

// RSVPInputRequest documents the RSVP request body. All fields are optional on PUT.
type RSVPInputRequest struct {
	Name          string `json:"name" example:"Ana Silva"`
	Email         string `json:"email" example:"ana@example.com"`
	Attending     bool   `json:"attending" example:"true"`
	NumOfGuests   *int   `json:"numOfGuests,omitempty" example:"2"`
	NumOfChildren *int   `json:"numOfChildren,omitempty" example:"1"`
}

// CreateRSVPResponse is the data of a successful POST /rsvp.
type CreateRSVPResponse struct {
	Message    string       `json:"message"`
	RSVP       *domain.RSVP `json:"rsvp"`
	UpdateLink string       `json:"updateLink"`
}

// CreateRSVPSuccessResponse is the success response envelope for POST /rsvp (201).
type CreateRSVPSuccessResponse struct {
	Data  CreateRSVPResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// RSVPResponse is the data of single-record endpoints.
type RSVPResponse struct {
	Message string       `json:"message"`
	RSVP    *domain.RSVP `json:"rsvp"`
}

// RSVPSuccessResponse is the success response envelope for single-record endpoints (200).
type RSVPSuccessResponse struct {
	Data  RSVPResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRSVPsResponse is the data of GET /rsvp.
type ListRSVPsResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	RSVPs   []*domain.RSVP `json:"rsvps"`
}

// ListRSVPsSuccessResponse is the success response envelope for GET /rsvp (200).
type ListRSVPsSuccessResponse struct {
	Data  ListRSVPsResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListByAttendanceResponse is the data of GET /rsvp/attending/{yes|no}.
type ListByAttendanceResponse struct {
	Message       string         `json:"message"`
	Count         int            `json:"count"`
	TotalGuests   int            `json:"totalGuests"`
	TotalChildren int            `json:"totalChildren"`
	RSVPs         []*domain.RSVP `json:"rsvps"`
}

// ListByAttendanceSuccessResponse is the success response envelope for GET /rsvp/attending/{yes|no} (200).
type ListByAttendanceSuccessResponse struct {
	Data  ListByAttendanceResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// SummarySuccessResponse is the success response envelope for GET /rsvp/summary (200).
type SummarySuccessResponse struct {
	Data  *domain.RSVPSummary `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// EventInfoSuccessResponse is the success response envelope for GET /rsvp/event-info (200).
type EventInfoSuccessResponse struct {
	Data  *domain.EventInfo `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteRSVPResponse is the data of a successful DELETE /rsvp/{id}.
type DeleteRSVPResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DeadlineDetails is error.details of a deadline_passed error.
type DeadlineDetails struct {
	EventName string    `json:"eventName"`
	Deadline  time.Time `json:"deadline"`
	EventDate time.Time `json:"eventDate"`
}

// ExistingRSVP is the public subset of an RSVP revealed on a duplicate email.
type ExistingRSVP struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Attending bool   `json:"attending"`
}

// DuplicateDetails is error.details of a duplicate_email error on create.
type DuplicateDetails struct {
	ExistingRSVP ExistingRSVP `json:"existingRsvp"`
	UpdateLink   string       `json:"updateLink"`
}

// errorTexts are the user-facing messages of one endpoint.
type errorTexts struct {
	notFound   string
	deadline   string
	validation string
	internal   string
}

var (
	createTexts = errorTexts{
		deadline:   "New RSVPs are no longer accepted.",
		validation: "We found some issues with your RSVP information. Please fix them and submit again.",
		internal:   "Unable to submit RSVP. Please try again later.",
	}
	guestUpdateTexts = errorTexts{
		notFound:   "RSVP not found or invalid update link.",
		deadline:   "Updates are no longer allowed.",
		validation: "We found some issues with your updated information. Please fix them and try again.",
		internal:   "Unable to update RSVP. Please try again later.",
	}
	adminUpdateTexts = errorTexts{
		notFound:   "RSVP not found. It may have been deleted.",
		validation: "Validation failed for this RSVP update.",
		internal:   "Unable to update RSVP. Please try again later.",
	}
)

// writeError maps service errors to the API error envelope.
func (c *RSVPController) writeError(w http.ResponseWriter, r *http.Request, err error, texts errorTexts) {
	var (
		validationErr *domain.ValidationError
		deadlineErr   *domain.DeadlinePassedError
		duplicateErr  *domain.DuplicateRSVPError
	)
	switch {
	case errors.As(err, &validationErr):
		helpers.WriteAPIError(w, http.StatusBadRequest, &helpers.APIError{
			Code:    helpers.ErrCodeValidationFailed,
			Message: texts.validation,
			Errors:  validationErr.Errors,
		})
	case errors.As(err, &deadlineErr):
		helpers.WriteAPIError(w, http.StatusForbidden, &helpers.APIError{
			Code:    helpers.ErrCodeDeadlinePassed,
			Message: fmt.Sprintf("RSVP deadline has passed for %s. %s", deadlineErr.EventName, texts.deadline),
			Details: DeadlineDetails{
				EventName: deadlineErr.EventName,
				Deadline:  deadlineErr.Deadline,
				EventDate: deadlineErr.EventDate,
			},
		})
	case errors.As(err, &duplicateErr):
		existing := duplicateErr.Existing
		helpers.WriteAPIError(w, http.StatusConflict, &helpers.APIError{
			Code:    helpers.ErrCodeDuplicateEmail,
			Message: "You have already submitted an RSVP. Use your update link to make changes.",
			Details: DuplicateDetails{
				ExistingRSVP: ExistingRSVP{Name: existing.Name, Email: existing.Email, Attending: existing.Attending},
				UpdateLink:   c.updateLink(r, existing.UpdateToken),
			},
		})
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateEmail, "That email address already has an RSVP.")
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, texts.notFound)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, texts.internal)
	}
}

func (c *RSVPController) updateLink(r *http.Request, token string) string {
	return c.Links.ForBase(helpers.BaseURL(r), token)
}

// validID reports whether id can name a stored RSVP. Anything else is reported as not found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Create godoc
// @Summary Submit an RSVP
// @Description Creates an RSVP and returns it with the guest's secret update link. numOfGuests (>= 1) and numOfChildren (>= 0) are required when attending. Rejected after the RSVP deadline.
// @Tags guest
// @Accept json
// @Produce json
// @Param body body controllers.RSVPInputRequest true "RSVP"
// @Success 201 {object} controllers.CreateRSVPSuccessResponse "data contains the created RSVP and update link"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed or bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: deadline_passed"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_email; details has the existing RSVP and its update link"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp [post]
func (c *RSVPController) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.RSVPInput
	if !helpers.DecodeJSON(w, r, &in) {
		return
	}

	ctx := services.WithLinkBase(r.Context(), helpers.BaseURL(r))
	rsvp, err := c.Service.Create(ctx, in)
	if err != nil {
		c.writeError(w, r, err, createTexts)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateRSVPResponse{
		Message:    "RSVP submitted successfully! Save your update link.",
		RSVP:       rsvp,
		UpdateLink: c.updateLink(r, rsvp.UpdateToken),
	})
}

// List godoc
// @Summary List all RSVPs
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.ListRSVPsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp [get]
func (c *RSVPController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context(), domain.RSVPFilter{})
	if err != nil {
		c.writeError(w, r, err, errorTexts{internal: "Unable to retrieve RSVPs. Please try again later."})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListRSVPsResponse{
		Message: "RSVPs retrieved successfully",
		Count:   len(list.RSVPs),
		RSVPs:   list.RSVPs,
	})
}

// ListAttending godoc
// @Summary List attending RSVPs with guest totals
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.ListByAttendanceSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/attending/yes [get]
func (c *RSVPController) ListAttending(w http.ResponseWriter, r *http.Request) {
	c.listByAttendance(w, r, true)
}

// ListNotAttending godoc
// @Summary List RSVPs that declined
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.ListByAttendanceSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/attending/no [get]
func (c *RSVPController) ListNotAttending(w http.ResponseWriter, r *http.Request) {
	c.listByAttendance(w, r, false)
}

func (c *RSVPController) listByAttendance(w http.ResponseWriter, r *http.Request, attending bool) {
	label := "Attending"
	if !attending {
		label = "Not attending"
	}
	list, err := c.Service.List(r.Context(), domain.AttendingFilter(attending))
	if err != nil {
		c.writeError(w, r, err, errorTexts{internal: "Unable to retrieve RSVPs. Please try again later."})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListByAttendanceResponse{
		Message:       label + " RSVPs retrieved successfully",
		Count:         len(list.RSVPs),
		TotalGuests:   list.TotalGuests,
		TotalChildren: list.TotalChildren,
		RSVPs:         list.RSVPs,
	})
}

// EventInfo godoc
// @Summary Get event details and RSVP deadline status
// @Tags guest
// @Produce json
// @Success 200 {object} controllers.EventInfoSuccessResponse
// @Router /rsvp/event-info [get]
func (c *RSVPController) EventInfo(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.EventInfo(r.Context()))
}

// Summary godoc
// @Summary Get RSVP totals
// @Description Live counts of responses and attending people, recomputed on every call.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.SummarySuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/summary [get]
func (c *RSVPController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Service.Summary(r.Context())
	if err != nil {
		c.writeError(w, r, err, errorTexts{internal: "Unable to retrieve RSVP summary. Please try again later."})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// GetByID godoc
// @Summary Get an RSVP by ID
// @Tags admin
// @Produce json
// @Param id path string true "RSVP ID (UUID)"
// @Success 200 {object} controllers.RSVPSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/{id} [get]
func (c *RSVPController) GetByID(w http.ResponseWriter, r *http.Request) {
	texts := errorTexts{notFound: "RSVP not found", internal: "Unable to retrieve RSVP. Please try again later."}
	id := r.PathValue("id")
	if !validID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, texts.notFound)
		return
	}
	rsvp, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err, texts)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RSVPResponse{Message: "RSVP retrieved successfully", RSVP: rsvp})
}

// GetByToken godoc
// @Summary Get an RSVP by its update token
// @Tags guest
// @Produce json
// @Param token path string true "Update token"
// @Success 200 {object} controllers.RSVPSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/token/{token} [get]
func (c *RSVPController) GetByToken(w http.ResponseWriter, r *http.Request) {
	rsvp, err := c.Service.GetByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		c.writeError(w, r, err, errorTexts{notFound: guestUpdateTexts.notFound, internal: "Unable to retrieve RSVP. Please try again later."})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RSVPResponse{Message: "RSVP retrieved successfully", RSVP: rsvp})
}

// UpdateByToken godoc
// @Summary Update your RSVP with its update token
// @Description Guest self-service update. Switching attending to true without counts defaults numOfGuests to 1 and numOfChildren to 0. Rejected after the RSVP deadline.
// @Tags guest
// @Accept json
// @Produce json
// @Param token path string true "Update token"
// @Param body body controllers.RSVPInputRequest true "Fields to change"
// @Success 200 {object} controllers.RSVPSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed or bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: deadline_passed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_email"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Router /rsvp/token/{token} [put]
func (c *RSVPController) UpdateByToken(w http.ResponseWriter, r *http.Request) {
	var patch domain.RSVPInput
	if !helpers.DecodeJSON(w, r, &patch) {
		return
	}
	rsvp, err := c.Service.UpdateByToken(r.Context(), r.PathValue("token"), patch)
	if err != nil {
		c.writeError(w, r, err, guestUpdateTexts)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RSVPResponse{Message: "RSVP updated successfully!", RSVP: rsvp})
}

// UpdateByID godoc
// @Summary Update an RSVP by ID
// @Description Admin update; not subject to the RSVP deadline.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "RSVP ID (UUID)"
// @Param body body controllers.RSVPInputRequest true "Fields to change"
// @Success 200 {object} controllers.RSVPSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed or bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_email"
// @Router /rsvp/{id} [put]
func (c *RSVPController) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !validID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, adminUpdateTexts.notFound)
		return
	}
	var patch domain.RSVPInput
	if !helpers.DecodeJSON(w, r, &patch) {
		return
	}
	rsvp, err := c.Service.UpdateByID(r.Context(), id, patch)
	if err != nil {
		c.writeError(w, r, err, adminUpdateTexts)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RSVPResponse{Message: "RSVP updated successfully!", RSVP: rsvp})
}

// Delete godoc
// @Summary Delete an RSVP by ID
// @Tags admin
// @Produce json
// @Param id path string true "RSVP ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.message and data.id"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp/{id} [delete]
func (c *RSVPController) Delete(w http.ResponseWriter, r *http.Request) {
	texts := errorTexts{
		notFound: "RSVP not found. It may have already been deleted.",
		internal: "Unable to delete RSVP. Please try again later.",
	}
	id := r.PathValue("id")
	if !validID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, texts.notFound)
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.writeError(w, r, err, texts)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteRSVPResponse{Message: "RSVP deleted successfully!", ID: id})
}
