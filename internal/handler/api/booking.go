package api

import (
	"errors"
	"net/http"

	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/handler/httperr"
	resdto "studiobooking/internal/handler/dto/response"
	"studiobooking/internal/handler/middleware"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/pkg/jwt"
	"studiobooking/internal/usecase/commands"
	"studiobooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings commands.BookingCommands
	views    queries.BookingQueries
}

func NewBookingHandler(bookings commands.BookingCommands, views queries.BookingQueries) *BookingHandler {
	return &BookingHandler{bookings: bookings, views: views}
}

// @Summary Create booking
// @Description Create a booking for the session token's phone number
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := actorFromSession(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookings.Create(c.Request.Context(), req, actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Modify booking
// @Description Replace a booking's studio/time selection
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ModifyBookingRequest true "New selection"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *BookingHandler) Modify(c *gin.Context) {
	actor, ok := actorFromSession(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookings.Modify(c.Request.Context(), id, req, actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel an active future booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := actorFromSession(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	if err := h.bookings.Cancel(c.Request.Context(), id, req, actor); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Description Get one booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorFromSession(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.views.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !actor.Staff && view.Phone != actor.Phone {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List bookings for the session token's phone number
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := actorFromSession(c)
	if !ok {
		return
	}

	items, err := h.views.ListByPhone(c.Request.Context(), actor.Phone, 0)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, out)
}

func actorFromSession(c *gin.Context) (commands.Actor, bool) {
	session := middleware.GetSession(c)
	if session == nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return commands.Actor{}, false
	}
	return commands.Actor{
		Phone: session.Phone,
		Staff: session.VerifiedBy == jwt.VerifiedByStaff,
	}, true
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot no longer available", nil)
	case errors.Is(err, errs.ErrNotAuthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed for this booking", nil)
	case errors.Is(err, errs.ErrBookingNotActive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking is not active", nil)
	case errors.Is(err, errs.ErrBookingInPast):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking has already started", nil)
	case errors.Is(err, errs.ErrOutsideWindow):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Date outside the booking window", nil)
	case errors.Is(err, errs.ErrInvalidDuration):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Duration outside allowed bounds", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
