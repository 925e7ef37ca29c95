package api

import (
	"errors"
	"net/http"
	"time"

	"studiobooking/internal/domain/studio"
	"studiobooking/internal/handler/httperr"
	resdto "studiobooking/internal/handler/dto/response"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	settings     queries.SettingsQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, settings queries.SettingsQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, settings: settings}
}

// @Summary Get availability
// @Description Slot statuses and bookable slabs for one studio and date
// @Tags availability
// @Produce json
// @Param studio query string true "Studio (A, B or C)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param exclude_booking_id query string false "Booking to exclude, for edit flows"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	st := studio.Studio(c.Query("studio"))
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	excludeID := uuid.Nil
	if raw := c.Query("exclude_booking_id"); raw != "" {
		excludeID, err = uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid exclude_booking_id format", nil)
			return
		}
	}

	view, err := h.availability.GetAvailability(c.Request.Context(), st, date, excludeID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown studio", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get day schedule
// @Description Consolidated booked blocks per studio for one date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /schedule [get]
func (h *AvailabilityHandler) GetDaySchedule(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.availability.GetDaySchedule(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayScheduleView(view))
}

// @Summary Get booking settings
// @Description Limits and open hours clients need to render a picker
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Router /settings [get]
func (h *AvailabilityHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSettingsView(h.settings.GetSettings()))
}
