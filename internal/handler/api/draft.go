package api

import (
	"errors"
	"net/http"

	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/handler/httperr"
	resdto "studiobooking/internal/handler/dto/response"
	"studiobooking/internal/handler/middleware"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	drafts commands.DraftCommands
}

func NewDraftHandler(drafts commands.DraftCommands) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// @Summary Start booking wizard
// @Description Start a new wizard draft, optionally in edit mode for an existing booking
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body reqdto.StartDraftRequest true "Phone and optional booking to edit"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /drafts [post]
func (h *DraftHandler) Start(c *gin.Context) {
	var req reqdto.StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	draft, err := h.drafts.Start(c.Request.Context(), req, middleware.GetSession(c))
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraft(draft))
}

// @Summary Get wizard draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID format", nil)
		return
	}

	draft, err := h.drafts.Get(c.Request.Context(), id)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}

// @Summary Advance wizard draft
// @Description Apply a step payload and move the draft forward; the confirm step books the slot
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.AdvanceDraftRequest true "Target step and its data"
// @Success 200 {object} resdto.AdvanceDraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /drafts/{id}/advance [post]
func (h *DraftHandler) Advance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID format", nil)
		return
	}

	var req reqdto.AdvanceDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.drafts.Advance(c.Request.Context(), id, req, middleware.GetSession(c))
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdvanceResult(result))
}

// @Summary Discard wizard draft
// @Tags drafts
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Reset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID format", nil)
		return
	}

	if err := h.drafts.Reset(c.Request.Context(), id); err != nil {
		respondDraftError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found or expired", nil)
	case errors.Is(err, errs.ErrNothingChanged):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Nothing changed from the original booking", nil)
	case errors.Is(err, commands.ErrAlreadyConfirmed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Draft already confirmed", nil)
	case errors.Is(err, commands.ErrStepNotReachable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Step not reachable from current draft", nil)
	case errors.Is(err, commands.ErrStudioNotAllowed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Studio not offered for this session", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft request", nil)
	default:
		respondBookingError(c, err)
	}
}
