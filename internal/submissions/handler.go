package submissions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cardrequest-backend/internal/shared/server/middleware"
	"cardrequest-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the form routes. submitGuard runs before the submit handler only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, submitGuard ...gin.HandlerFunc) {
	rg.POST("/submissions/validate", h.validate)
	rg.POST("/submissions", append(submitGuard, h.submit)...)
	rg.GET("/submissions/:id/receipt", h.receipt)
	rg.GET("/eligibility", h.eligibility)
}

// RegisterAdminRoutes attaches the administrator listing.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/submissions", h.list)
}

func (h *Handler) validate(c *gin.Context) {
	var p Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "invalid request body", err.Error())
		return
	}
	v := h.Svc.Validate(p)
	respond.OK(c, ValidateResponse{Valid: v.Empty(), Violations: v})
}

func (h *Handler) submit(c *gin.Context) {
	var p Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "invalid request body", err.Error())
		return
	}

	res, err := h.Svc.Submit(c.Request.Context(), p, middleware.RequestIDFromContext(c))
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "submission has invalid fields", verr.Violations)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save submission", nil)
		}
		return
	}

	c.Set(middleware.SubmissionIDKey, res.Submission.ID)
	c.Set(middleware.ProtocolKey, res.Protocol)
	respond.Created(c, toSubmitResponse(res))
}

func (h *Handler) receipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid submission id", nil)
		return
	}

	fileName, body, err := h.Svc.Receipt(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "submission not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load submission", nil)
		}
		return
	}

	c.Set(middleware.SubmissionIDKey, id)
	respond.Attachment(c, fileName, "text/plain; charset=utf-8", body)
}

func (h *Handler) eligibility(c *gin.Context) {
	limit, err := parseAmount(c.Query("limite"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "limite must be a number", nil)
		return
	}
	revenue, err := parseAmount(c.Query("faturamento"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "faturamento must be a number", nil)
		return
	}

	e, ok := AssessEligibility(limit, revenue)
	if !ok {
		respond.OK(c, EligibilityResponse{Applicable: false})
		return
	}
	respond.OK(c, EligibilityResponse{Applicable: true, Level: e.Level, Ratio: e.Ratio, Message: e.Message})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list submissions", nil)
		return
	}
	respond.OK(c, toSummaryResponses(items))
}

func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
