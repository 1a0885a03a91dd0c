package registration

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"epass-backend/internal/epass"
	"epass-backend/internal/platform/logger"
	"epass-backend/internal/platform/metrics"
	"epass-backend/internal/visitor"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Submitter,Renderer

const (
	MsgGenerated   = "E-Pass generated successfully!"
	MsgInvalidBody = "Invalid request body."
)

type Submitter interface {
	Submit(ctx context.Context, in visitor.SubmitRequest) (*visitor.VisitorRecord, error)
}

type Renderer interface {
	Render(ctx context.Context, rec visitor.VisitorRecord) (*epass.PassArtifact, error)
}

type Handler struct {
	svc      Submitter
	renderer Renderer
	metrics  *metrics.Metrics
	log      zerolog.Logger
	// publicBaseURL, when set, replaces the scheme and host taken from the request.
	publicBaseURL string
}

func NewHandler(svc Submitter, renderer Renderer, m *metrics.Metrics, l zerolog.Logger, publicBaseURL string) *Handler {
	return &Handler{svc: svc, renderer: renderer, metrics: m, log: l, publicBaseURL: publicBaseURL}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	// POST /submit
	r.POST("/submit", h.Submit)
}

// ---------- handlers ----------

// Submit godoc
// @Summary      Register a visit and issue an e-pass
// @Description  Validates the form, stores the visitor record, renders the pass PDF and returns its download link.
// @Tags         Visitors
// @Accept       json
// @Produce      json
// @Param        body  body      visitor.SubmitRequest  true  "Visitor form"
// @Success      200   {object}  visitor.SubmitResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /submit [post]
func (h *Handler) Submit(c *gin.Context) {
	l := logger.FromContext(c, h.log)

	var req visitor.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncSubmission(metrics.ResultInvalid)
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgInvalidBody})
		return
	}

	rec, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		status := visitor.ToHTTPStatus(err)
		if status == http.StatusBadRequest {
			h.metrics.IncSubmission(metrics.ResultInvalid)
			c.JSON(status, errorBody(err))
			return
		}
		l.Error().Err(err).Msg("store visitor failed")
		h.metrics.IncSubmission(metrics.ResultStoreError)
		c.JSON(http.StatusInternalServerError, errorBody(err))
		return
	}

	start := time.Now()
	art, err := h.renderer.Render(c.Request.Context(), *rec)
	h.metrics.ObserveRender(start)
	if err != nil {
		// the record stays; it can be re-rendered later with -rerender <id>
		l.Error().Err(err).Str("visitor_id", rec.ID).Msg("render pass failed, record orphaned")
		h.metrics.IncSubmission(metrics.ResultRenderError)
		c.JSON(http.StatusInternalServerError, errorBody(visitor.ErrInternal(err)))
		return
	}

	l.Info().Str("visitor_id", rec.ID).Str("filename", art.Filename).Int64("size", art.Size).Msg("pass issued")
	h.metrics.IncSubmission(metrics.ResultOK)
	c.JSON(http.StatusOK, visitor.SubmitResponse{
		Success:      true,
		Message:      MsgGenerated,
		DownloadLink: downloadLink(c.Request, h.publicBaseURL, art.Filename),
	})
}

// errorBody: {message} for client errors, {message, error} for server errors.
func errorBody(err error) gin.H {
	var ae *visitor.APIError
	if !errors.As(err, &ae) {
		return gin.H{"message": visitor.MsgServerError, "error": err.Error()}
	}
	if ae.Code != visitor.CodeInternal {
		return gin.H{"message": ae.Message}
	}
	body := gin.H{"message": ae.Message}
	if ae.Err != nil {
		body["error"] = ae.Err.Error()
	}
	return body
}
