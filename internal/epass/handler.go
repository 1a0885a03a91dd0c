package epass

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"epass-backend/internal/platform/logger"
	"epass-backend/internal/platform/metrics"
)

const MsgFileNotFound = "File not found."

type Handler struct {
	storage *Storage
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func RegisterRoutes(r gin.IRoutes, storage *Storage, m *metrics.Metrics, l zerolog.Logger) {
	h := &Handler{storage: storage, metrics: m, log: l}
	r.GET("/pdf/:filename", h.Download)
	r.HEAD("/pdf/:filename", h.Download)
}

// Download godoc
// @Summary      Download an e-pass
// @Description  Streams a previously issued pass as an attachment.
// @Tags         Passes
// @Produce      application/pdf
// @Produce      text/plain
// @Param        filename  path  string  true  "Pass filename, <id>-epass.pdf"
// @Success      200  {file}    file
// @Failure      404  {string}  string  "File not found."
// @Router       /pdf/{filename} [get]
//
// No ownership check: anyone holding a filename can download that pass.
func (h *Handler) Download(c *gin.Context) {
	name := c.Param("filename")

	f, info, err := h.storage.Open(name)
	if err != nil {
		if errors.Is(err, ErrArtifactNotFound) {
			h.metrics.IncDownload(metrics.ResultNotFound)
			c.String(http.StatusNotFound, MsgFileNotFound)
			return
		}
		l := logger.FromContext(c, h.log)
		l.Error().Err(err).Str("filename", name).Msg("open pass failed")
		h.metrics.IncDownload(metrics.ResultServeFailure)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	defer f.Close()

	h.metrics.IncDownload(metrics.ResultOK)
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, info.Name()))
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
