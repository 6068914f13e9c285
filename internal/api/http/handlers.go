package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rankwala/backend/internal/answerkey"
	"github.com/rankwala/backend/internal/archive"
	"github.com/rankwala/backend/internal/logging"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	pipeline  *answerkey.Pipeline
	store     archive.Store
	images    *ImageProxy
	logger    *logging.Logger
	sanitizer *bluemonday.Policy
}

// NewHandlers creates a new handler set
func NewHandlers(pipeline *answerkey.Pipeline, store archive.Store, images *ImageProxy, logger *logging.Logger) *Handlers {
	return &Handlers{
		pipeline:  pipeline,
		store:     store,
		images:    images,
		logger:    logger,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Rankwala Scoring Service",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	files, err := h.store.List()
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"archive": gin.H{"reachable": err == nil, "files": len(files)},
	})
}

type scoreRequest struct {
	URL string `json:"url"`
}

// hasHTTPScheme reports whether the URL starts with http:// or https://,
// case-insensitively.
func hasHTTPScheme(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Score fetches an answer-key URL, scores it and returns the full result
func (h *Handlers) Score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `url` in request body."})
		return
	}

	url := strings.TrimSpace(req.URL)
	if !hasHTTPScheme(url) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL must start with http or https."})
		return
	}

	result, err := h.pipeline.Score(c.Request.Context(), url)
	if err != nil {
		h.scoreError(c, url, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// scoreError maps pipeline failures onto response statuses. Upstream statuses
// are mirrored, timeouts map to 504, unrecognized pages to 422.
func (h *Handlers) scoreError(c *gin.Context, url string, err error) {
	var statusErr *answerkey.FetchStatusError

	switch {
	case errors.As(err, &statusErr):
		c.JSON(statusErr.Status, gin.H{"error": "The answer key could not be fetched."})
	case errors.Is(err, answerkey.ErrFetchTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Fetching the answer key timed out."})
	case errors.Is(err, answerkey.ErrNoQuestions):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No questions could be recognized on this page."})
	default:
		h.logger.Error("scoring failed", zap.String("url", url), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while scoring."})
	}
}

// ListSavedKeys lists archived answer keys, newest first
func (h *Handlers) ListSavedKeys(c *gin.Context) {
	files, err := h.store.List()
	if err != nil {
		h.logger.Warn("listing saved keys failed", zap.Error(err))
		files = nil
	}
	if files == nil {
		files = []archive.FileInfo{}
	}

	c.JSON(http.StatusOK, gin.H{"files": files, "count": len(files)})
}

// GetSavedKey serves one archived answer key. The default response is a
// download of the stored bytes; ?inline=1 returns a sanitized inline preview.
func (h *Handlers) GetSavedKey(c *gin.Context) {
	name := c.Param("file")
	if !archive.Allowed(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such saved key."})
		return
	}

	data, err := h.store.Read(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such saved key."})
		return
	}

	if c.Query("inline") == "1" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.sanitizer.Sanitize(string(data))))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// DeleteSavedKey removes one archived answer key
func (h *Handlers) DeleteSavedKey(c *gin.Context) {
	name := c.Param("file")
	if !archive.Allowed(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such saved key."})
		return
	}

	if err := h.store.Delete(name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such saved key."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": name})
}

// ProxyImage fetches a remote image and returns it as a base64 data URI
func (h *Handlers) ProxyImage(c *gin.Context) {
	url := strings.TrimSpace(c.Query("url"))
	if !hasHTTPScheme(url) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL must start with http or https."})
		return
	}

	dataURI, err := h.images.DataURI(c.Request.Context(), url)
	if err != nil {
		h.logger.Warn("image proxy failed", zap.String("url", url), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch the image."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dataUrl": dataURI})
}
