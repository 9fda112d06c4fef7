package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/domain"
	"wanderplan/internal/service"
	"wanderplan/internal/tripplan"
)

// ParseHandler exposes the extractor without storing anything.
type ParseHandler struct {
	maxDocumentBytes int64
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(maxDocumentBytes int64) *ParseHandler {
	return &ParseHandler{maxDocumentBytes: maxDocumentBytes}
}

// Parse handles POST /api/v1/parse
// @Summary Parse a trip plan document
// @Description Extract a structured trip plan from a markdown itinerary. The body is either the raw document (text/plain, text/markdown) or JSON {"document": "..."}.
// @Tags parse
// @Accept json,plain,markdown
// @Produce json
// @Param request body ParseRequest true "Document to parse"
// @Success 200 {object} Response{data=tripplan.TripPlan} "Extracted trip plan"
// @Failure 400 {object} ErrorResponseBody "Empty or non-text document"
// @Failure 413 {object} ErrorResponseBody "Document too large"
// @Router /parse [post]
func (h *ParseHandler) Parse(c *gin.Context) {
	document, err := readDocument(c, h.maxDocumentBytes)
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := service.ValidateDocument(document, h.maxDocumentBytes); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tripplan.Parse(document))
}

// limitBody bounds the request body for document uploads. JSON framing adds
// escapes, so the bound leaves some headroom over the document limit.
func limitBody(c *gin.Context, maxBytes int64) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes*2+1024)
	}
}

func bodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

// readDocument reads the document from a JSON envelope or the raw body.
func readDocument(c *gin.Context, maxBytes int64) (string, error) {
	limitBody(c, maxBytes)

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if bodyTooLarge(err) {
				return "", domain.ErrDocumentTooLarge
			}
			return "", domain.ErrDocumentEmpty
		}
		return req.Document, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		if bodyTooLarge(err) {
			return "", domain.ErrDocumentTooLarge
		}
		return "", err
	}
	return string(raw), nil
}
