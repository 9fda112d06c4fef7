package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderplan/internal/domain"
	"wanderplan/internal/export"
	"wanderplan/internal/middleware"
	"wanderplan/internal/service"
)

// PlanHandler handles stored trip plan endpoints.
type PlanHandler struct {
	planService      service.PlanService
	presignExpiry    time.Duration
	maxDocumentBytes int64
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, presignExpirySecs, maxDocumentBytes int64) *PlanHandler {
	return &PlanHandler{
		planService:      planService,
		presignExpiry:    time.Duration(presignExpirySecs) * time.Second,
		maxDocumentBytes: maxDocumentBytes,
	}
}

// Create handles POST /api/v1/plans
// @Summary Store and parse a trip plan
// @Description Store the raw document and extract its trip plan
// @Tags plans
// @Accept json
// @Produce json
// @Param request body CreatePlanRequest true "Plan document"
// @Success 201 {object} Response{data=domain.Plan} "Plan created and parsed"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "Document too large"
// @Security BearerAuth
// @Router /plans [post]
func (h *PlanHandler) Create(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	limitBody(c, h.maxDocumentBytes)
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if bodyTooLarge(err) {
			HandleError(c, domain.ErrDocumentTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document is required")
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), &service.CreatePlanInput{
		OwnerID:  ownerID,
		Name:     req.Name,
		Document: req.Document,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, plan)
}

// List handles GET /api/v1/plans
// @Summary List plans
// @Description List the caller's plans, newest first
// @Tags plans
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Plan,meta=PagMeta} "List of plans"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	ownerID, ok := extractOwner(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	plans, total, err := h.planService.List(c.Request.Context(), ownerID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	if plans == nil {
		plans = []domain.Plan{}
	}

	RespondPaginated(c, plans, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/plans/:id
// @Summary Get plan by ID
// @Description Get a plan including its parsed trip plan
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} Response{data=domain.Plan} "Plan details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Plan not found"
// @Security BearerAuth
// @Router /plans/{id} [get]
func (h *PlanHandler) GetByID(c *gin.Context) {
	ownerID, planID, ok := h.ownerAndPlan(c)
	if !ok {
		return
	}

	plan, err := h.planService.GetByID(c.Request.Context(), ownerID, planID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, plan)
}

// GetSource handles GET /api/v1/plans/:id/source
// @Summary Get the raw document link
// @Description Get a presigned URL for downloading the stored markdown document
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} Response{data=SourceURLResponse} "Presigned URL"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Plan not found"
// @Security BearerAuth
// @Router /plans/{id}/source [get]
func (h *PlanHandler) GetSource(c *gin.Context) {
	ownerID, planID, ok := h.ownerAndPlan(c)
	if !ok {
		return
	}

	url, err := h.planService.GetSourceURL(c.Request.Context(), ownerID, planID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, SourceURLResponse{URL: url, ExpiresAt: time.Now().UTC().Add(h.presignExpiry)})
}

// Reparse handles POST /api/v1/plans/:id/reparse
// @Summary Queue a plan for re-extraction
// @Description Re-run extraction on the stored document in the background
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 202 {object} Response{data=domain.Plan} "Plan queued"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Plan not found"
// @Security BearerAuth
// @Router /plans/{id}/reparse [post]
func (h *PlanHandler) Reparse(c *gin.Context) {
	ownerID, planID, ok := h.ownerAndPlan(c)
	if !ok {
		return
	}

	plan, err := h.planService.Reparse(c.Request.Context(), ownerID, planID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: plan})
}

// Export handles GET /api/v1/plans/:id/export
// @Summary Export a plan
// @Description Download the parsed trip plan as CSV or an Excel workbook
// @Tags plans
// @Produce octet-stream
// @Param id path string true "Plan ID (UUID)"
// @Param format query string false "Export format" Enums(csv, xlsx) default(csv)
// @Success 200 {file} file "Exported plan"
// @Failure 400 {object} ErrorResponseBody "Invalid ID or format"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Plan not found"
// @Failure 409 {object} ErrorResponseBody "Plan not parsed"
// @Security BearerAuth
// @Router /plans/{id}/export [get]
func (h *PlanHandler) Export(c *gin.Context) {
	ownerID, planID, ok := h.ownerAndPlan(c)
	if !ok {
		return
	}

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	plan, err := h.planService.GetByID(c.Request.Context(), ownerID, planID)
	if err != nil {
		HandleError(c, err)
		return
	}
	record, err := h.planService.Decode(plan)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, record); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(plan.Name, format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, domain.ExportContentTypes[format], buf.Bytes())
}

// Share handles POST /api/v1/plans/:id/share
// @Summary Email a plan
// @Description Send the plan summary by email. Defaults to the caller's address.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param request body SharePlanRequest false "Recipient"
// @Success 200 {object} Response{data=MessageResponse} "Email sent"
// @Failure 400 {object} ErrorResponseBody "Invalid ID or email"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Plan not found"
// @Failure 409 {object} ErrorResponseBody "Plan not parsed"
// @Security BearerAuth
// @Router /plans/{id}/share [post]
func (h *PlanHandler) Share(c *gin.Context) {
	ownerID, planID, ok := h.ownerAndPlan(c)
	if !ok {
		return
	}

	var req SharePlanRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, domain.ErrInvalidEmail)
			return
		}
	}
	if req.Email == "" {
		req.Email = middleware.GetEmail(c)
	}

	err := h.planService.Share(c.Request.Context(), &service.SharePlanInput{
		OwnerID: ownerID,
		PlanID:  planID,
		Email:   req.Email,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "plan sent to " + req.Email})
}

// Delete handles DELETE /api/v1/plans/:id
// @Summary Delete a plan
// @Description Delete the plan and its stored document
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Plan deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Plan not found"
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	ownerID, planID, ok := h.ownerAndPlan(c)
	if !ok {
		return
	}

	if err := h.planService.Delete(c.Request.Context(), ownerID, planID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "plan deleted"})
}

func (h *PlanHandler) ownerAndPlan(c *gin.Context) (ownerID, planID uuid.UUID, ok bool) {
	ownerID, ok = extractOwner(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid plan ID")
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, planID, true
}
