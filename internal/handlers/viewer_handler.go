package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "cfcs/internal/errors"
	"cfcs/internal/services"
)

// ViewerHandler publishes and serves the read-only viewer snapshot.
type ViewerHandler struct {
	viewerService services.ViewerServicer
	auditService  services.AuditServicer
}

// NewViewerHandler creates a new ViewerHandler.
func NewViewerHandler(viewerService services.ViewerServicer, auditService services.AuditServicer) *ViewerHandler {
	return &ViewerHandler{viewerService: viewerService, auditService: auditService}
}

// SnapshotResponse describes a freshly published snapshot.
type SnapshotResponse struct {
	RecordCount int       `json:"record_count"`
	TakenAt     time.Time `json:"taken_at"`
}

// PublishSnapshot sends the current records to the viewer
// @Summary     Publish viewer snapshot
// @Description Copy the live ledger into the viewer slot. Later additions do not change it until the next publish.
// @Tags        viewer
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} SnapshotResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Router      /viewer/snapshot [post]
func (h *ViewerHandler) PublishSnapshot(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap := h.viewerService.PublishSnapshot()
	h.auditService.Log(user, services.ActionPublishSnapshot, "snapshot", 0, c.ClientIP(),
		map[string]interface{}{"record_count": snap.Len()})

	c.JSON(http.StatusCreated, SnapshotResponse{RecordCount: snap.Len(), TakenAt: snap.TakenAt})
}

// GetReport returns the published snapshot's report
// @Summary     Viewer report
// @Description Summary and details of the last published snapshot. Empty until an admin publishes.
// @Tags        viewer
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ViewerReport
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /viewer/report [get]
func (h *ViewerHandler) GetReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.viewerService.Report())
}

// GetShare renders the share message of the published snapshot
// @Summary     Share snapshot
// @Description Share text, its URL encoding and a messaging deep link. format=text returns only the plain text.
// @Tags        viewer
// @Produce     json
// @Produce     plain
// @Security    BearerAuth
// @Param       target query string false "whatsapp or telegram"
// @Param       format query string false "json (default) or text"
// @Success     200 {object} report.ShareMessage
// @Failure     400 {object} ErrorResponse "Unsupported target or format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /viewer/share [get]
func (h *ViewerHandler) GetShare(c *gin.Context) {
	h.share(c)
}

// ExportShare is GetShare for automation clients
// @Summary     Export share snapshot
// @Description Same payload as /viewer/share, authenticated with an API key
// @Tags        export
// @Produce     json
// @Produce     plain
// @Security    ApiKeyAuth
// @Param       target query string false "whatsapp or telegram"
// @Param       format query string false "json (default) or text"
// @Success     200 {object} report.ShareMessage
// @Failure     400 {object} ErrorResponse "Unsupported target or format"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Export not configured"
// @Router      /export/share [get]
func (h *ViewerHandler) ExportShare(c *gin.Context) {
	h.share(c)
}

// ShareQuery holds the share query parameters.
type ShareQuery struct {
	Target string `form:"target" binding:"omitempty,share_target"`
	Format string `form:"format" binding:"omitempty,oneof=json text"`
}

func (h *ViewerHandler) share(c *gin.Context) {
	var query ShareQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Target" {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidShareTarget,
				fmt.Sprintf("Unsupported share target %q", query.Target)))
			return
		}
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "format must be json or text"))
		return
	}

	msg, err := h.viewerService.Share(query.Target)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if query.Format == "text" {
		c.String(http.StatusOK, msg.Text)
		return
	}
	c.JSON(http.StatusOK, msg)
}
