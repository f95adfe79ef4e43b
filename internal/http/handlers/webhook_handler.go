// README: WhatsApp webhook handler; one incoming message in, one reply out.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ankago/internal/modules/dialogue"
	"ankago/internal/types"
)

// WhatsApp gateways retry on slow webhooks; answering late causes duplicate
// replies, so the whole turn is capped well under the gateway timeout.
const turnTimeout = 20 * time.Second

// DialogueService is the consumed dialogue surface.
type DialogueService interface {
	HandleMessage(ctx context.Context, userID types.ID, text string) (*dialogue.TurnResult, error)
}

type WebhookHandler struct {
	dialogue DialogueService
}

func NewWebhookHandler(svc DialogueService) *WebhookHandler {
	return &WebhookHandler{dialogue: svc}
}

type inboundMessageReq struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

type replyResp struct {
	Reply  string   `json:"reply"`
	JobIDs []string `json:"job_ids,omitempty"`
}

// Receive handles POST /api/webhook/whatsapp.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req inboundMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.From = strings.TrimSpace(req.From)
	req.Message = strings.TrimSpace(req.Message)
	if req.From == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing from or message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	res, err := h.dialogue.HandleMessage(ctx, types.ID(req.From), req.Message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, replyResp{Reply: res.Message, JobIDs: res.JobIDs})
}
