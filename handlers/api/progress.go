package api

import (
	"context"
	"errors"

	"draftmail/drafter"
	"draftmail/middleware"
	"draftmail/models"
	"draftmail/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ProgressEvent is one message on the /ws/draft stream
type ProgressEvent struct {
	Type     string             `json:"type"` // "state", "result" or "error"
	State    drafter.State      `json:"state,omitempty"`
	Draft    *models.FinalDraft `json:"draft,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// RequireUpgrade rejects plain HTTP requests on websocket routes
func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleProgress reads one DraftRequest from the socket and streams the run:
// a "state" event per transition, then a single "result" or "error" event.
func (h *DraftHandler) HandleProgress(c *websocket.Conn) {
	streamID := uuid.New().String()
	log := utils.Log.WithField("stream", streamID)
	localizer := middleware.LocalizerOf(c.Locals(middleware.LocalizerKey))

	defer func() {
		c.Close()
		log.Debug("Draft stream closed")
	}()

	var req models.DraftRequest
	if err := c.ReadJSON(&req); err != nil {
		log.Warn("Invalid draft request: %v", err)
		c.WriteJSON(ProgressEvent{Type: "error", Error: "Invalid request"})
		return
	}

	send := func(ev ProgressEvent) {
		if err := c.WriteJSON(ev); err != nil {
			log.Warn("Failed to send progress event: %v", err)
		}
	}

	draft, err := h.drafter.Draft(context.Background(), req, func(s drafter.State) {
		send(ProgressEvent{Type: "state", State: s})
	})
	if errors.Is(err, drafter.ErrMissingFields) {
		send(ProgressEvent{
			Type:     "error",
			State:    drafter.StateIdle,
			Warnings: []string{utils.T(localizer, drafter.WarningMissingFields)},
		})
		return
	}
	if err != nil {
		log.Error("Draft failed: %v", err)
		send(ProgressEvent{Type: "error", Error: "Failed to draft email"})
		return
	}

	state := drafter.StateRendered
	if draft.Fallback {
		state = drafter.StateFallback
	}
	draft.Warnings = utils.TAll(localizer, draft.Warnings)
	send(ProgressEvent{Type: "result", State: state, Draft: draft, Warnings: draft.Warnings})
}
