package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tonimnim/Komiut-sub007/internal/models"
	"github.com/tonimnim/Komiut-sub007/internal/models/dto"
)

type TopupService interface {
	Start(ctx context.Context, req *dto.TopupRequest) (*models.TopupTransaction, error)
	Cancel(ctx context.Context, transactionID string) error
	CurrentState(ctx context.Context, transactionID string) (*models.TopupTransaction, error)
	Subscribe(ctx context.Context, transactionID string) (<-chan models.TopupTransaction, error)
	ApplyGatewayCallback(ctx context.Context, evt models.GatewayCallbackEvent) error
}

type TopupHandler struct {
	Service TopupService
}

func NewTopupHandler(s TopupService) *TopupHandler {
	return &TopupHandler{Service: s}
}

// POST /topups
func (h *TopupHandler) StartTopup(c *gin.Context) {
	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tx, err := h.Service.Start(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "transaction": tx})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// GET /topups/:id
func (h *TopupHandler) GetTopup(c *gin.Context) {
	tx, err := h.Service.CurrentState(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// DELETE /topups/:id
func (h *TopupHandler) CancelTopup(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "cancel requested"})
}

// GET /topups/:id/events
//
// Server-sent-events stream of transaction snapshots; the stream closes
// after the terminal snapshot.
func (h *TopupHandler) StreamTopupEvents(c *gin.Context) {
	ch, err := h.Service.Subscribe(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("state", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// HandleEvents routes broker messages into the engine.
func (h *TopupHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.GatewayCallbackTopic:
		var evt models.GatewayCallbackEvent
		if err := json.Unmarshal(value, &evt); err != nil {
			logrus.Errorf("Error parsing gateway callback event %s", err.Error())
			return fmt.Errorf("error parsing gateway callback event %w", err)
		}
		return h.Service.ApplyGatewayCallback(ctx, evt)
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
