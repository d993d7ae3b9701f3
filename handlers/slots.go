package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/slots"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler exposes a doctor's weekly schedule.
type SlotHandler struct {
	Store slots.SlotStore
}

func NewSlotHandler(store slots.SlotStore) *SlotHandler {
	return &SlotHandler{Store: store}
}

func (h *SlotHandler) AddSlotsHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.AddSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Debug("Invalid add slots payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Store.AddSlots(c.Request.Context(), actor, req.Slots)
	if err != nil {
		respondError(c, err, "Failed to add slots")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Time slots added successfully",
		"totalSlots": result.TotalSlots,
		"newSlots":   result.NewSlots,
	})
}

func (h *SlotHandler) GetSlotsHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	overview, err := h.Store.GetSlots(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to fetch slots")
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *SlotHandler) UpdateSlotHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	slotID := c.Param("slotId")

	var upd models.SlotUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !upd.ChangesTime() && upd.IsAvailable == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update: provide startTime, endTime or isAvailable"})
		return
	}

	slot, err := h.Store.UpdateSlot(c.Request.Context(), actor, slotID, upd)
	if err != nil {
		respondError(c, err, "Failed to update slot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time slot updated successfully", "slot": slot})
}

func (h *SlotHandler) DeleteSlotHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	remaining, err := h.Store.DeleteSlot(c.Request.Context(), actor, c.Param("slotId"))
	if err != nil {
		respondError(c, err, "Failed to delete slot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time slot deleted successfully", "remainingSlots": remaining})
}

// AvailableSlotsHandler is public: patients browse a doctor's bookable windows.
func (h *SlotHandler) AvailableSlotsHandler(c *gin.Context) {
	resp, err := h.Store.QueryAvailableSlots(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		respondError(c, err, "Failed to fetch available slots")
		return
	}
	c.JSON(http.StatusOK, resp)
}
