package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventShiftAssigned   = "shift_assigned"
	EventShiftClockedIn  = "shift_clocked_in"
	EventShiftClockedOut = "shift_clocked_out"
)

type ShiftEvent struct {
	Type      string    `json:"type"`
	ShiftID   uuid.UUID `json:"shift_id"`
	WorkerID  uuid.UUID `json:"worker_id"`
	JobID     uuid.UUID `json:"job_id"`
	Timestamp string    `json:"timestamp"`
}

// NotifyShift broadcasts a shift lifecycle event to connected clients.
// A nil hub is a no-op so callers don't need to care whether the
// websocket surface is enabled.
func NotifyShift(h *Hub, eventType string, shiftID, workerID, jobID uuid.UUID) {
	if h == nil {
		return
	}

	evt := ShiftEvent{
		Type:      eventType,
		ShiftID:   shiftID,
		WorkerID:  workerID,
		JobID:     jobID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
