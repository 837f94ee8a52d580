package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AnalysisCompletedEvent struct {
	Type         string `json:"type"`
	ResumeID     string `json:"resume_id"`
	OverallScore int    `json:"overall_score"`
	Timestamp    string `json:"timestamp"`
}

// Notifier broadcasts domain events to every connected client. Satisfies the
// analysis flow's notifier interface; safe to call with a nil receiver.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) AnalysisCompleted(resumeID uuid.UUID, overallScore int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:         "analysis_completed",
		ResumeID:     resumeID.String(),
		OverallScore: overallScore,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
