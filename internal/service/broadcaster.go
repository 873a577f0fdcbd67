package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToDashboard(assessmentID string, msgType string, payload interface{})
}
