package dto

import (
	"time"

	"main/model"
)

// SessionResponse describes one of the caller's open sessions, for the
// device-management view. The session id itself is never echoed back.
type SessionResponse struct {
	DisplayName    string `json:"display_name"`
	DeviceInfo     string `json:"device_info"`
	IPAddress      string `json:"ip_address"`
	CreatedAt      string `json:"created_at"`
	LastActivityAt string `json:"last_activity_at"`
	Current        bool   `json:"current"`
}

func ToSessionResponse(session *model.Session, currentID string) SessionResponse {
	return SessionResponse{
		DisplayName:    session.DisplayName,
		DeviceInfo:     session.DeviceInfo,
		IPAddress:      session.IPAddress,
		CreatedAt:      session.CreatedAt.Format(time.RFC3339),
		LastActivityAt: session.LastActivityAt.Format(time.RFC3339),
		Current:        session.SessionID == currentID,
	}
}

func ToSessionResponses(sessions []*model.Session, currentID string) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, ToSessionResponse(session, currentID))
	}
	return out
}
