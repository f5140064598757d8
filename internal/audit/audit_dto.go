package audit

import "time"

type AuditLogResponse struct {
	ID              string         `json:"id"`
	OrgID           string         `json:"org_id"`
	ActorUserID     *string        `json:"actor_user_id,omitempty"`
	ActorEmployeeID *string        `json:"actor_employee_id,omitempty"`
	Action          string         `json:"action"`
	EntityType      string         `json:"entity_type"`
	EntityID        *string        `json:"entity_id,omitempty"`
	IP              *string        `json:"ip,omitempty"`
	UserAgent       *string        `json:"user_agent,omitempty"`
	Metadata        map[string]any `json:"metadata"`
	CreatedAt       string         `json:"created_at"`
}

func mapToResponse(row AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:         row.ID.String(),
		OrgID:      row.OrgID.String(),
		Action:     row.Action,
		EntityType: row.EntityType,
		IP:         row.IP,
		UserAgent:  row.UserAgent,
		Metadata:   decodeMetadata(row.Metadata),
		CreatedAt:  row.CreatedAt.UTC().Format(time.RFC3339),
	}
	if row.ActorUserID != nil {
		v := row.ActorUserID.String()
		resp.ActorUserID = &v
	}
	if row.ActorEmployeeID != nil {
		v := row.ActorEmployeeID.String()
		resp.ActorEmployeeID = &v
	}
	if row.EntityID != nil {
		v := row.EntityID.String()
		resp.EntityID = &v
	}
	return resp
}
