package models

import (
	"time"

	"github.com/NoSuchObjectException/4610-final-project/storage"
)

const RelationshipActive = "ACTIVE"

// ClientAgent is the many-to-many join between clients and agents. Its id
// is deterministic, so re-creating the same relationship overwrites the
// existing row instead of duplicating it.
type ClientAgent struct {
	ID               string `json:"id"`
	ClientID         string `json:"clientId"`
	AgentID          string `json:"agentId"`
	RelationshipDate string `json:"relationshipDate"`
	Status           string `json:"status"`
}

// RelationshipID builds the composite id for a client/agent pair.
func RelationshipID(clientID, agentID string) string {
	return clientID + "#" + agentID
}

// NewClientAgent builds an ACTIVE relationship dated now.
func NewClientAgent(clientID, agentID string, now time.Time) ClientAgent {
	return ClientAgent{
		ID:               RelationshipID(clientID, agentID),
		ClientID:         clientID,
		AgentID:          agentID,
		RelationshipDate: now.Format(time.RFC3339),
		Status:           RelationshipActive,
	}
}

func ClientAgentFromItem(item storage.Item) *ClientAgent {
	if item == nil {
		return nil
	}
	ca := &ClientAgent{
		ID:               itemString(item, "id"),
		ClientID:         itemString(item, "clientId"),
		AgentID:          itemString(item, "agentId"),
		RelationshipDate: itemString(item, "relationshipDate"),
		Status:           itemString(item, "status"),
	}
	if ca.Status == "" {
		ca.Status = RelationshipActive
	}
	return ca
}

func (ca ClientAgent) Item() storage.Item {
	return storage.Item{
		"id":               ca.ID,
		"clientId":         ca.ClientID,
		"agentId":          ca.AgentID,
		"relationshipDate": ca.RelationshipDate,
		"status":           ca.Status,
	}
}
