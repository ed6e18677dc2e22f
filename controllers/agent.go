package controllers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/NoSuchObjectException/4610-final-project/services"
)

// AgentHandler serves the path-based convention: POST /agent/<operation>.
func AgentHandler(svc *services.AgentService, log *logrus.Logger) http.HandlerFunc {
	d := &dispatcher{
		kind: "path",
		log:  log,
		ops: map[string]operation{
			"getProperties": {
				handle: func(ctx context.Context, payload map[string]any) response {
					properties, err := svc.GetProperties(ctx)
					if err != nil {
						return failure(log, "getProperties", err, nil)
					}
					return ok(properties)
				},
			},
			"getAgent": {
				required: []string{"agentId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					agentID, _ := payload["agentId"].(string)
					agent, err := svc.GetAgent(ctx, agentID)
					if err != nil {
						return failure(log, "getAgent", err, map[string]any{"agentId": agentID})
					}
					if agent == nil {
						return notFound("Agent not found")
					}
					return ok(agent)
				},
			},
			"getAppointments": {
				required: []string{"agentId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					agentID, _ := payload["agentId"].(string)
					appointments, err := svc.GetAppointments(ctx, agentID)
					if err != nil {
						return failure(log, "getAppointments", err, map[string]any{"agentId": agentID})
					}
					return ok(appointments)
				},
			},
			"getClients": {
				required: []string{"agentId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					agentID, _ := payload["agentId"].(string)
					clients, err := svc.GetClients(ctx, agentID)
					if err != nil {
						return failure(log, "getClients", err, map[string]any{"agentId": agentID})
					}
					return ok(clients)
				},
			},
			"getTransactions": {
				required: []string{"agentId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					agentID, _ := payload["agentId"].(string)
					return ok(svc.GetTransactions(ctx, agentID))
				},
			},
			"getOffice": {
				required: []string{"agentId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					agentID, _ := payload["agentId"].(string)
					office, err := svc.GetOffice(ctx, agentID)
					if err != nil {
						return failure(log, "getOffice", err, map[string]any{"agentId": agentID})
					}
					return ok(office)
				},
			},
			"getAgentProperties": {
				required: []string{"agentId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					agentID, _ := payload["agentId"].(string)
					properties, err := svc.GetPropertiesByAgent(ctx, agentID)
					if err != nil {
						return failure(log, "getAgentProperties", err, map[string]any{"agentId": agentID})
					}
					return ok(properties)
				},
			},
			"addProperty": {
				handle: func(ctx context.Context, payload map[string]any) response {
					data := nestedObject(payload, "property")
					if len(data) == 0 {
						return clientError("Property data is required")
					}
					propertyID, err := svc.AddProperty(ctx, data)
					if err != nil {
						return failure(log, "addProperty", err, nil)
					}
					return ok(map[string]any{"propertyId": propertyID})
				},
			},
			"addTransaction": {
				handle: func(ctx context.Context, payload map[string]any) response {
					transactionID, err := svc.AddTransaction(ctx, payload)
					if err != nil {
						return failure(log, "addTransaction", err, nil)
					}
					return ok(map[string]any{"transactionId": transactionID})
				},
			},
		},
	}
	return d.pathHandler()
}
