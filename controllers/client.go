package controllers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/NoSuchObjectException/4610-final-project/services"
)

// ClientHandler serves the action-field convention: POST /client with an
// "action" string in the payload.
func ClientHandler(svc *services.ClientService, log *logrus.Logger) http.HandlerFunc {
	d := &dispatcher{
		kind: "action",
		log:  log,
		ops: map[string]operation{
			"get_properties": {
				handle: func(ctx context.Context, payload map[string]any) response {
					properties, err := svc.GetProperties(ctx)
					if err != nil {
						return failure(log, "get_properties", err, nil)
					}
					return ok(properties)
				},
			},
			"get_property_agent": {
				required: []string{"clientId", "agentId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					agentID, _ := payload["agentId"].(string)
					agent, err := svc.GetPropertyAgent(ctx, agentID)
					if err != nil {
						return failure(log, "get_property_agent", err, clientDiag(payload))
					}
					if agent == nil {
						return notFound("Agent not found")
					}
					return ok(agent)
				},
			},
			"get_appointments": {
				required: []string{"clientId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					clientID, _ := payload["clientId"].(string)
					appointments, err := svc.GetAppointments(ctx, clientID)
					if err != nil {
						return failure(log, "get_appointments", err, clientDiag(payload))
					}
					return ok(appointments)
				},
			},
			"get_agents": {
				required: []string{"clientId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					clientID, _ := payload["clientId"].(string)
					agents, err := svc.GetAgents(ctx, clientID)
					if err != nil {
						return failure(log, "get_agents", err, clientDiag(payload))
					}
					return ok(agents)
				},
			},
			"get_transactions": {
				required: []string{"clientId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					clientID, _ := payload["clientId"].(string)
					transactions, err := svc.GetTransactions(ctx, clientID)
					if err != nil {
						return failure(log, "get_transactions", err, clientDiag(payload))
					}
					return ok(transactions)
				},
			},
			"get_client": {
				required: []string{"clientId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					clientID, _ := payload["clientId"].(string)
					client, err := svc.GetClient(ctx, clientID)
					if err != nil {
						return failure(log, "get_client", err, clientDiag(payload))
					}
					if client == nil {
						return notFound("Client not found")
					}
					return ok(client)
				},
			},
			"add_appointment": {
				required: []string{"clientId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					data := nestedObject(payload, "appointment")
					if len(data) == 0 {
						return clientError("Appointment data is required")
					}
					appointmentID, err := svc.AddAppointment(ctx, data)
					if err != nil {
						return failure(log, "add_appointment", err, clientDiag(payload))
					}
					return ok(map[string]any{"appointmentId": appointmentID})
				},
			},
			"pay_transaction": {
				required: []string{"clientId", "transactionId"},
				handle: func(ctx context.Context, payload map[string]any) response {
					transactionID, _ := payload["transactionId"].(string)
					if err := svc.PayTransaction(ctx, transactionID); err != nil {
						return failure(log, "pay_transaction", err, clientDiag(payload))
					}
					return ok(map[string]any{"message": "Transaction paid successfully"})
				},
			},
		},
	}
	return d.actionHandler()
}

// clientDiag pulls the client id into the 500 diagnostics when present.
func clientDiag(payload map[string]any) map[string]any {
	clientID, _ := payload["clientId"].(string)
	if clientID == "" {
		return nil
	}
	return map[string]any{"clientId": clientID}
}
