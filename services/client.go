package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/NoSuchObjectException/4610-final-project/models"
	"github.com/NoSuchObjectException/4610-final-project/storage"
)

// ClientService implements the client-facing reads and writes.
type ClientService struct {
	store storage.Store
	log   *logrus.Logger
}

func NewClientService(store storage.Store, log *logrus.Logger) *ClientService {
	return &ClientService{store: store, log: log}
}

// GetClient returns the client or nil when no such record exists.
func (s *ClientService) GetClient(ctx context.Context, clientID string) (*models.Client, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, validationf("clientId cannot be empty")
	}
	item, err := s.store.GetItem(ctx, storage.TableClient, storage.Key{Name: "clientId", Value: clientID})
	if err != nil {
		return nil, fmt.Errorf("getting client %s: %w", clientID, err)
	}
	return models.ClientFromItem(item), nil
}

// GetProperties returns the whole catalog. Acceptable only because the
// dataset is demo-scale.
func (s *ClientService) GetProperties(ctx context.Context) ([]models.Property, error) {
	return scanProperties(ctx, s.store)
}

// GetPropertyAgent returns the listing agent for a property the client is
// viewing, or nil when no such agent exists.
func (s *ClientService) GetPropertyAgent(ctx context.Context, agentID string) (*models.Agent, error) {
	item, err := s.store.GetItem(ctx, storage.TableAgent, storage.Key{Name: "agentId", Value: agentID})
	if err != nil {
		return nil, fmt.Errorf("getting agent %s: %w", agentID, err)
	}
	return models.AgentFromItem(item), nil
}

// AddAppointment persists a new appointment and then upserts the
// client/agent relationship. The relationship write is keyed by the
// deterministic composite id, so retries and repeat bookings do not
// create duplicate rows. The two writes are best-effort, not
// transactional.
func (s *ClientService) AddAppointment(ctx context.Context, data map[string]any) (string, error) {
	if missing := missingFields(data, []string{"clientId", "agentId"}); len(missing) > 0 {
		return "", &ValidationError{
			Message:  "Missing required fields",
			Fields:   missing,
			Received: fieldNames(data),
		}
	}

	appointment := models.Appointment{
		AppointmentID:   uuid.NewString(),
		ClientID:        stringField(data, "clientId"),
		AgentID:         stringField(data, "agentId"),
		PropertyID:      stringField(data, "propertyId"),
		AppointmentDate: stringField(data, "appointmentDate"),
		AppointmentTime: stringField(data, "appointmentTime"),
		Purpose:         stringField(data, "purpose"),
	}
	if err := s.store.PutItem(ctx, storage.TableAppointment, appointment.Item()); err != nil {
		return "", fmt.Errorf("adding appointment: %w", err)
	}

	relationship := models.NewClientAgent(appointment.ClientID, appointment.AgentID, time.Now())
	if err := s.store.PutItem(ctx, storage.TableClientAgent, relationship.Item()); err != nil {
		return "", fmt.Errorf("upserting client-agent relationship %s: %w", relationship.ID, err)
	}

	s.log.WithFields(logrus.Fields{
		"appointmentId": appointment.AppointmentID,
		"clientId":      appointment.ClientID,
		"agentId":       appointment.AgentID,
	}).Info("appointment added")
	return appointment.AppointmentID, nil
}

// GetAppointments returns the client's appointments. A client id that
// matches no record yields an empty list rather than an error.
func (s *ClientService) GetAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		s.log.WithField("clientId", clientID).Warn("appointments requested for unknown client")
		return []models.Appointment{}, nil
	}

	items, err := s.store.QueryByIndex(ctx, storage.TableAppointment, storage.IndexClient, "clientId", clientID)
	if err != nil {
		return nil, fmt.Errorf("getting appointments for client %s: %w", clientID, err)
	}
	appointments := make([]models.Appointment, 0, len(items))
	for _, item := range items {
		appointments = append(appointments, *models.AppointmentFromItem(item))
	}
	return appointments, nil
}

// GetAgents resolves the client's agents through the ClientAgent join.
// Relationships whose agent record is gone are dropped.
func (s *ClientService) GetAgents(ctx context.Context, clientID string) ([]models.Agent, error) {
	relationships, err := s.store.QueryByIndex(ctx, storage.TableClientAgent, storage.IndexClient, "clientId", clientID)
	if err != nil {
		return nil, fmt.Errorf("getting agent relationships for client %s: %w", clientID, err)
	}

	agents := []models.Agent{}
	for _, rel := range relationships {
		ca := models.ClientAgentFromItem(rel)
		item, err := s.store.GetItem(ctx, storage.TableAgent, storage.Key{Name: "agentId", Value: ca.AgentID})
		if err != nil {
			return nil, fmt.Errorf("getting agent %s: %w", ca.AgentID, err)
		}
		if item == nil {
			s.log.WithFields(logrus.Fields{"clientId": clientID, "agentId": ca.AgentID}).
				Warn("relationship references missing agent, skipping")
			continue
		}
		agents = append(agents, *models.AgentFromItem(item))
	}
	return agents, nil
}

// GetTransactions returns the client's transactions.
func (s *ClientService) GetTransactions(ctx context.Context, clientID string) ([]models.Transaction, error) {
	items, err := s.store.QueryByIndex(ctx, storage.TableTransaction, storage.IndexClient, "clientId", clientID)
	if err != nil {
		return nil, fmt.Errorf("getting transactions for client %s: %w", clientID, err)
	}
	transactions := make([]models.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, *models.TransactionFromItem(item))
	}
	return transactions, nil
}

// PayTransaction marks a transaction settled by stamping dateSent with
// the current time. The only mutation of an existing record in the
// system.
func (s *ClientService) PayTransaction(ctx context.Context, transactionID string) error {
	key := storage.Key{Name: "transactionId", Value: transactionID}
	item, err := s.store.GetItem(ctx, storage.TableTransaction, key)
	if err != nil {
		return fmt.Errorf("getting transaction %s: %w", transactionID, err)
	}
	if item == nil {
		return &NotFoundError{Entity: "Transaction"}
	}

	updates := storage.Item{"dateSent": time.Now().Format(time.RFC3339)}
	if err := s.store.UpdateItem(ctx, storage.TableTransaction, key, updates); err != nil {
		return fmt.Errorf("paying transaction %s: %w", transactionID, err)
	}
	s.log.WithField("transactionId", transactionID).Info("transaction paid")
	return nil
}
