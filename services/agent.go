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

// Required payload fields for the write operations.
var (
	propertyRequiredFields = []string{
		"agentId", "propertyType", "street", "city", "state", "zipcode",
		"listPrice", "numBedrooms", "numBathrooms", "squareFootage",
		"description", "status", "imageUrl", "listingDate",
	}
	transactionRequiredFields = []string{
		"agentId", "clientId", "propertyId", "amount", "transactionType", "dateSent",
	}
)

// AgentService implements the agent-facing reads and writes.
type AgentService struct {
	store storage.Store
	log   *logrus.Logger
}

func NewAgentService(store storage.Store, log *logrus.Logger) *AgentService {
	return &AgentService{store: store, log: log}
}

// GetAgent returns the agent or nil when no such record exists.
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*models.Agent, error) {
	if strings.TrimSpace(agentID) == "" {
		return nil, validationf("agentId cannot be empty")
	}
	item, err := s.store.GetItem(ctx, storage.TableAgent, storage.Key{Name: "agentId", Value: agentID})
	if err != nil {
		return nil, fmt.Errorf("getting agent %s: %w", agentID, err)
	}
	return models.AgentFromItem(item), nil
}

// GetAppointments returns the agent's appointments in display form.
func (s *AgentService) GetAppointments(ctx context.Context, agentID string) ([]storage.Item, error) {
	items, err := s.store.QueryByIndex(ctx, storage.TableAppointment, storage.IndexAgentDate, "agentId", agentID)
	if err != nil {
		return nil, fmt.Errorf("getting appointments for agent %s: %w", agentID, err)
	}
	appointments := make([]storage.Item, 0, len(items))
	for _, item := range items {
		appointments = append(appointments, models.AppointmentFromItem(item).Projection())
	}
	return appointments, nil
}

// GetClients resolves the agent's clients through the ClientAgent join.
// Relationships whose client record is gone are dropped.
func (s *AgentService) GetClients(ctx context.Context, agentID string) ([]storage.Item, error) {
	relationships, err := s.store.QueryByIndex(ctx, storage.TableClientAgent, storage.IndexAgent, "agentId", agentID)
	if err != nil {
		return nil, fmt.Errorf("getting client relationships for agent %s: %w", agentID, err)
	}

	clients := []storage.Item{}
	for _, rel := range relationships {
		ca := models.ClientAgentFromItem(rel)
		item, err := s.store.GetItem(ctx, storage.TableClient, storage.Key{Name: "clientId", Value: ca.ClientID})
		if err != nil {
			return nil, fmt.Errorf("getting client %s: %w", ca.ClientID, err)
		}
		if item == nil {
			s.log.WithFields(logrus.Fields{"agentId": agentID, "clientId": ca.ClientID}).
				Warn("relationship references missing client, skipping")
			continue
		}
		clients = append(clients, models.ClientFromItem(item).Projection())
	}
	return clients, nil
}

// GetTransactions returns the agent's transactions in display form. Any
// failure, including a missing table or index, degrades to an empty list
// so this non-critical read never breaks the aggregate view.
func (s *AgentService) GetTransactions(ctx context.Context, agentID string) []storage.Item {
	items, err := s.store.QueryByIndex(ctx, storage.TableTransaction, storage.IndexAgent, "agentId", agentID)
	if err != nil {
		s.log.WithFields(logrus.Fields{"agentId": agentID, "error": err.Error()}).
			Warn("transactions lookup failed, returning empty list")
		return []storage.Item{}
	}
	transactions := make([]storage.Item, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, models.TransactionFromItem(item).Projection())
	}
	return transactions
}

// Placeholder street texts for GetOffice. Each case is distinguishable
// from a real office record and from the other cases.
const (
	officeNoneAssigned = "No office assigned"
	officeDataMissing  = "Office data not found"
	officeUnavailable  = "Office system unavailable"
)

// GetOffice resolves the agent's office. The result is always a
// single-element list; when the office cannot be shown the element is a
// placeholder whose STREET text names the cause.
func (s *AgentService) GetOffice(ctx context.Context, agentID string) ([]storage.Item, error) {
	agent, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil || agent.OfficeID == "" {
		s.log.WithField("agentId", agentID).Info("no office id on agent record")
		return []storage.Item{models.OfficePlaceholder(officeNoneAssigned)}, nil
	}

	item, err := s.store.GetItem(ctx, storage.TableOffice, storage.Key{Name: "officeId", Value: agent.OfficeID})
	if err != nil {
		s.log.WithFields(logrus.Fields{"agentId": agentID, "officeId": agent.OfficeID, "error": err.Error()}).
			Warn("office lookup failed")
		return []storage.Item{models.OfficePlaceholder(officeUnavailable)}, nil
	}
	if item == nil {
		return []storage.Item{models.OfficePlaceholder(officeDataMissing)}, nil
	}
	return []storage.Item{models.OfficeFromItem(item).Projection()}, nil
}

// GetProperties returns the whole property catalog. Acceptable only
// because the dataset is demo-scale.
func (s *AgentService) GetProperties(ctx context.Context) ([]models.Property, error) {
	return scanProperties(ctx, s.store)
}

// GetPropertiesByAgent returns the properties listed by one agent.
func (s *AgentService) GetPropertiesByAgent(ctx context.Context, agentID string) ([]models.Property, error) {
	items, err := s.store.QueryByIndex(ctx, storage.TableProperty, storage.IndexAgent, "agentId", agentID)
	if err != nil {
		return nil, fmt.Errorf("getting properties for agent %s: %w", agentID, err)
	}
	properties := make([]models.Property, 0, len(items))
	for _, item := range items {
		properties = append(properties, *models.PropertyFromItem(item))
	}
	return properties, nil
}

// AddProperty validates and persists a new property, generating an id
// when the caller did not supply one. Returns the property id.
func (s *AgentService) AddProperty(ctx context.Context, data map[string]any) (string, error) {
	if missing := missingFields(data, propertyRequiredFields); len(missing) > 0 {
		return "", &ValidationError{
			Message:  "Missing required fields",
			Fields:   missing,
			Received: fieldNames(data),
		}
	}

	property := models.Property{
		AgentID:      stringField(data, "agentId"),
		PropertyType: stringField(data, "propertyType"),
		Street:       stringField(data, "street"),
		City:         stringField(data, "city"),
		State:        stringField(data, "state"),
		Zipcode:      stringField(data, "zipcode"),
		Description:  stringField(data, "description"),
		ListingDate:  stringField(data, "listingDate"),
		Status:       models.PropertyStatus(stringField(data, "status")),
		ImageURL:     stringField(data, "imageUrl"),
	}

	var badFields []string
	var err error
	if property.ListPrice, err = coerceDecimal(data["listPrice"]); err != nil {
		badFields = append(badFields, "listPrice")
	}
	if property.NumBedrooms, err = coerceInt(data["numBedrooms"]); err != nil {
		badFields = append(badFields, "numBedrooms")
	}
	if property.NumBathrooms, err = coerceInt(data["numBathrooms"]); err != nil {
		badFields = append(badFields, "numBathrooms")
	}
	if property.SquareFootage, err = coerceInt(data["squareFootage"]); err != nil {
		badFields = append(badFields, "squareFootage")
	}
	if len(badFields) > 0 {
		return "", &ValidationError{Message: "Invalid numeric value", Fields: badFields}
	}

	if !property.ListPrice.IsPositive() {
		return "", validationf("List price must be greater than 0")
	}
	if property.NumBedrooms < 0 {
		return "", validationf("Number of bedrooms cannot be negative")
	}
	if property.NumBathrooms < 0 {
		return "", validationf("Number of bathrooms cannot be negative")
	}
	if property.SquareFootage <= 0 {
		return "", validationf("Square footage must be greater than 0")
	}
	if !property.Status.Valid() {
		return "", validationf("Invalid status. Must be one of: %s",
			strings.Join(models.PropertyStatuses(), ", "))
	}

	property.PropertyID = stringField(data, "propertyId")
	if property.PropertyID == "" {
		property.PropertyID = uuid.NewString()
	}

	if err := s.store.PutItem(ctx, storage.TableProperty, property.Item()); err != nil {
		return "", fmt.Errorf("adding property: %w", err)
	}
	s.log.WithFields(logrus.Fields{"propertyId": property.PropertyID, "agentId": property.AgentID}).
		Info("property added")
	return property.PropertyID, nil
}

// AddTransaction validates and persists a new transaction. The id is
// always freshly generated; a caller-supplied one is ignored.
func (s *AgentService) AddTransaction(ctx context.Context, data map[string]any) (string, error) {
	if missing := missingFields(data, transactionRequiredFields); len(missing) > 0 {
		return "", &ValidationError{
			Message:  "Missing required fields",
			Fields:   missing,
			Received: fieldNames(data),
		}
	}

	amount, err := coerceDecimal(data["amount"])
	if err != nil {
		return "", &ValidationError{Message: "Invalid numeric value", Fields: []string{"amount"}}
	}
	if !amount.IsPositive() {
		return "", validationf("Transaction amount must be greater than 0")
	}

	txType := models.TransactionType(stringField(data, "transactionType"))
	if !txType.Valid() {
		return "", validationf("Invalid transaction type. Must be one of: %s",
			strings.Join(models.TransactionTypes(), ", "))
	}

	transaction := models.Transaction{
		TransactionID:   uuid.NewString(),
		PropertyID:      stringField(data, "propertyId"),
		AgentID:         stringField(data, "agentId"),
		ClientID:        stringField(data, "clientId"),
		DateSent:        stringField(data, "dateSent"),
		Amount:          amount,
		TransactionType: txType,
		Timestamp:       stringField(data, "timestamp"),
	}
	if transaction.Timestamp == "" {
		transaction.Timestamp = time.Now().Format(time.RFC3339)
	}

	if err := s.store.PutItem(ctx, storage.TableTransaction, transaction.Item()); err != nil {
		return "", fmt.Errorf("adding transaction: %w", err)
	}
	s.log.WithFields(logrus.Fields{"transactionId": transaction.TransactionID, "agentId": transaction.AgentID}).
		Info("transaction added")
	return transaction.TransactionID, nil
}

func scanProperties(ctx context.Context, store storage.Store) ([]models.Property, error) {
	items, err := store.ScanAll(ctx, storage.TableProperty)
	if err != nil {
		return nil, fmt.Errorf("scanning properties: %w", err)
	}
	properties := make([]models.Property, 0, len(items))
	for _, item := range items {
		properties = append(properties, *models.PropertyFromItem(item))
	}
	return properties, nil
}
