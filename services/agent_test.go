package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoSuchObjectException/4610-final-project/models"
	"github.com/NoSuchObjectException/4610-final-project/storage"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testNow() time.Time {
	return time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
}

func validPropertyPayload() map[string]any {
	return map[string]any{
		"agentId":       "A1",
		"propertyType":  "HOUSE",
		"street":        "1 Main St",
		"city":          "Atlanta",
		"state":         "GA",
		"zipcode":       "30301",
		"listPrice":     "250000",
		"numBedrooms":   3,
		"numBathrooms":  2,
		"squareFootage": 1500,
		"description":   "Starter home",
		"status":        "AVAILABLE",
		"imageUrl":      "https://example.com/p.jpg",
		"listingDate":   "2024-05-01",
	}
}

func TestGetAgent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	require.NoError(t, store.PutItem(ctx, storage.TableAgent,
		models.Agent{AgentID: "A1", FirstName: "Dana", OfficeID: "O1"}.Item()))

	agent, err := svc.GetAgent(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, "Dana", agent.FirstName)

	// Absent agent is nil, not an error.
	agent, err = svc.GetAgent(ctx, "A2")
	require.NoError(t, err)
	assert.Nil(t, agent)

	// Blank id fails validation before any storage call.
	_, err = svc.GetAgent(ctx, "  ")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestAddProperty_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	id, err := svc.AddProperty(ctx, validPropertyPayload())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	item, err := store.GetItem(ctx, storage.TableProperty, storage.Key{Name: "propertyId", Value: id})
	require.NoError(t, err)
	require.NotNil(t, item)

	p := models.PropertyFromItem(item)
	assert.Equal(t, "A1", p.AgentID)
	assert.Equal(t, "HOUSE", p.PropertyType)
	assert.Equal(t, "1 Main St", p.Street)
	assert.Equal(t, "Atlanta", p.City)
	assert.Equal(t, "GA", p.State)
	assert.Equal(t, "30301", p.Zipcode)
	assert.True(t, p.ListPrice.Equal(decimal.RequireFromString("250000")))
	assert.Equal(t, 3, p.NumBedrooms)
	assert.Equal(t, 2, p.NumBathrooms)
	assert.Equal(t, 1500, p.SquareFootage)
	assert.Equal(t, "Starter home", p.Description)
	assert.Equal(t, models.StatusAvailable, p.Status)
	assert.Equal(t, "https://example.com/p.jpg", p.ImageURL)
	assert.Equal(t, "2024-05-01", p.ListingDate)
}

func TestAddProperty_CallerSuppliedIDIsKept(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	payload := validPropertyPayload()
	payload["propertyId"] = "P-custom"

	id, err := svc.AddProperty(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "P-custom", id)
}

func TestAddProperty_ReportsAllMissingFields(t *testing.T) {
	ctx := context.Background()
	svc := NewAgentService(storage.NewMemory(), testLogger())

	payload := validPropertyPayload()
	delete(payload, "city")
	delete(payload, "listPrice")
	delete(payload, "imageUrl")

	_, err := svc.AddProperty(ctx, payload)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Missing required fields", vErr.Message)
	assert.ElementsMatch(t, []string{"city", "listPrice", "imageUrl"}, vErr.Fields)
	assert.Contains(t, vErr.Received, "agentId")
	assert.NotContains(t, vErr.Received, "city")
}

func TestAddProperty_CoercesStringNumerics(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	payload := validPropertyPayload()
	payload["listPrice"] = "250000"
	payload["numBedrooms"] = "3"
	payload["numBathrooms"] = "2"
	payload["squareFootage"] = "1500"

	id, err := svc.AddProperty(ctx, payload)
	require.NoError(t, err)

	item, err := store.GetItem(ctx, storage.TableProperty, storage.Key{Name: "propertyId", Value: id})
	require.NoError(t, err)
	assert.Equal(t, 3, item["numBedrooms"])
	assert.Equal(t, 2, item["numBathrooms"])
	assert.Equal(t, 1500, item["squareFootage"])
	assert.Equal(t, "250000", item["listPrice"])
}

func TestAddProperty_NumericInvariants(t *testing.T) {
	ctx := context.Background()
	svc := NewAgentService(storage.NewMemory(), testLogger())

	cases := []struct {
		name  string
		field string
		value any
	}{
		{"zero list price", "listPrice", "0"},
		{"negative list price", "listPrice", "-1"},
		{"negative bedrooms", "numBedrooms", -1},
		{"negative bathrooms", "numBathrooms", -3},
		{"zero square footage", "squareFootage", 0},
		{"non-numeric price", "listPrice", "lots"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPropertyPayload()
			payload[tc.field] = tc.value
			_, err := svc.AddProperty(ctx, payload)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestAddProperty_BoundaryValuesSucceed(t *testing.T) {
	ctx := context.Background()
	svc := NewAgentService(storage.NewMemory(), testLogger())

	payload := validPropertyPayload()
	payload["listPrice"] = "0.01"
	payload["squareFootage"] = 1
	payload["numBedrooms"] = 0
	payload["numBathrooms"] = 0

	_, err := svc.AddProperty(ctx, payload)
	assert.NoError(t, err)
}

func TestAddProperty_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewAgentService(storage.NewMemory(), testLogger())

	payload := validPropertyPayload()
	payload["status"] = "LISTED"

	_, err := svc.AddProperty(ctx, payload)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "Invalid status")
}

func validTransactionPayload() map[string]any {
	return map[string]any{
		"agentId":         "A1",
		"clientId":        "C1",
		"propertyId":      "P1",
		"amount":          "1500.25",
		"transactionType": "SALE",
		"dateSent":        "2024-06-01",
	}
}

func TestAddTransaction_AlwaysGeneratesFreshID(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	payload := validTransactionPayload()
	payload["transactionId"] = "caller-chosen"

	id, err := svc.AddTransaction(ctx, payload)
	require.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", id)

	item, err := store.GetItem(ctx, storage.TableTransaction, storage.Key{Name: "transactionId", Value: id})
	require.NoError(t, err)
	require.NotNil(t, item)
	tx := models.TransactionFromItem(item)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1500.25")))
	assert.Equal(t, models.TypeSale, tx.TransactionType)
	assert.NotEmpty(t, tx.Timestamp, "creation timestamp should be stamped when absent")
}

func TestAddTransaction_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewAgentService(storage.NewMemory(), testLogger())

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.AddTransaction(ctx, map[string]any{"agentId": "A1"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t,
			[]string{"clientId", "propertyId", "amount", "transactionType", "dateSent"},
			vErr.Fields)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		payload := validTransactionPayload()
		payload["amount"] = "0"
		_, err := svc.AddTransaction(ctx, payload)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown type", func(t *testing.T) {
		payload := validTransactionPayload()
		payload["transactionType"] = "LEASE"
		_, err := svc.AddTransaction(ctx, payload)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "Invalid transaction type")
	})
}

func TestGetAppointments_Projected(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	require.NoError(t, store.PutItem(ctx, storage.TableAppointment, models.Appointment{
		AppointmentID:   "AP1",
		ClientID:        "C1",
		AgentID:         "A1",
		PropertyID:      "P1",
		AppointmentDate: "2024-06-01",
		AppointmentTime: "10:30",
		Purpose:         "Showing",
	}.Item()))

	appointments, err := svc.GetAppointments(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "10:30", appointments[0]["APPT_TIME"])
	assert.Equal(t, "C1", appointments[0]["CLIENT_ID"])
}

func TestGetClients_DropsMissingClients(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	require.NoError(t, store.PutItem(ctx, storage.TableClient,
		models.Client{ClientID: "C1", FirstName: "Pat"}.Item()))
	require.NoError(t, store.PutItem(ctx, storage.TableClientAgent,
		models.NewClientAgent("C1", "A1", testNow()).Item()))
	// Relationship to a client record that no longer exists.
	require.NoError(t, store.PutItem(ctx, storage.TableClientAgent,
		models.NewClientAgent("C-gone", "A1", testNow()).Item()))

	clients, err := svc.GetClients(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Pat", clients[0]["CLIENT_FIRST_NAME"])
}

func TestGetTransactions_DegradesToEmptyOnFailure(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	store.Fail = func(op, table string) error {
		if op == "query" && table == storage.TableTransaction {
			return errors.New("index not found")
		}
		return nil
	}
	svc := NewAgentService(store, testLogger())

	transactions := svc.GetTransactions(ctx, "A1")
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestGetTransactions_Projected(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	require.NoError(t, store.PutItem(ctx, storage.TableTransaction, models.Transaction{
		TransactionID:   "T1",
		AgentID:         "A1",
		ClientID:        "C1",
		DateSent:        "2024-06-01",
		Amount:          decimal.RequireFromString("900"),
		TransactionType: models.TypeRental,
	}.Item()))

	transactions := svc.GetTransactions(ctx, "A1")
	require.Len(t, transactions, 1)
	assert.Equal(t, "T1", transactions[0]["TRANSACTION_ID"])
	assert.Equal(t, "RENTAL", transactions[0]["TYPE"])
}

func TestGetOffice_Placeholders(t *testing.T) {
	ctx := context.Background()

	street := func(t *testing.T, result []storage.Item) string {
		t.Helper()
		require.Len(t, result, 1)
		s, _ := result[0]["STREET"].(string)
		return s
	}

	t.Run("agent without office id", func(t *testing.T) {
		store := storage.NewMemory()
		svc := NewAgentService(store, testLogger())
		require.NoError(t, store.PutItem(ctx, storage.TableAgent,
			models.Agent{AgentID: "A1"}.Item()))

		result, err := svc.GetOffice(ctx, "A1")
		require.NoError(t, err)
		assert.Equal(t, "No office assigned", street(t, result))
	})

	t.Run("office record missing", func(t *testing.T) {
		store := storage.NewMemory()
		svc := NewAgentService(store, testLogger())
		require.NoError(t, store.PutItem(ctx, storage.TableAgent,
			models.Agent{AgentID: "A1", OfficeID: "O1"}.Item()))

		result, err := svc.GetOffice(ctx, "A1")
		require.NoError(t, err)
		assert.Equal(t, "Office data not found", street(t, result))
	})

	t.Run("office lookup fails", func(t *testing.T) {
		store := storage.NewMemory()
		require.NoError(t, store.PutItem(ctx, storage.TableAgent,
			models.Agent{AgentID: "A1", OfficeID: "O1"}.Item()))
		store.Fail = func(op, table string) error {
			if op == "get" && table == storage.TableOffice {
				return errors.New("office table unavailable")
			}
			return nil
		}
		svc := NewAgentService(store, testLogger())

		result, err := svc.GetOffice(ctx, "A1")
		require.NoError(t, err)
		assert.Equal(t, "Office system unavailable", street(t, result))
	})

	t.Run("office present", func(t *testing.T) {
		store := storage.NewMemory()
		svc := NewAgentService(store, testLogger())
		require.NoError(t, store.PutItem(ctx, storage.TableAgent,
			models.Agent{AgentID: "A1", OfficeID: "O1"}.Item()))
		require.NoError(t, store.PutItem(ctx, storage.TableOffice,
			models.Office{OfficeID: "O1", Street: "5 Peachtree St", City: "Atlanta", Zipcode: "30303", Phone: "555-0000"}.Item()))

		result, err := svc.GetOffice(ctx, "A1")
		require.NoError(t, err)
		assert.Equal(t, "5 Peachtree St", street(t, result))
		assert.Equal(t, "Atlanta", result[0]["CITY"])
	})
}

func TestGetPropertiesByAgent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewAgentService(store, testLogger())

	payload := validPropertyPayload()
	_, err := svc.AddProperty(ctx, payload)
	require.NoError(t, err)

	other := validPropertyPayload()
	other["agentId"] = "A2"
	_, err = svc.AddProperty(ctx, other)
	require.NoError(t, err)

	properties, err := svc.GetPropertiesByAgent(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "A1", properties[0].AgentID)

	all, err := svc.GetProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
