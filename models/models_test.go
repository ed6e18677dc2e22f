package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoSuchObjectException/4610-final-project/storage"
)

func TestAgentFromItem_NilInNilOut(t *testing.T) {
	assert.Nil(t, AgentFromItem(nil))
	assert.Nil(t, ClientFromItem(nil))
	assert.Nil(t, PropertyFromItem(nil))
	assert.Nil(t, TransactionFromItem(nil))
	assert.Nil(t, AppointmentFromItem(nil))
	assert.Nil(t, OfficeFromItem(nil))
	assert.Nil(t, ClientAgentFromItem(nil))
}

func TestAgentFromItem_TolerantOfMissingFields(t *testing.T) {
	agent := AgentFromItem(storage.Item{"agentId": "A1"})
	require.NotNil(t, agent)
	assert.Equal(t, "A1", agent.AgentID)
	assert.Empty(t, agent.FirstName)
	assert.Empty(t, agent.OfficeID)
}

func TestPropertyItem_RoundTrip(t *testing.T) {
	p := Property{
		PropertyID:    "P1",
		AgentID:       "A1",
		PropertyType:  "HOUSE",
		Street:        "1 Main St",
		City:          "Atlanta",
		State:         "GA",
		Zipcode:       "30301",
		ListPrice:     decimal.RequireFromString("250000.50"),
		NumBedrooms:   3,
		NumBathrooms:  2,
		SquareFootage: 1500,
		Description:   "Starter home",
		ListingDate:   "2024-05-01",
		Status:        StatusAvailable,
		ImageURL:      "https://example.com/p1.jpg",
	}

	got := PropertyFromItem(p.Item())
	require.NotNil(t, got)
	assert.Equal(t, p.PropertyID, got.PropertyID)
	assert.Equal(t, p.AgentID, got.AgentID)
	assert.True(t, p.ListPrice.Equal(got.ListPrice), "list price should survive the round trip")
	assert.Equal(t, p.NumBedrooms, got.NumBedrooms)
	assert.Equal(t, p.NumBathrooms, got.NumBathrooms)
	assert.Equal(t, p.SquareFootage, got.SquareFootage)
	assert.Equal(t, p.Status, got.Status)
}

func TestPropertyItem_StoresMoneyAsString(t *testing.T) {
	p := Property{PropertyID: "P1", ListPrice: decimal.RequireFromString("0.01")}
	item := p.Item()
	assert.Equal(t, "0.01", item["listPrice"])
}

func TestProperty_ListPriceSerializesAsString(t *testing.T) {
	p := Property{PropertyID: "P1", ListPrice: decimal.RequireFromString("250000")}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"listPrice":"250000"`)
}

func TestEnums(t *testing.T) {
	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusSold.Valid())
	assert.False(t, PropertyStatus("LISTED").Valid())

	assert.True(t, TypeSale.Valid())
	assert.True(t, TypePurchase.Valid())
	assert.True(t, TypeRental.Valid())
	assert.False(t, TransactionType("LEASE").Valid())
}

func TestAppointmentProjection(t *testing.T) {
	a := Appointment{
		AppointmentID:   "AP1",
		ClientID:        "C1",
		AgentID:         "A1",
		PropertyID:      "P1",
		AppointmentDate: "2024-06-01",
		AppointmentTime: "10:30",
		Purpose:         "Showing",
	}
	assert.Equal(t, storage.Item{
		"APPT_TIME":   "10:30",
		"APPT_DATE":   "2024-06-01",
		"PURPOSE":     "Showing",
		"CLIENT_ID":   "C1",
		"PROPERTY_ID": "P1",
	}, a.Projection())
}

func TestClientProjection(t *testing.T) {
	c := Client{
		ClientID:  "C1",
		FirstName: "Pat",
		LastName:  "Lee",
		Email:     "pat@example.com",
		Phone:     "555-0100",
		Street:    "2 Oak Ave",
		City:      "Atlanta",
		State:     "GA",
		Zipcode:   "30302",
	}
	got := c.Projection()
	assert.Equal(t, "Pat", got["CLIENT_FIRST_NAME"])
	assert.Equal(t, "Lee", got["CLIENT_LAST_NAME"])
	assert.Equal(t, "30302", got["CLIENT_ZIPCODE"])
	// State is not part of the agent-side client contract.
	assert.NotContains(t, got, "CLIENT_STATE")
}

func TestTransactionProjection(t *testing.T) {
	tx := Transaction{
		TransactionID:   "T1",
		ClientID:        "C1",
		DateSent:        "2024-06-01",
		Amount:          decimal.RequireFromString("1200.50"),
		TransactionType: TypeRental,
	}
	got := tx.Projection()
	assert.Equal(t, "T1", got["TRANSACTION_ID"])
	assert.Equal(t, "C1", got["CLIENT_ID"])
	assert.Equal(t, "2024-06-01", got["DATE_SENT"])
	assert.Equal(t, "RENTAL", got["TYPE"])
}

func TestTransactionItem_OmitsEmptyTimestamp(t *testing.T) {
	tx := Transaction{TransactionID: "T1", Amount: decimal.NewFromInt(5), TransactionType: TypeSale}
	assert.NotContains(t, tx.Item(), "timestamp")

	tx.Timestamp = "2024-06-01T00:00:00Z"
	assert.Equal(t, "2024-06-01T00:00:00Z", tx.Item()["timestamp"])
}

func TestRelationshipID(t *testing.T) {
	assert.Equal(t, "C1#A1", RelationshipID("C1", "A1"))
}

func TestClientAgentFromItem_DefaultsStatusActive(t *testing.T) {
	ca := ClientAgentFromItem(storage.Item{"id": "C1#A1", "clientId": "C1", "agentId": "A1"})
	require.NotNil(t, ca)
	assert.Equal(t, RelationshipActive, ca.Status)
}

func TestOfficePlaceholder(t *testing.T) {
	item := OfficePlaceholder("No office assigned")
	assert.Equal(t, "No office assigned", item["STREET"])
	assert.Equal(t, "", item["CITY"])
	assert.Equal(t, "", item["ZIPCODE"])
	assert.Equal(t, "", item["PHONE"])
}
