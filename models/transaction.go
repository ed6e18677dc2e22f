package models

import (
	"github.com/shopspring/decimal"

	"github.com/NoSuchObjectException/4610-final-project/storage"
)

// TransactionType is a closed enum; unknown values are rejected at write
// time.
type TransactionType string

const (
	TypeSale     TransactionType = "SALE"
	TypePurchase TransactionType = "PURCHASE"
	TypeRental   TransactionType = "RENTAL"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeSale, TypePurchase, TypeRental:
		return true
	}
	return false
}

// TransactionTypes lists the accepted type values, for error messages.
func TransactionTypes() []string {
	return []string{string(TypeSale), string(TypePurchase), string(TypeRental)}
}

type Transaction struct {
	TransactionID   string          `json:"transactionId"`
	PropertyID      string          `json:"propertyId"`
	AgentID         string          `json:"agentId"`
	ClientID        string          `json:"clientId"`
	DateSent        string          `json:"dateSent"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Timestamp       string          `json:"timestamp,omitempty"`
}

func TransactionFromItem(item storage.Item) *Transaction {
	if item == nil {
		return nil
	}
	return &Transaction{
		TransactionID:   itemString(item, "transactionId"),
		PropertyID:      itemString(item, "propertyId"),
		AgentID:         itemString(item, "agentId"),
		ClientID:        itemString(item, "clientId"),
		DateSent:        itemString(item, "dateSent"),
		Amount:          itemDecimal(item, "amount"),
		TransactionType: TransactionType(itemString(item, "transactionType")),
		Timestamp:       itemString(item, "timestamp"),
	}
}

func (t Transaction) Item() storage.Item {
	item := storage.Item{
		"transactionId":   t.TransactionID,
		"propertyId":      t.PropertyID,
		"agentId":         t.AgentID,
		"clientId":        t.ClientID,
		"dateSent":        t.DateSent,
		"amount":          t.Amount.String(),
		"transactionType": string(t.TransactionType),
	}
	if t.Timestamp != "" {
		item["timestamp"] = t.Timestamp
	}
	return item
}

// Projection is the agent-side display form of a transaction record. The
// key set is a fixed wire contract.
func (t Transaction) Projection() storage.Item {
	return storage.Item{
		"TRANSACTION_ID": t.TransactionID,
		"CLIENT_ID":      t.ClientID,
		"DATE_SENT":      t.DateSent,
		"AMOUNT":         t.Amount,
		"TYPE":           string(t.TransactionType),
	}
}
