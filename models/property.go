package models

import (
	"github.com/shopspring/decimal"

	"github.com/NoSuchObjectException/4610-final-project/storage"
)

// PropertyStatus is a closed enum; unknown values are rejected at write
// time.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "AVAILABLE"
	StatusPending   PropertyStatus = "PENDING"
	StatusSold      PropertyStatus = "SOLD"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}
	return false
}

// PropertyStatuses lists the accepted status values, for error messages.
func PropertyStatuses() []string {
	return []string{string(StatusAvailable), string(StatusPending), string(StatusSold)}
}

type Property struct {
	PropertyID    string          `json:"propertyId"`
	AgentID       string          `json:"agentId"`
	PropertyType  string          `json:"propertyType"`
	Street        string          `json:"street"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Zipcode       string          `json:"zipcode"`
	ListPrice     decimal.Decimal `json:"listPrice"`
	NumBedrooms   int             `json:"numBedrooms"`
	NumBathrooms  int             `json:"numBathrooms"`
	SquareFootage int             `json:"squareFootage"`
	Description   string          `json:"description"`
	ListingDate   string          `json:"listingDate"`
	Status        PropertyStatus  `json:"status"`
	ImageURL      string          `json:"imageUrl"`
}

func PropertyFromItem(item storage.Item) *Property {
	if item == nil {
		return nil
	}
	return &Property{
		PropertyID:    itemString(item, "propertyId"),
		AgentID:       itemString(item, "agentId"),
		PropertyType:  itemString(item, "propertyType"),
		Street:        itemString(item, "street"),
		City:          itemString(item, "city"),
		State:         itemString(item, "state"),
		Zipcode:       itemString(item, "zipcode"),
		ListPrice:     itemDecimal(item, "listPrice"),
		NumBedrooms:   itemInt(item, "numBedrooms"),
		NumBathrooms:  itemInt(item, "numBathrooms"),
		SquareFootage: itemInt(item, "squareFootage"),
		Description:   itemString(item, "description"),
		ListingDate:   itemString(item, "listingDate"),
		Status:        PropertyStatus(itemString(item, "status")),
		ImageURL:      itemString(item, "imageUrl"),
	}
}

// Item encodes the property for storage. Money is stored as a string to
// avoid floating-point loss.
func (p Property) Item() storage.Item {
	return storage.Item{
		"propertyId":    p.PropertyID,
		"agentId":       p.AgentID,
		"propertyType":  p.PropertyType,
		"street":        p.Street,
		"city":          p.City,
		"state":         p.State,
		"zipcode":       p.Zipcode,
		"listPrice":     p.ListPrice.String(),
		"numBedrooms":   p.NumBedrooms,
		"numBathrooms":  p.NumBathrooms,
		"squareFootage": p.SquareFootage,
		"description":   p.Description,
		"listingDate":   p.ListingDate,
		"status":        string(p.Status),
		"imageUrl":      p.ImageURL,
	}
}
