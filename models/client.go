package models

import "github.com/NoSuchObjectException/4610-final-project/storage"

type Client struct {
	ClientID  string `json:"clientId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
}

func ClientFromItem(item storage.Item) *Client {
	if item == nil {
		return nil
	}
	return &Client{
		ClientID:  itemString(item, "clientId"),
		FirstName: itemString(item, "firstName"),
		LastName:  itemString(item, "lastName"),
		Email:     itemString(item, "email"),
		Phone:     itemString(item, "phone"),
		Street:    itemString(item, "street"),
		City:      itemString(item, "city"),
		State:     itemString(item, "state"),
		Zipcode:   itemString(item, "zipcode"),
	}
}

func (c Client) Item() storage.Item {
	return storage.Item{
		"clientId":  c.ClientID,
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
		"street":    c.Street,
		"city":      c.City,
		"state":     c.State,
		"zipcode":   c.Zipcode,
	}
}

// Projection is the agent-side display form of a client record. The key
// set is a fixed wire contract.
func (c Client) Projection() storage.Item {
	return storage.Item{
		"CLIENT_FIRST_NAME": c.FirstName,
		"CLIENT_LAST_NAME":  c.LastName,
		"CLIENT_EMAIL":      c.Email,
		"CLIENT_PHONE":      c.Phone,
		"CLIENT_STREET":     c.Street,
		"CLIENT_CITY":       c.City,
		"CLIENT_ZIPCODE":    c.Zipcode,
	}
}
