package models

import "github.com/NoSuchObjectException/4610-final-project/storage"

// Agent belongs to exactly one office.
type Agent struct {
	AgentID       string `json:"agentId"`
	OfficeID      string `json:"officeId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
	DateHired     string `json:"dateHired"`
}

func AgentFromItem(item storage.Item) *Agent {
	if item == nil {
		return nil
	}
	return &Agent{
		AgentID:       itemString(item, "agentId"),
		OfficeID:      itemString(item, "officeId"),
		FirstName:     itemString(item, "firstName"),
		LastName:      itemString(item, "lastName"),
		Email:         itemString(item, "email"),
		Phone:         itemString(item, "phone"),
		LicenseNumber: itemString(item, "licenseNumber"),
		DateHired:     itemString(item, "dateHired"),
	}
}

func (a Agent) Item() storage.Item {
	return storage.Item{
		"agentId":       a.AgentID,
		"officeId":      a.OfficeID,
		"firstName":     a.FirstName,
		"lastName":      a.LastName,
		"email":         a.Email,
		"phone":         a.Phone,
		"licenseNumber": a.LicenseNumber,
		"dateHired":     a.DateHired,
	}
}
