package models

import "github.com/NoSuchObjectException/4610-final-project/storage"

type Appointment struct {
	AppointmentID   string `json:"appointmentId"`
	ClientID        string `json:"clientId"`
	AgentID         string `json:"agentId"`
	PropertyID      string `json:"propertyId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Purpose         string `json:"purpose"`
}

func AppointmentFromItem(item storage.Item) *Appointment {
	if item == nil {
		return nil
	}
	return &Appointment{
		AppointmentID:   itemString(item, "appointmentId"),
		ClientID:        itemString(item, "clientId"),
		AgentID:         itemString(item, "agentId"),
		PropertyID:      itemString(item, "propertyId"),
		AppointmentDate: itemString(item, "appointmentDate"),
		AppointmentTime: itemString(item, "appointmentTime"),
		Purpose:         itemString(item, "purpose"),
	}
}

func (a Appointment) Item() storage.Item {
	return storage.Item{
		"appointmentId":   a.AppointmentID,
		"clientId":        a.ClientID,
		"agentId":         a.AgentID,
		"propertyId":      a.PropertyID,
		"appointmentDate": a.AppointmentDate,
		"appointmentTime": a.AppointmentTime,
		"purpose":         a.Purpose,
	}
}

// Projection is the display form of an appointment record. The key set is
// a fixed wire contract.
func (a Appointment) Projection() storage.Item {
	return storage.Item{
		"APPT_TIME":   a.AppointmentTime,
		"APPT_DATE":   a.AppointmentDate,
		"PURPOSE":     a.Purpose,
		"CLIENT_ID":   a.ClientID,
		"PROPERTY_ID": a.PropertyID,
	}
}
