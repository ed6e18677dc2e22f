package models

import "github.com/NoSuchObjectException/4610-final-project/storage"

type Office struct {
	OfficeID   string `json:"officeId"`
	OfficeName string `json:"officeName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zipcode    string `json:"zipcode"`
	Phone      string `json:"phone"`
}

func OfficeFromItem(item storage.Item) *Office {
	if item == nil {
		return nil
	}
	return &Office{
		OfficeID:   itemString(item, "officeId"),
		OfficeName: itemString(item, "officeName"),
		Street:     itemString(item, "street"),
		City:       itemString(item, "city"),
		State:      itemString(item, "state"),
		Zipcode:    itemString(item, "zipcode"),
		Phone:      itemString(item, "phone"),
	}
}

func (o Office) Item() storage.Item {
	return storage.Item{
		"officeId":   o.OfficeID,
		"officeName": o.OfficeName,
		"street":     o.Street,
		"city":       o.City,
		"state":      o.State,
		"zipcode":    o.Zipcode,
		"phone":      o.Phone,
	}
}

// Projection is the display form of an office record.
func (o Office) Projection() storage.Item {
	return storage.Item{
		"STREET":  o.Street,
		"CITY":    o.City,
		"ZIPCODE": o.Zipcode,
		"PHONE":   o.Phone,
	}
}

// OfficePlaceholder builds a display record for an agent whose office
// cannot be shown. The street text tells the reader which case occurred.
func OfficePlaceholder(street string) storage.Item {
	return storage.Item{
		"STREET":  street,
		"CITY":    "",
		"ZIPCODE": "",
		"PHONE":   "",
	}
}
