package domain

import "strings"

type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Complement   string `json:"complement,omitempty"`
}

func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.Neighborhood) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.Complement) == ""
}

// Profile is the customer record persisted across sessions. Email and the
// address are optional; the address becomes required in delivery mode.
type Profile struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email,omitempty"`
	Address Address `json:"address"`
}

func EmptyProfile() Profile {
	return Profile{}
}

// MissingFields lists the fields still required before checkout can proceed
// in the given mode. Name and phone are always required; street, neighborhood
// and city only for delivery. Values are trimmed before the check.
func (p Profile) MissingFields(mode FulfillmentMode) []string {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Phone) == "" {
		missing = append(missing, "phone")
	}
	if mode == ModeDelivery {
		if strings.TrimSpace(p.Address.Street) == "" {
			missing = append(missing, "address.street")
		}
		if strings.TrimSpace(p.Address.Neighborhood) == "" {
			missing = append(missing, "address.neighborhood")
		}
		if strings.TrimSpace(p.Address.City) == "" {
			missing = append(missing, "address.city")
		}
	}
	return missing
}

func (p Profile) IsComplete(mode FulfillmentMode) bool {
	return len(p.MissingFields(mode)) == 0
}
