package profile

import "risorte/internal/domain"

type AddressDTO struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Complement   string `json:"complement,omitempty"`
}

type ProfileDTO struct {
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email,omitempty"`
	Address AddressDTO `json:"address"`
}

// Completeness reports whether the profile satisfies checkout for each mode,
// so the presentation layer can prompt before the user reaches checkout.
type Completeness struct {
	Delivery bool `json:"delivery"`
	Pickup   bool `json:"pickup"`
}

type ProfileResponse struct {
	Profile      ProfileDTO   `json:"profile"`
	Completeness Completeness `json:"completeness"`
}

type SaveProfileRequest struct {
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Address AddressDTO `json:"address"`
}

func toProfileDTO(p domain.Profile) ProfileDTO {
	return ProfileDTO{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
		Address: AddressDTO{
			Street:       p.Address.Street,
			Neighborhood: p.Address.Neighborhood,
			City:         p.Address.City,
			Complement:   p.Address.Complement,
		},
	}
}

func toDomainProfile(req SaveProfileRequest) domain.Profile {
	return domain.Profile{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Address: domain.Address{
			Street:       req.Address.Street,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			Complement:   req.Address.Complement,
		},
	}
}
