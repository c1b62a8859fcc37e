package response

import (
	"time"

	"wastecare-sesnet/internal/data/entity"
)

// ProfileList mirrors the {count, data} shape of the collection reads.
type ProfileList struct {
	Count int `json:"count"`
	Data  any `json:"data"`
}

type EnterpriseResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	EnterpriseName string          `json:"enterprise_name"`
	Flyer          string          `json:"flyer,omitempty"`
	DigitalAddress string          `json:"digital_address"`
	GPSLocation    entity.GeoPoint `json:"gps_location"`
	Description    string          `json:"description"`
	Approved       bool            `json:"approved"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

type BuilderResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CompanyName string     `json:"company_name"`
	Lead        string     `json:"lead"`
	Flyer       string     `json:"flyer,omitempty"`
	Approved    bool       `json:"approved"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type SupplierResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	ShopName  string     `json:"shop_name"`
	Owner     string     `json:"owner"`
	Flyer     string     `json:"flyer,omitempty"`
	Approved  bool       `json:"approved"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Helper converters

func EnterpriseToResponse(p *entity.EnterpriseProfile) EnterpriseResponse {
	return EnterpriseResponse{
		ID:             p.ID.Hex(),
		UserID:         p.UserID.Hex(),
		EnterpriseName: p.EnterpriseName,
		Flyer:          p.Flyer,
		DigitalAddress: p.DigitalAddress,
		GPSLocation:    p.GPSLocation,
		Description:    p.Description,
		Approved:       p.Approved,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt(p.UpdatedAt),
	}
}

func BuilderToResponse(p *entity.BuilderProfile) BuilderResponse {
	return BuilderResponse{
		ID:          p.ID.Hex(),
		UserID:      p.UserID.Hex(),
		CompanyName: p.CompanyName,
		Lead:        p.Lead,
		Flyer:       p.Flyer,
		Approved:    p.Approved,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt(p.UpdatedAt),
	}
}

func SupplierToResponse(p *entity.SupplierProfile) SupplierResponse {
	return SupplierResponse{
		ID:        p.ID.Hex(),
		UserID:    p.UserID.Hex(),
		ShopName:  p.ShopName,
		Owner:     p.Owner,
		Flyer:     p.Flyer,
		Approved:  p.Approved,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt(p.UpdatedAt),
	}
}

func EnterprisesToResponse(profiles []entity.EnterpriseProfile) []EnterpriseResponse {
	out := make([]EnterpriseResponse, len(profiles))
	for i := range profiles {
		out[i] = EnterpriseToResponse(&profiles[i])
	}
	return out
}

func BuildersToResponse(profiles []entity.BuilderProfile) []BuilderResponse {
	out := make([]BuilderResponse, len(profiles))
	for i := range profiles {
		out[i] = BuilderToResponse(&profiles[i])
	}
	return out
}

func SuppliersToResponse(profiles []entity.SupplierProfile) []SupplierResponse {
	out := make([]SupplierResponse, len(profiles))
	for i := range profiles {
		out[i] = SupplierToResponse(&profiles[i])
	}
	return out
}

func updatedAt(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
