package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, company Company) error

	// Zones
	CreateZone(ctx context.Context, zone GeofenceZone) (GeofenceZone, error)
	GetZoneByID(ctx context.Context, id string, companyID string) (GeofenceZone, error)
	ListZones(ctx context.Context, companyID string, activeOnly bool) ([]GeofenceZone, error)
	UpdateZone(ctx context.Context, zone GeofenceZone) error
	DeleteZone(ctx context.Context, id string, companyID string) error
}
