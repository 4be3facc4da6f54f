package company

import "context"

type CompanyService interface {
	Get(ctx context.Context, companyID string) (CompanyResponse, error)
	Update(ctx context.Context, companyID string, req UpdateCompanyRequest) (CompanyResponse, error)

	CreateZone(ctx context.Context, companyID string, req CreateZoneRequest) (ZoneResponse, error)
	ListZones(ctx context.Context, companyID string) ([]ZoneResponse, error)
	UpdateZone(ctx context.Context, companyID string, req UpdateZoneRequest) (ZoneResponse, error)
	DeleteZone(ctx context.Context, companyID string, zoneID string) error
}
