package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	resp := company.CompanyResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Timezone:             c.Timezone,
		LateThresholdMinutes: c.LateThresholdMinutes,
	}
	if c.Schedule.WorkStart != nil {
		s := c.Schedule.WorkStart.String()
		resp.WorkStart = &s
	}
	if c.Schedule.WorkEnd != nil {
		s := c.Schedule.WorkEnd.String()
		resp.WorkEnd = &s
	}
	if c.Schedule.LunchStart != nil {
		s := c.Schedule.LunchStart.String()
		resp.LunchStart = &s
	}
	if c.Schedule.LunchEnd != nil {
		s := c.Schedule.LunchEnd.String()
		resp.LunchEnd = &s
	}
	return resp
}

func toZoneResponse(z company.GeofenceZone) company.ZoneResponse {
	return company.ZoneResponse{
		ID:           z.ID,
		Name:         z.Name,
		Latitude:     z.Latitude,
		Longitude:    z.Longitude,
		RadiusMeters: z.RadiusMeters,
		IsActive:     z.IsActive,
	}
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, companyID string) (company.CompanyResponse, error) {
	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toCompanyResponse(c), nil
}

// Update implements company.CompanyService. Only the provided fields change.
func (s *CompanyServiceImpl) Update(ctx context.Context, companyID string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Timezone != nil {
		c.Timezone = *req.Timezone
	}
	if req.LateThresholdMinutes != nil {
		c.LateThresholdMinutes = *req.LateThresholdMinutes
	}

	if err := applyScheduleField(&c.Schedule.WorkStart, req.WorkStart); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := applyScheduleField(&c.Schedule.WorkEnd, req.WorkEnd); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := applyScheduleField(&c.Schedule.LunchStart, req.LunchStart); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := applyScheduleField(&c.Schedule.LunchEnd, req.LunchEnd); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := c.Schedule.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.CompanyRepository.Update(ctx, c); err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(c), nil
}

// applyScheduleField keeps the current value when the field is absent and
// clears it when an empty string is sent.
func applyScheduleField(dst **company.TimeOfDay, value *string) error {
	if value == nil {
		return nil
	}
	if *value == "" {
		*dst = nil
		return nil
	}
	tod, err := company.ParseTimeOfDay(*value)
	if err != nil {
		return err
	}
	*dst = &tod
	return nil
}

// CreateZone implements company.CompanyService.
func (s *CompanyServiceImpl) CreateZone(ctx context.Context, companyID string, req company.CreateZoneRequest) (company.ZoneResponse, error) {
	if err := req.Validate(); err != nil {
		return company.ZoneResponse{}, err
	}

	zone := company.GeofenceZone{
		ID:           uuid.Must(uuid.NewV7()).String(),
		CompanyID:    companyID,
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		IsActive:     true,
	}

	created, err := s.CompanyRepository.CreateZone(ctx, zone)
	if err != nil {
		return company.ZoneResponse{}, err
	}

	return toZoneResponse(created), nil
}

// ListZones implements company.CompanyService.
func (s *CompanyServiceImpl) ListZones(ctx context.Context, companyID string) ([]company.ZoneResponse, error) {
	zones, err := s.CompanyRepository.ListZones(ctx, companyID, false)
	if err != nil {
		return nil, err
	}

	responses := make([]company.ZoneResponse, 0, len(zones))
	for _, z := range zones {
		responses = append(responses, toZoneResponse(z))
	}

	return responses, nil
}

// UpdateZone implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateZone(ctx context.Context, companyID string, req company.UpdateZoneRequest) (company.ZoneResponse, error) {
	if err := req.Validate(); err != nil {
		return company.ZoneResponse{}, err
	}

	zone, err := s.CompanyRepository.GetZoneByID(ctx, req.ID, companyID)
	if err != nil {
		return company.ZoneResponse{}, err
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Latitude != nil {
		zone.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		zone.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		zone.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	if err := s.CompanyRepository.UpdateZone(ctx, zone); err != nil {
		return company.ZoneResponse{}, err
	}

	return toZoneResponse(zone), nil
}

// DeleteZone implements company.CompanyService.
func (s *CompanyServiceImpl) DeleteZone(ctx context.Context, companyID string, zoneID string) error {
	return s.CompanyRepository.DeleteZone(ctx, zoneID, companyID)
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepo}
}
