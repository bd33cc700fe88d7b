package bookingview

import (
	"context"
	"fmt"

	"frontdesk/internal/catalog"
	"frontdesk/internal/locations"
)

// CatalogOptionsAdapter feeds the booking form from the locations and
// catalog services.
type CatalogOptionsAdapter struct {
	locations locations.Service
	catalog   catalog.Service
}

func NewCatalogOptionsAdapter(locationService locations.Service, catalogService catalog.Service) *CatalogOptionsAdapter {
	return &CatalogOptionsAdapter{
		locations: locationService,
		catalog:   catalogService,
	}
}

func (a *CatalogOptionsAdapter) LocationOptions(ctx context.Context) ([]FormOption, error) {
	active, err := a.locations.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]FormOption, 0, len(active))
	for _, location := range active {
		options = append(options, FormOption{
			ID:    location.ID.String(),
			Label: location.Name,
		})
	}
	return options, nil
}

func (a *CatalogOptionsAdapter) ServiceOptions(ctx context.Context) ([]FormOption, error) {
	active, err := a.catalog.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]FormOption, 0, len(active))
	for _, serviceType := range active {
		options = append(options, FormOption{
			ID:    serviceType.ID.String(),
			Label: fmt.Sprintf("%s (%d min)", serviceType.Name, serviceType.DurationMinutes),
		})
	}
	return options, nil
}
