package services

import (
	"catalog-dashboard/models"
	"catalog-dashboard/utils"
)

// DashboardService holds the loaded dataset for the lifetime of the process
// and runs filter -> aggregate for each request. The dataset is never
// modified, so one service can be shared by concurrent callers.
type DashboardService struct {
	dataset    *models.Dataset
	options    models.FilterOptions
	filter     *FilterEngine
	aggregator *Aggregator
	logger     *utils.Logger
}

// NewDashboardService wraps an enriched dataset.
func NewDashboardService(ds *models.Dataset, aggregator *Aggregator, logger *utils.Logger) *DashboardService {
	return &DashboardService{
		dataset:    ds,
		options:    BuildOptions(ds),
		filter:     NewFilterEngine(),
		aggregator: aggregator,
		logger:     logger,
	}
}

// Len returns the size of the unfiltered dataset.
func (s *DashboardService) Len() int {
	return s.dataset.Len()
}

// Options returns the filter choices computed at construction.
func (s *DashboardService) Options() models.FilterOptions {
	return s.options
}

// DefaultCriteria selects everything.
func (s *DashboardService) DefaultCriteria() models.Criteria {
	return DefaultCriteria(s.options)
}

// Render filters the dataset and aggregates the result.
func (s *DashboardService) Render(c models.Criteria) *models.Dashboard {
	filtered := s.filter.Apply(s.dataset, c)
	s.logger.Debug("[dashboard] %d of %d titles match", filtered.Len(), s.dataset.Len())
	return s.aggregator.Build(filtered)
}
