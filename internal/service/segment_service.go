package service

import (
	"fmt"

	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/internal/models"
)

// ErrSegmentNotFound is returned when a segment id is not in the dataset.
var ErrSegmentNotFound = fmt.Errorf("segment not found")

// SegmentService serves segment rows to the dashboard table and filters.
type SegmentService struct {
	store *dataset.Store
}

// NewSegmentService creates a new segment service.
func NewSegmentService(store *dataset.Store) *SegmentService {
	return &SegmentService{store: store}
}

// GetSegments retrieves segments matching the filter, plus the total match
// count before pagination.
func (s *SegmentService) GetSegments(filter models.SegmentFilter) ([]models.SegmentRecord, int) {
	return s.store.Table().Filter(filter)
}

// GetSegment retrieves a single segment by id, case-insensitively.
func (s *SegmentService) GetSegment(id string) (models.SegmentRecord, error) {
	rec, ok := s.store.Table().Lookup(id)
	if !ok {
		return models.SegmentRecord{}, fmt.Errorf("%w: %s", ErrSegmentNotFound, id)
	}
	return rec, nil
}
