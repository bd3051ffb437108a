package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/maazimam/parkeasy-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityService struct {
	repo   ports.AvailabilityRepo
	cache  ports.SearchCache
	logger logger.Logger
}

func NewAvailabilityService(repo ports.AvailabilityRepo, cache ports.SearchCache, logger logger.Logger) *AvailabilityService {
	return &AvailabilityService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// AvailableFor reports whether every target is covered by the listing's availability.
func (s *AvailabilityService) AvailableFor(ctx context.Context, listingID string, targets []interval.Interval) (bool, error) {
	missing, err := s.Uncovered(ctx, listingID, targets)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

func (s *AvailabilityService) Uncovered(ctx context.Context, listingID string, targets []interval.Interval) ([]interval.Interval, error) {
	avail, err := s.repo.Get(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	return uncovered(targets, avail), nil
}

func (s *AvailabilityService) Bounds(ctx context.Context, listingID string) (time.Time, time.Time, bool, error) {
	return s.repo.Bounds(ctx, listingID)
}

// AvailableTimes lists the half-hour marks of date that fall inside or on the
// edge of an availability interval, limited to [from, to] when given.
func (s *AvailabilityService) AvailableTimes(ctx context.Context, listingID string, date time.Time, from, to *interval.Clock) ([]interval.Clock, error) {
	avail, err := s.repo.Get(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	day := interval.Day(date)
	times := make([]interval.Clock, 0)
	for mark := day; mark.Before(day.AddDate(0, 0, 1)); mark = mark.Add(interval.Step) {
		c := interval.ClockOf(mark)
		if from != nil && c.Before(*from) {
			continue
		}
		if to != nil && c.After(*to) {
			continue
		}
		for _, iv := range avail {
			if !mark.Before(iv.Start) && !mark.After(iv.End) {
				times = append(times, c)
				break
			}
		}
	}

	return times, nil
}

// PruneExpired drops availability that ended at or before now.
func (s *AvailabilityService) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.PruneExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("prune expired: %w", err)
	}

	if n > 0 {
		s.cache.Invalidate(ctx)
		s.logger.Info("expired availability pruned",
			logger.Int64("count", n),
		)
	}

	return n, nil
}
