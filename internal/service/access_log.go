package service

import (
	"context"
	"fmt"
	"time"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/internal/repository"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
	"github.com/khangtran94/parking-alpr-api/pkg/plate"
)

const (
	defaultLogListLimit = 100
	maxLogListLimit     = 1000

	defaultPlateLogLimit = 50
	maxPlateLogLimit     = 500
)

//go:generate mockery --name Broadcaster --output ../mocks
type Broadcaster interface {
	BroadcastAttempt(log *dto.AccessLogResponse)
}

//go:generate mockery --name GateEventPublisher --output ../mocks
type GateEventPublisher interface {
	SendAccessEvent(ctx context.Context, log *domain.AccessLog) error
}

// AccessLogService appends and queries the audit trail. The append is
// the one write the verification outcome depends on; the gate-event
// mirror and the websocket broadcast are best-effort side channels.
type AccessLogService struct {
	repo        repository.Repository
	events      GateEventPublisher
	broadcaster Broadcaster
	logger      *logger.Logger
}

func NewAccessLogService(repo repository.Repository, events GateEventPublisher, logger *logger.Logger) *AccessLogService {
	return &AccessLogService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// SetBroadcaster wires the websocket fan-out.
func (s *AccessLogService) SetBroadcaster(broadcaster Broadcaster) {
	s.broadcaster = broadcaster
}

// Record appends one attempt. There is no update or delete counterpart.
func (s *AccessLogService) Record(ctx context.Context, log *domain.AccessLog) error {
	if log.AccessedAt.IsZero() {
		log.AccessedAt = time.Now()
	}

	if err := s.repo.AccessLog().Create(ctx, log); err != nil {
		return fmt.Errorf("failed to record access attempt: %w", err)
	}

	if s.events != nil {
		if err := s.events.SendAccessEvent(ctx, log); err != nil {
			s.logger.Error("failed to publish gate event", err)
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastAttempt(dto.FromAccessLog(log))
	}

	return nil
}

// List returns the building's attempts, newest first. authorized is
// tri-state: nil applies no filter.
func (s *AccessLogService) List(ctx context.Context, buildingID string, authorized *bool, offset, limit int) ([]dto.AccessLogResponse, error) {
	if limit <= 0 {
		limit = defaultLogListLimit
	}
	if limit > maxLogListLimit {
		limit = maxLogListLimit
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.repo.AccessLog().List(ctx, domain.AccessLogFilter{
		BuildingID: buildingID,
		Authorized: authorized,
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromAccessLogs(logs), nil
}

// ListByPlate returns attempts for one plate, newest first. The plate is
// normalized the same way lookups are, so "abc 123" finds "ABC123".
func (s *AccessLogService) ListByPlate(ctx context.Context, buildingID, rawPlate string, limit int) ([]dto.AccessLogResponse, error) {
	if limit <= 0 {
		limit = defaultPlateLogLimit
	}
	if limit > maxPlateLogLimit {
		limit = maxPlateLogLimit
	}

	// A plate that normalizes to nothing matches no rows. Returning early
	// keeps the empty string from reading as "no plate filter" downstream.
	canonical := plate.Normalize(rawPlate)
	if canonical == "" {
		return []dto.AccessLogResponse{}, nil
	}

	logs, err := s.repo.AccessLog().List(ctx, domain.AccessLogFilter{
		BuildingID:   buildingID,
		LicensePlate: canonical,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromAccessLogs(logs), nil
}
