package service

import (
	"context"
	"fmt"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/internal/repository"
	"github.com/khangtran94/parking-alpr-api/internal/service/recognizer"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
	"github.com/khangtran94/parking-alpr-api/pkg/plate"
)

//go:generate mockery --name Recognizer --output ../mocks
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (*recognizer.Result, error)
}

//go:generate mockery --name SnapshotStore --output ../mocks
type SnapshotStore interface {
	Store(ctx context.Context, buildingID string, image []byte) (string, error)
}

// VerificationService runs one verification attempt end to end:
// recognize, normalize, authorize, record. Three outcomes branch after
// recognition:
//
//   - recognizer error: logged as an UNREADABLE attempt, denied;
//   - readable image, no plate: denied, nothing logged;
//   - plate found: authorized or not, exactly one attempt logged.
type VerificationService struct {
	repo       repository.Repository
	accessLogs *AccessLogService
	recognizer Recognizer
	snapshots  SnapshotStore
	logger     *logger.Logger
}

func NewVerificationService(
	repo repository.Repository,
	accessLogs *AccessLogService,
	rec Recognizer,
	logger *logger.Logger,
) *VerificationService {
	return &VerificationService{
		repo:       repo,
		accessLogs: accessLogs,
		recognizer: rec,
		logger:     logger,
	}
}

// SetSnapshotStore enables best-effort image archival for logged attempts.
func (s *VerificationService) SetSnapshotStore(store SnapshotStore) {
	s.snapshots = store
}

func (s *VerificationService) Verify(ctx context.Context, building *domain.Building, image []byte) (*dto.VerifyPlateResponse, error) {
	result, err := s.recognizer.Recognize(ctx, image)
	if err != nil {
		// An unreadable image is an expected operating condition: the
		// attempt is recorded and the caller gets a denied outcome, not
		// an error.
		attempt := &domain.AccessLog{
			BuildingID:   building.ID,
			LicensePlate: domain.PlateUnreadable,
			IsAuthorized: false,
			SnapshotKey:  s.storeSnapshot(ctx, building.ID, image),
		}
		if recordErr := s.accessLogs.Record(ctx, attempt); recordErr != nil {
			return nil, recordErr
		}

		return &dto.VerifyPlateResponse{
			IsAuthorized: false,
			Message:      fmt.Sprintf("Failed to read license plate: %v", err),
		}, nil
	}

	canonical := plate.Normalize(result.Text)
	if canonical == "" {
		// The recognizer worked but saw no plate. Nothing is logged on
		// this path; only actual plate readings and hard failures leave
		// an audit trail.
		return &dto.VerifyPlateResponse{
			IsAuthorized: false,
			Confidence:   result.Confidence,
			Message:      "No license plate detected in the image",
		}, nil
	}

	vehicle, err := s.repo.Vehicle().FindActive(ctx, building.ID, canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to check vehicle authorization: %w", err)
	}

	attempt := &domain.AccessLog{
		BuildingID:   building.ID,
		LicensePlate: canonical,
		IsAuthorized: vehicle != nil,
		Confidence:   result.Confidence,
		SnapshotKey:  s.storeSnapshot(ctx, building.ID, image),
	}
	if err := s.accessLogs.Record(ctx, attempt); err != nil {
		return nil, err
	}

	if vehicle != nil {
		return &dto.VerifyPlateResponse{
			LicensePlate: &canonical,
			IsAuthorized: true,
			Confidence:   result.Confidence,
			OwnerName:    &vehicle.OwnerName,
			Apartment:    optional(vehicle.Apartment),
			Message:      "Vehicle authorized",
		}, nil
	}

	return &dto.VerifyPlateResponse{
		LicensePlate: &canonical,
		IsAuthorized: false,
		Confidence:   result.Confidence,
		Message:      "Vehicle not authorized for this building",
	}, nil
}

// storeSnapshot uploads the image when a store is configured. Failure is
// logged and swallowed: archival never blocks the gate decision.
func (s *VerificationService) storeSnapshot(ctx context.Context, buildingID string, image []byte) string {
	if s.snapshots == nil || len(image) == 0 {
		return ""
	}
	key, err := s.snapshots.Store(ctx, buildingID, image)
	if err != nil {
		s.logger.Error("failed to store snapshot", err)
		return ""
	}
	return key
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
