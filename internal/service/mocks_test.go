package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/internal/repository"
	"github.com/khangtran94/parking-alpr-api/internal/service/recognizer"
)

type MockBuildingRepository struct {
	mock.Mock
}

func (m *MockBuildingRepository) Create(ctx context.Context, building *domain.Building) (*domain.Building, error) {
	args := m.Called(ctx, building)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingRepository) GetByID(ctx context.Context, id string) (*domain.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingRepository) GetActiveByToken(ctx context.Context, token string) (*domain.Building, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingRepository) Update(ctx context.Context, building *domain.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *MockBuildingRepository) List(ctx context.Context) ([]domain.Building, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Building), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Find(ctx context.Context, buildingID, plate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, buildingID, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindActive(ctx context.Context, buildingID, plate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, buildingID, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, buildingID, plate string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, buildingID, plate, fields)
	return args.Get(0).(int64), args.Error(1)
}

type MockAccessLogRepository struct {
	mock.Mock
}

func (m *MockAccessLogRepository) Create(ctx context.Context, log *domain.AccessLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAccessLogRepository) List(ctx context.Context, filter domain.AccessLogFilter) ([]domain.AccessLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccessLog), args.Error(1)
}

// MockRepository bundles the per-entity mocks behind the aggregate
// interface the services consume.
type MockRepository struct {
	buildings  *MockBuildingRepository
	vehicles   *MockVehicleRepository
	accessLogs *MockAccessLogRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		buildings:  new(MockBuildingRepository),
		vehicles:   new(MockVehicleRepository),
		accessLogs: new(MockAccessLogRepository),
	}
}

func (m *MockRepository) Building() repository.BuildingRepository   { return m.buildings }
func (m *MockRepository) Vehicle() repository.VehicleRepository     { return m.vehicles }
func (m *MockRepository) AccessLog() repository.AccessLogRepository { return m.accessLogs }

type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) Recognize(ctx context.Context, image []byte) (*recognizer.Result, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recognizer.Result), args.Error(1)
}

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Store(ctx context.Context, buildingID string, image []byte) (string, error) {
	args := m.Called(ctx, buildingID, image)
	return args.String(0), args.Error(1)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastAttempt(log *dto.AccessLogResponse) {
	m.Called(log)
}

type MockGateEventPublisher struct {
	mock.Mock
}

func (m *MockGateEventPublisher) SendAccessEvent(ctx context.Context, log *domain.AccessLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
