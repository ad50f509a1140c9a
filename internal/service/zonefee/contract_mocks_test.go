// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zonefee_test
//

// Package zonefee_test is a generated GoMock package.
package zonefee_test

import (
	context "context"
	entities "deliverycore/internal/entities"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockZoneRepository is a mock of ZoneRepository interface.
type MockZoneRepository struct {
	ctrl     *gomock.Controller
	recorder *MockZoneRepositoryMockRecorder
	isgomock struct{}
}

// MockZoneRepositoryMockRecorder is the mock recorder for MockZoneRepository.
type MockZoneRepositoryMockRecorder struct {
	mock *MockZoneRepository
}

// NewMockZoneRepository creates a new mock instance.
func NewMockZoneRepository(ctrl *gomock.Controller) *MockZoneRepository {
	mock := &MockZoneRepository{ctrl: ctrl}
	mock.recorder = &MockZoneRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockZoneRepository) EXPECT() *MockZoneRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockZoneRepository) Create(ctx context.Context, zone entities.DeliveryZone) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, zone)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockZoneRepositoryMockRecorder) Create(ctx, zone any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockZoneRepository)(nil).Create), ctx, zone)
}

// GetActiveByCity mocks base method.
func (m *MockZoneRepository) GetActiveByCity(ctx context.Context, cityID int64) ([]entities.DeliveryZone, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByCity", ctx, cityID)
	ret0, _ := ret[0].([]entities.DeliveryZone)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByCity indicates an expected call of GetActiveByCity.
func (mr *MockZoneRepositoryMockRecorder) GetActiveByCity(ctx, cityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByCity", reflect.TypeOf((*MockZoneRepository)(nil).GetActiveByCity), ctx, cityID)
}

// SetActive mocks base method.
func (m *MockZoneRepository) SetActive(ctx context.Context, id int64, active bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetActive", ctx, id, active)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetActive indicates an expected call of SetActive.
func (mr *MockZoneRepositoryMockRecorder) SetActive(ctx, id, active any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetActive", reflect.TypeOf((*MockZoneRepository)(nil).SetActive), ctx, id, active)
}
