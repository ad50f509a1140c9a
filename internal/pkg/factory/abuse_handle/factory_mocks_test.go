// Code generated by MockGen. DO NOT EDIT.
// Source: factory.go
//
// Generated by this command:
//
//	mockgen -source=factory.go -destination=./factory_mocks_test.go -package=abuse_handle_test
//

// Package abuse_handle_test is a generated GoMock package.
package abuse_handle_test

import (
	context "context"
	entities "deliverycore/internal/entities"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockPenaltyService is a mock of PenaltyService interface.
type MockPenaltyService struct {
	ctrl     *gomock.Controller
	recorder *MockPenaltyServiceMockRecorder
	isgomock struct{}
}

// MockPenaltyServiceMockRecorder is the mock recorder for MockPenaltyService.
type MockPenaltyServiceMockRecorder struct {
	mock *MockPenaltyService
}

// NewMockPenaltyService creates a new mock instance.
func NewMockPenaltyService(ctrl *gomock.Controller) *MockPenaltyService {
	mock := &MockPenaltyService{ctrl: ctrl}
	mock.recorder = &MockPenaltyServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPenaltyService) EXPECT() *MockPenaltyServiceMockRecorder {
	return m.recorder
}

// RecordAbuseSignal mocks base method.
func (m *MockPenaltyService) RecordAbuseSignal(ctx context.Context, phone, reason string, instantBan bool) (*entities.CustomerPenalty, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordAbuseSignal", ctx, phone, reason, instantBan)
	ret0, _ := ret[0].(*entities.CustomerPenalty)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecordAbuseSignal indicates an expected call of RecordAbuseSignal.
func (mr *MockPenaltyServiceMockRecorder) RecordAbuseSignal(ctx, phone, reason, instantBan any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAbuseSignal", reflect.TypeOf((*MockPenaltyService)(nil).RecordAbuseSignal), ctx, phone, reason, instantBan)
}
