// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
//

// Package order_test is a generated GoMock package.
package order_test

import (
	context "context"
	entities "deliverycore/internal/entities"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// AppendStatusHistory mocks base method.
func (m *MockRepository) AppendStatusHistory(ctx context.Context, record entities.StatusHistoryRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AppendStatusHistory", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

// AppendStatusHistory indicates an expected call of AppendStatusHistory.
func (mr *MockRepositoryMockRecorder) AppendStatusHistory(ctx, record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendStatusHistory", reflect.TypeOf((*MockRepository)(nil).AppendStatusHistory), ctx, record)
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, order entities.Order) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, order)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, order any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, order)
}

// GetByCode mocks base method.
func (m *MockRepository) GetByCode(ctx context.Context, code string) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByCode", ctx, code)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByCode indicates an expected call of GetByCode.
func (mr *MockRepositoryMockRecorder) GetByCode(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByCode", reflect.TypeOf((*MockRepository)(nil).GetByCode), ctx, code)
}

// GetStatusHistory mocks base method.
func (m *MockRepository) GetStatusHistory(ctx context.Context, code string) ([]entities.StatusHistoryRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStatusHistory", ctx, code)
	ret0, _ := ret[0].([]entities.StatusHistoryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStatusHistory indicates an expected call of GetStatusHistory.
func (mr *MockRepositoryMockRecorder) GetStatusHistory(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStatusHistory", reflect.TypeOf((*MockRepository)(nil).GetStatusHistory), ctx, code)
}

// UpdateStatus mocks base method.
func (m *MockRepository) UpdateStatus(ctx context.Context, code string, from, to entities.OrderStatusType, at time.Time, riderID *int64) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, code, from, to, at, riderID)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockRepositoryMockRecorder) UpdateStatus(ctx, code, from, to, at, riderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockRepository)(nil).UpdateStatus), ctx, code, from, to, at, riderID)
}

// MockRiderLocker is a mock of RiderLocker interface.
type MockRiderLocker struct {
	ctrl     *gomock.Controller
	recorder *MockRiderLockerMockRecorder
	isgomock struct{}
}

// MockRiderLockerMockRecorder is the mock recorder for MockRiderLocker.
type MockRiderLockerMockRecorder struct {
	mock *MockRiderLocker
}

// NewMockRiderLocker creates a new mock instance.
func NewMockRiderLocker(ctrl *gomock.Controller) *MockRiderLocker {
	mock := &MockRiderLocker{ctrl: ctrl}
	mock.recorder = &MockRiderLockerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRiderLocker) EXPECT() *MockRiderLockerMockRecorder {
	return m.recorder
}

// Acquire mocks base method.
func (m *MockRiderLocker) Acquire(ctx context.Context, riderID int64, orderCode string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Acquire", ctx, riderID, orderCode)
	ret0, _ := ret[0].(error)
	return ret0
}

// Acquire indicates an expected call of Acquire.
func (mr *MockRiderLockerMockRecorder) Acquire(ctx, riderID, orderCode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Acquire", reflect.TypeOf((*MockRiderLocker)(nil).Acquire), ctx, riderID, orderCode)
}

// RecordDelivery mocks base method.
func (m *MockRiderLocker) RecordDelivery(ctx context.Context, riderID int64, rating *int16) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordDelivery", ctx, riderID, rating)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordDelivery indicates an expected call of RecordDelivery.
func (mr *MockRiderLockerMockRecorder) RecordDelivery(ctx, riderID, rating any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordDelivery", reflect.TypeOf((*MockRiderLocker)(nil).RecordDelivery), ctx, riderID, rating)
}

// Release mocks base method.
func (m *MockRiderLocker) Release(ctx context.Context, riderID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Release", ctx, riderID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Release indicates an expected call of Release.
func (mr *MockRiderLockerMockRecorder) Release(ctx, riderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockRiderLocker)(nil).Release), ctx, riderID)
}

// MockLedgerService is a mock of LedgerService interface.
type MockLedgerService struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerServiceMockRecorder
	isgomock struct{}
}

// MockLedgerServiceMockRecorder is the mock recorder for MockLedgerService.
type MockLedgerServiceMockRecorder struct {
	mock *MockLedgerService
}

// NewMockLedgerService creates a new mock instance.
func NewMockLedgerService(ctrl *gomock.Controller) *MockLedgerService {
	mock := &MockLedgerService{ctrl: ctrl}
	mock.recorder = &MockLedgerServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerService) EXPECT() *MockLedgerServiceMockRecorder {
	return m.recorder
}

// PostCommission mocks base method.
func (m *MockLedgerService) PostCommission(ctx context.Context, order *entities.Order) (*entities.LedgerEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PostCommission", ctx, order)
	ret0, _ := ret[0].(*entities.LedgerEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PostCommission indicates an expected call of PostCommission.
func (mr *MockLedgerServiceMockRecorder) PostCommission(ctx, order any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PostCommission", reflect.TypeOf((*MockLedgerService)(nil).PostCommission), ctx, order)
}

// MockFeeService is a mock of FeeService interface.
type MockFeeService struct {
	ctrl     *gomock.Controller
	recorder *MockFeeServiceMockRecorder
	isgomock struct{}
}

// MockFeeServiceMockRecorder is the mock recorder for MockFeeService.
type MockFeeServiceMockRecorder struct {
	mock *MockFeeService
}

// NewMockFeeService creates a new mock instance.
func NewMockFeeService(ctrl *gomock.Controller) *MockFeeService {
	mock := &MockFeeService{ctrl: ctrl}
	mock.recorder = &MockFeeServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFeeService) EXPECT() *MockFeeServiceMockRecorder {
	return m.recorder
}

// ComputeFee mocks base method.
func (m *MockFeeService) ComputeFee(ctx context.Context, cityID int64, pickup, dropoff entities.GeoPoint) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ComputeFee", ctx, cityID, pickup, dropoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ComputeFee indicates an expected call of ComputeFee.
func (mr *MockFeeServiceMockRecorder) ComputeFee(ctx, cityID, pickup, dropoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ComputeFee", reflect.TypeOf((*MockFeeService)(nil).ComputeFee), ctx, cityID, pickup, dropoff)
}

// MockPenaltyGate is a mock of PenaltyGate interface.
type MockPenaltyGate struct {
	ctrl     *gomock.Controller
	recorder *MockPenaltyGateMockRecorder
	isgomock struct{}
}

// MockPenaltyGateMockRecorder is the mock recorder for MockPenaltyGate.
type MockPenaltyGateMockRecorder struct {
	mock *MockPenaltyGate
}

// NewMockPenaltyGate creates a new mock instance.
func NewMockPenaltyGate(ctrl *gomock.Controller) *MockPenaltyGate {
	mock := &MockPenaltyGate{ctrl: ctrl}
	mock.recorder = &MockPenaltyGateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPenaltyGate) EXPECT() *MockPenaltyGateMockRecorder {
	return m.recorder
}

// CheckAllowed mocks base method.
func (m *MockPenaltyGate) CheckAllowed(ctx context.Context, phone string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckAllowed", ctx, phone)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckAllowed indicates an expected call of CheckAllowed.
func (mr *MockPenaltyGateMockRecorder) CheckAllowed(ctx, phone any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAllowed", reflect.TypeOf((*MockPenaltyGate)(nil).CheckAllowed), ctx, phone)
}

// MockEventPublisher is a mock of EventPublisher interface.
type MockEventPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockEventPublisherMockRecorder
	isgomock struct{}
}

// MockEventPublisherMockRecorder is the mock recorder for MockEventPublisher.
type MockEventPublisherMockRecorder struct {
	mock *MockEventPublisher
}

// NewMockEventPublisher creates a new mock instance.
func NewMockEventPublisher(ctrl *gomock.Controller) *MockEventPublisher {
	mock := &MockEventPublisher{ctrl: ctrl}
	mock.recorder = &MockEventPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherMockRecorder {
	return m.recorder
}

// PublishStatusChanged mocks base method.
func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishStatusChanged", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishStatusChanged indicates an expected call of PublishStatusChanged.
func (mr *MockEventPublisherMockRecorder) PublishStatusChanged(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishStatusChanged", reflect.TypeOf((*MockEventPublisher)(nil).PublishStatusChanged), ctx, event)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}

// MockRetrier is a mock of Retrier interface.
type MockRetrier struct {
	ctrl     *gomock.Controller
	recorder *MockRetrierMockRecorder
	isgomock struct{}
}

// MockRetrierMockRecorder is the mock recorder for MockRetrier.
type MockRetrierMockRecorder struct {
	mock *MockRetrier
}

// NewMockRetrier creates a new mock instance.
func NewMockRetrier(ctrl *gomock.Controller) *MockRetrier {
	mock := &MockRetrier{ctrl: ctrl}
	mock.recorder = &MockRetrierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRetrier) EXPECT() *MockRetrierMockRecorder {
	return m.recorder
}

// ExecuteWithContext mocks base method.
func (m *MockRetrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteWithContext", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteWithContext indicates an expected call of ExecuteWithContext.
func (mr *MockRetrierMockRecorder) ExecuteWithContext(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteWithContext", reflect.TypeOf((*MockRetrier)(nil).ExecuteWithContext), ctx, fn)
}
