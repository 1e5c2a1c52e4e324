package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/internal/validators"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerKeyService struct {
	KeyDistributionService

	publishListCalled   bool
	publishBundleCalled bool
}

func (m *mockInnerKeyService) PublishDeviceList(_ context.Context, _ int64, _ omemo.DeviceList) error {
	m.publishListCalled = true
	return nil
}

func (m *mockInnerKeyService) PublishBundle(_ context.Context, _ int64, _ uint32, _ omemo.DeviceBundle) error {
	m.publishBundleCalled = true
	return nil
}

func (m *mockInnerKeyService) PreKeyCount(_ context.Context, _ int64, _ uint32) (int, error) {
	return 11, nil
}

type mockInnerDiscoveryService struct {
	DiscoveryService

	applyCalled bool
}

func (m *mockInnerDiscoveryService) Apply(_ context.Context, _ int64, _ extdisco.ServicesIQ) error {
	m.applyCalled = true
	return nil
}

type mockValidator struct {
	err    error
	called int
}

func (m *mockValidator) Validate(_ context.Context, _ any, _ ...string) error {
	m.called++
	return m.err
}

var errValidator = errors.New("validator says no")

// ─────────────────────────────────────────────
// Key distribution decorator
// ─────────────────────────────────────────────

func TestKeyValidation_PublishDeviceList_RejectsInvalid(t *testing.T) {
	inner := &mockInnerKeyService{}
	validator := &mockValidator{err: errValidator}
	svc := NewKeyDistributionValidationService(validator, logger.Nop()).Wrap(inner)

	err := svc.PublishDeviceList(context.Background(), 7, omemo.DeviceList{{ID: 0}})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, errValidator)
	assert.False(t, inner.publishListCalled)
}

func TestKeyValidation_PublishDeviceList_DelegatesValid(t *testing.T) {
	inner := &mockInnerKeyService{}
	svc := NewKeyDistributionValidationService(&mockValidator{}, logger.Nop()).Wrap(inner)

	require.NoError(t, svc.PublishDeviceList(context.Background(), 7, omemo.DeviceList{{ID: 1}}))
	assert.True(t, inner.publishListCalled)
}

func TestKeyValidation_PublishBundle_RejectsInvalid(t *testing.T) {
	inner := &mockInnerKeyService{}
	svc := NewKeyDistributionValidationService(&mockValidator{err: errValidator}, logger.Nop()).Wrap(inner)

	err := svc.PublishBundle(context.Background(), 7, 12, omemo.DeviceBundle{})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.False(t, inner.publishBundleCalled)
}

func TestKeyValidation_ReadsBypassValidation(t *testing.T) {
	validator := &mockValidator{err: errValidator}
	svc := NewKeyDistributionValidationService(validator, logger.Nop()).Wrap(&mockInnerKeyService{})

	count, err := svc.PreKeyCount(context.Background(), 7, 12)
	require.NoError(t, err)
	assert.Equal(t, 11, count)
	assert.Zero(t, validator.called)
}

// TestKeyValidation_RealValidator wires the actual publish validator to make
// sure the decorator and validator agree on the argument types.
func TestKeyValidation_RealValidator(t *testing.T) {
	inner := &mockInnerKeyService{}
	svc := NewKeyDistributionValidationService(validators.NewPublishValidator(), logger.Nop()).Wrap(inner)

	err := svc.PublishDeviceList(context.Background(), 7, omemo.DeviceList{{ID: 0}})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, validators.ErrInvalidDeviceID)

	err = svc.PublishBundle(context.Background(), 7, 12, omemo.DeviceBundle{})
	assert.ErrorIs(t, err, validators.ErrEmptyIdentityKey)

	require.NoError(t, svc.PublishDeviceList(context.Background(), 7, omemo.DeviceList{{ID: 42}}))
	assert.True(t, inner.publishListCalled)
}

// ─────────────────────────────────────────────
// Discovery decorator
// ─────────────────────────────────────────────

func TestDiscoveryValidation_Apply_RejectsBeforeAnyChange(t *testing.T) {
	inner := &mockInnerDiscoveryService{}
	svc := NewDiscoveryValidationService(validators.NewPublishValidator(), logger.Nop()).Wrap(inner)

	// Second entry is invalid; nothing must reach the inner service.
	iq := extdisco.ServicesIQ{Services: []extdisco.ExternalService{
		{Host: "a.example.com", Type: "stun"},
		{Host: "", Type: "stun"},
	}}

	err := svc.Apply(context.Background(), 7, iq)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, validators.ErrEmptyHost)
	assert.False(t, inner.applyCalled)
}

func TestDiscoveryValidation_Apply_DelegatesValid(t *testing.T) {
	inner := &mockInnerDiscoveryService{}
	svc := NewDiscoveryValidationService(validators.NewPublishValidator(), logger.Nop()).Wrap(inner)

	iq := extdisco.ServicesIQ{Services: []extdisco.ExternalService{
		{Host: "a.example.com", Type: "stun"},
	}}
	require.NoError(t, svc.Apply(context.Background(), 7, iq))
	assert.True(t, inner.applyCalled)
}

// ─────────────────────────────────────────────
// Wiring
// ─────────────────────────────────────────────

func TestNewServices_WiresDecorators(t *testing.T) {
	repos := &store.Repositories{
		PublisherRepository:  &mockPublisherRepository{},
		DeviceListRepository: &mockDeviceListRepository{},
		BundleRepository:     &mockBundleRepository{},
		ServiceRepository:    &mockServiceRepository{},
	}
	services := NewServices(repos, &mockHasher{}, testAuthConfig(), logger.Nop())

	require.NotNil(t, services.Auth)
	require.NotNil(t, services.Keys)
	require.NotNil(t, services.Discovery)

	// Invalid publishes are rejected before the repositories see them.
	err := services.Keys.PublishDeviceList(context.Background(), 7, omemo.DeviceList{{ID: 0}})
	assert.ErrorIs(t, err, ErrValidationFailed)
}
