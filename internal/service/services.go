// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package service

import (
	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/crypto"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/internal/validators"
)

// Services bundles every application service behind one constructor so the
// transport layer wires a single dependency.
type Services struct {
	Auth      AuthService
	Keys      KeyDistributionService
	Discovery DiscoveryService
}

// NewServices constructs the full service stack on top of the repositories.
// Key distribution and discovery are wrapped in validating decorators, so
// malformed publishes never reach storage.
func NewServices(repos *store.Repositories, hasher crypto.PasswordHasher, cfg config.Auth, log *logger.Logger) *Services {
	validator := validators.NewPublishValidator()

	keys := NewKeyDistributionValidationService(validator, log).
		Wrap(NewKeyDistributionService(repos.DeviceListRepository, repos.BundleRepository, log))

	discovery := NewDiscoveryValidationService(validator, log).
		Wrap(NewDiscoveryService(repos.ServiceRepository, log))

	return &Services{
		Auth:      NewAuthService(repos.PublisherRepository, hasher, cfg, log),
		Keys:      keys,
		Discovery: discovery,
	}
}
