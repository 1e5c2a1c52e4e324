package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/crypto"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/internal/utils"
	"github.com/xmppfed/go-keyhub/models"
)

// authService is the concrete implementation of AuthService.
// It handles publisher registration, credential verification, and JWT token
// lifecycle using a PublisherRepository for persistence and Argon2id for
// password hashing.
type authService struct {
	// publisherRepository is the data-access layer used to create and look
	// up publisher accounts.
	publisherRepository store.PublisherRepository

	// hasher derives and verifies the stored password hashes.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// PublisherRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(publisherRepository store.PublisherRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		publisherRepository: publisherRepository,
		hasher:              hasher,
		tokenSignKey:        cfg.TokenSignKey,
		tokenIssuer:         cfg.TokenIssuer,
		tokenDuration:       cfg.TokenDuration,
		logger:              logger,
	}
}

// Register creates a new publisher account.
//
// The plaintext password is hashed with Argon2id before it reaches the
// repository; the plaintext never leaves this method.
//
// Returns the persisted publisher (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if JID or Password is empty.
//   - A wrapped storage error if the repository call fails, e.g.
//     store.ErrJIDAlreadyExists when the JID is taken.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.Publisher, error) {
	log := logger.FromContext(ctx)

	if request.JID == "" || request.Password == "" {
		log.Error().Str("jid", request.JID).Msg("invalid registration data provided")
		return models.Publisher{}, ErrInvalidDataProvided
	}

	authHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("jid", request.JID).Msg("password hashing failed")
		return models.Publisher{}, fmt.Errorf("password hashing failed: %w", err)
	}

	publisher := models.Publisher{
		JID:      request.JID,
		Name:     request.Name,
		AuthHash: authHash,
	}

	registered, err := a.publisherRepository.CreatePublisher(ctx, publisher)
	if err != nil {
		log.Err(err).Str("jid", request.JID).Msg("publisher creation ended with error")
		return models.Publisher{}, fmt.Errorf("publisher creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing publisher.
//
// Returns the authenticated publisher record or:
//   - ErrInvalidDataProvided if JID or Password is empty.
//   - A wrapped storage error if the repository lookup fails, e.g.
//     store.ErrNoPublisherWasFound for an unknown account.
//   - ErrWrongPassword if the password does not verify against the stored
//     hash.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Publisher, error) {
	log := logger.FromContext(ctx)

	if request.JID == "" || request.Password == "" {
		log.Error().Str("jid", request.JID).Msg("invalid login data provided")
		return models.Publisher{}, ErrInvalidDataProvided
	}

	found, err := a.publisherRepository.FindPublisherByJID(ctx, request.JID)
	if err != nil {
		log.Err(err).Str("jid", request.JID).Msg("publisher search by jid failed")
		return models.Publisher{}, fmt.Errorf("publisher search by jid failed: %w", err)
	}

	ok, err := a.hasher.Verify(request.Password, found.AuthHash)
	if err != nil {
		log.Err(err).Int64("id", found.ID).Str("jid", found.JID).Msg("stored hash verification failed")
		return models.Publisher{}, fmt.Errorf("stored hash verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int64("id", found.ID).Str("jid", found.JID).Msg("wrong password")
		return models.Publisher{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given publisher.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, publisher models.Publisher) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, publisher.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
