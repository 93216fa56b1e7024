package service

import (
	"context"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/telemetry/logger"
	"github.com/yndnr/simianauth-go/internal/telemetry/metric"
)

// Action names a session operation dispatched by the CLI.
type Action string

// Supported actions.
const (
	ActionLogin  Action = "login"
	ActionLogout Action = "logout"
)

// String returns the action name.
func (a Action) String() string {
	return string(a)
}

// ParseAction maps a command name to an Action.
func ParseAction(name string) (Action, error) {
	switch Action(name) {
	case ActionLogin, ActionLogout:
		return Action(name), nil
	default:
		return "", domain.ErrActionUnknown.WithDetails(name)
	}
}

// AuthExecutor performs login and logout against the management server.
// Implementations read everything they need from the session config.
type AuthExecutor interface {
	Login(ctx context.Context, cfg domain.SessionConfig) (*domain.LoginResult, error)
	Logout(ctx context.Context, cfg domain.SessionConfig) error
}

// SessionService normalizes the session config before dispatching auth
// actions.
type SessionService struct {
	resolver *TokenResolver
	executor AuthExecutor
	logger   logger.Logger
	metrics  *metric.Registry
}

// NewSessionService creates a new SessionService.
func NewSessionService(resolver *TokenResolver, executor AuthExecutor, opts ...Option) *SessionService {
	o := applyOptions(opts)
	return &SessionService{
		resolver: resolver,
		executor: executor,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// Resolver returns the token resolver used by Preprocess.
func (s *SessionService) Resolver() *TokenResolver {
	return s.resolver
}

// Preprocess rewrites the token entry of cfg in place so it holds a literal
// token. An absent or empty token is left alone. A token file that yields
// no token is fatal with ErrTokenFileUnresolved naming the file.
func (s *SessionService) Preprocess(ctx context.Context, cfg domain.SessionConfig) error {
	input := cfg.Token()
	if input == "" {
		return nil
	}

	token, found := s.resolver.Resolve(ctx, input)
	if !found {
		return domain.ErrTokenFileUnresolved.WithDetails(input)
	}

	cfg.SetToken(token)
	return nil
}

// Login preprocesses cfg and runs the login action.
func (s *SessionService) Login(ctx context.Context, cfg domain.SessionConfig) (*domain.LoginResult, error) {
	if err := s.Preprocess(ctx, cfg); err != nil {
		s.metrics.RecordAction(ActionLogin.String(), err)
		return nil, err
	}

	result, err := s.executor.Login(ctx, cfg)
	s.metrics.RecordAction(ActionLogin.String(), err)
	if err != nil {
		return nil, err
	}

	contextLogger(ctx, s.logger).Debug("login succeeded", "server", cfg.Server())
	return result, nil
}

// Logout preprocesses cfg and runs the logout action. Logout needs a token;
// when none is configured, or the file held an empty one, it fails with
// ErrTokenMissing before contacting the server.
func (s *SessionService) Logout(ctx context.Context, cfg domain.SessionConfig) error {
	err := s.logout(ctx, cfg)
	s.metrics.RecordAction(ActionLogout.String(), err)
	return err
}

func (s *SessionService) logout(ctx context.Context, cfg domain.SessionConfig) error {
	if err := s.Preprocess(ctx, cfg); err != nil {
		return err
	}
	if cfg.Token() == "" {
		return domain.ErrTokenMissing
	}
	if err := s.executor.Logout(ctx, cfg); err != nil {
		return err
	}

	contextLogger(ctx, s.logger).Debug("logout succeeded", "server", cfg.Server())
	return nil
}

// Run dispatches action. Only login produces a result; logout returns nil.
func (s *SessionService) Run(ctx context.Context, action Action, cfg domain.SessionConfig) (*domain.LoginResult, error) {
	switch action {
	case ActionLogin:
		return s.Login(ctx, cfg)
	case ActionLogout:
		return nil, s.Logout(ctx, cfg)
	default:
		return nil, domain.ErrActionUnknown.WithDetails(string(action))
	}
}
