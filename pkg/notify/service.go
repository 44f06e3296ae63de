package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/windysky/claude-notification-wsl2/pkg/lang"
	"github.com/windysky/claude-notification-wsl2/pkg/templates"
)

// Resolver resolves a template key and substitution parameters to localized
// text. *templates.Resolver satisfies it.
type Resolver interface {
	ResolveFormatted(ctx context.Context, key, language string, params map[string]string) (templates.Template, error)
}

// Config is the notification composition configuration, typically a snapshot
// of the persisted settings document.
type Config struct {
	Enabled  bool
	Language string
	Type     Type
	Duration Duration
	Position Position
	Sound    bool
}

// DefaultConfig returns the documented defaults: notifications enabled, the
// canonical language, informational type, normal duration, top-right corner,
// sound on.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Language: lang.Fallback,
		Type:     TypeInformation,
		Duration: DurationNormal,
		Position: PositionTopRight,
		Sound:    true,
	}
}

// Service builds notifications from templates and configuration.
type Service struct {
	resolver Resolver
	cfg      Config
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger for the Service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a notification composition service. Invalid or empty
// enum values in cfg fall back to their defaults so a partially populated
// settings document still produces sensible notifications.
func NewService(resolver Resolver, cfg Config, opts ...ServiceOption) (*Service, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}

	defaults := DefaultConfig()
	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if !cfg.Type.Valid() {
		cfg.Type = defaults.Type
	}
	if !cfg.Duration.Valid() {
		cfg.Duration = defaults.Duration
	}
	if !cfg.Position.Valid() {
		cfg.Position = defaults.Position
	}

	s := &Service{
		resolver: resolver,
		cfg:      cfg,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Build resolves the template for key in the configured language and fills
// the notification envelope. The configured language is normalized first so
// regional variants like "ko-KR" hit the right document; anything still
// unsupported is handled by the resolver's canonical fallback.
func (s *Service) Build(ctx context.Context, key string, params map[string]string) (Notification, error) {
	if !s.cfg.Enabled {
		return Notification{}, ErrDisabled
	}

	language := lang.Normalize(s.cfg.Language)

	tmpl, err := s.resolver.ResolveFormatted(ctx, key, language, params)
	if err != nil {
		return Notification{}, fmt.Errorf("resolve template %q: %w", key, err)
	}

	n := Notification{
		ID:        uuid.New().String(),
		Type:      s.cfg.Type,
		Duration:  s.cfg.Duration,
		Position:  s.cfg.Position,
		Title:     tmpl.Title,
		Message:   tmpl.Message,
		Sound:     s.cfg.Sound,
		CreatedAt: time.Now(),
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Notification composed",
		slog.String("notification_id", n.ID),
		slog.String("key", key),
		slog.String("language", language),
	)

	return n, nil
}
