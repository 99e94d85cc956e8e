package service

import (
	"context"
	"sync"

	"quizboard_backend/internal/engine"
	"quizboard_backend/internal/model"
	"quizboard_backend/internal/repository"
	"quizboard_backend/internal/util"
	"quizboard_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const templatePreferenceKey = "quizboard:template"

// TemplateService owns the current quiz template. The selection is
// explicit state here rather than a package global, persisted under a
// single preference key and loaded once at startup; unknown stored values
// fall back to the default template.
type TemplateService struct {
	mu      sync.RWMutex
	current string
	redis   *redis.Client
	repo    *repository.TemplateRepository
}

func NewTemplateService(rdb *redis.Client, repo *repository.TemplateRepository) *TemplateService {
	s := &TemplateService{
		current: engine.DefaultTemplate,
		redis:   rdb,
		repo:    repo,
	}

	// redis first, database row as the durable fallback
	if rdb != nil {
		if stored, err := rdb.Get(context.Background(), templatePreferenceKey).Result(); err == nil {
			if _, ok := engine.Templates[stored]; ok {
				s.current = stored
				return s
			}
		}
	}
	if repo != nil {
		if stored, err := repo.GetPreference(); err == nil {
			if _, ok := engine.Templates[stored]; ok {
				s.current = stored
			}
		}
	}

	return s
}

// Current returns the active template name and its style table.
func (s *TemplateService) Current() (string, engine.TemplateStyles) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, name := engine.TemplateByName(s.current)
	return name, tpl
}

// Set switches the active template and persists the preference. The
// caller is expected to restyle already-placed elements via Apply.
func (s *TemplateService) Set(ctx context.Context, name string) error {
	if _, ok := engine.Templates[name]; !ok {
		return util.ErrUnknownTemplate
	}

	s.mu.Lock()
	s.current = name
	s.mu.Unlock()

	if s.redis != nil {
		if err := s.redis.Set(ctx, templatePreferenceKey, name, 0).Err(); err != nil {
			logger.Log.Warn("failed to persist template preference",
				zap.String("template", name), zap.Error(err))
		}
	}
	if s.repo != nil {
		if err := s.repo.SavePreference(name); err != nil {
			logger.Log.Warn("failed to store template preference row",
				zap.String("template", name), zap.Error(err))
		}
	}

	return nil
}

// Apply restyles the given element list to the named template (or the
// current one when name is empty). Geometry is never modified.
func (s *TemplateService) Apply(elements []model.Element, name string) ([]model.Element, string) {
	if name == "" {
		name = func() string {
			s.mu.RLock()
			defer s.mu.RUnlock()
			return s.current
		}()
	}
	tpl, resolved := engine.TemplateByName(name)
	return engine.ApplyTemplate(elements, tpl), resolved
}

// Names lists the selectable template names in menu order.
func (s *TemplateService) Names() []string {
	return engine.TemplateNames
}
