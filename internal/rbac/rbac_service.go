package rbac

import (
	"context"
	"strings"
	"sync"

	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	loaded   bool
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy rebuilds the enforcer from the built-in policies plus the
// role_permissions table.
func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	for _, rp := range roleParents {
		if _, err := s.enforcer.AddGroupingPolicy(rp[0], rp[1]); err != nil {
			return err
		}
	}

	rules := make([][]string, 0, len(DefaultPolicies))
	for _, p := range DefaultPolicies {
		rules = append(rules, []string{p.Role, p.Resource, p.Action})
	}

	extra, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}
	for _, p := range extra {
		rules = append(rules, []string{domain.NormalizeRole(p.Role), p.Resource, p.Action})
	}

	for _, rule := range rules {
		// AddPolicy reports false for duplicates, which is fine here.
		if _, err := s.enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return err
		}
	}

	s.loaded = true
	s.logger.Info("rbac policy loaded",
		zap.Int("default_policies", len(DefaultPolicies)),
		zap.Int("role_permissions", len(extra)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.LoadPolicy(context.Background()); err != nil {
			s.logger.Error("rbac load policy failed", zap.Error(err))
			return false, err
		}
	}

	role := domain.NormalizeRole(req.Role)
	resource := strings.TrimSpace(req.Resource)
	action := strings.TrimSpace(req.Action)

	s.mu.RLock()
	allowed, err := s.enforcer.Enforce(role, resource, action)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
