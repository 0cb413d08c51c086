package rbac

import (
	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

// DefaultPolicies grants ADMIN and HR everything; VIEWER may browse and export.
func DefaultPolicies() [][]string {
	var policies [][]string
	for _, role := range []string{RoleAdmin, RoleHR} {
		policies = append(policies,
			[]string{role, ResourceEmployee, ActionRead},
			[]string{role, ResourceEmployee, ActionWrite},
			[]string{role, ResourceRecord, ActionRead},
			[]string{role, ResourceRecord, ActionWrite},
			[]string{role, ResourceExport, ActionRead},
		)
	}
	policies = append(policies,
		[]string{RoleViewer, ResourceEmployee, ActionRead},
		[]string{RoleViewer, ResourceRecord, ActionRead},
		[]string{RoleViewer, ResourceExport, ActionRead},
	)
	return policies
}

// NewService loads DefaultPolicies into enforcer. The enforcer is only read afterwards.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	enforcer.ClearPolicy()
	if _, err := enforcer.AddPolicies(DefaultPolicies()); err != nil {
		return nil, err
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
