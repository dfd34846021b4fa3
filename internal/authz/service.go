package authz

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	casbinTableName = "casbin_rule"
	ownerRole       = "owner"
)

// The owner role is granted actions; a request is allowed only when the
// caller is the resource owner and the action is granted to owners.
const defaultOwnerModel = `
[request_definition]
r = sub, owner, act

[policy_definition]
p = sub, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub != "" && r.sub == r.owner && p.sub == "owner" && r.act == p.act
`

// Policy owner policy rule
type Policy struct {
	Subject string `json:"subject"`
	Action  string `json:"action"`
}

// Service Casbin ownership authorization
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService creates the authorization service backed by the casbin_rule table
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}

	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}

	m, err := model.NewModelFromString(defaultOwnerModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.EnableAutoSave(true)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}

	return &Service{enforcer: enforcer}, nil
}

// CanAccess reports whether userID may perform action on a resource owned by ownerID
func (s *Service) CanAccess(userID, ownerID, action string) (bool, error) {
	if s == nil || s.enforcer == nil {
		return false, fmt.Errorf("authz service unavailable")
	}
	return s.enforcer.Enforce(strings.TrimSpace(userID), strings.TrimSpace(ownerID), NormalizeAction(action))
}

// GrantOwnerAction allows owners to perform action
func (s *Service) GrantOwnerAction(action string) error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	normalized := NormalizeAction(action)
	if normalized == "" {
		return fmt.Errorf("action is required")
	}
	if _, err := s.enforcer.AddPolicy(ownerRole, normalized); err != nil {
		return fmt.Errorf("add owner policy failed: %w", err)
	}
	return nil
}

// RevokeOwnerAction removes an owner action
func (s *Service) RevokeOwnerAction(action string) error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	if _, err := s.enforcer.RemovePolicy(ownerRole, NormalizeAction(action)); err != nil {
		return fmt.Errorf("remove owner policy failed: %w", err)
	}
	return nil
}

// OwnerPolicies lists the actions granted to owners
func (s *Service) OwnerPolicies() ([]Policy, error) {
	if s == nil || s.enforcer == nil {
		return nil, fmt.Errorf("authz service unavailable")
	}
	rules, err := s.enforcer.GetFilteredPolicy(0, ownerRole)
	if err != nil {
		return nil, fmt.Errorf("list owner policies failed: %w", err)
	}
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 2 {
			continue
		}
		policies = append(policies, Policy{
			Subject: strings.TrimSpace(rule[0]),
			Action:  NormalizeAction(rule[1]),
		})
	}
	return policies, nil
}

// NormalizeAction lowercases and trims an action
func NormalizeAction(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}
