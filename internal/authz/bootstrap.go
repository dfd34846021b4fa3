package authz

import (
	"fmt"

	"github.com/rpg-companion/api/internal/constants"
	"github.com/rpg-companion/api/internal/logger"
)

// BuiltinOwnerActions actions every owner holds on their own characters
func BuiltinOwnerActions() []string {
	return []string{
		constants.CharacterActionRead,
		constants.CharacterActionUpdate,
		constants.CharacterActionDelete,
	}
}

// BootstrapOwnerPolicies makes the stored owner policies equal to the
// builtin set: missing actions are granted, stored actions outside the set
// are revoked.
func (s *Service) BootstrapOwnerPolicies() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	builtin := make(map[string]struct{})
	for _, action := range BuiltinOwnerActions() {
		builtin[action] = struct{}{}
		if err := s.GrantOwnerAction(action); err != nil {
			return err
		}
	}

	stored, err := s.OwnerPolicies()
	if err != nil {
		return err
	}
	for _, policy := range stored {
		if _, ok := builtin[policy.Action]; ok {
			continue
		}
		if err := s.RevokeOwnerAction(policy.Action); err != nil {
			return err
		}
		logger.Infow("authz_owner_action_revoked", "action", policy.Action)
	}
	return nil
}
