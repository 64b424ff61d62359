// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package accesscontrol

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/l3montree-dev/piletracker/shared"
	"gorm.io/gorm"
)

//go:embed rbac_model.conf
var rbacModel string

var _ shared.AccessControl = &casbinRBAC{}

// casbinRBAC answers whether a project role may perform an action on an object.
// The user to role mapping lives in user_projects, casbin only knows roles.
type casbinRBAC struct {
	enforcer *casbin.SyncedEnforcer
}

func (c *casbinRBAC) IsAllowed(role shared.Role, object shared.Object, action shared.Action) (bool, error) {
	if !role.IsValid() {
		return false, nil
	}
	return c.enforcer.Enforce(roleSubject(role), objectName(object), actionName(action))
}

func (c *casbinRBAC) GetPermissions(role shared.Role) ([]shared.Permission, error) {
	rules, err := c.enforcer.GetImplicitPermissionsForUser(roleSubject(role))
	if err != nil {
		return nil, err
	}

	seen := map[shared.Permission]bool{}
	permissions := make([]shared.Permission, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		p := shared.Permission{
			Object: shared.Object(strings.TrimPrefix(rule[1], "obj::")),
			Action: shared.Action(strings.TrimPrefix(rule[2], "act::")),
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		permissions = append(permissions, p)
	}
	return permissions, nil
}

func newEnforcer(params ...any) (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("could not parse rbac model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(append([]any{m}, params...)...)
	if err != nil {
		return nil, err
	}
	e.EnableLog(false)
	return e, nil
}

// seedPolicies adds the rules of the matrix which are not stored yet.
func seedPolicies(e *casbin.SyncedEnforcer, matrix permissionMatrix) (int, error) {
	policies, groupings := matrix.policies()
	added := 0
	for _, p := range policies {
		ok, err := e.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			return added, fmt.Errorf("could not add policy %v: %w", p, err)
		}
		if ok {
			added++
		}
	}
	for _, g := range groupings {
		ok, err := e.AddGroupingPolicy(g[0], g[1])
		if err != nil {
			return added, fmt.Errorf("could not add role inheritance %v: %w", g, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// NewInMemoryAccessControl builds the access control without persistence. It is used by the cli and tests.
func NewInMemoryAccessControl() (*casbinRBAC, error) {
	matrix, err := parsePermissionMatrix(permissionsYAML)
	if err != nil {
		return nil, err
	}
	e, err := newEnforcer()
	if err != nil {
		return nil, err
	}
	if _, err := seedPolicies(e, matrix); err != nil {
		return nil, err
	}
	return &casbinRBAC{enforcer: e}, nil
}

// NewCasbinAccessControl stores the matrix in the casbin_rule table. Replicas reload
// the policy when another replica changes it.
func NewCasbinAccessControl(db *gorm.DB, broker shared.PubSubBroker) (*casbinRBAC, error) {
	matrix, err := parsePermissionMatrix(permissionsYAML)
	if err != nil {
		return nil, err
	}

	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("could not create casbin adapter: %w", err)
	}

	e, err := newEnforcer(adapter)
	if err != nil {
		return nil, err
	}

	watcher, err := newCasbinPubSubWatcher(broker)
	if err != nil {
		return nil, err
	}
	if err := e.SetWatcher(watcher); err != nil {
		return nil, fmt.Errorf("could not set watcher: %w", err)
	}
	if err := watcher.SetUpdateCallback(func(string) {
		if err := e.LoadPolicy(); err != nil {
			slog.Error("error while loading policy after update", "err", err)
			return
		}
		slog.Debug("policy successfully reloaded after update")
	}); err != nil {
		return nil, fmt.Errorf("could not set update callback: %w", err)
	}

	if err := e.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("could not load policy: %w", err)
	}

	added, err := seedPolicies(e, matrix)
	if err != nil {
		return nil, err
	}
	slog.Info("permission matrix loaded", "addedRules", added)

	return &casbinRBAC{enforcer: e}, nil
}
