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

	"github.com/l3montree-dev/piletracker/shared"
	"gopkg.in/yaml.v3"
)

//go:embed permissions.yaml
var permissionsYAML []byte

type roleDefinition struct {
	Name        shared.Role                       `yaml:"name"`
	Inherits    shared.Role                       `yaml:"inherits"`
	Permissions map[shared.Object][]shared.Action `yaml:"permissions"`
}

type permissionMatrix struct {
	Roles []roleDefinition `yaml:"roles"`
}

var validObjects = map[shared.Object]bool{
	shared.ObjectProject:    true,
	shared.ObjectPile:       true,
	shared.ObjectMember:     true,
	shared.ObjectInvitation: true,
	shared.ObjectStatistics: true,
}

var validActions = map[shared.Action]bool{
	shared.ActionCreate: true,
	shared.ActionRead:   true,
	shared.ActionUpdate: true,
	shared.ActionDelete: true,
}

// parsePermissionMatrix rejects unknown roles, objects and actions. A typo would otherwise
// silently deny access.
func parsePermissionMatrix(raw []byte) (permissionMatrix, error) {
	var matrix permissionMatrix
	if err := yaml.Unmarshal(raw, &matrix); err != nil {
		return matrix, fmt.Errorf("could not parse permission matrix: %w", err)
	}

	defined := map[shared.Role]bool{}
	for _, role := range matrix.Roles {
		if !role.Name.IsValid() {
			return matrix, fmt.Errorf("unknown role %q in permission matrix", role.Name)
		}
		if role.Inherits != "" && !defined[role.Inherits] {
			return matrix, fmt.Errorf("role %q inherits %q which is not defined before it", role.Name, role.Inherits)
		}
		for object, actions := range role.Permissions {
			if !validObjects[object] {
				return matrix, fmt.Errorf("unknown object %q for role %q", object, role.Name)
			}
			for _, action := range actions {
				if !validActions[action] {
					return matrix, fmt.Errorf("unknown action %q on %q for role %q", action, object, role.Name)
				}
			}
		}
		defined[role.Name] = true
	}

	return matrix, nil
}

func roleSubject(role shared.Role) string {
	return "role::" + string(role)
}

func objectName(object shared.Object) string {
	return "obj::" + string(object)
}

func actionName(action shared.Action) string {
	return "act::" + string(action)
}

// policies returns the casbin p and g rules of the matrix.
func (m permissionMatrix) policies() (policies [][]string, groupings [][]string) {
	for _, role := range m.Roles {
		for object, actions := range role.Permissions {
			for _, action := range actions {
				policies = append(policies, []string{roleSubject(role.Name), objectName(object), actionName(action)})
			}
		}
		if role.Inherits != "" {
			groupings = append(groupings, []string{roleSubject(role.Name), roleSubject(role.Inherits)})
		}
	}
	return policies, groupings
}
