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

package transformer

import (
	"strings"

	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/ory/client-go"
)

// IdentityToUserDTO reads the kratos traits. the name trait is either a plain
// string or an object with first and last name.
func IdentityToUserDTO(identity client.Identity) dtos.UserDTO {
	user := dtos.UserDTO{
		ID: identity.Id,
	}

	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return user
	}

	if email, ok := traits["email"].(string); ok {
		user.Email = email
	}

	switch name := traits["name"].(type) {
	case string:
		user.Name = name
	case map[string]any:
		parts := []string{}
		if first, ok := name["first"].(string); ok && first != "" {
			parts = append(parts, first)
		}
		if last, ok := name["last"].(string); ok && last != "" {
			parts = append(parts, last)
		}
		user.Name = strings.Join(parts, " ")
	}

	return user
}
