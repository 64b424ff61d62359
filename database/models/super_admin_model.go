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

package models

import "time"

// SuperAdmin marks a user as allowed to bypass every project level check.
type SuperAdmin struct {
	UserID    string    `gorm:"primarykey;type:text" json:"userId"`
	GrantedBy string    `gorm:"type:text" json:"grantedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SuperAdmin) TableName() string {
	return "super_admins"
}
