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

package auth

import "github.com/l3montree-dev/piletracker/shared"

type session struct {
	userID string
	email  string
	scopes []string
}

var _ shared.AuthSession = session{}

func (s session) GetUserID() string {
	return s.userID
}

func (s session) GetEmail() string {
	return s.email
}

func (s session) GetScopes() []string {
	return s.scopes
}

func NewSession(userID string, email string, scopes []string) shared.AuthSession {
	if scopes == nil {
		scopes = []string{}
	}
	return session{
		userID: userID,
		email:  email,
		scopes: scopes,
	}
}

// NoSession is set for requests without valid credentials. Groups which require
// a user reject it with 401.
var NoSession = session{
	userID: "NO_SESSION",
	scopes: []string{},
}

func IsNoSession(s shared.AuthSession) bool {
	return s == nil || s.GetUserID() == NoSession.userID
}
