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

import (
	"context"
	"fmt"
	"net/http"

	"github.com/l3montree-dev/piletracker/shared"
	"github.com/ory/client-go"
)

// identity schema configured in kratos. the traits are email and name.
const defaultSchemaID = "default"

type adminClient struct {
	// public api, resolves sessions
	frontend *client.APIClient
	// admin api, manages identities
	admin *client.APIClient
}

var _ shared.AdminClient = &adminClient{}

func NewAdminClient(frontend *client.APIClient, admin *client.APIClient) *adminClient {
	return &adminClient{
		frontend: frontend,
		admin:    admin,
	}
}

func (a *adminClient) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, _, err := a.frontend.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, err
	}
	return session.GetIdentity(), nil
}

func (a *adminClient) GetIdentityFromSessionToken(ctx context.Context, token string) (client.Identity, error) {
	session, _, err := a.frontend.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		return client.Identity{}, err
	}
	return session.GetIdentity(), nil
}

func (a *adminClient) GetIdentity(ctx context.Context, userID string) (client.Identity, error) {
	identity, _, err := a.admin.IdentityAPI.GetIdentity(ctx, userID).Execute()
	if err != nil {
		return client.Identity{}, err
	}
	return *identity, nil
}

func (a *adminClient) ListUser(ctx context.Context, request shared.ListUserRequest) ([]client.Identity, error) {
	req := a.admin.IdentityAPI.ListIdentities(ctx)
	if len(request.IDs) > 0 {
		req = req.Ids(request.IDs)
	}
	if request.Email != "" {
		req = req.CredentialsIdentifier(request.Email)
	}
	if request.PageSize > 0 {
		req = req.PageSize(request.PageSize)
	}
	if request.PageToken != "" {
		req = req.PageToken(request.PageToken)
	}

	identities, _, err := req.Execute()
	return identities, err
}

func (a *adminClient) CreateIdentity(ctx context.Context, email, name, password string) (client.Identity, error) {
	body := client.NewCreateIdentityBody(defaultSchemaID, map[string]any{
		"email": email,
		"name":  name,
	})
	if password != "" {
		body.SetCredentials(client.IdentityWithCredentials{
			Password: &client.IdentityWithCredentialsPassword{
				Config: &client.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		})
	}

	identity, res, err := a.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(*body).Execute()
	if err != nil {
		if res != nil && res.StatusCode == http.StatusConflict {
			return client.Identity{}, fmt.Errorf("%w: %s", shared.ErrUserAlreadyExists, email)
		}
		return client.Identity{}, err
	}
	return *identity, nil
}

func (a *adminClient) DeleteIdentity(ctx context.Context, userID string) error {
	_, err := a.admin.IdentityAPI.DeleteIdentity(ctx, userID).Execute()
	return err
}
