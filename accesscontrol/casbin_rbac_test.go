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
	"context"
	"sync"
	"testing"
	"time"

	"github.com/l3montree-dev/piletracker/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionMatrix(t *testing.T) {
	rbac, err := NewInMemoryAccessControl()
	require.NoError(t, err)

	cases := []struct {
		role    shared.Role
		object  shared.Object
		action  shared.Action
		allowed bool
	}{
		{shared.RoleViewer, shared.ObjectPile, shared.ActionRead, true},
		{shared.RoleViewer, shared.ObjectStatistics, shared.ActionRead, true},
		{shared.RoleViewer, shared.ObjectPile, shared.ActionCreate, false},
		{shared.RoleViewer, shared.ObjectInvitation, shared.ActionRead, false},
		{shared.RoleEditor, shared.ObjectPile, shared.ActionCreate, true},
		{shared.RoleEditor, shared.ObjectPile, shared.ActionUpdate, true},
		{shared.RoleEditor, shared.ObjectPile, shared.ActionDelete, false},
		{shared.RoleEditor, shared.ObjectProject, shared.ActionRead, true},
		{shared.RoleEditor, shared.ObjectProject, shared.ActionUpdate, false},
		{shared.RoleAdmin, shared.ObjectPile, shared.ActionDelete, true},
		{shared.RoleAdmin, shared.ObjectMember, shared.ActionCreate, true},
		{shared.RoleAdmin, shared.ObjectInvitation, shared.ActionCreate, true},
		{shared.RoleAdmin, shared.ObjectProject, shared.ActionUpdate, true},
		{shared.RoleAdmin, shared.ObjectProject, shared.ActionDelete, false},
		{shared.RoleOwner, shared.ObjectProject, shared.ActionDelete, true},
		{shared.RoleOwner, shared.ObjectPile, shared.ActionRead, true},
		{shared.Role("inspector"), shared.ObjectPile, shared.ActionRead, false},
	}

	for _, c := range cases {
		allowed, err := rbac.IsAllowed(c.role, c.object, c.action)
		assert.NoError(t, err)
		assert.Equal(t, c.allowed, allowed, "%s %s %s", c.role, c.action, c.object)
	}
}

func TestGetPermissions(t *testing.T) {
	rbac, err := NewInMemoryAccessControl()
	require.NoError(t, err)

	t.Run("viewer only reads", func(t *testing.T) {
		permissions, err := rbac.GetPermissions(shared.RoleViewer)
		require.NoError(t, err)
		assert.ElementsMatch(t, []shared.Permission{
			{Object: shared.ObjectProject, Action: shared.ActionRead},
			{Object: shared.ObjectPile, Action: shared.ActionRead},
			{Object: shared.ObjectMember, Action: shared.ActionRead},
			{Object: shared.ObjectStatistics, Action: shared.ActionRead},
		}, permissions)
	})

	t.Run("owner has the inherited permissions", func(t *testing.T) {
		permissions, err := rbac.GetPermissions(shared.RoleOwner)
		require.NoError(t, err)
		assert.Contains(t, permissions, shared.Permission{Object: shared.ObjectProject, Action: shared.ActionDelete})
		assert.Contains(t, permissions, shared.Permission{Object: shared.ObjectPile, Action: shared.ActionCreate})
		assert.Contains(t, permissions, shared.Permission{Object: shared.ObjectStatistics, Action: shared.ActionRead})
	})
}

func TestSeedPoliciesIsIdempotent(t *testing.T) {
	matrix, err := parsePermissionMatrix(permissionsYAML)
	require.NoError(t, err)
	e, err := newEnforcer()
	require.NoError(t, err)

	added, err := seedPolicies(e, matrix)
	require.NoError(t, err)
	assert.Greater(t, added, 0)

	added, err = seedPolicies(e, matrix)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestParsePermissionMatrix(t *testing.T) {
	t.Run("unknown object", func(t *testing.T) {
		_, err := parsePermissionMatrix([]byte("roles:\n  - name: viewer\n    permissions:\n      piles: [read]\n"))
		assert.ErrorContains(t, err, "unknown object")
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := parsePermissionMatrix([]byte("roles:\n  - name: viewer\n    permissions:\n      pile: [approve]\n"))
		assert.ErrorContains(t, err, "unknown action")
	})

	t.Run("inheriting an undefined role", func(t *testing.T) {
		_, err := parsePermissionMatrix([]byte("roles:\n  - name: editor\n    inherits: viewer\n"))
		assert.ErrorContains(t, err, "not defined before")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := parsePermissionMatrix([]byte("roles:\n  - name: superuser\n"))
		assert.ErrorContains(t, err, "unknown role")
	})
}

type inMemoryBroker struct {
	mu          sync.Mutex
	subscribers map[shared.PubSubChannel][]chan map[string]any
}

func (b *inMemoryBroker) Publish(_ context.Context, message shared.PubSubMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers[message.GetChannel()] {
		ch <- message.GetPayload()
	}
	return nil
}

func (b *inMemoryBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan map[string]any, 10)
	if b.subscribers == nil {
		b.subscribers = map[shared.PubSubChannel][]chan map[string]any{}
	}
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch, nil
}

func TestCasbinPubSubWatcher(t *testing.T) {
	broker := &inMemoryBroker{}
	watcher, err := newCasbinPubSubWatcher(broker)
	require.NoError(t, err)

	called := make(chan string, 1)
	require.NoError(t, watcher.SetUpdateCallback(func(msg string) {
		called <- msg
	}))

	require.NoError(t, watcher.Update())

	select {
	case msg := <-called:
		assert.Equal(t, "policy updated", msg)
	case <-time.After(time.Second):
		t.Fatal("update callback was not called")
	}
}
