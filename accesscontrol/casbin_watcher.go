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
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/casbin/casbin/v2/persist"
	"github.com/l3montree-dev/piletracker/shared"
)

// casbinPubSubWatcher tells the other replicas to reload the policy after a change.
type casbinPubSubWatcher struct {
	broker   shared.PubSubBroker
	mu       sync.RWMutex
	callback func(string)
}

var _ persist.Watcher = &casbinPubSubWatcher{}

func newPolicyChangeMessage() shared.PubSubMessage {
	return shared.NewSimplePubSubMessage(shared.PolicyChange, map[string]any{
		"action": "update",
	})
}

func newCasbinPubSubWatcher(broker shared.PubSubBroker) (*casbinPubSubWatcher, error) {
	ch, err := broker.Subscribe(shared.PolicyChange)
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to policy change topic: %w", err)
	}

	watcher := &casbinPubSubWatcher{
		broker: broker,
	}

	go watcher.listenForUpdates(ch)
	return watcher, nil
}

func (w *casbinPubSubWatcher) listenForUpdates(ch <-chan map[string]any) {
	slog.Debug("listening for policy change notifications")
	for range ch {
		w.mu.RLock()
		callback := w.callback
		w.mu.RUnlock()
		if callback == nil {
			continue
		}
		slog.Debug("received policy change notification")
		callback("policy updated")
	}
}

func (w *casbinPubSubWatcher) SetUpdateCallback(callback func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callback = callback
	return nil
}

func (w *casbinPubSubWatcher) Update() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.broker.Publish(ctx, newPolicyChangeMessage()); err != nil {
		// the local policy is already updated, only the other replicas miss the change
		slog.Error("could not publish policy change", "err", err)
	}
	return nil
}

func (w *casbinPubSubWatcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callback = nil
}
