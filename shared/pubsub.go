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

package shared

import "context"

type PubSubChannel string

const (
	PolicyChange PubSubChannel = "policyChange"
	PileChange   PubSubChannel = "pileChange"
)

type PubSubMessage interface {
	GetChannel() PubSubChannel
	GetPayload() map[string]any
}

type PubSubBroker interface {
	Publish(ctx context.Context, message PubSubMessage) error
	Subscribe(topic PubSubChannel) (<-chan map[string]any, error)
}

type SimpleMessage struct {
	Channel PubSubChannel
	Payload map[string]any
}

func (m SimpleMessage) GetChannel() PubSubChannel {
	return m.Channel
}

func (m SimpleMessage) GetPayload() map[string]any {
	return m.Payload
}

// NewSimplePubSubMessage creates a new SimpleMessage instance.
func NewSimplePubSubMessage(channel PubSubChannel, payload map[string]any) *SimpleMessage {
	return &SimpleMessage{
		Channel: channel,
		Payload: payload,
	}
}

type PileChangeType string

const (
	PileCreated PileChangeType = "pile.created"
	PileUpdated PileChangeType = "pile.updated"
	PileDeleted PileChangeType = "pile.deleted"
	// sent once per import instead of one message per row
	PilesImported PileChangeType = "piles.imported"
	// the project tolerance changed and the statuses were derived again
	PilesRederived PileChangeType = "piles.rederived"
)

// NewPileChangeMessage builds the message which is fanned out to the live websocket connections.
func NewPileChangeMessage(projectID string, changeType PileChangeType, pile any) *SimpleMessage {
	return NewSimplePubSubMessage(PileChange, map[string]any{
		"projectId": projectID,
		"type":      string(changeType),
		"pile":      pile,
	})
}
