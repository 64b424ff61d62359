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

package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/l3montree-dev/piletracker/middlewares"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

type liveClient struct {
	projectID string
	conn      *websocket.Conn
	send      chan []byte
}

// LiveController pushes pile changes of a project to its websocket clients. The broker
// is subscribed once, every replica receives every change through it.
type LiveController struct {
	broker   shared.PubSubBroker
	upgrader websocket.Upgrader

	mu         sync.RWMutex
	clients    map[string]map[*liveClient]struct{}
	subscribed bool
}

func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return slices.Contains(middlewares.AllowedOrigins(), origin)
}

func NewLiveController(broker shared.PubSubBroker) *LiveController {
	return &LiveController{
		broker:   broker,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
		clients:  make(map[string]map[*liveClient]struct{}),
	}
}

func (c *LiveController) ensureSubscribed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subscribed {
		return nil
	}

	ch, err := c.broker.Subscribe(shared.PileChange)
	if err != nil {
		return err
	}
	c.subscribed = true
	go c.fanOut(ch)
	return nil
}

func (c *LiveController) fanOut(ch <-chan map[string]any) {
	for payload := range ch {
		projectID, _ := payload["projectId"].(string)
		if projectID == "" {
			continue
		}
		msg, err := json.Marshal(payload)
		if err != nil {
			slog.Error("could not marshal pile change", "err", err)
			continue
		}
		c.broadcast(projectID, msg)
	}

	// the broker lost its connection, the next client subscribes again
	c.mu.Lock()
	c.subscribed = false
	c.mu.Unlock()
}

func (c *LiveController) broadcast(projectID string, msg []byte) {
	var slow []*liveClient

	c.mu.RLock()
	for client := range c.clients[projectID] {
		select {
		case client.send <- msg:
		default:
			slow = append(slow, client)
		}
	}
	c.mu.RUnlock()

	for _, client := range slow {
		slog.Warn("dropping slow websocket client", "projectID", projectID)
		c.unregister(client)
	}
}

// newLiveClient queues the welcome message while no broadcast can reach the client yet.
func newLiveClient(projectID string, conn *websocket.Conn) *liveClient {
	client := &liveClient{
		projectID: projectID,
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
	}
	welcome, _ := json.Marshal(map[string]string{"type": "connected", "projectId": projectID})
	client.send <- welcome
	return client
}

func (c *LiveController) register(client *liveClient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clients[client.projectID] == nil {
		c.clients[client.projectID] = make(map[*liveClient]struct{})
	}
	c.clients[client.projectID][client] = struct{}{}
}

// unregister closes the send channel, the write loop then closes the connection.
func (c *LiveController) unregister(client *liveClient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	clients, ok := c.clients[client.projectID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(c.clients, client.projectID)
	}
	close(client.send)
}

func (c *LiveController) connectionCount(projectID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.clients[projectID])
}

func (client *liveClient) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			if err := client.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := client.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *LiveController) Connect(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	if err := c.ensureSubscribed(); err != nil {
		return echo.NewHTTPError(503, "live updates are not available").WithInternal(err)
	}

	conn, err := c.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// the upgrader already answered the request
		slog.Warn("websocket upgrade failed", "err", err)
		return nil
	}

	client := newLiveClient(project.ID.String(), conn)
	c.register(client)
	go client.writeLoop()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// clients only listen, reading keeps the pong handler running and notices the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket closed unexpectedly", "projectID", client.projectID, "err", err)
			}
			break
		}
	}

	c.unregister(client)
	return nil
}
