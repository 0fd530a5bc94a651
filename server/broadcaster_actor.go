// File: server/broadcaster_actor.go
package server

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/lguibr/updown/bollywood"
	"github.com/lguibr/updown/game"
	"golang.org/x/net/websocket"
)

const writeTimeout = time.Second

// BroadcasterActor streams snapshots to the websocket clients of a room.
// Sends happen on its own goroutine so a slow client never delays a frame.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	selfPID *bollywood.PID
	roomPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer(roomPID *bollywood.PID) bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
			roomPID: roomPID,
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
		}

	case RemoveClient:
		delete(a.clients, msg.Conn)

	case BroadcastState:
		a.broadcast(ctx, msg.State)

	case bollywood.Stopping:
		for conn := range a.clients {
			_ = conn.Close()
		}
		a.clients = make(map[*websocket.Conn]bool)
	}
}

// broadcast drops and closes every client whose send fails and tells the room.
func (a *BroadcasterActor) broadcast(ctx bollywood.Context, state game.Snapshot) {
	for conn := range a.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := websocket.JSON.Send(conn, state)
		_ = conn.SetWriteDeadline(time.Time{})
		if err != nil {
			fmt.Printf("BroadcasterActor %s: send to %s failed: %v\n", a.selfPID, connAddr(conn), err)
			delete(a.clients, conn)
			_ = conn.Close()
			if a.roomPID != nil {
				ctx.Engine().Send(a.roomPID, ClientDisconnected{Conn: conn}, a.selfPID)
			}
		}
	}
}
