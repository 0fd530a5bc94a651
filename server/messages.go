// File: server/messages.go
package server

import (
	"github.com/lguibr/updown/game"
	"golang.org/x/net/websocket"
)

// GameTick advances the room by one frame. Sent by the room's own ticker.
type GameTick struct{}

// ClientConnected registers a websocket with a room.
type ClientConnected struct {
	Conn *websocket.Conn
}

// ClientDisconnected is sent when a websocket read loop ends.
type ClientDisconnected struct {
	Conn *websocket.Conn
}

// TouchCommand forwards a validated touch message to the room.
type TouchCommand struct {
	Touch game.TouchMessage
}

// GetStateRequest asks the room for a snapshot. The reply is a game.Snapshot.
type GetStateRequest struct{}

// AddClient tells the broadcaster to start streaming to Conn.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient tells the broadcaster to forget Conn.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastState carries a snapshot to send to every client.
type BroadcastState struct {
	State game.Snapshot
}
