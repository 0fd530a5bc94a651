// File: server/server.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/lguibr/updown/bollywood"
	"github.com/lguibr/updown/game"
	"golang.org/x/net/websocket"
)

const defaultAskTimeout = time.Second

// Server exposes a room over HTTP and websocket.
type Server struct {
	engine     *bollywood.Engine
	roomPID    *bollywood.PID
	askTimeout time.Duration
}

func New(engine *bollywood.Engine, roomPID *bollywood.PID) *Server {
	return &Server{engine: engine, roomPID: roomPID, askTimeout: defaultAskTimeout}
}

// StartRoom spawns a room actor on engine.
func StartRoom(engine *bollywood.Engine, props *bollywood.Props) (*bollywood.PID, error) {
	pid := engine.Spawn(props)
	if pid == nil {
		return nil, errors.New("start room: engine refused to spawn")
	}
	return pid, nil
}

// Mux routes GET / to the state handler and /subscribe to the websocket.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleGetState())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	return mux
}

// HandleSubscribe registers the connection with the room and forwards its
// touch messages until it closes.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		addr := connAddr(ws)
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", addr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		s.engine.Send(s.roomPID, ClientConnected{Conn: ws}, nil)
		defer s.engine.Send(s.roomPID, ClientDisconnected{Conn: ws}, nil)
		s.readLoop(ws, addr)
	}
}

// readLoop dispatches on the message header. Payloads that are not JSON end
// the connection; unknown message types are skipped.
func (s *Server) readLoop(conn *websocket.Conn, addr string) {
	for {
		var raw []byte
		if err := websocket.Message.Receive(conn, &raw); err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Printf("ReadLoop: error receiving from %s: %v\n", addr, err)
			}
			return
		}

		var header game.MessageHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			fmt.Printf("ReadLoop: invalid JSON from %s: %v\n", addr, err)
			return
		}

		switch header.MessageType {
		case game.MessageTypeTouch:
			var msg game.TouchMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				fmt.Printf("ReadLoop: invalid touch from %s: %v\n", addr, err)
				return
			}
			if err := msg.Validate(); err != nil {
				fmt.Printf("ReadLoop: ignoring message from %s: %v\n", addr, err)
				continue
			}
			s.engine.Send(s.roomPID, TouchCommand{Touch: msg}, nil)
		default:
			fmt.Printf("ReadLoop: ignoring message type %q from %s\n", header.MessageType, addr)
		}
	}
}

// HandleGetState answers with the current room snapshot as JSON.
func (s *Server) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		reply, err := s.engine.Ask(s.roomPID, GetStateRequest{}, s.askTimeout)
		if err != nil {
			fmt.Printf("HandleGetState: %v\n", err)
			http.Error(w, "room unavailable", http.StatusServiceUnavailable)
			return
		}
		snapshot, ok := reply.(game.Snapshot)
		if !ok {
			http.Error(w, fmt.Sprintf("unexpected reply %T", reply), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			fmt.Println("HandleGetState: error writing response:", err)
		}
	}
}

func connAddr(conn *websocket.Conn) string {
	if conn == nil || conn.Request() == nil {
		return "unknown"
	}
	return conn.Request().RemoteAddr
}
