// File: server/room_actor.go
package server

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/lguibr/updown/arena"
	"github.com/lguibr/updown/bollywood"
	"github.com/lguibr/updown/game"
	"github.com/lguibr/updown/utils"
	"golang.org/x/net/websocket"
)

// RoomActor owns one game session. Every access to the session happens in
// Receive, so frames never overlap with touch input.
type RoomActor struct {
	cfg     utils.Config
	engine  *bollywood.Engine
	session *game.Session
	arena   *arena.Arena
	queue   *game.Queue

	selfPID        *bollywood.PID
	broadcasterPID *bollywood.PID
	clients        map[*websocket.Conn]bool

	ticker   *time.Ticker
	stopTick chan struct{}

	pending        []game.Request
	sinceBroadcast time.Duration
}

// NewRoomProducer creates a producer for RoomActor.
func NewRoomProducer(engine *bollywood.Engine, cfg utils.Config, rng utils.Random) bollywood.Producer {
	return func() bollywood.Actor {
		queue := game.NewQueue()
		session := game.NewSession(cfg, rng, queue)
		return &RoomActor{
			cfg:     cfg,
			engine:  engine,
			session: session,
			arena:   arena.New(session),
			queue:   queue,
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

// Receive handles messages for the RoomActor.
func (a *RoomActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in RoomActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.broadcasterPID = a.engine.Spawn(bollywood.NewProps(NewBroadcasterProducer(a.selfPID)))
		a.startTicker()
		fmt.Printf("RoomActor %s: started (tick %s, broadcast %s)\n", a.selfPID, a.cfg.TickPeriod, a.cfg.BroadcastPeriod)

	case GameTick:
		a.tick()

	case ClientConnected:
		if msg.Conn == nil || a.clients[msg.Conn] {
			return
		}
		a.clients[msg.Conn] = true
		a.engine.Send(a.broadcasterPID, AddClient{Conn: msg.Conn}, a.selfPID)
		fmt.Printf("RoomActor %s: client %s connected (%d total)\n", a.selfPID, connAddr(msg.Conn), len(a.clients))

	case ClientDisconnected:
		if !a.clients[msg.Conn] {
			return
		}
		delete(a.clients, msg.Conn)
		a.engine.Send(a.broadcasterPID, RemoveClient{Conn: msg.Conn}, a.selfPID)
		if len(a.clients) == 0 {
			a.session.Suspend()
		}
		fmt.Printf("RoomActor %s: client %s disconnected (%d left)\n", a.selfPID, connAddr(msg.Conn), len(a.clients))

	case TouchCommand:
		if err := a.session.ApplyTouch(msg.Touch); err != nil {
			fmt.Printf("RoomActor %s: dropping touch: %v\n", a.selfPID, err)
		}

	case GetStateRequest:
		ctx.Reply(a.session.Snapshot())

	case bollywood.Stopping:
		a.stopTicker()
		if a.broadcasterPID != nil {
			a.engine.Stop(a.broadcasterPID)
		}
		fmt.Printf("RoomActor %s: stopping at frame %d, score %d, %d contacts active\n", a.selfPID, a.session.Frame(), a.session.Score(), a.arena.ActiveContacts())

	case bollywood.Stopped:
	default:
		fmt.Printf("RoomActor %s: unexpected message %T\n", a.selfPID, msg)
	}
}

// tick runs one frame and forwards a snapshot, with every effect emitted
// since the previous one, once BroadcastPeriod has elapsed.
func (a *RoomActor) tick() {
	a.arena.Tick(a.cfg.TickPeriod.Seconds())
	a.pending = append(a.pending, a.queue.Drain()...)

	a.sinceBroadcast += a.cfg.TickPeriod
	if a.sinceBroadcast < a.cfg.BroadcastPeriod {
		return
	}
	a.sinceBroadcast = 0

	snapshot := a.session.Snapshot()
	snapshot.Effects = a.pending
	a.pending = nil
	if a.broadcasterPID != nil {
		a.engine.Send(a.broadcasterPID, BroadcastState{State: snapshot}, a.selfPID)
	}
}

func (a *RoomActor) startTicker() {
	if a.ticker != nil {
		return
	}
	a.ticker = time.NewTicker(a.cfg.TickPeriod)
	a.stopTick = make(chan struct{})
	ticker, stop, engine, self := a.ticker, a.stopTick, a.engine, a.selfPID

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				engine.Send(self, GameTick{}, nil)
			}
		}
	}()
}

func (a *RoomActor) stopTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	close(a.stopTick)
	a.ticker = nil
}
