package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/updown/game"
	"github.com/lguibr/updown/render"
	"golang.org/x/net/websocket"
)

type client struct {
	screen  tcell.Screen
	conn    *websocket.Conn
	latest  *game.Snapshot
	pressed bool
}

func main() {
	addr := flag.String("addr", "ws://localhost:3001/subscribe", "websocket address of the server")
	origin := flag.String("origin", "http://localhost/", "origin header sent when dialing")
	flag.Parse()

	conn, err := websocket.Dial(*addr, "", *origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: dial %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	c := &client{screen: screen, conn: conn}
	err = c.run()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *client) run() error {
	snapshots := make(chan game.Snapshot, 4)
	recvErr := make(chan error, 1)
	go func() {
		for {
			var raw []byte
			if err := websocket.Message.Receive(c.conn, &raw); err != nil {
				recvErr <- err
				return
			}
			snapshot, ok, err := decodeSnapshot(raw)
			if err != nil {
				recvErr <- err
				return
			}
			if ok {
				snapshots <- snapshot
			}
		}
	}()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case snapshot := <-snapshots:
			c.latest = &snapshot
			c.draw()
		case err := <-recvErr:
			return fmt.Errorf("connection lost: %w", err)
		case ev := <-events:
			if !c.handleEvent(ev) {
				return nil
			}
		}
	}
}

// decodeSnapshot reads the message header first; ok is false for message
// types the client does not draw.
func decodeSnapshot(raw []byte) (game.Snapshot, bool, error) {
	var header game.MessageHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return game.Snapshot{}, false, fmt.Errorf("decode header: %w", err)
	}
	if header.MessageType != game.MessageTypeGameState {
		return game.Snapshot{}, false, nil
	}
	var snapshot game.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return game.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, true, nil
}

// handleEvent returns false when the user asks to quit.
func (c *client) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		if c.latest == nil {
			return true
		}
		pressed := ev.Buttons()&tcell.Button1 != 0
		phase, ok := touchPhase(pressed, c.pressed)
		c.pressed = pressed
		if !ok {
			return true
		}
		x, y := ev.Position()
		cols, rows := c.screen.Size()
		view := render.NewViewport(c.latest.World, cols, rows-1)
		msg := game.NewTouchMessage(phase, view.ToWorld(x, y))
		if err := websocket.JSON.Send(c.conn, msg); err != nil {
			// The receive loop reports the broken connection.
			return true
		}
	case *tcell.EventResize:
		c.screen.Sync()
		c.draw()
	}
	return true
}

// touchPhase turns button transitions into touch phases. Motion without the
// button held is not a touch.
func touchPhase(pressed, wasPressed bool) (game.TouchPhase, bool) {
	switch {
	case pressed && !wasPressed:
		return game.TouchBegin, true
	case pressed && wasPressed:
		return game.TouchMove, true
	case !pressed && wasPressed:
		return game.TouchEnd, true
	default:
		return "", false
	}
}

func (c *client) draw() {
	if c.latest == nil {
		return
	}
	cols, rows := c.screen.Size()
	// Last row is the status line.
	frame := render.Render(*c.latest, cols, rows-1)

	c.screen.Clear()
	for r, row := range frame.Cells {
		for col, cell := range row {
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cell.Color[0]), int32(cell.Color[1]), int32(cell.Color[2])))
			c.screen.SetContent(col, r, cell.Rune, nil, style)
		}
	}
	status := fmt.Sprintf(" score %d  wave %d  %s ", c.latest.Score, c.latest.Wave, c.latest.Phase)
	for i, ch := range status {
		if i >= cols {
			break
		}
		c.screen.SetContent(i, rows-1, ch, nil, tcell.StyleDefault.Reverse(true))
	}
	c.screen.Show()
}
