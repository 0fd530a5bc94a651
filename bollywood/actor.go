// File: bollywood/actor.go
package bollywood

// Actor processes the messages of its mailbox one at a time.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh actor instance for a spawn.
type Producer func() Actor

// Props describes how to spawn an actor.
type Props struct {
	producer    Producer
	mailboxSize int
}

// NewProps panics on a nil producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer, mailboxSize: defaultMailboxSize}
}

// WithMailboxSize overrides the mailbox capacity. Messages sent to a full
// mailbox are dropped.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

func (p *Props) Produce() Actor { return p.producer() }

// PID references a running actor.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
