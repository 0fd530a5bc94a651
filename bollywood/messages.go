// File: bollywood/messages.go
package bollywood

// Started is the first message every actor receives.
type Started struct{}

// Stopping asks an actor to release its resources. No user message is
// delivered after it.
type Stopping struct{}

// Stopped is the last message an actor receives, after its loop exited.
type Stopped struct{}

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
	replyCh chan interface{}
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
