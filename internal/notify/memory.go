package notify

import (
	"context"
	"sync"
)

// Message is one captured notification.
type Message struct {
	Subject string
	Body    string
}

// CaptureNotifier records published messages in memory, for tests and the
// local development server.
type CaptureNotifier struct {
	mu       sync.Mutex
	messages []Message

	// Err, when set, is returned from Publish.
	Err error
}

func NewCaptureNotifier() *CaptureNotifier {
	return &CaptureNotifier{}
}

func (n *CaptureNotifier) Publish(_ context.Context, subject, message string) error {
	if n.Err != nil {
		return n.Err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, Message{Subject: subject, Body: message})
	return nil
}

// Messages returns a copy of everything published so far.
func (n *CaptureNotifier) Messages() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Message, len(n.messages))
	copy(out, n.messages)
	return out
}
