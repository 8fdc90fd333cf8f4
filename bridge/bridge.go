// Package bridge implements the message contract with a hosting parent
// document when the widget runs inside an iframe. The host is semi-trusted:
// inbound messages are acted on only when the sender's origin is on the
// configured allow-list; everything else is dropped without a reply.
package bridge

import (
	"log"
	"sync"
)

const (
	TypeGetContentHeight = "GET_CONTENT_HEIGHT"
	TypeResizeIframe     = "RESIZE_IFRAME"
	TypeScrollToTop      = "SCROLL_TO_TOP"
)

// Message is the JSON shape exchanged with the host page.
type Message struct {
	Type   string `json:"type"`
	Height int    `json:"height,omitempty"`
	Path   string `json:"path,omitempty"`
}

// HeightFunc reports the current rendered content height in pixels.
type HeightFunc func() int

// Bridge verifies origins and queues outbound signals per widget session.
type Bridge struct {
	mu      sync.Mutex
	allowed map[string]struct{}
	outbox  map[string][]Message
	height  HeightFunc
}

func New(origins []string, height HeightFunc) *Bridge {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return &Bridge{
		allowed: allowed,
		outbox:  make(map[string][]Message),
		height:  height,
	}
}

// OriginAllowed reports whether origin is on the allow-list.
func (b *Bridge) OriginAllowed(origin string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.allowed[origin]
	return ok
}

// HandleInbound processes one host message. Unrecognized origins and message
// types produce no reply and no state change; bad origins are logged for
// diagnostics only, never surfaced.
func (b *Bridge) HandleInbound(origin string, msg Message) (*Message, bool) {
	if !b.OriginAllowed(origin) {
		log.Printf("bridge: dropped message %q from unlisted origin %q", msg.Type, origin)
		return nil, false
	}
	switch msg.Type {
	case TypeGetContentHeight:
		h := 0
		if b.height != nil {
			h = b.height()
		}
		return &Message{Type: TypeResizeIframe, Height: h}, true
	default:
		return nil, false
	}
}

// QueueScrollToTop records a scroll signal for the session's host page.
// Called on every workflow state entry.
func (b *Bridge) QueueScrollToTop(sessionID, path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.outbox[sessionID] = append(b.outbox[sessionID], Message{Type: TypeScrollToTop, Path: path})
}

// Forget drops everything queued for a session. Wired to session eviction so
// the outbox of a swept session (or one whose host never polls) is released.
func (b *Bridge) Forget(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.outbox, sessionID)
}

// Drain returns and clears the session's queued outbound messages.
func (b *Bridge) Drain(sessionID string) []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.outbox[sessionID]
	delete(b.outbox, sessionID)
	return msgs
}
