package transcript

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who produced a message.
type Sender string

const (
	User Sender = "user"
	Bot  Sender = "bot"
)

// Entry is one message in a conversation.
type Entry struct {
	Sender  Sender
	Message string
	At      time.Time
}

// Transcript is an append-only conversation log for a single session.
// It is not safe for concurrent writers.
type Transcript struct {
	sessionID string
	entries   []Entry
	now       func() time.Time
}

// New starts an empty transcript with a fresh session id.
func New() *Transcript {
	return &Transcript{sessionID: uuid.NewString(), now: time.Now}
}

// SessionID returns the id assigned when the transcript was created.
func (t *Transcript) SessionID() string { return t.sessionID }

// Append records a message and returns the stored entry.
func (t *Transcript) Append(sender Sender, message string) Entry {
	e := Entry{Sender: sender, Message: message, At: t.now()}
	t.entries = append(t.entries, e)
	return e
}

// Entries returns a copy of the messages in the order they were appended.
func (t *Transcript) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of messages.
func (t *Transcript) Len() int { return len(t.entries) }
