package assetbook

import (
	"sync"
	"time"
)

// BannerTTL is how long a banner stays visible.
const BannerTTL = 3 * time.Second

// Kind is the flavor of a banner.
type Kind string

const (
	Success Kind = "success"
	Failure Kind = "error"
)

// Notification is a banner message.
type Notification struct {
	Message string
	Kind    Kind
	seq     uint64
}

// Display shows and removes banners.
// Its methods are called with the notifier locked and must not call back into it.
type Display interface {
	Show(Notification)
	Clear(Notification)
}

// Notifier keeps at most one banner visible. A new banner replaces the
// current one, every banner removes itself TTL after it was shown. An expiring
// banner only ever removes itself, never a banner that replaced it.
type Notifier struct {
	mu      sync.Mutex
	display Display
	ttl     time.Duration
	current *Notification
	seq     uint64
}

// NewNotifier returns a notifier drawing on d. A zero ttl means BannerTTL.
func NewNotifier(d Display, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = BannerTTL
	}
	return &Notifier{display: d, ttl: ttl}
}

// Notify shows message, replacing any visible banner.
func (n *Notifier) Notify(message string, kind Kind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil {
		n.clear(*n.current)
	}
	n.seq++
	note := Notification{Message: message, Kind: kind, seq: n.seq}
	n.current = &note
	if n.display != nil {
		n.display.Show(note)
	}
	time.AfterFunc(n.ttl, func() { n.expire(note.seq) })
}

// Error shows err as a failure banner.
func (n *Notifier) Error(err error) { n.Notify(err.Error(), Failure) }

// Current returns the visible banner, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil || n.current.seq != seq {
		return
	}
	n.clear(*n.current)
}

func (n *Notifier) clear(note Notification) {
	n.current = nil
	if n.display != nil {
		n.display.Clear(note)
	}
}
