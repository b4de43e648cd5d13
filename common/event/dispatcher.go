package event

import (
	"sync"
)

// GuiDispatcher is the mailbox of the UI thread. Any goroutine may Post,
// only the UI thread calls Drain. Posting never blocks.
type GuiDispatcher struct {
	mux     sync.Mutex
	pending []func()
	wakeUp  func()
}

// NewGuiDispatcher creates a mailbox. wakeUp is called after each post so
// the UI loop can schedule a frame; it may be nil.
func NewGuiDispatcher(wakeUp func()) *GuiDispatcher {
	return &GuiDispatcher{
		wakeUp: wakeUp,
	}
}

func (s *GuiDispatcher) Post(fn func()) {
	s.mux.Lock()
	s.pending = append(s.pending, fn)
	s.mux.Unlock()

	if s.wakeUp != nil {
		s.wakeUp()
	}
}

// Drain runs every queued callback in posting order and returns how many
// were run. Callbacks posted while draining run on the next Drain.
func (s *GuiDispatcher) Drain() int {
	s.mux.Lock()
	queued := s.pending
	s.pending = nil
	s.mux.Unlock()

	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

func (s *GuiDispatcher) Pending() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.pending)
}
