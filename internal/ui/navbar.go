// Package ui holds the interactive state of the landing page: the navigation
// bar's scroll and menu flags and the lead capture form. Rendering lives in
// internal/components; this package only owns state and its transitions.
package ui

import "sync"

// ScrollThreshold is the vertical offset, in pixels, past which the
// navigation bar switches to its solid style.
const ScrollThreshold = 20

// IsScrolled reports whether offset is strictly past ScrollThreshold.
func IsScrolled(offset int) bool {
	return offset > ScrollThreshold
}

type ScrollState struct {
	IsScrolled bool
}

// NavState is what the navigation bar renders from.
type NavState struct {
	Scroll   ScrollState
	MenuOpen bool
}

// ScrollSource delivers vertical scroll offsets. Subscribe returns a func
// that removes the listener.
type ScrollSource interface {
	Subscribe(fn func(offset int)) (unsubscribe func())
}

// ScrollFeed is an in-process ScrollSource that fans each offset out to
// every current subscriber.
type ScrollFeed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(int)
}

func NewScrollFeed() *ScrollFeed {
	return &ScrollFeed{subs: make(map[int]func(int))}
}

func (f *ScrollFeed) Subscribe(fn func(offset int)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
}

// Publish notifies every subscriber of offset.
func (f *ScrollFeed) Publish(offset int) {
	f.mu.Lock()
	fns := make([]func(int), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(offset)
	}
}

// Subscribers returns the number of live subscriptions.
func (f *ScrollFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// NavigationBar tracks whether the page is scrolled past the threshold and
// whether the mobile menu is open. It listens to a ScrollSource only while
// mounted.
type NavigationBar struct {
	mu          sync.Mutex
	state       NavState
	unsubscribe func()
}

func NewNavigationBar() *NavigationBar {
	return &NavigationBar{}
}

// Mount subscribes to src. Mounting an already mounted bar is a no-op.
func (n *NavigationBar) Mount(src ScrollSource) {
	n.mu.Lock()
	if n.unsubscribe != nil {
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()

	unsub := src.Subscribe(n.OnScroll)

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.unsubscribe != nil {
		unsub()
		return
	}
	n.unsubscribe = unsub
}

// Unmount drops the subscription. Safe to call more than once.
func (n *NavigationBar) Unmount() {
	n.mu.Lock()
	unsub := n.unsubscribe
	n.unsubscribe = nil
	n.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (n *NavigationBar) Mounted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unsubscribe != nil
}

// OnScroll recomputes the scroll flag from offset.
func (n *NavigationBar) OnScroll(offset int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.Scroll = ScrollState{IsScrolled: IsScrolled(offset)}
}

func (n *NavigationBar) ToggleMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.MenuOpen = !n.state.MenuOpen
}

// CloseMenu closes the mobile menu, as following one of its links does.
func (n *NavigationBar) CloseMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.MenuOpen = false
}

func (n *NavigationBar) State() NavState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}
