package steps

import "sync"

// Broadcaster is a Listener that fans every event out to a set of registered
// listeners, in registration order.
type Broadcaster struct {
	listeners []Listener
	lock      sync.Mutex
}

func NewBroadcaster(listeners ...Listener) *Broadcaster {
	b := &Broadcaster{}
	for _, l := range listeners {
		b.Register(l)
	}
	return b
}

func (b *Broadcaster) Register(listener Listener) {
	if listener == nil {
		return
	}
	b.lock.Lock()
	b.listeners = append(b.listeners, listener)
	b.lock.Unlock()
}

func (b *Broadcaster) each(action func(Listener)) {
	b.lock.Lock()
	listeners := append([]Listener(nil), b.listeners...)
	b.lock.Unlock()
	for _, l := range listeners {
		action(l)
	}
}

func (b *Broadcaster) TestSuiteStarted(suiteName string) {
	b.each(func(l Listener) { l.TestSuiteStarted(suiteName) })
}

func (b *Broadcaster) TestStarted(description string) {
	b.each(func(l Listener) { l.TestStarted(description) })
}

func (b *Broadcaster) TestFinished() {
	b.each(func(l Listener) { l.TestFinished() })
}

func (b *Broadcaster) StepStarted(description ExecutedStepDescription) {
	b.each(func(l Listener) { l.StepStarted(description) })
}

func (b *Broadcaster) StepFailed(failure StepFailure) {
	b.each(func(l Listener) { l.StepFailed(failure) })
}

func (b *Broadcaster) StepIgnored() {
	b.each(func(l Listener) { l.StepIgnored() })
}

func (b *Broadcaster) StepPending() {
	b.each(func(l Listener) { l.StepPending() })
}

func (b *Broadcaster) StepFinished() {
	b.each(func(l Listener) { l.StepFinished() })
}

func (b *Broadcaster) TestFailed(cause error) {
	b.each(func(l Listener) { l.TestFailed(cause) })
}

func (b *Broadcaster) TestIgnored() {
	b.each(func(l Listener) { l.TestIgnored() })
}
