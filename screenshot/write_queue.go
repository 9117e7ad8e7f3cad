package screenshot

import (
	"sort"
	"sync"
)

// Shot is a captured screenshot waiting to be written to disk.
type Shot struct {
	Path string
	Data []byte
}

// WriteQueue delivers screenshots to the writer in capture order, even if they were
// accepted out of order. Each shot is tagged with a counter; counters are expected
// to be contiguous starting at 1.
type WriteQueue struct {
	C           chan Shot
	lastCounter int
	deferred    []deferredShot
	lock        sync.Mutex
	closeOnce   sync.Once
}

type deferredShot struct {
	counter int
	shot    Shot
}

func NewWriteQueue(channelSize int) *WriteQueue {
	return &WriteQueue{C: make(chan Shot, channelSize)}
}

func (q *WriteQueue) Accept(counter int, shot Shot) {
	q.lock.Lock()
	if counter > q.lastCounter+1 {
		q.deferred = append(q.deferred, deferredShot{counter: counter, shot: shot})
		sort.Slice(q.deferred, func(i, j int) bool { return q.deferred[i].counter < q.deferred[j].counter })
		q.lock.Unlock()
		return
	}
	q.lastCounter = counter
	q.C <- shot
	for len(q.deferred) > 0 {
		next := q.deferred[0]
		if next.counter != q.lastCounter+1 {
			break
		}
		q.deferred = q.deferred[1:]
		q.lastCounter++
		q.C <- next.shot
	}
	q.lock.Unlock()
}

func (q *WriteQueue) Deferred() []Shot {
	q.lock.Lock()
	ret := make([]Shot, 0, len(q.deferred))
	for _, d := range q.deferred {
		ret = append(ret, d.shot)
	}
	q.lock.Unlock()
	return ret
}

func (q *WriteQueue) Close() {
	q.closeOnce.Do(func() {
		close(q.C)
	})
}
