package screenshot

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeShot(counter int) Shot {
	return Shot{
		Path: fmt.Sprintf("shot-%d.png", counter),
		Data: []byte(fmt.Sprintf("image-%d", counter)),
	}
}

func acceptTestShots(q *WriteQueue, counters ...int) {
	for _, c := range counters {
		q.Accept(c, fakeShot(c))
	}
}

func expectTestShots(t *testing.T, q *WriteQueue, counters ...int) {
	for _, c := range counters {
		select {
		case shot := <-q.C:
			assert.Equal(t, fakeShot(c).Path, shot.Path)
		case <-time.After(time.Second):
			var deferredList []string
			for _, d := range q.Deferred() {
				deferredList = append(deferredList, d.Path)
			}
			require.Fail(t, "timed out waiting for shot from queue",
				"was waiting for shot %d; deferred shots were [%v]", c, strings.Join(deferredList, ","))
		}
	}
}

func expectDeferredShots(t *testing.T, q *WriteQueue, counters ...int) {
	var expected, actual []string
	for _, c := range counters {
		expected = append(expected, fakeShot(c).Path)
	}
	for _, d := range q.Deferred() {
		actual = append(actual, d.Path)
	}
	assert.Equal(t, expected, actual, "did not see expected shots in deferred list")
}

func TestWriteQueueWithShotsInOrder(t *testing.T) {
	q := NewWriteQueue(10)
	acceptTestShots(q, 1, 2, 3, 4, 5)
	expectDeferredShots(t, q) // should be empty
	expectTestShots(t, q, 1, 2, 3, 4, 5)
}

func TestWriteQueueWithShotsOutOfOrder(t *testing.T) {
	q := NewWriteQueue(10)

	acceptTestShots(q, 3)
	expectDeferredShots(t, q, 3)

	acceptTestShots(q, 2)
	expectDeferredShots(t, q, 2, 3)

	acceptTestShots(q, 6)
	expectDeferredShots(t, q, 2, 3, 6)

	acceptTestShots(q, 1)
	expectTestShots(t, q, 1, 2, 3)
	expectDeferredShots(t, q, 6)

	acceptTestShots(q, 5)
	expectDeferredShots(t, q, 5, 6)

	acceptTestShots(q, 4)
	expectTestShots(t, q, 4, 5, 6)
	expectDeferredShots(t, q) // empty
}

func TestWriteQueueCloseIsIdempotent(t *testing.T) {
	q := NewWriteQueue(10)
	q.Close()
	q.Close()
	_, open := <-q.C
	assert.False(t, open)
}
