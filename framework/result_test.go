package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestIDString(t *testing.T) {
	assert.Equal(t, "", TestID{}.String())
	assert.Equal(t, "a/b/c", TestID{Path: []string{"a", "b", "c"}}.String())
}

func TestTestIDChildDoesNotShareStorage(t *testing.T) {
	parent := TestID{Path: []string{"group"}}
	first := parent.child("first")
	second := parent.child("second")
	assert.Equal(t, "group/first", first.String())
	assert.Equal(t, "group/second", second.String())
}

func TestResultsOK(t *testing.T) {
	assert.True(t, Results{}.OK())
	assert.False(t, Results{Failures: []TestResult{{}}}.OK())
}

func TestTestFailureError(t *testing.T) {
	f := TestFailure{ID: TestID{Path: []string{"a", "b"}}, Err: errors.New("boom")}
	assert.Equal(t, "[a/b]: boom", f.Error())
}
