package usecase

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAutosave_BurstProducesOneCommit(t *testing.T) {
	var commits int32
	a := NewAutosaver(60*time.Millisecond, func() { atomic.AddInt32(&commits, 1) })

	// three rapid edits inside one quiet window
	a.Touch()
	time.Sleep(10 * time.Millisecond)
	a.Touch()
	time.Sleep(10 * time.Millisecond)
	a.Touch()

	time.Sleep(30 * time.Millisecond)
	assert.EqualValues(t, 0, atomic.LoadInt32(&commits), "must wait for the full quiet window after the last edit")

	time.Sleep(100 * time.Millisecond)
	assert.EqualValues(t, 1, atomic.LoadInt32(&commits))
	assert.False(t, a.Pending())
}

func TestAutosave_SeparateBurstsCommitSeparately(t *testing.T) {
	var commits int32
	a := NewAutosaver(30*time.Millisecond, func() { atomic.AddInt32(&commits, 1) })

	a.Touch()
	time.Sleep(80 * time.Millisecond)
	a.Touch()
	time.Sleep(80 * time.Millisecond)

	assert.EqualValues(t, 2, atomic.LoadInt32(&commits))
}

func TestAutosave_FlushCommitsImmediately(t *testing.T) {
	var commits int32
	a := NewAutosaver(time.Hour, func() { atomic.AddInt32(&commits, 1) })

	a.Touch()
	a.Flush()

	assert.EqualValues(t, 1, atomic.LoadInt32(&commits))
	assert.False(t, a.Pending())

	// the cancelled timer must not fire a second commit later
	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 1, atomic.LoadInt32(&commits))
}

func TestAutosave_FlushWithoutEditsIsNoOp(t *testing.T) {
	var commits int32
	a := NewAutosaver(10*time.Millisecond, func() { atomic.AddInt32(&commits, 1) })

	a.Flush()

	assert.EqualValues(t, 0, atomic.LoadInt32(&commits))
}

func TestAutosave_DefaultDelay(t *testing.T) {
	a := NewAutosaver(0, func() {})
	assert.Equal(t, DefaultAutosaveDelay, a.delay)
}
