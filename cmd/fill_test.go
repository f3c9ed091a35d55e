package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseOutput(t *testing.T) {
	errDisk := errors.New("disk full")
	errWrite := errors.New("write failed")

	t.Run("close error is reported", func(t *testing.T) {
		var err error
		closeOutput(closerFunc(func() error { return errDisk }), &err)
		assert.ErrorIs(t, err, errDisk)
	})

	t.Run("earlier error wins", func(t *testing.T) {
		err := errWrite
		closed := false
		closeOutput(closerFunc(func() error { closed = true; return errDisk }), &err)
		assert.True(t, closed)
		assert.ErrorIs(t, err, errWrite)
		assert.NotErrorIs(t, err, errDisk)
	})

	t.Run("clean close", func(t *testing.T) {
		var err error
		closeOutput(closerFunc(func() error { return nil }), &err)
		assert.NoError(t, err)
	})
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold([]string{"Orders", "users"}, "USERS"))
	assert.False(t, containsFold([]string{"orders"}, "order"))
}
