package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSaga(t *testing.T) {
	var trail []string

	record := func(entry string, err error) func(context.Context) error {
		return func(context.Context) error {
			trail = append(trail, entry)

			return err
		}
	}

	t.Run("all steps succeed", func(t *testing.T) {
		trail = nil

		err := runSaga(context.Background(),
			sagaStep{name: "a", execute: record("a", nil), compensate: record("undo a", nil)},
			sagaStep{name: "b", execute: record("b", nil)},
		)

		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, trail)
	})

	t.Run("failure compensates completed steps in reverse", func(t *testing.T) {
		trail = nil
		stepErr := errors.New("boom")

		err := runSaga(context.Background(),
			sagaStep{name: "a", execute: record("a", nil), compensate: record("undo a", nil)},
			sagaStep{name: "b", execute: record("b", nil), compensate: record("undo b", errors.New("stuck"))},
			sagaStep{name: "c", execute: record("c", stepErr), compensate: record("undo c", nil)},
		)

		assert.ErrorIs(t, err, stepErr)
		assert.Equal(t, []string{"a", "b", "c", "undo b", "undo a"}, trail)
	})
}
