package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesSentinel(t *testing.T) {
	sentinel := New("sentinel")

	wrapped := Wrap(sentinel, "loading session")
	assert.True(t, Is(wrapped, sentinel))
	assert.Equal(t, "loading session: sentinel", wrapped.Error())

	// pkg/errors attaches a stack that shows up with %+v
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAs_FindsTypedError(t *testing.T) {
	err := Wrapf(&codedError{code: 12}, "exchange login")

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, 12, target.code)
}

func TestJoin(t *testing.T) {
	a, b := New("a"), New("b")
	joined := Join(a, b)
	assert.True(t, Is(joined, a))
	assert.True(t, Is(joined, b))
}
