package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_FanOutAndUnsubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var a, b []Notification
	unsubA := bus.Subscribe(func(n Notification) { a = append(a, n) })
	bus.Subscribe(func(n Notification) { b = append(b, n) })

	bus.Success("Added to cart!")
	bus.Error("Failed to update cart")

	assert.Len(t, a, 2)
	assert.Len(t, b, 2)
	assert.Equal(t, LevelSuccess, a[0].Level)
	assert.Equal(t, "Failed to update cart", a[1].Message)

	unsubA()
	bus.Success("Cart cleared!")
	assert.Len(t, a, 2)
	assert.Len(t, b, 3)
}
