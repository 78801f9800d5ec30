package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishIsScopedToPage(t *testing.T) {
	b := NewBroker()

	home := b.Subscribe("home")
	galerie := b.Subscribe("galerie")

	b.Publish("home", "section.saved", map[string]string{"id": "1"})

	select {
	case ev := <-home:
		assert.Equal(t, "section.saved", ev.Type)
		assert.Equal(t, "home", ev.Page)
	default:
		t.Fatal("home subscriber got nothing")
	}

	select {
	case <-galerie:
		t.Fatal("galerie subscriber must not receive home events")
	default:
	}
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("home")

	for i := 0; i < clientBuffer*3; i++ {
		b.Publish("home", "section.saved", i)
	}

	assert.Len(t, ch, clientBuffer)
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("home")
	require.Equal(t, 1, b.Subscribers("home"))

	b.Unsubscribe("home", ch)
	assert.Equal(t, 0, b.Subscribers("home"))

	_, open := <-ch
	assert.False(t, open)

	assert.NotPanics(t, func() { b.Unsubscribe("home", ch) })
}
