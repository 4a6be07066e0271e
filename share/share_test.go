package share

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	links := Build(1200, "")
	require.Len(t, links, 3)

	text := "I%20scored%201200%20points%20in%20Lane%20Dash!%20Can%20you%20beat%20me%3F%20Check%20it%20out%20here%3A%20https%3A%2F%2Flane-dash.pages.dev"
	assert.Equal(t, Twitter, links[0].Destination)
	assert.Equal(t, "https://twitter.com/intent/tweet?text="+text, links[0].URL)
	assert.Equal(t, Facebook, links[1].Destination)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Flane-dash.pages.dev&quote="+text, links[1].URL)
	assert.Equal(t, WhatsApp, links[2].Destination)
	assert.Equal(t, "https://api.whatsapp.com/send?text="+text, links[2].URL)
}

func TestLinksDecodeBackToMessage(t *testing.T) {
	game := "https://example.com/play?x=1&y=(2)"
	for _, l := range Build(42, game) {
		u, err := url.Parse(l.URL)
		require.NoError(t, err)
		q := u.Query()
		msg := q.Get("text")
		if l.Destination == Facebook {
			msg = q.Get("quote")
			assert.Equal(t, game, q.Get("u"))
		}
		assert.Equal(t, Message(42, game), msg, l.Destination.Name())
	}
}

func TestEscapeKeepsUnreservedMarks(t *testing.T) {
	assert.Equal(t, "a%20b!'()*-_.~", escape("a b!'()*-_.~"))
	assert.Equal(t, "%26%3D%2B", escape("&=+"))
}
