// Package share builds the links offered on the game-over screen.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultGameURL = "https://lane-dash.pages.dev"

const (
	twitterBase  = "https://twitter.com/intent/tweet"
	facebookBase = "https://www.facebook.com/sharer/sharer.php"
	whatsappBase = "https://api.whatsapp.com/send"
)

type Destination int

const (
	Twitter Destination = iota
	Facebook
	WhatsApp
)

func (d Destination) Name() string {
	switch d {
	case Twitter:
		return "Twitter"
	case Facebook:
		return "Facebook"
	case WhatsApp:
		return "WhatsApp"
	default:
		return fmt.Sprintf("n/a:%d", d)
	}
}

type Link struct {
	Destination Destination
	URL         string
}

func Message(score int, gameURL string) string {
	return fmt.Sprintf("I scored %d points in Lane Dash! Can you beat me? Check it out here: %s", score, gameURL)
}

// Build returns one link per destination, in Destination order.
func Build(score int, gameURL string) []Link {
	if gameURL == "" {
		gameURL = DefaultGameURL
	}
	text := escape(Message(score, gameURL))
	return []Link{
		{Twitter, twitterBase + "?text=" + text},
		{Facebook, facebookBase + "?u=" + escape(gameURL) + "&quote=" + text},
		{WhatsApp, whatsappBase + "?text=" + text},
	}
}

// escape matches what browsers produce for encodeURIComponent: spaces become
// %20, and !'()* stay literal.
func escape(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	for _, r := range []string{"!", "'", "(", ")", "*"} {
		e = strings.ReplaceAll(e, url.QueryEscape(r), r)
	}
	return e
}
