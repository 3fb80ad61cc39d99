// Package flash implements one-shot status messages that survive a
// redirect. The message rides in a short-lived cookie and is cleared the
// first time it is read.
package flash

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Kind discriminates how the message is presented.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is the discriminated result a handler leaves for the next render.
type Message struct {
	Kind    Kind
	Message string
}

const cookieName = "counselport_flash"

// Success leaves a success message for the next rendered page.
func Success(c *gin.Context, message string) {
	set(c, KindSuccess, message)
}

// Error leaves an error message for the next rendered page.
func Error(c *gin.Context, message string) {
	set(c, KindError, message)
}

func set(c *gin.Context, kind Kind, message string) {
	value := url.QueryEscape(string(kind) + ":" + message)
	c.SetCookie(cookieName, value, 60, "/", "", false, true)
}

// Take returns the pending message, if any, and clears it. One-shot
// delivery: a message is displayed at most once.
func Take(c *gin.Context) *Message {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, message, found := strings.Cut(decoded, ":")
	if !found {
		return nil
	}
	return &Message{Kind: Kind(kind), Message: message}
}
