// Package flash carries one-shot status messages across a redirect in a
// signed cookie.
package flash

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Category classifies a message for display
type Category string

const (
	Success Category = "success"
	Error   Category = "error"
	Info    Category = "info"
)

// Message is a single flash entry
type Message struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

const (
	cookieName = "flash"
	pendingKey = "flash.pending"
	defaultTTL = 5 * time.Minute
)

// Flasher reads and writes the flash cookie.
type Flasher struct {
	secret []byte
	ttl    time.Duration
}

// New returns a Flasher signing cookies with secret.
func New(secret string) *Flasher {
	return &Flasher{secret: []byte(secret), ttl: defaultTTL}
}

// Add queues a message for the next page view. Messages added earlier in the
// same request, or still unread from a previous one, are kept.
func (f *Flasher) Add(c *gin.Context, category Category, text string) {
	messages := f.pending(c)
	messages = append(messages, Message{Category: category, Text: text})
	c.Set(pendingKey, messages)

	token, err := signMessages(f.secret, messages, f.ttl)
	if err != nil {
		_ = c.Error(err)
		return
	}
	f.setCookie(c, token, int(f.ttl.Seconds()))
}

// Pop returns and clears the pending messages. Invalid or expired cookies
// are discarded silently.
func (f *Flasher) Pop(c *gin.Context) []Message {
	messages := f.pending(c)
	c.Set(pendingKey, []Message(nil))
	if _, err := c.Cookie(cookieName); err == nil {
		f.setCookie(c, "", -1)
	}
	return messages
}

func (f *Flasher) pending(c *gin.Context) []Message {
	if v, ok := c.Get(pendingKey); ok {
		messages, _ := v.([]Message)
		return messages
	}

	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}
	messages, err := parseMessages(f.secret, raw)
	if err != nil {
		return nil
	}
	return messages
}

func (f *Flasher) setCookie(c *gin.Context, value string, maxAge int) {
	// Replace rather than stack Set-Cookie headers when called twice per request
	header := c.Writer.Header()
	kept := header.Values("Set-Cookie")[:0:0]
	for _, v := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(v, cookieName+"=") {
			kept = append(kept, v)
		}
	}
	header.Del("Set-Cookie")
	for _, v := range kept {
		header.Add("Set-Cookie", v)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, value, maxAge, "/", "", false, true)
}
