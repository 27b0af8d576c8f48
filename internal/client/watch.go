package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/gorilla/websocket"
)

type wsEvent struct {
	Type string `json:"type"`
	Data struct {
		Collection string `json:"collection"`
	} `json:"data"`
}

// Watch connects to the server's websocket feed and refreshes each collection
// the server reports as changed, keeping a long-running console current
// without polling. OnChange, when set, runs after each successful refresh.
// Watch returns when the context is done or the connection drops.
type Watch struct {
	Client   *Client
	Store    *Store
	OnChange func(Collection)
}

func (w *Watch) Run(ctx context.Context) error {
	url := wsURL(w.Client.BaseURL) + "/api/ws?token=" + w.Client.Token

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading event: %w", err)
		}

		var event wsEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("Ignoring malformed event: %v", err)
			continue
		}
		if event.Type != "collection_changed" {
			continue
		}

		col, ok := ParseCollection(event.Data.Collection)
		if !ok {
			log.Printf("Ignoring change event for unknown collection %q", event.Data.Collection)
			continue
		}

		if err := w.Store.Refresh(ctx, col); err != nil {
			log.Printf("Refresh after change event failed: %v", err)
			continue
		}
		if w.OnChange != nil {
			w.OnChange(col)
		}
	}
}

func wsURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	}
	return baseURL
}
