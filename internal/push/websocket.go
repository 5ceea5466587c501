package push

import (
	"context"

	"github.com/gorilla/websocket"
)

// DialWebsocket is the production channel factory.
func DialWebsocket(ctx context.Context, url string) (Channel, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, err
	}
	return wsChannel{conn: conn}, nil
}

type wsChannel struct {
	conn *websocket.Conn
}

func (c wsChannel) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

func (c wsChannel) Close() error {
	return c.conn.Close()
}
