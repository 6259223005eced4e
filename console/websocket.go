package console

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// WSConfig points at a websocket console bridge, e.g. a sidecar that
// proxies a server's stdin/stdout. One command per text frame out, one
// result frame back.
type WSConfig struct {
	Address     string `json:"address"`
	AccessToken string `json:"access_token"`
}

type WSDialer struct {
	Config WSConfig
}

func (d *WSDialer) Name() string {
	return fmt.Sprintf("ws(%v)", d.Config.Address)
}

func (d *WSDialer) Dial() (Conn, error) {
	header := http.Header{}
	if d.Config.AccessToken != "" {
		header.Set("Authorization", "Bearer "+d.Config.AccessToken)
	}
	c, _, err := websocket.DefaultDialer.Dial(d.Config.Address, header)
	if err != nil {
		return nil, fmt.Errorf("ws dial (%v): %w", d.Config.Address, err)
	}
	return &wsConn{c: c}, nil
}

type wsFrame struct {
	Cmd    string `json:"cmd,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

type wsConn struct {
	c *websocket.Conn
}

func (w *wsConn) SendCommand(cmd string) (string, error) {
	if err := w.c.WriteJSON(wsFrame{Cmd: cmd}); err != nil {
		return "", err
	}
	var resp wsFrame
	if err := w.c.ReadJSON(&resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return resp.Output, &CommandError{Cmd: cmd, Msg: resp.Error}
	}
	return resp.Output, nil
}

func (w *wsConn) Close() error {
	return w.c.Close()
}
