package console

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridgeServer(t *testing.T) *httptest.Server {
	t.Helper()
	up := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer c.Close()
		for {
			var req wsFrame
			if err := c.ReadJSON(&req); err != nil {
				return
			}
			out := wsFrame{Output: "ran " + req.Cmd}
			if strings.HasPrefix(req.Cmd, "bogus") {
				out = wsFrame{Error: "unknown command"}
			}
			if err := c.WriteJSON(out); err != nil {
				return
			}
		}
	}))
}

func bridgeDialer(srv *httptest.Server) *WSDialer {
	return &WSDialer{Config: WSConfig{Address: "ws" + strings.TrimPrefix(srv.URL, "http")}}
}

func TestWSConnCommandRoundTrip(t *testing.T) {
	srv := newBridgeServer(t)
	defer srv.Close()
	conn, err := bridgeDialer(srv).Dial()
	require.NoError(t, err)
	defer conn.Close()

	resp, err := conn.SendCommand("time set day")
	require.NoError(t, err)
	assert.Equal(t, "ran time set day", resp)
}

func TestWSConnErrorFrameIsCommandError(t *testing.T) {
	srv := newBridgeServer(t)
	defer srv.Close()
	conn, err := bridgeDialer(srv).Dial()
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.SendCommand("bogus thing")
	require.Error(t, err)
	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "bogus thing", cmdErr.Cmd)
	assert.Equal(t, "unknown command", cmdErr.Msg)

	// a rejection must not poison the connection
	resp, err := conn.SendCommand("list")
	require.NoError(t, err)
	assert.Equal(t, "ran list", resp)
}
