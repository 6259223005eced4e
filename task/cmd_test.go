package task

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/console"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/shield"
)

type echoConn struct{}

func (echoConn) SendCommand(cmd string) (string, error) {
	if cmd == "explode" {
		return "", errors.New("boom")
	}
	return "ran " + cmd, nil
}
func (echoConn) Close() error { return nil }

type echoDialer struct{}

func (d *echoDialer) Name() string { return "echo" }
func (d *echoDialer) Dial() (console.Conn, error) {
	return echoConn{}, nil
}

func newTestTaskIO(t *testing.T) *TaskIO {
	t.Helper()
	s := shield.NewShield(&shield.ShieldConfig{Respawn: true, MaxDelaySeconds: 1})
	s.Dialer = &echoDialer{}
	taskIO := NewTaskIO(s.IO)
	go s.Routine()
	done := make(chan struct{})
	go func() {
		taskIO.WaitInit()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("taskIO never initialized")
	}
	return taskIO
}

func TestSendCmdWithRespCountsOutcomes(t *testing.T) {
	taskIO := newTestTaskIO(t)
	resp, err := taskIO.SendCmdWithResp("time set day")
	require.NoError(t, err)
	assert.Equal(t, "ran time set day", resp)

	_, err = taskIO.SendCmdWithResp("explode")
	require.Error(t, err)

	sent, failed := taskIO.Stats()
	assert.Equal(t, int64(1), sent)
	assert.Equal(t, int64(1), failed)
}

func TestSendCmdWithFeedBack(t *testing.T) {
	taskIO := newTestTaskIO(t)
	var got string
	taskIO.SendCmdWithFeedBack("weather clear", func(resp string, err error) {
		require.NoError(t, err)
		got = resp
	})
	assert.Equal(t, "ran weather clear", got)
}

func TestLockSerializesBatch(t *testing.T) {
	taskIO := newTestTaskIO(t)
	l := taskIO.Lock()
	l.SendCmds("a", "b", "c")
	l.Unlock()
	sent, failed := taskIO.Stats()
	assert.Equal(t, int64(3), sent)
	assert.Equal(t, int64(0), failed)
}

func TestSayWrapsTellraw(t *testing.T) {
	taskIO := newTestTaskIO(t)
	var seen string
	taskIO.AddResponseCallback(func(cmd, resp string) { seen = cmd })
	taskIO.Say(false, "hello")
	assert.Equal(t, `tellraw @a {"rawtext" : [{"text":"hello"}]}`, seen)
}
