package shield

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/console"
)

type fakeConn struct {
	mu   sync.Mutex
	dead bool
}

func (c *fakeConn) SendCommand(cmd string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dead {
		return "", errors.New("connection reset")
	}
	return "ok:" + cmd, nil
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) kill() {
	c.mu.Lock()
	c.dead = true
	c.mu.Unlock()
}

type fakeDialer struct {
	mu    sync.Mutex
	conns []console.Conn
	fails int
	dials int
}

func (d *fakeDialer) Name() string { return "fake" }

func (d *fakeDialer) Dial() (console.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials++
	if d.fails > 0 {
		d.fails--
		return nil, errors.New("refused")
	}
	if len(d.conns) == 0 {
		return nil, errors.New("out of connections")
	}
	c := d.conns[0]
	d.conns = d.conns[1:]
	return c, nil
}

func TestSendBeforeSessionFails(t *testing.T) {
	s := NewShield(&ShieldConfig{Respawn: false, MaxDelaySeconds: 1})
	_, err := s.IO.SendCommand("fill 0 0 0 1 1 1 stone")
	assert.Error(t, err)
}

func TestShieldSessionLifecycle(t *testing.T) {
	conn1, conn2 := &fakeConn{}, &fakeConn{}
	dialer := &fakeDialer{conns: []console.Conn{conn1, conn2}}
	s := NewShield(&ShieldConfig{Respawn: true, MaxDelaySeconds: 1})
	s.Dialer = dialer

	inited := make(chan struct{})
	reinited := make(chan struct{})
	terminated := make(chan struct{}, 1)
	s.IO.AddInitCallBack(func(conn console.Conn) { close(inited) })
	s.IO.AddReInitCallBack(func(conn console.Conn) { close(reinited) })
	s.IO.AddSessionTerminateCallBack(func() { terminated <- struct{}{} })

	go s.Routine()

	select {
	case <-inited:
	case <-time.After(2 * time.Second):
		t.Fatal("session never initialized")
	}
	resp, err := s.IO.SendCommand("say hello")
	require.NoError(t, err)
	assert.Equal(t, "ok:say hello", resp)

	conn1.kill()
	_, err = s.IO.SendCommand("say again")
	require.Error(t, err)

	select {
	case <-reinited:
	case <-time.After(2 * time.Second):
		t.Fatal("session never respawned")
	}
	<-terminated
	resp, err = s.IO.SendCommand("say back")
	require.NoError(t, err)
	assert.Equal(t, "ok:say back", resp)
	assert.True(t, s.IO.Connected())
}

func TestShieldRetriesWithBackoff(t *testing.T) {
	conn := &fakeConn{}
	dialer := &fakeDialer{conns: []console.Conn{conn}, fails: 2}
	s := NewShield(&ShieldConfig{Respawn: false, MaxRetryTimes: 5, MaxDelaySeconds: 1})
	s.DelayFactor = time.Millisecond
	s.Dialer = dialer

	inited := make(chan struct{})
	s.IO.AddInitCallBack(func(conn console.Conn) { close(inited) })
	go s.Routine()

	select {
	case <-inited:
	case <-time.After(2 * time.Second):
		t.Fatal("never connected through retries")
	}
	dialer.mu.Lock()
	defer dialer.mu.Unlock()
	assert.Equal(t, 3, dialer.dials)
}

func TestShieldGivesUpAfterMaxRetries(t *testing.T) {
	dialer := &fakeDialer{fails: 100}
	s := NewShield(&ShieldConfig{Respawn: false, MaxRetryTimes: 2, MaxDelaySeconds: 1})
	s.DelayFactor = time.Millisecond
	s.Dialer = dialer

	done := make(chan struct{})
	go func() {
		s.Routine()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("routine did not give up")
	}
}

type pickyConn struct{}

func (pickyConn) SendCommand(cmd string) (string, error) {
	if strings.Contains(cmd, "denied") {
		return "", &console.CommandError{Cmd: cmd, Msg: "unknown command"}
	}
	return "ok:" + cmd, nil
}
func (pickyConn) Close() error { return nil }

func TestCommandRejectionKeepsSessionAlive(t *testing.T) {
	dialer := &fakeDialer{conns: []console.Conn{pickyConn{}}}
	s := NewShield(&ShieldConfig{Respawn: false, MaxDelaySeconds: 1})
	s.Dialer = dialer

	inited := make(chan struct{})
	s.IO.AddInitCallBack(func(conn console.Conn) { close(inited) })
	go s.Routine()
	select {
	case <-inited:
	case <-time.After(2 * time.Second):
		t.Fatal("session never initialized")
	}

	_, err := s.IO.SendCommand("say denied thing")
	require.Error(t, err)
	var cmdErr *console.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "say denied thing", cmdErr.Cmd)
	assert.True(t, s.IO.Connected())

	resp, err := s.IO.SendCommand("list")
	require.NoError(t, err)
	assert.Equal(t, "ok:list", resp)

	dialer.mu.Lock()
	defer dialer.mu.Unlock()
	assert.Equal(t, 1, dialer.dials)
}

func TestResponseCallbacks(t *testing.T) {
	conn := &fakeConn{}
	dialer := &fakeDialer{conns: []console.Conn{conn}}
	s := NewShield(&ShieldConfig{Respawn: false, MaxDelaySeconds: 1})
	s.Dialer = dialer

	inited := make(chan struct{})
	s.IO.AddInitCallBack(func(conn console.Conn) { close(inited) })
	go s.Routine()
	<-inited

	var gotCmd, gotResp string
	id := s.IO.AddResponseCallback(func(cmd, resp string) {
		gotCmd, gotResp = cmd, resp
	})
	_, err := s.IO.SendCommand("list")
	require.NoError(t, err)
	assert.Equal(t, "list", gotCmd)
	assert.Equal(t, "ok:list", gotResp)

	require.NoError(t, s.IO.RemoveResponseCallback(id))
	assert.Error(t, s.IO.RemoveResponseCallback(id))
}
