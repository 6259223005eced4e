package architect

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/console"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/buildlog"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/shield"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/task"
)

// scriptedConn rejects any command mentioning bedrock, as a stand-in
// for a server refusing individual placements on a healthy session.
type scriptedConn struct {
	mu   sync.Mutex
	cmds []string
}

func (c *scriptedConn) SendCommand(cmd string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cmds = append(c.cmds, cmd)
	if strings.Contains(cmd, "bedrock") {
		return "", &console.CommandError{Cmd: cmd, Msg: "cannot place there"}
	}
	return "ok", nil
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) attempted() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.cmds))
	for _, cmd := range c.cmds {
		if strings.HasPrefix(cmd, "tellraw") {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

type scriptedDialer struct{ conn *scriptedConn }

func (d *scriptedDialer) Name() string                { return "scripted" }
func (d *scriptedDialer) Dial() (console.Conn, error) { return d.conn, nil }

func newTestProcessor(t *testing.T, conn *scriptedConn) *Processor {
	t.Helper()
	s := shield.NewShield(&shield.ShieldConfig{Respawn: true, MaxDelaySeconds: 1})
	s.Dialer = &scriptedDialer{conn: conn}
	taskIO := task.NewTaskIO(s.IO)
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
	return NewProcessor(taskIO, NewResolver(), func(isJson bool, data string) {})
}

type recordedDeployment struct {
	requestID    string
	sent, failed int
}

type fakeRecorder struct {
	deployments []recordedDeployment
}

func (r *fakeRecorder) RecordRequest(source string, request string, instructionCount int) string {
	return "req-1"
}

func (r *fakeRecorder) RecordDeployment(requestID string, startedAt time.Time, finishedAt time.Time, sent int, failed int) {
	r.deployments = append(r.deployments, recordedDeployment{requestID, sent, failed})
}

type fakeAuditor struct {
	entries []buildlog.BatchEntry
}

func (a *fakeAuditor) RecordBatch(entry buildlog.BatchEntry) error {
	a.entries = append(a.entries, entry)
	return nil
}

func TestDeployToleratesOptionalFailures(t *testing.T) {
	conn := &scriptedConn{}
	p := newTestProcessor(t, conn)
	rec := &fakeRecorder{}
	aud := &fakeAuditor{}
	p.Recorder = rec
	p.Auditor = aud

	ins := []define.Instruction{
		{Text: "setblock 0 64 0 stone"},
		{Text: "setblock 1 64 0 bedrock", Optional: true},
		{Text: "setblock 2 64 0 stone"},
		{Text: "setblock 3 64 0 bedrock"},
		{Text: "setblock 4 64 0 stone"},
	}
	p.deploy("cli", "build test", "test", ins)

	// the optional rejection is skipped over; the required one aborts
	// the remainder, so the last instruction is never attempted
	assert.Equal(t, []string{
		"setblock 0 64 0 stone",
		"setblock 1 64 0 bedrock",
		"setblock 2 64 0 stone",
		"setblock 3 64 0 bedrock",
	}, conn.attempted())

	require.Len(t, rec.deployments, 1)
	assert.Equal(t, "req-1", rec.deployments[0].requestID)
	assert.Equal(t, 2, rec.deployments[0].sent)
	assert.Equal(t, 2, rec.deployments[0].failed)

	require.Len(t, aud.entries, 1)
	assert.Equal(t, 2, aud.entries[0].Sent)
	assert.Equal(t, 2, aud.entries[0].Failed)
	assert.Len(t, aud.entries[0].Instructions, 4)
}

func TestDeployAllOptionalFailuresRunToEnd(t *testing.T) {
	conn := &scriptedConn{}
	p := newTestProcessor(t, conn)

	ins := []define.Instruction{
		{Text: "setblock 0 64 0 bedrock", Optional: true},
		{Text: "setblock 1 64 0 bedrock", Optional: true},
		{Text: "setblock 2 64 0 stone"},
	}
	p.deploy("cli", "build test", "test", ins)
	assert.Len(t, conn.attempted(), 3)
}

func TestDeployHonorsDelayFloor(t *testing.T) {
	conn := &scriptedConn{}
	p := newTestProcessor(t, conn)
	p.DefaultDelay = 10 * time.Millisecond

	ins := []define.Instruction{
		{Text: "setblock 0 64 0 stone", DelayMS: 40},
		{Text: "setblock 1 64 0 stone"},
		{Text: "setblock 2 64 0 stone", DelayMS: 40},
	}
	start := time.Now()
	p.deploy("cli", "build test", "test", ins)
	elapsed := time.Since(start)

	// max(DefaultDelay, DelayMS) after every successful send: 40+10+40
	assert.GreaterOrEqual(t, elapsed, 90*time.Millisecond)
	assert.Len(t, conn.attempted(), 3)
}
