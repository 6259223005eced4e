package shield

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/console"
)

// ShieldIO is the send surface plugins talk to. The shield routine owns
// the underlying console session and swaps it out under our feet on
// reconnect; every send is serialized by sendMu so a command and its
// response never interleave with another sender's.
type ShieldIO struct {
	respCBCount               int
	respCallbacks             map[int]func(cmd string, resp string)
	beforeInitCallBacks       []func()
	initCallBacks             []func(conn console.Conn)
	beforeReInitCallBacks     []func()
	reInitCallBacks           []func(conn console.Conn)
	sessionTerminateCallBacks []func()
	sessionDown               chan error
	conn                      console.Conn
	sendMu                    sync.Mutex
}

type ShieldIOWithLock struct {
	o *ShieldIO
}

// SendCommand sends one console command and waits for its response.
// A command rejected by the server (console.CommandError) is handed
// back as-is and the session stays up; a transport failure kills the
// current session and lets the shield routine redial.
func (io *ShieldIO) SendCommand(cmd string) (string, error) {
	io.sendMu.Lock()
	defer io.sendMu.Unlock()
	return io.sendCommandLocked(cmd)
}

func (io *ShieldIO) sendCommandLocked(cmd string) (string, error) {
	if io.conn == nil {
		return "", fmt.Errorf("shield: no active console session")
	}
	resp, err := io.conn.SendCommand(cmd)
	if err != nil {
		var cmdErr *console.CommandError
		if errors.As(err, &cmdErr) {
			return resp, err
		}
		io.conn.Close()
		io.conn = nil
		select {
		case io.sessionDown <- err:
		default:
		}
		return "", fmt.Errorf("shield: session lost (%w)", err)
	}
	for _, cb := range io.respCallbacks {
		cb(cmd, resp)
	}
	return resp, nil
}

func (io *ShieldIO) Connected() bool {
	io.sendMu.Lock()
	defer io.sendMu.Unlock()
	return io.conn != nil
}

func (io *ShieldIO) AddResponseCallback(cb func(cmd string, resp string)) int {
	io.respCBCount += 1
	io.respCallbacks[io.respCBCount] = cb
	return io.respCBCount
}
func (io *ShieldIO) RemoveResponseCallback(id int) error {
	_, ok := io.respCallbacks[id]
	if ok {
		delete(io.respCallbacks, id)
		return nil
	} else {
		return fmt.Errorf("do not have such response callback ID (%v) to remove", id)
	}
}

// Lock holds the send serialization across a group of commands so a
// multi-command sequence cannot be interleaved by another sender.
func (io *ShieldIO) Lock() *ShieldIOWithLock {
	io.sendMu.Lock()
	return &ShieldIOWithLock{o: io}
}

func (io *ShieldIOWithLock) SendCommand(cmd string) (string, error) {
	return io.o.sendCommandLocked(cmd)
}
func (io *ShieldIOWithLock) SendCommands(cmds ...string) *ShieldIOWithLock {
	for _, cmd := range cmds {
		io.o.sendCommandLocked(cmd)
	}
	return io
}
func (io *ShieldIOWithLock) UnLock() *ShieldIO {
	io.o.sendMu.Unlock()
	return io.o
}

func (io *ShieldIO) AddBeforeInitCallBack(cb func()) {
	io.beforeInitCallBacks = append(io.beforeInitCallBacks, cb)
}
func (io *ShieldIO) AddInitCallBack(cb func(conn console.Conn)) {
	io.initCallBacks = append(io.initCallBacks, cb)
}
func (io *ShieldIO) AddBeforeReInitCallBack(cb func()) {
	io.beforeReInitCallBacks = append(io.beforeReInitCallBacks, cb)
}
func (io *ShieldIO) AddReInitCallBack(cb func(conn console.Conn)) {
	io.reInitCallBacks = append(io.reInitCallBacks, cb)
}
func (io *ShieldIO) AddSessionTerminateCallBack(cb func()) {
	io.sessionTerminateCallBacks = append(io.sessionTerminateCallBacks, cb)
}

type ShieldConfig struct {
	Respawn         bool `json:"respawn"`
	MaxRetryTimes   int  `json:"max_restart_retry"`
	MaxDelaySeconds int  `json:"max_delay_seconds"`
}

type Shield struct {
	Respawn       bool
	RespawnTimes  int
	RetryTimes    int
	MaxRetryTimes int
	DelayFactor   time.Duration
	MaxDelay      time.Duration
	isInit        bool
	IO            *ShieldIO
	Dialer        console.Dialer
}

func NewShield(config *ShieldConfig) *Shield {
	if config.MaxDelaySeconds < 1 {
		config.MaxDelaySeconds = 1
	}
	shield := &Shield{
		Respawn:       config.Respawn,
		RespawnTimes:  0,
		RetryTimes:    0,
		MaxRetryTimes: config.MaxRetryTimes,
		DelayFactor:   time.Second,
		MaxDelay:      time.Duration(config.MaxDelaySeconds) * time.Second,
		isInit:        false,
		IO: &ShieldIO{
			respCBCount:               0,
			respCallbacks:             make(map[int]func(cmd string, resp string)),
			beforeInitCallBacks:       make([]func(), 0),
			initCallBacks:             make([]func(conn console.Conn), 0),
			beforeReInitCallBacks:     make([]func(), 0),
			reInitCallBacks:           make([]func(conn console.Conn), 0),
			sessionTerminateCallBacks: make([]func(), 0),
			sessionDown:               make(chan error, 1),
			sendMu:                    sync.Mutex{},
		},
	}
	return shield
}

// Routine dials the console and babysits the session forever. It only
// returns when Respawn is off or the retry budget runs out.
func (s *Shield) Routine() {
	for {
		conn, err := s.dialWithRetry()
		if err != nil {
			color.Red("Shield: give up on console (%v)", err)
			return
		}
		s.RetryTimes = 0
		if !s.isInit {
			for _, cb := range s.IO.beforeInitCallBacks {
				cb()
			}
		} else {
			for _, cb := range s.IO.beforeReInitCallBacks {
				cb()
			}
		}
		s.IO.sendMu.Lock()
		s.IO.conn = conn
		s.IO.sendMu.Unlock()
		if !s.isInit {
			s.isInit = true
			for _, cb := range s.IO.initCallBacks {
				cb(conn)
			}
		} else {
			s.RespawnTimes += 1
			for _, cb := range s.IO.reInitCallBacks {
				cb(conn)
			}
		}
		color.Green("Shield: console session up (%v)", s.Dialer.Name())
		downErr := <-s.IO.sessionDown
		color.Yellow("Shield: console session down (%v)", downErr)
		for _, cb := range s.IO.sessionTerminateCallBacks {
			cb()
		}
		if !s.Respawn {
			return
		}
	}
}

func (s *Shield) dialWithRetry() (console.Conn, error) {
	delay := s.DelayFactor
	for {
		conn, err := s.Dialer.Dial()
		if err == nil {
			return conn, nil
		}
		s.RetryTimes += 1
		if s.MaxRetryTimes > 0 && s.RetryTimes > s.MaxRetryTimes {
			return nil, fmt.Errorf("retry times exceeded (%v): %w", s.MaxRetryTimes, err)
		}
		color.Yellow("Shield: dial failed (%v), retry in %v", err, delay)
		time.Sleep(delay)
		delay *= 2
		if delay > s.MaxDelay {
			delay = s.MaxDelay
		}
	}
}
