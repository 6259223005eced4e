package task

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/console"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/shield"
)

type TaskIO struct {
	ShieldIO *shield.ShieldIO

	requestID string

	initLock chan int
	initOnce sync.Once

	sentCount   *atomic.Int64
	failedCount *atomic.Int64
}

type TaskIOWithLock struct {
	origTaskIO       *TaskIO
	ShieldIOWithLock *shield.ShieldIOWithLock
}

func NewTaskIO(shieldIO *shield.ShieldIO) *TaskIO {
	taskIO := TaskIO{
		ShieldIO:    shieldIO,
		requestID:   uuid.New().String(),
		initLock:    make(chan int),
		sentCount:   atomic.NewInt64(0),
		failedCount: atomic.NewInt64(0),
	}
	shieldIO.AddInitCallBack(taskIO.onConsoleInit)
	shieldIO.AddSessionTerminateCallBack(taskIO.onConsoleSessionTerminate)
	return &taskIO
}

func (io *TaskIO) onConsoleInit(conn console.Conn) {
	io.initOnce.Do(func() {
		close(io.initLock)
	})
}

func (io *TaskIO) onConsoleSessionTerminate() {
}

// this could happen only once, and each task has it's own goruntine, so we use chan
func (io *TaskIO) WaitInit() {
	<-io.initLock
}

// query Info
func (io *TaskIO) RequestID() string {
	io.WaitInit()
	return io.requestID
}

// Stats reports commands sent and commands failed since start.
func (io *TaskIO) Stats() (sent int64, failed int64) {
	return io.sentCount.Load(), io.failedCount.Load()
}

// handle callbacks
func (io *TaskIO) AddResponseCallback(cb func(cmd string, resp string)) int {
	return io.ShieldIO.AddResponseCallback(cb)
}

func (io *TaskIO) RemoveResponseCallback(id int) bool {
	return io.ShieldIO.RemoveResponseCallback(id) == nil
}

// schedule
func (io *TaskIO) DelayExec(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
