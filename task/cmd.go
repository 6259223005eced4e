package task

import (
	"fmt"
)

// SendCmdWithResp sends one command and returns the console response.
// This is the primitive everything else is sugar over.
func (io *TaskIO) SendCmdWithResp(cmd string) (string, error) {
	resp, err := io.ShieldIO.SendCommand(cmd)
	if err != nil {
		io.failedCount.Inc()
		return "", err
	}
	io.sentCount.Inc()
	return resp, nil
}

func (io *TaskIO) SendCmd(cmd string) *TaskIO {
	io.SendCmdWithResp(cmd)
	return io
}

func (io *TaskIO) SendCmds(cmds ...string) *TaskIO {
	for _, cmd := range cmds {
		io.SendCmdWithResp(cmd)
	}
	return io
}

func (io *TaskIO) SendCmdWithFeedBack(cmd string, cb func(resp string, err error)) *TaskIO {
	resp, err := io.SendCmdWithResp(cmd)
	cb(resp, err)
	return io
}

// Lock holds command serialization across a sequence so instruction
// batches from two plugins never interleave.
func (io *TaskIO) Lock() *TaskIOWithLock {
	return &TaskIOWithLock{origTaskIO: io, ShieldIOWithLock: io.ShieldIO.Lock()}
}

func (io *TaskIOWithLock) SendCmd(cmd string) *TaskIOWithLock {
	_, err := io.ShieldIOWithLock.SendCommand(cmd)
	if err != nil {
		io.origTaskIO.failedCount.Inc()
	} else {
		io.origTaskIO.sentCount.Inc()
	}
	return io
}

func (io *TaskIOWithLock) SendCmdWithResp(cmd string) (string, error) {
	resp, err := io.ShieldIOWithLock.SendCommand(cmd)
	if err != nil {
		io.origTaskIO.failedCount.Inc()
		return "", err
	}
	io.origTaskIO.sentCount.Inc()
	return resp, nil
}

func (io *TaskIOWithLock) SendCmds(cmds ...string) *TaskIOWithLock {
	for _, cmd := range cmds {
		io.SendCmd(cmd)
	}
	return io
}

func (io *TaskIOWithLock) Unlock() *TaskIO {
	io.ShieldIOWithLock.UnLock()
	return io.origTaskIO
}

func (io *TaskIO) TalkTo(player string, content string) *TaskIO {
	io.SendCmd(fmt.Sprintf(`tellraw %s {"rawtext" : [{"text":"%s"}]}`, player, content))
	return io
}

func (io *TaskIO) Say(isJson bool, content string) *TaskIO {
	if !isJson {
		io.SendCmd(fmt.Sprintf(`tellraw @a {"rawtext" : [{"text":"%s"}]}`, content))
	} else {
		io.SendCmd(fmt.Sprintf(`tellraw @a {"rawtext" : %s}`, content))
	}
	return io
}
