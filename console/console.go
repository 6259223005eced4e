package console

import "fmt"

// Conn is one live command session against a server console. A Conn is
// not safe for concurrent use; serialization happens one layer up in
// the shield.
type Conn interface {
	SendCommand(cmd string) (resp string, err error)
	Close() error
}

// Dialer opens fresh console sessions. The shield redials through the
// same Dialer whenever a session dies.
type Dialer interface {
	Dial() (Conn, error)
	Name() string
}

// CommandError is a command rejected by the server over a healthy
// session. The session stays usable; only I/O errors mean it is dead.
type CommandError struct {
	Cmd string
	Msg string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("console: command rejected (%v)", e.Msg)
}
