package console

import (
	"fmt"

	mcnet "github.com/Tnze/go-mc/net"
)

type RCONConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

type RCONDialer struct {
	Config RCONConfig
}

func (d *RCONDialer) Name() string {
	return fmt.Sprintf("rcon(%v)", d.Config.Address)
}

func (d *RCONDialer) Dial() (Conn, error) {
	c, err := mcnet.DialRCON(d.Config.Address, d.Config.Password)
	if err != nil {
		return nil, fmt.Errorf("rcon dial (%v): %w", d.Config.Address, err)
	}
	return &rconConn{c: c}, nil
}

type rconConn struct {
	c mcnet.RCONClientConn
}

func (r *rconConn) SendCommand(cmd string) (string, error) {
	if err := r.c.Cmd(cmd); err != nil {
		return "", err
	}
	return r.c.Resp()
}

func (r *rconConn) Close() error {
	return r.c.Close()
}
