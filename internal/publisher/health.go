package publisher

import (
	"errors"
	"time"

	"github.com/nats-io/nats.go"
)

// ConnHealth reports whether the NATS connection behind a Publisher is usable.
type ConnHealth struct {
	nc *nats.Conn
}

func NewConnHealth(nc *nats.Conn) ConnHealth {
	return ConnHealth{nc: nc}
}

func (h ConnHealth) Name() string { return "nats" }

func (h ConnHealth) Healthy() error {
	if h.nc == nil || !h.nc.IsConnected() {
		return errors.New("disconnected")
	}
	return h.nc.FlushTimeout(1 * time.Second)
}
