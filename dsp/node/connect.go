package node

import (
	"fmt"
	"slices"
)

// Connect wires src's output into dst's input. Connecting the same pair
// twice is a no-op.
func Connect(src, dst Node) error {
	if src == nil || dst == nil {
		return fmt.Errorf("connect: %w", ErrNoPort)
	}
	return ConnectPorts(src.Output(), dst.Input())
}

// ConnectPorts wires an output port into an input port.
func ConnectPorts(out, in *Port) error {
	if err := checkPair(out, in); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	ctx := out.unit.ctx
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if out.unit.disposed {
		return fmt.Errorf("connect %s: %w", out.Name(), ErrDisposed)
	}
	if in.unit.disposed {
		return fmt.Errorf("connect %s: %w", in.Name(), ErrDisposed)
	}

	if slices.Contains(out.peers, in) {
		return nil
	}

	out.peers = append(out.peers, in)
	in.peers = append(in.peers, out)

	ctx.logger.Debug("connected", "from", out.Name(), "to", in.Name())

	return nil
}

// Disconnect removes the edge from src's output to dst's input. Other
// edges, including any inside src or dst, are left alone. Disconnecting
// disposed nodes is allowed.
func Disconnect(src, dst Node) error {
	if src == nil || dst == nil {
		return fmt.Errorf("disconnect: %w", ErrNoPort)
	}
	return DisconnectPorts(src.Output(), dst.Input())
}

// DisconnectPorts removes the edge between out and in, if any.
func DisconnectPorts(out, in *Port) error {
	if err := checkPair(out, in); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}

	ctx := out.unit.ctx
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	out.detach(in)
	in.detach(out)

	return nil
}

// DisconnectAll removes every edge leaving src's output.
func DisconnectAll(src Node) error {
	if src == nil || src.Output() == nil {
		return fmt.Errorf("disconnect: %w", ErrNoPort)
	}

	out := src.Output()
	ctx := out.unit.ctx
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	for _, in := range out.peers {
		in.detach(out)
	}
	out.peers = nil

	return nil
}

func checkPair(out, in *Port) error {
	if out == nil || out.dir != DirOutput {
		return fmt.Errorf("%w: source output", ErrNoPort)
	}
	if in == nil || in.dir != DirInput {
		return fmt.Errorf("%w: destination input", ErrNoPort)
	}
	if out.unit.ctx != in.unit.ctx {
		return ErrContextMismatch
	}
	return nil
}
