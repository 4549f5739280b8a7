package device

import (
	"io"
	"os"
	"sync"

	"google.golang.org/grpc/grpclog"
)

// grpc's global logger narrates connection churn on stderr, which buries
// the report when a device is unreachable. transportQuiet drops transport
// logging entirely while any fetch is in flight and restores an
// errors-only logger once the last in-flight fetch releases.
var transportQuiet = newSuppressor(
	func() {
		grpclog.SetLoggerV2(grpclog.NewLoggerV2(io.Discard, io.Discard, io.Discard))
	},
	func() {
		grpclog.SetLoggerV2(grpclog.NewLoggerV2(io.Discard, io.Discard, os.Stderr))
	},
)

// suppressor is a ref-counted scoped state override: on() runs when the
// first holder acquires, off() when the last holder releases. Release is
// safe on all exit paths and idempotent per holder.
type suppressor struct {
	mu  sync.Mutex
	n   int
	on  func()
	off func()
}

func newSuppressor(on, off func()) *suppressor {
	return &suppressor{on: on, off: off}
}

// Acquire enters the suppressed state and returns the release function.
func (s *suppressor) Acquire() (release func()) {
	s.mu.Lock()
	s.n++
	if s.n == 1 {
		s.on()
	}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.n--
			if s.n == 0 {
				s.off()
			}
			s.mu.Unlock()
		})
	}
}
