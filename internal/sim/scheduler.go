package sim

// ManualScheduler is a Scheduler whose frames are delivered by an
// explicit Fire call. The terminal UI fires it from its tick message;
// headless runs fire it in a loop. At most one request is pending at
// a time, matching the "invoke me before the next frame" contract.
type ManualScheduler struct {
	pending *manualRequest
}

type manualRequest struct {
	s  *ManualScheduler
	fn func(now float64)
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Request(fn func(now float64)) Handle {
	r := &manualRequest{s: s, fn: fn}
	s.pending = r
	return r
}

// Cancel revokes the request if it is still the pending one. Cancel
// after delivery or after a newer request is a no-op.
func (r *manualRequest) Cancel() {
	if r.s.pending == r {
		r.s.pending = nil
	}
}

// Fire delivers the pending frame callback, if any, with the given
// timestamp. The callback typically requests the next frame, leaving
// the scheduler pending again when it returns.
func (s *ManualScheduler) Fire(now float64) {
	r := s.pending
	if r == nil {
		return
	}
	s.pending = nil
	r.fn(now)
}

// Pending reports whether a frame request is waiting.
func (s *ManualScheduler) Pending() bool { return s.pending != nil }
