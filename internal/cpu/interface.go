package cpu

// Ticks is one snapshot of the host-wide cumulative tick counters.
type Ticks struct {
	System uint64
	User   uint64
	Idle   uint64
	Nice   uint64
}

// Usage is the share of elapsed ticks per category, in percent.
type Usage struct {
	System float64
	User   float64
	Idle   float64
	Nice   float64
}

// Busy returns system plus user time.
func (u Usage) Busy() float64 {
	return u.System + u.User
}

// TickSource reads the current tick counters from the host.
type TickSource interface {
	Ticks() (Ticks, error)
}
