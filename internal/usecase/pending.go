package usecase

// Pending tracks one optimistic operation whose remote persistence call
// has not settled yet. The local state change has already been applied
// by the time a Pending is returned; Wait blocks until the confirmation
// or the compensating rollback has run.
type Pending struct {
	done chan struct{}
	err  error
	noop bool
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func settledPending(err error, noop bool) *Pending {
	p := &Pending{done: make(chan struct{}), err: err, noop: noop}
	close(p.done)
	return p
}

func (p *Pending) settle(err error) {
	p.err = err
	close(p.done)
}

// Done is closed once the remote call settled and its success or error
// transition has been applied.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until settlement and returns the remote error, if any.
// The rollback has already been applied when a non-nil error returns.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// NoOp reports that the action's precondition failed and nothing was
// changed or persisted. Not an error: duplicate adds and removals of
// absent players are deliberately idempotent.
func (p *Pending) NoOp() bool {
	<-p.done
	return p.noop
}
