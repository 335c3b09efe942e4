package syncs

import "context"

// Semaphore bounds the number of concurrent holders.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, max(n, 1))
}

// Acquire blocks until a slot is free or ctx is done. A done ctx always
// fails, even with free slots.
func (s Semaphore) Acquire(ctx context.Context) error {
	if err := context.Cause(ctx); err != nil {
		return err
	}
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

func (s Semaphore) Release() {
	<-s
}
