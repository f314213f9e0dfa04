package livecharts

import "sync"

// Dispatcher marshals callbacks produced on worker goroutines onto the UI
// thread. Queued actions run, in submission order, when the owning ChartView
// drains the queue at the start of each Update.
//
// Invoke must not be called from the UI thread itself: the queue can only be
// drained there, so a UI-thread caller would wait on itself. Code already on
// the UI thread calls its function directly.
type Dispatcher struct {
	mu    sync.Mutex
	queue []dispatchJob
}

type dispatchJob struct {
	fn   func()
	done chan struct{} // nil for async jobs
}

// Invoke schedules fn to run on the UI thread and blocks the caller until it
// completes. Panics inside fn propagate on the UI thread, not to the caller;
// the caller is unblocked regardless.
func (d *Dispatcher) Invoke(fn func()) {
	done := make(chan struct{})
	d.mu.Lock()
	d.queue = append(d.queue, dispatchJob{fn: fn, done: done})
	d.mu.Unlock()
	<-done
}

// InvokeAsync schedules fn to run on the UI thread without waiting for it.
func (d *Dispatcher) InvokeAsync(fn func()) {
	d.mu.Lock()
	d.queue = append(d.queue, dispatchJob{fn: fn})
	d.mu.Unlock()
}

// Pending reports the number of actions waiting to run.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// drain runs queued actions in order until the queue is empty. Actions
// enqueued while draining (including by the actions themselves, async only)
// run in the same pass. Called from ChartView.Update on the UI thread.
func (d *Dispatcher) drain() {
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.mu.Unlock()
			return
		}
		job := d.queue[0]
		copy(d.queue, d.queue[1:])
		d.queue[len(d.queue)-1] = dispatchJob{}
		d.queue = d.queue[:len(d.queue)-1]
		d.mu.Unlock()

		d.run(job)
	}
}

func (d *Dispatcher) run(job dispatchJob) {
	if job.done != nil {
		defer close(job.done)
	}
	job.fn()
}
