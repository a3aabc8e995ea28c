package taskqueue

import "container/heap"

// Task is a unit of scheduled work. A task may itself call Queue.Enqueue
// to plan further work; that nested enqueue is pushed onto the priority
// heap rather than run synchronously, since the queue is already
// executing by the time any Task body runs.
type Task func()

// Priority is the scalar a Queue orders tasks by. The exact metric is up
// to the caller (the multiply planner derives it from the destination
// offset); Queue breaks ties by enqueue order so that two tasks of equal
// Priority still compare deterministically.
type Priority int64

// item is one scheduled task paired with its priority and a monotonic
// sequence number used only to break priority ties.
type item struct {
	priority Priority
	seq      uint64
	task     Task
}

// itemHeap is a max-heap by priority (the default queue pops the largest
// priority first), with lower sequence number winning ties.
type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}

	return h[i].seq < h[j].seq
}
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// Queue is a single-threaded cooperative priority task queue. The zero
// Queue is ready to use.
type Queue struct {
	pending   itemHeap
	executing bool
	nextSeq   uint64
}

// New returns a ready-to-use Queue.
func New() *Queue {
	return &Queue{}
}

// Enqueue schedules task at the given priority. If the queue is idle,
// task runs immediately (synchronously, within this call), and the queue
// then drains — in priority order — any further tasks that task (or
// tasks it enqueues) schedules, before Enqueue returns. If the queue is
// already executing (i.e. Enqueue is called from within a running Task),
// task is only pushed onto the priority heap for later execution.
func (q *Queue) Enqueue(priority Priority, task Task) {
	if q.executing {
		q.push(priority, task)

		return
	}

	q.executing = true
	task()
	for q.pending.Len() > 0 {
		next := heap.Pop(&q.pending).(*item)
		next.task()
	}
	q.executing = false
}

func (q *Queue) push(priority Priority, task Task) {
	heap.Push(&q.pending, &item{priority: priority, seq: q.nextSeq, task: task})
	q.nextSeq++
}
