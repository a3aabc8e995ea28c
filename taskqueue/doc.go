// Package taskqueue implements a single-threaded priority task queue:
// a queue with two modes, idle and executing. Enqueuing onto an idle
// queue runs the task immediately and then drains anything it enqueues
// transitively, in priority order, before returning to idle; enqueuing
// onto an executing queue only schedules the task for later. This lets a
// recursive planner (package multiply) plan work without forcing its own
// call-stack depth to equal tree depth.
package taskqueue
