package scene

import "github.com/df07/go-shader-raytracer/pkg/core"

// MaxRayQueue is the capacity of a RayQueue
const MaxRayQueue = 8

type queuedRay struct {
	ray    core.Ray
	weight float32
}

// RayQueue is a fixed-capacity FIFO of rays still to be traced, each with
// the fraction of its colour that reaches the pixel
type RayQueue struct {
	rays  [MaxRayQueue]queuedRay
	head  uint32
	count uint32
}

// Push enqueues a ray. A full queue drops the ray and reports false.
func (q *RayQueue) Push(ray core.Ray, weight float32) bool {
	if q.count == MaxRayQueue {
		return false
	}
	q.rays[(q.head+q.count)%MaxRayQueue] = queuedRay{ray: ray, weight: weight}
	q.count++
	return true
}

// Pop dequeues the oldest ray.
// Precondition: the queue is not empty.
func (q *RayQueue) Pop() (core.Ray, float32) {
	if core.DebugChecks && q.count == 0 {
		core.Violation("Pop on empty ray queue")
	}
	next := q.rays[q.head]
	q.head = (q.head + 1) % MaxRayQueue
	q.count--
	return next.ray, next.weight
}

// IsEmpty reports whether no rays are queued
func (q *RayQueue) IsEmpty() bool {
	return q.count == 0
}

// Len returns the number of queued rays
func (q *RayQueue) Len() int {
	return int(q.count)
}
