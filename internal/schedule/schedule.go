// Package schedule assigns one of K resources to each task so that
// tasks with overlapping time intervals never share a resource. This is
// K-coloring of the conflict graph: tasks are vertices, overlaps are
// edges, resources are colors.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

var (
	ErrNoResources  = errors.New("resource count must be at least 1")
	ErrBadInterval  = errors.New("task interval must satisfy start < end")
	ErrTooManyTasks = errors.New("search space too large")
)

// maxTasks bounds recursion depth; beyond it the K^n worst case is
// hopeless anyway.
const maxTasks = 512

// Scheduler owns the task list and the conflict graph. The graph is
// built once at construction and read-only afterwards.
type Scheduler struct {
	tasks     []domain.Task
	resources int
	conflicts [][]int
}

// NewScheduler validates inputs and precomputes the conflict graph in
// O(n²). The task slice is retained: Solve writes Resource fields into
// it so the caller sees the assignment.
func NewScheduler(tasks []domain.Task, resources int) (*Scheduler, error) {
	if resources < 1 {
		return nil, ErrNoResources
	}
	if len(tasks) > maxTasks {
		return nil, fmt.Errorf("%w: %d tasks (max %d)", ErrTooManyTasks, len(tasks), maxTasks)
	}
	for i := range tasks {
		if tasks[i].End <= tasks[i].Start {
			return nil, fmt.Errorf("%w: task %d has [%d,%d)", ErrBadInterval, tasks[i].ID, tasks[i].Start, tasks[i].End)
		}
	}
	s := &Scheduler{
		tasks:     tasks,
		resources: resources,
		conflicts: make([][]int, len(tasks)),
	}
	for i := 0; i < len(tasks); i++ {
		for j := i + 1; j < len(tasks); j++ {
			if tasks[i].Overlaps(tasks[j]) {
				s.conflicts[i] = append(s.conflicts[i], j)
				s.conflicts[j] = append(s.conflicts[j], i)
			}
		}
	}
	return s, nil
}

// Tasks returns the scheduler's task slice, including any assignments
// made by Solve.
func (s *Scheduler) Tasks() []domain.Task { return s.tasks }

// Conflicts returns the indices of tasks conflicting with task i.
func (s *Scheduler) Conflicts(i int) []int { return s.conflicts[i] }

// assignmentValid reports whether resource r is free among the
// neighbors of task i. Cost is O(degree).
func (s *Scheduler) assignmentValid(i, r int) bool {
	for _, j := range s.conflicts[i] {
		if s.tasks[j].Resource == r {
			return false
		}
	}
	return true
}

// Solve assigns resources by depth-first search over tasks in index
// order, trying resources 1..K ascending. On success every task holds
// its resource; on failure (or cancellation) every task is back to
// unassigned — each frame undoes its own tentative assignment.
func (s *Scheduler) Solve(ctx context.Context) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			return false
		}
		if i == len(s.tasks) {
			return true
		}
		for r := 1; r <= s.resources; r++ {
			nodes++
			if s.assignmentValid(i, r) {
				s.tasks[i].Resource = r
				if dfs(i + 1) {
					return true
				}
				s.tasks[i].Resource = 0
			}
		}
		return false
	}
	ok := dfs(0)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := context.Cause(ctx); err != nil {
			return false, st, err
		}
	}
	return ok, st, nil
}
