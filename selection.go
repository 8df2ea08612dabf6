package main

// Selection tracks which live tasks are selected. It is derived state: never
// persisted, and membership dies with the task.
type Selection struct {
	members map[*Task]struct{}
}

func NewSelection() *Selection {
	return &Selection{members: make(map[*Task]struct{})}
}

func (s *Selection) Contains(t *Task) bool {
	_, ok := s.members[t]
	return ok
}

func (s *Selection) Len() int { return len(s.members) }

// Replace makes the selection exactly {t}.
func (s *Selection) Replace(t *Task) {
	clear(s.members)
	s.members[t] = struct{}{}
}

// Toggle flips t's membership, leaving other members alone.
func (s *Selection) Toggle(t *Task) {
	if s.Contains(t) {
		delete(s.members, t)
	} else {
		s.members[t] = struct{}{}
	}
}

func (s *Selection) Add(t *Task)    { s.members[t] = struct{}{} }
func (s *Selection) Remove(t *Task) { delete(s.members, t) }
func (s *Selection) Clear()         { clear(s.members) }

// Ordered returns the selected tasks in render order, not selection order.
func (s *Selection) Ordered(renderOrder []*Task) []*Task {
	out := make([]*Task, 0, len(s.members))
	for _, t := range renderOrder {
		if s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}
