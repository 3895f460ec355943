package model

// Task is the domain model for a study task.
// ID and Title never change after creation; Done only goes false -> true.
type Task struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Collection is the ordered task list as persisted. Insertion order is display order.
type Collection []Task

// MaxID returns the largest id in the collection, or 0 when it is empty.
func (c Collection) MaxID() int {
	max := 0
	for _, t := range c {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// Index returns the position of the first task with the given id, or -1.
func (c Collection) Index(id int) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts done and pending tasks.
func (c Collection) Stats() (done, pending int) {
	for _, t := range c {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
