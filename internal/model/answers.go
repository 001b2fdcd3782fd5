package model

// AnswerSet accumulates raw answers keyed by question id. Insertion order is
// preserved: reduction appends list values in the order answers were
// elicited, so iteration order is part of the contract. A repeated id
// overwrites the earlier value and keeps its original position.
type AnswerSet struct {
	ids    []string
	values map[string]string
}

func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: make(map[string]string)}
}

// Set records the answer for id.
func (a *AnswerSet) Set(id, value string) {
	if _, ok := a.values[id]; !ok {
		a.ids = append(a.ids, id)
	}
	a.values[id] = value
}

// Get returns the answer recorded for id.
func (a *AnswerSet) Get(id string) (string, bool) {
	v, ok := a.values[id]
	return v, ok
}

// Len returns the number of distinct answered ids.
func (a *AnswerSet) Len() int {
	return len(a.ids)
}

// IDs returns the answered ids in first-recorded order.
func (a *AnswerSet) IDs() []string {
	out := make([]string, len(a.ids))
	copy(out, a.ids)
	return out
}
