package catalog

import "automall/internal/domain"

// Move returns a new slice with the element at src moved to dst. The
// element is removed first and reinserted at dst in the shortened slice,
// so moving forward does not shift by one. Out-of-range indices return
// the input unchanged.
func Move(list []domain.Product, src, dst int) []domain.Product {
	if src < 0 || src >= len(list) || dst < 0 || dst >= len(list) || src == dst {
		return list
	}
	out := make([]domain.Product, 0, len(list))
	out = append(out, list[:src]...)
	out = append(out, list[src+1:]...)
	out = append(out[:dst], append([]domain.Product{list[src]}, out[dst:]...)...)
	return out
}

// MoveByID resolves the ids dropped by a drag gesture to indices and
// moves sourceID to targetID's position. A self-drop or an unknown id is
// a no-op and reports false.
func MoveByID(list []domain.Product, sourceID, targetID string) ([]domain.Product, bool) {
	if sourceID == targetID {
		return list, false
	}
	src, dst := -1, -1
	for i, p := range list {
		switch p.ID {
		case sourceID:
			src = i
		case targetID:
			dst = i
		}
	}
	if src < 0 || dst < 0 {
		return list, false
	}
	return Move(list, src, dst), true
}
