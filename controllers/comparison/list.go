package comparisonControllers

// MaxItems caps how many products can sit side by side on the compare page.
const MaxItems = 4

// addID appends id unless it is already present or the list is full.
// Returns the (possibly unchanged) list and whether it grew.
func addID(ids []uint, id uint) ([]uint, bool) {
	if len(ids) >= MaxItems || containsID(ids, id) {
		return ids, false
	}
	return append(ids, id), true
}

// removeID filters id out, preserving order.
func removeID(ids []uint, id uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
