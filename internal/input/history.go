package input

// HistorySize is the number of samples the ring remembers.
const HistorySize = 5

// History is a fixed ring of recent pointer samples.
type History struct {
	samples [HistorySize]Sample
	next    int
}

// Push records s, overwriting the oldest sample once the ring is full.
func (h *History) Push(s Sample) {
	h.samples[h.next] = s
	h.next = (h.next + 1) % HistorySize
}

// Previous returns the most recently pushed sample, or the zero Sample when
// nothing has been pushed.
func (h *History) Previous() Sample {
	return h.samples[(h.next+HistorySize-1)%HistorySize]
}
