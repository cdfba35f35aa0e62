package array

// IndexIter enumerates the multi-indices of a set of axes in row-major
// order (last dimension fastest), starting at each axis's First bound.
// Rank-0 axes yield a single empty index.
type IndexIter struct {
	axes    Axes
	ix      []int
	started bool
	done    bool
}

// NewIndexIter returns an iterator over the multi-indices of axes.
func NewIndexIter(axes Axes) *IndexIter {
	it := &IndexIter{axes: axes, ix: make([]int, len(axes))}
	for i, a := range axes {
		it.ix[i] = a.First
	}
	return it
}

// Next returns the next multi-index, or false when exhausted. The
// returned slice is reused between calls; callers that retain it must
// copy it first.
func (it *IndexIter) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if !it.started {
		it.started = true
		return it.ix, true
	}
	for i := len(it.axes) - 1; i >= 0; i-- {
		if it.ix[i] < it.axes[i].Last {
			it.ix[i]++
			return it.ix, true
		}
		it.ix[i] = it.axes[i].First
	}
	it.done = true
	return nil, false
}
