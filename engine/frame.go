package engine

// DefaultMaxDepth is the default maximum number of nested protected regions.
const DefaultMaxDepth = 32

// frame is the record of one open protected region.
type frame struct {
	// handling is set once the region's body has returned. A throw that
	// finds a handling frame on top discards it first: neither a handler nor
	// code between Begin and End has a claim on the region.
	handling bool
}

// frameStack is a bounded stack of frames addressed by a top index that
// always stays within [-1, cap-1].
type frameStack struct {
	frames []frame
	top    int
}

func newFrameStack(capacity int) *frameStack {
	return &frameStack{
		frames: make([]frame, capacity),
		top:    -1,
	}
}

// push opens a frame and returns its index. It reports false, leaving the
// stack unchanged, when the stack is full.
func (s *frameStack) push() (int, bool) {
	if s.top == len(s.frames)-1 {
		return s.top, false
	}
	s.top++
	s.frames[s.top] = frame{}
	return s.top, true
}

func (s *frameStack) pop() {
	s.top--
}

// truncate discards the frame at index and every frame above it.
func (s *frameStack) truncate(index int) {
	if s.top >= index {
		s.top = index - 1
	}
}

func (s *frameStack) markHandling(index int) {
	s.frames[index].handling = true
}

// discardHandling pops frames from the top while they are running a handler
// and returns how many were discarded.
func (s *frameStack) discardHandling() int {
	n := 0
	for s.top >= 0 && s.frames[s.top].handling {
		s.top--
		n++
	}
	return n
}

func (s *frameStack) empty() bool {
	return s.top < 0
}

func (s *frameStack) depth() int {
	return s.top + 1
}

func (s *frameStack) capacity() int {
	return len(s.frames)
}
