package vm

// Stack is the bounded call stack of subroutine return addresses.
type Stack struct {
	entries [StackDepth]uint16
	depth   int
}

// Depth returns the number of return addresses on the stack.
func (s *Stack) Depth() int {
	return s.depth
}

func (s *Stack) push(address uint16) error {
	if s.depth == StackDepth {
		return ErrStackOverflow
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

func (s *Stack) pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.entries[s.depth], nil
}
