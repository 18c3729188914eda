package indexset

import "github.com/voxelsculpt/hrptree/internal/invariant"

// Contains reports whether idx is currently a member of the set.
//
// Complexity: O(1).
func (s *Set) Contains(idx int) bool {
	return s.nodes[idx].member
}

// Size returns the number of indexes currently in the set.
func (s *Set) Size() int {
	return s.size
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s.size == 0
}

// PushFront inserts idx at the front of the set.
// Precondition: !Contains(idx); violating it is an invariant violation.
//
// Complexity: O(1).
func (s *Set) PushFront(idx int) {
	invariant.Check(!s.Contains(idx), "PushFront(%d): index already a member", idx)

	s.nodes[idx] = node{member: true, next: s.head, prev: noLink}
	if s.head == noLink {
		s.tail = idx
	} else {
		s.nodes[s.head].prev = idx
	}
	s.head = idx
	s.size++
}

// PushBack inserts idx at the back of the set.
// Precondition: !Contains(idx); violating it is an invariant violation.
//
// Complexity: O(1).
func (s *Set) PushBack(idx int) {
	invariant.Check(!s.Contains(idx), "PushBack(%d): index already a member", idx)

	s.nodes[idx] = node{member: true, next: noLink, prev: s.tail}
	if s.tail == noLink {
		s.head = idx
	} else {
		s.nodes[s.tail].next = idx
	}
	s.tail = idx
	s.size++
}

// Remove deletes idx from the set if present.
// Returns true iff idx was a member. Removal is lazy: the removed node's
// own next/prev fields are left stale, only its neighbors' links and
// `member` flag are updated.
//
// Complexity: O(1).
func (s *Set) Remove(idx int) bool {
	if !s.Contains(idx) {
		return false
	}
	n := s.nodes[idx]
	s.nodes[idx].member = false

	if s.head == idx {
		s.head = n.next
	} else {
		s.nodes[n.prev].next = n.next
	}
	if s.tail == idx {
		s.tail = n.prev
	} else {
		s.nodes[n.next].prev = n.prev
	}
	s.size--

	return true
}

// PopFront removes and returns the first index in the set.
// Precondition: !Empty(); violating it is an invariant violation.
//
// Complexity: O(1).
func (s *Set) PopFront() int {
	invariant.Check(!s.Empty(), "PopFront: set is empty")

	idx := s.head
	s.Remove(idx)

	return idx
}

// PopBack removes and returns the last index in the set.
// Precondition: !Empty(); violating it is an invariant violation.
//
// Complexity: O(1).
func (s *Set) PopBack() int {
	invariant.Check(!s.Empty(), "PopBack: set is empty")

	idx := s.tail
	s.Remove(idx)

	return idx
}

// Front returns the first index in the set and true, or (0, false) if empty.
func (s *Set) Front() (int, bool) {
	if s.head == noLink {
		return 0, false
	}
	return s.head, true
}

// Next returns the index following idx in insertion order, and true, or
// (0, false) if idx is the last member. idx must currently be a member.
//
// Complexity: O(1).
func (s *Set) Next(idx int) (int, bool) {
	n := s.nodes[idx].next
	if n == noLink {
		return 0, false
	}
	return n, true
}

// Clone returns an independent copy of s; mutating one does not affect
// the other.
func (s *Set) Clone() *Set {
	clone := &Set{
		nodes: append([]node(nil), s.nodes...),
		size:  s.size,
		head:  s.head,
		tail:  s.tail,
	}
	return clone
}

// Each calls fn(idx) for every member, from front to back. fn must not
// remove idx itself during the call — it may safely remove any other
// member, matching the stability guarantee of package indexset: an
// iterator is invalidated only by removal of the vertex it currently
// points at, never by removal elsewhere in the chain.
func (s *Set) Each(fn func(idx int)) {
	for idx, ok := s.Front(); ok; idx, ok = s.Next(idx) {
		fn(idx)
	}
}
