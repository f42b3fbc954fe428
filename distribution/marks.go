// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

// locationMarks records which particle slots hold an assigned
// location.
type locationMarks struct {
	marks []uint32
}

// test returns whether slot i is marked.
func (m locationMarks) test(i int) bool {
	if i < 0 || i/32 >= len(m.marks) {
		return false
	}
	return m.marks[i/32]&(1<<uint(i%32)) != 0
}

// mark marks slot i.
func (m *locationMarks) mark(i int) {
	if i/32 >= len(m.marks) {
		m.grow(i)
	}
	m.marks[i/32] |= 1 << uint(i%32)
}

// truncate clears the marks on slots i and above.
func (m *locationMarks) truncate(i int) {
	w := i / 32
	if w >= len(m.marks) {
		return
	}
	m.marks[w] &= 1<<uint(i%32) - 1
	for w++; w < len(m.marks); w++ {
		m.marks[w] = 0
	}
}

// firstUnset returns the lowest slot in [0, n) that is not marked,
// or -1 if all of them are.
func (m locationMarks) firstUnset(n int) int {
	for w := 0; w*32 < n; w++ {
		var bits uint32
		if w < len(m.marks) {
			bits = m.marks[w]
		}
		if bits == ^uint32(0) {
			continue
		}
		for b := 0; b < 32 && w*32+b < n; b++ {
			if bits&(1<<uint(b)) == 0 {
				return w*32 + b
			}
		}
	}
	return -1
}

func (m *locationMarks) grow(i int) {
	n := i/32 + 1
	// Round n up to a power of two.
	k := 1
	for k < n {
		k <<= 1
	}
	marks := make([]uint32, k)
	copy(marks, m.marks)
	m.marks = marks
}
