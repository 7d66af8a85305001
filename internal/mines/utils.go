package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

/*
celltodo is a FIFO of cell indices threaded through a `next' array, so
each index can be queued at most once per traversal.
*/
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(size int) *celltodo {
	return &celltodo{next: make([]int, size), head: -1, tail: -1}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) empty() bool {
	return std.head < 0
}

func (std *celltodo) pop() int {
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
