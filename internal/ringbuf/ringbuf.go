// Package ringbuf implements the growable int16 FIFO that collects PCM
// samples between streaming writes and whole-frame analysis.
package ringbuf

// growthFactor is the capacity multiplier applied when a write overflows.
const growthFactor = 2

// Buffer is a circular FIFO of PCM samples. It grows on demand and is not
// safe for concurrent use.
type Buffer struct {
	data     []int16
	size     int
	readPos  int
	writePos int
}

// New creates a buffer with the given initial capacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{data: make([]int16, capacity)}
}

// Write appends samples, growing the buffer if needed.
func (b *Buffer) Write(samples []int16) {
	if len(samples) == 0 {
		return
	}
	if b.size+len(samples) > len(b.data) {
		b.grow(b.size + len(samples))
	}

	for len(samples) > 0 {
		n := copy(b.data[b.writePos:], samples)
		samples = samples[n:]
		b.writePos = (b.writePos + n) % len(b.data)
		b.size += n
	}
}

// ReadInto moves up to len(dst) samples into dst and returns the count.
func (b *Buffer) ReadInto(dst []int16) int {
	n := min(len(dst), b.size)
	read := 0
	for read < n {
		end := min(b.readPos+n-read, len(b.data))
		c := copy(dst[read:], b.data[b.readPos:end])
		read += c
		b.readPos = (b.readPos + c) % len(b.data)
	}
	b.size -= n
	return n
}

// Available returns the number of buffered samples.
func (b *Buffer) Available() int {
	return b.size
}

// Clear drops all buffered samples.
func (b *Buffer) Clear() {
	b.size = 0
	b.readPos = 0
	b.writePos = 0
}

// grow increases the capacity to at least minCapacity, keeping FIFO order.
func (b *Buffer) grow(minCapacity int) {
	newCapacity := len(b.data)
	for newCapacity < minCapacity {
		newCapacity *= growthFactor
	}

	newData := make([]int16, newCapacity)
	if b.size > 0 {
		if b.readPos < b.writePos {
			copy(newData, b.data[b.readPos:b.writePos])
		} else {
			n := copy(newData, b.data[b.readPos:])
			copy(newData[n:], b.data[:b.writePos])
		}
	}

	b.data = newData
	b.readPos = 0
	b.writePos = b.size % newCapacity
}
