// Package bitmap32 implements a bitmap over a slice of 32-bit words where bit j
// of word i is MSB-first, i.e. it is addressed by the mask 0x80000000>>j. This is
// the bit order used by the block and inode bitmaps in the superblock, as opposed
// to the byte-addressed, LSB-first convention of github.com/diskfs/go-diskfs/util/bitmap.
package bitmap32

import "fmt"

// Bitmap is a fixed-size bitmap backed by 32-bit words, MSB-first within each word.
type Bitmap struct {
	words []uint32
}

// FromWords creates a Bitmap from existing words, copying them.
func FromWords(words []uint32) *Bitmap {
	w := make([]uint32, len(words))
	copy(w, words)
	return &Bitmap{words: w}
}

// NewWords creates a new, all-zero bitmap of the given word count.
func NewWords(nWords int) *Bitmap {
	if nWords < 0 {
		nWords = 0
	}
	return &Bitmap{words: make([]uint32, nWords)}
}

// Words returns a copy of the underlying words, suitable for embedding in an
// on-disk structure.
func (bm *Bitmap) Words() []uint32 {
	w := make([]uint32, len(bm.words))
	copy(w, bm.words)
	return w
}

// Len returns the number of addressable bits.
func (bm *Bitmap) Len() int {
	return len(bm.words) * 32
}

func wordAndMask(location int) (word int, mask uint32) {
	word = location / 32
	bit := uint(location % 32)
	mask = uint32(0x80000000) >> bit
	return word, mask
}

// IsSet reports whether the bit at location is set.
func (bm *Bitmap) IsSet(location int) (bool, error) {
	if location < 0 || location >= bm.Len() {
		return false, fmt.Errorf("location %d is not in %d bit bitmap", location, bm.Len())
	}
	word, mask := wordAndMask(location)
	return bm.words[word]&mask == mask, nil
}

// Set marks the bit at location as used.
func (bm *Bitmap) Set(location int) error {
	if location < 0 || location >= bm.Len() {
		return fmt.Errorf("location %d is not in %d bit bitmap", location, bm.Len())
	}
	word, mask := wordAndMask(location)
	bm.words[word] |= mask
	return nil
}

// Clear marks the bit at location as free.
func (bm *Bitmap) Clear(location int) error {
	if location < 0 || location >= bm.Len() {
		return fmt.Errorf("location %d is not in %d bit bitmap", location, bm.Len())
	}
	word, mask := wordAndMask(location)
	bm.words[word] &^= mask
	return nil
}

// FirstFree returns the smallest location >= start whose bit is 0, or -1 if none exists.
func (bm *Bitmap) FirstFree(start int) int {
	if start < 0 {
		start = 0
	}
	total := bm.Len()
	for i := start; i < total; i++ {
		word, mask := wordAndMask(i)
		if bm.words[word]&mask == 0 {
			return i
		}
	}
	return -1
}

// PopCount returns the number of set bits across the whole bitmap.
func (bm *Bitmap) PopCount() int {
	count := 0
	for _, w := range bm.words {
		for w != 0 {
			w &= w - 1
			count++
		}
	}
	return count
}
