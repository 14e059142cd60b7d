package disk

import (
	"errors"
	"fmt"
	"os"

	"vmsim/mmu"
)

// ImageLength - size of a complete backing store image: every page of the
// 16 bit logical address space.
const ImageLength = mmu.PageEntries * mmu.PageSize

var (
	// ErrNotAttached is returned when reading before an image was attached
	ErrNotAttached = errors.New("no backing store image attached")

	// ErrShortPage is returned when the image ends inside the requested page
	ErrShortPage = errors.New("backing store image too short for page")
)

// BackingStore holds the page images the translator loads on page faults.
// The whole image is read into memory on Attach, it is never written back.
type BackingStore struct {
	Path  string
	image []byte
	reads int
}

// New returns a backing store without an image.
func New() *BackingStore {
	return &BackingStore{}
}

// FromBytes returns a backing store serving pages out of image.
func FromBytes(image []byte) *BackingStore {
	return &BackingStore{Path: "<memory>", image: image}
}

// Attach reads the backing store image file and keeps it in memory
func (b *BackingStore) Attach(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b.Path = path
	b.image = buf
	b.reads = 0
	return nil
}

// Len returns the image length in bytes
func (b *BackingStore) Len() int {
	return len(b.image)
}

// Complete reports whether the image covers all pages.
func (b *BackingStore) Complete() bool {
	return len(b.image) >= ImageLength
}

// Reads returns the number of pages served so far
func (b *BackingStore) Reads() int {
	return b.reads
}

// ReadPage returns a copy of page n: PageSize bytes starting at n * PageSize.
func (b *BackingStore) ReadPage(n mmu.Page) ([]byte, error) {
	if b.image == nil {
		return nil, ErrNotAttached
	}
	pos := int(n) * mmu.PageSize
	if pos+mmu.PageSize > len(b.image) {
		return nil, fmt.Errorf("%w: page %d needs bytes %d-%d, image %s has %d",
			ErrShortPage, n, pos, pos+mmu.PageSize-1, b.Path, len(b.image))
	}
	page := make([]byte, mmu.PageSize)
	copy(page, b.image[pos:pos+mmu.PageSize])
	b.reads++
	return page, nil
}
