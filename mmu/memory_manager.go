package mmu

// PageReader is the only capability the translator needs from the backing store.
// Implementations return exactly PageSize bytes for page n, read from
// offset n * PageSize, or an error if the page can't be delivered.
type PageReader interface {
	ReadPage(n Page) ([]byte, error)
}
