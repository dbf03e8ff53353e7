package knowledge

import "sync"

// Provider guards first-construction of the Store so that concurrent callers
// share at most one successful load. A failed load is reported to the caller
// and retried on the next request instead of being cached forever.
type Provider struct {
	path string

	mu    sync.Mutex
	store *Store
}

func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Get returns the process-wide Store, loading it on first use.
func (p *Provider) Get() (*Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		return p.store, nil
	}
	store, err := LoadFromFile(p.path)
	if err != nil {
		return nil, err
	}
	p.store = store
	return store, nil
}
