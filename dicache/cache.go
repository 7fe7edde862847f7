package dicache

import "sync"

// Dicache is the process-wide decoded-image cache, keyed by URL with each
// URL's entries forming a version history (newest first via Next).
// spec.md documents it as shared, mutated only from the single event loop
// thread, and not protected by locks at that granularity; the mutex here
// only protects the map itself so concurrent tests remain safe to run.
type Dicache struct {
	mu      sync.Mutex
	entries map[string]*DicacheEntry
}

// New returns an empty Dicache.
func New() *Dicache {
	return &Dicache{entries: make(map[string]*DicacheEntry)}
}

// Add creates and returns a new version of url, prepended to any existing
// history. Version numbers start at 1 and increase by one per URL.
func (c *Dicache) Add(url string) *DicacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.entries[url]
	version := 1
	if prev != nil {
		version = prev.Version + 1
	}
	e := newEntry(url, version)
	e.Next = prev
	c.entries[url] = e
	return e
}

// Last returns the most recent valid entry for url (DIC_Last), or nil if
// none exists. A reload invalidates old entries without removing them, so
// in-flight decodes already bound to an older version keep working.
func (c *Dicache) Last(url string) *DicacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.entries[url]; e != nil; e = e.Next {
		if e.Valid {
			return e
		}
	}
	return nil
}

// Invalidate marks every current entry for url as no longer returned by
// Last, without destroying it: viewers already bound to it keep receiving
// events until they detach.
func (c *Dicache) Invalidate(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.entries[url]; e != nil; e = e.Next {
		e.mu.Lock()
		e.Valid = false
		e.mu.Unlock()
	}
}

// Unref decrements an entry's refcount and destroys it once the count
// reaches zero: its ImgBuf is unreferenced, its decoder dropped without
// being finished (any in-progress decode receives no further Write calls
// and its buffered working memory is freed by the garbage collector once
// dropped), and, unless the decode had already closed or aborted, bound
// viewers are told to abort via the entry's own Abort event.
func (c *Dicache) Unref(e *DicacheEntry) {
	if e.Unref() > 0 {
		return
	}
	e.mu.Lock()
	e.Decoder = nil
	closed := e.State == CloseState || e.State == AbortState
	e.mu.Unlock()
	if !closed {
		e.Abort(nil)
	} else {
		e.ImgBuf.Unref()
	}
}

// Sweep unlinks every invalid, zero-refcount entry, first dropping the
// cache's own ImgBuf reference when it is the only one left (an entry that
// Unref already destroyed has released it) — the periodic cleanup spec.md
// describes as a backstop for entries ref/unref alone didn't catch (e.g. a
// reload's invalidated predecessor once its last viewer has detached).
func (c *Dicache) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for url, head := range c.entries {
		var kept *DicacheEntry
		var prev *DicacheEntry
		for e := head; e != nil; {
			next := e.Next
			if !e.Valid && e.refs() <= 0 {
				if e.ImgBuf != nil && e.ImgBuf.LastReference() {
					e.ImgBuf.Unref()
				}
				// e is unlinked; fall through without relinking it.
			} else {
				if kept == nil {
					kept = e
				} else {
					prev.Next = e
				}
				prev = e
			}
			e = next
		}
		if prev != nil {
			prev.Next = nil
		}
		if kept != nil {
			c.entries[url] = kept
		} else {
			delete(c.entries, url)
		}
	}
}
