package swagger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/docket/handler"
)

// ErrGroupNotFound is returned for a group without a cached document.
var ErrGroupNotFound = errors.New("swagger: group not found")

// Cache stores built documents per group. Serialized forms are produced
// once per stored document.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	doc *Document

	jsonOnce sync.Once
	jsonData []byte
	jsonErr  error

	yamlOnce sync.Once
	yamlData []byte
	yamlErr  error
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Put stores doc for group, replacing any previous document.
func (c *Cache) Put(group string, doc *Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[group] = &cacheEntry{doc: doc}
}

// Get returns the document of a group.
func (c *Cache) Get(group string) (*Document, bool) {
	e, ok := c.entry(group)
	if !ok {
		return nil, false
	}
	return e.doc, true
}

// Groups returns the cached group names, sorted.
func (c *Cache) Groups() []string {
	c.mu.RLock()
	groups := make([]string, 0, len(c.entries))
	for g := range c.entries {
		groups = append(groups, g)
	}
	c.mu.RUnlock()

	sort.Strings(groups)
	return groups
}

// Build documents handlers once per enabled docket and stores each
// document under the docket group.
func (c *Cache) Build(handlers []handler.RequestHandler, dockets ...*Docket) {
	for _, d := range dockets {
		if d == nil || !d.Enabled() {
			continue
		}
		c.Put(d.Group(), d.Build(handlers))
	}
}

// JSON returns the indented JSON form of a group document.
func (c *Cache) JSON(group string) ([]byte, error) {
	e, ok := c.entry(group)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}
	e.jsonOnce.Do(func() {
		defer func() {
			if rv := recover(); rv != nil {
				e.jsonErr = fmt.Errorf("swagger: marshal json: %v", rv)
			}
		}()
		e.jsonData, e.jsonErr = json.MarshalIndent(e.doc, "", "  ")
	})
	return e.jsonData, e.jsonErr
}

// YAML returns the YAML form of a group document.
func (c *Cache) YAML(group string) ([]byte, error) {
	e, ok := c.entry(group)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}
	e.yamlOnce.Do(func() {
		defer func() {
			if rv := recover(); rv != nil {
				e.yamlErr = fmt.Errorf("swagger: marshal yaml: %v", rv)
			}
		}()
		e.yamlData, e.yamlErr = yaml.Marshal(e.doc)
	})
	return e.yamlData, e.yamlErr
}

func (c *Cache) entry(group string) (*cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[group]
	return e, ok
}
