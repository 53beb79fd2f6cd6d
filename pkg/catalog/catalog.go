package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Catalog serves apps out of a root directory laid out as
// <language>/<app>/. It is a read-through cache: each app is loaded at
// most once, loading is serialized per app, and loaded apps may be read
// concurrently. Callers own the Catalog; there is no process-wide
// instance.
type Catalog struct {
	root string

	mu      sync.Mutex
	entries map[string]*catalogEntry
}

type catalogEntry struct {
	once sync.Once
	app  *App
	err  error
}

// New creates a catalog over the given root directory.
func New(root string) *Catalog {
	return &Catalog{
		root:    root,
		entries: make(map[string]*catalogEntry),
	}
}

// Root returns the catalog root directory.
func (c *Catalog) Root() string { return c.root }

// Load returns the app for (lang, name), reading it from disk on first
// use. Concurrent calls for the same app share a single load.
func (c *Catalog) Load(lang Language, name string) (*App, error) {
	key := string(lang) + "/" + name

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &catalogEntry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		dir := filepath.Join(c.root, string(lang), name)
		e.app, e.err = LoadApp(dir)
		if e.app != nil {
			e.app.Lang = lang
		}
		if e.err != nil {
			logrus.WithField("app", key).WithError(e.err).Debug("app load failed")
		}
	})
	if e.err != nil {
		return nil, fmt.Errorf("load app %s: %w", key, e.err)
	}
	return e.app, nil
}

// Languages lists the language directories under the root, sorted.
func (c *Catalog) Languages() ([]Language, error) {
	names, err := c.subdirs(c.root)
	if err != nil {
		return nil, err
	}
	langs := make([]Language, len(names))
	for i, n := range names {
		langs[i] = Language(n)
	}
	return langs, nil
}

// Apps lists the app names available for a language, sorted.
func (c *Catalog) Apps(lang Language) ([]string, error) {
	return c.subdirs(filepath.Join(c.root, string(lang)))
}

// LoadAll eagerly loads every app in the catalog and returns the first
// error encountered, if any.
func (c *Catalog) LoadAll() error {
	langs, err := c.Languages()
	if err != nil {
		return err
	}
	for _, lang := range langs {
		apps, err := c.Apps(lang)
		if err != nil {
			return err
		}
		for _, name := range apps {
			if _, err := c.Load(lang, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
