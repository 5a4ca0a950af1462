// Package namecache persists resolved team names and asset URLs in a
// small SQLite database so repeat lookups skip the wiki round trip. The
// cache is an accelerator only: a miss, a stale entry, or a read failure
// just sends the caller back to the wiki.
package namecache

import (
	"database/sql"
	_ "embed"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbFile is the database file name inside the cache directory.
const dbFile = "names.db"

// ErrClosed is returned by writes against a closed cache.
var ErrClosed = errors.New("cache is closed")

// TeamEntry is one cached team name resolution.
type TeamEntry struct {
	Short        string
	Name         string
	OverviewPage string
}

// Cache is a TTL-bounded lookup cache backed by SQLite. Safe for
// concurrent use.
type Cache struct {
	mu  sync.Mutex
	db  *sql.DB
	ttl time.Duration
}

// Open creates or opens the cache database under dir. Entries older
// than ttl read as misses; a non-positive ttl disables expiry.
func Open(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFile))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Close releases the database handle. Close is idempotent; reads after
// Close miss and writes return ErrClosed.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Key canonicalizes s and returns its xxh3-128 digest in hex. Lookups
// are case-insensitive and tolerate stray whitespace and Unicode
// composition differences.
func Key(s string) string {
	canon := norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
	sum := xxh3.HashString128(canon).Bytes()
	return hex.EncodeToString(sum[:])
}

// Team returns the cached resolution for a team query. ok is false on a
// miss, a stale entry, or a closed cache.
func (c *Cache) Team(query string) (TeamEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return TeamEntry{}, false
	}

	var e TeamEntry
	var fetchedAt string
	row := c.db.QueryRow(
		`SELECT short, name, overview_page, fetched_at FROM teams WHERE key = ?`,
		Key(query),
	)
	if err := row.Scan(&e.Short, &e.Name, &e.OverviewPage, &fetchedAt); err != nil {
		return TeamEntry{}, false
	}
	if c.stale(fetchedAt) {
		return TeamEntry{}, false
	}
	return e, true
}

// PutTeam stores a team resolution under the canonical key of query,
// replacing any previous entry.
func (c *Cache) PutTeam(query string, e TeamEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return ErrClosed
	}
	_, err := c.db.Exec(
		`INSERT INTO teams (key, short, name, overview_page, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   short = excluded.short,
		   name = excluded.name,
		   overview_page = excluded.overview_page,
		   fetched_at = excluded.fetched_at`,
		Key(query), e.Short, e.Name, e.OverviewPage, c.now(),
	)
	return err
}

// Asset returns the cached URL for a file page title. ok is false on a
// miss, a stale entry, or a closed cache.
func (c *Cache) Asset(title string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return "", false
	}

	var url, fetchedAt string
	row := c.db.QueryRow(`SELECT url, fetched_at FROM assets WHERE key = ?`, Key(title))
	if err := row.Scan(&url, &fetchedAt); err != nil {
		return "", false
	}
	if c.stale(fetchedAt) {
		return "", false
	}
	return url, true
}

// PutAsset stores a resolved file URL under the canonical key of title,
// replacing any previous entry.
func (c *Cache) PutAsset(title, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return ErrClosed
	}
	_, err := c.db.Exec(
		`INSERT INTO assets (key, title, url, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   title = excluded.title,
		   url = excluded.url,
		   fetched_at = excluded.fetched_at`,
		Key(title), title, url, c.now(),
	)
	return err
}

func (c *Cache) now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func (c *Cache) stale(fetchedAt string) bool {
	if c.ttl <= 0 {
		return false
	}
	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return true
	}
	return time.Since(t) > c.ttl
}
