package namecache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := Open(t.TempDir(), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// backdate rewrites an entry's fetch time so staleness can be tested
// without sleeping.
func backdate(t *testing.T, c *Cache, table, key string, age time.Duration) {
	t.Helper()
	old := time.Now().UTC().Add(-age).Format(time.RFC3339Nano)
	_, err := c.db.Exec(`UPDATE `+table+` SET fetched_at = ? WHERE key = ?`, old, key)
	require.NoError(t, err)
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		same bool
	}{
		{
			name: "case insensitive",
			a:    "T1",
			b:    "t1",
			same: true,
		},
		{
			name: "whitespace trimmed",
			a:    "  G2 Esports\t",
			b:    "G2 Esports",
			same: true,
		},
		{
			name: "unicode composition normalized",
			a:    "Movistar KOÍ",
			b:    "Movistar KOÍ",
			same: true,
		},
		{
			name: "different names differ",
			a:    "T1",
			b:    "G2 Esports",
			same: false,
		},
		{
			name: "interior whitespace significant",
			a:    "G2Esports",
			b:    "G2 Esports",
			same: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, Key(tt.a), Key(tt.b))
			} else {
				assert.NotEqual(t, Key(tt.a), Key(tt.b))
			}
		})
	}

	assert.Len(t, Key("T1"), 32, "keys are 128-bit hex digests")
}

func TestTeamRoundTrip(t *testing.T) {
	c := openTestCache(t, time.Hour)

	_, ok := c.Team("T1")
	assert.False(t, ok, "empty cache must miss")

	entry := TeamEntry{Short: "T1", Name: "T1", OverviewPage: "T1"}
	require.NoError(t, c.PutTeam("T1", entry))

	got, ok := c.Team("T1")
	require.True(t, ok)
	assert.Equal(t, entry, got)

	got, ok = c.Team("  t1 ")
	require.True(t, ok, "lookup is canonicalized")
	assert.Equal(t, entry, got)
}

func TestPutTeamReplaces(t *testing.T) {
	c := openTestCache(t, time.Hour)

	require.NoError(t, c.PutTeam("skt", TeamEntry{Short: "SKT", Name: "SK Telecom T1", OverviewPage: "SK Telecom T1"}))
	require.NoError(t, c.PutTeam("skt", TeamEntry{Short: "T1", Name: "T1", OverviewPage: "T1"}))

	got, ok := c.Team("skt")
	require.True(t, ok)
	assert.Equal(t, "T1", got.Name)
}

func TestAssetRoundTrip(t *testing.T) {
	c := openTestCache(t, time.Hour)

	_, ok := c.Asset("File:T1logo square.png")
	assert.False(t, ok)

	require.NoError(t, c.PutAsset("File:T1logo square.png", "https://static.example/t1.png"))

	url, ok := c.Asset("File:T1logo square.png")
	require.True(t, ok)
	assert.Equal(t, "https://static.example/t1.png", url)
}

func TestStaleEntriesMiss(t *testing.T) {
	c := openTestCache(t, time.Hour)

	require.NoError(t, c.PutTeam("T1", TeamEntry{Short: "T1", Name: "T1", OverviewPage: "T1"}))
	backdate(t, c, "teams", Key("T1"), 2*time.Hour)

	_, ok := c.Team("T1")
	assert.False(t, ok, "entries older than the TTL must miss")

	require.NoError(t, c.PutAsset("File:T1logo std.png", "https://static.example/t1-std.png"))
	backdate(t, c, "assets", Key("File:T1logo std.png"), 2*time.Hour)

	_, ok = c.Asset("File:T1logo std.png")
	assert.False(t, ok)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := openTestCache(t, 0)

	require.NoError(t, c.PutTeam("T1", TeamEntry{Short: "T1", Name: "T1", OverviewPage: "T1"}))
	backdate(t, c, "teams", Key("T1"), 24*365*time.Hour)

	_, ok := c.Team("T1")
	assert.True(t, ok)
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, c.PutTeam("T1", TeamEntry{Short: "T1", Name: "T1", OverviewPage: "T1"}))
	require.NoError(t, c.Close())

	c, err = Open(dir, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Team("T1")
	require.True(t, ok, "entries survive reopen")
	assert.Equal(t, "T1", got.Name)
}

func TestClosedCache(t *testing.T) {
	c := openTestCache(t, time.Hour)
	require.NoError(t, c.Close())

	_, ok := c.Team("T1")
	assert.False(t, ok)
	_, ok = c.Asset("File:T1logo std.png")
	assert.False(t, ok)

	assert.ErrorIs(t, c.PutTeam("T1", TeamEntry{}), ErrClosed)
	assert.ErrorIs(t, c.PutAsset("File:X.png", "u"), ErrClosed)

	assert.NoError(t, c.Close(), "close is idempotent")
}
