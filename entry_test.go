package chainhash

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// collide sends every key to bucket 0.
var collide = HasherFunc(func(string) uint64 { return 0 })

func chainKeys[V any](head *entry[V]) []string {
	var keys []string
	for e := head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

func TestInsertNoResizeAppendsAtTail(t *testing.T) {
	buckets := make([]*entry[int], 4)

	require.True(t, insertNoResize(buckets, collide, "a", 1))
	require.True(t, insertNoResize(buckets, collide, "b", 2))
	require.True(t, insertNoResize(buckets, collide, "c", 3))
	require.Equal(t, []string{"a", "b", "c"}, chainKeys(buckets[0]))

	// Overwrite keeps the node where it is
	require.False(t, insertNoResize(buckets, collide, "b", 20))
	require.Equal(t, []string{"a", "b", "c"}, chainKeys(buckets[0]))
	require.Equal(t, 20, lookup(buckets[0], "b").value)
	require.Nil(t, lookup(buckets[0], "d"))
}

func TestUnlink(t *testing.T) {
	cases := []struct {
		name   string
		remove string
		want   []string
	}{
		{"Head", "a", []string{"b", "c"}},
		{"Middle", "b", []string{"a", "c"}},
		{"Tail", "c", []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buckets := make([]*entry[int], 1)
			for i, k := range []string{"a", "b", "c"} {
				insertNoResize(buckets, collide, k, i)
			}

			require.True(t, unlink(buckets, 0, tc.remove))
			require.Equal(t, tc.want, chainKeys(buckets[0]))
			require.False(t, unlink(buckets, 0, tc.remove))
		})
	}

	t.Run("OnlyNode", func(t *testing.T) {
		buckets := make([]*entry[int], 1)
		insertNoResize(buckets, collide, "a", 1)
		require.True(t, unlink(buckets, 0, "a"))
		require.Nil(t, buckets[0])
	})

	t.Run("EmptyBucket", func(t *testing.T) {
		buckets := make([]*entry[int], 1)
		require.False(t, unlink(buckets, 0, "a"))
	})
}

func TestRebuildKeepsEncounterOrder(t *testing.T) {
	logger, _ := test.NewNullLogger()
	tbl, err := New[int](1, WithHasher(collide), WithLogger(logger))
	require.NoError(t, err)

	for i, k := range []string{"a", "b", "c", "d"} {
		tbl.Insert(k, i)
	}
	require.NoError(t, tbl.Rehash(64))

	require.Equal(t, 64, len(tbl.buckets))
	require.Equal(t, []string{"a", "b", "c", "d"}, chainKeys(tbl.buckets[0]))
	require.Equal(t, 4, tbl.Len())
}

func TestStatsEntriesWalksChains(t *testing.T) {
	logger, _ := test.NewNullLogger()
	tbl, err := New[int](4, WithHasher(collide), WithLogger(logger))
	require.NoError(t, err)
	tbl.Insert("a", 1)
	tbl.Insert("b", 2)

	tbl.count = 7
	s := tbl.Stats()
	require.Equal(t, 7, s.Count)
	require.Equal(t, 2, s.Entries)
}
