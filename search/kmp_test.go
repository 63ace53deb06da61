package search

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestIndexBasic(t *testing.T) {
	cases := []struct {
		haystack string
		needle   string
		want     int
	}{
		{"hello world", "world", 6},
		{"hello world", "hello", 0},
		{"hello world", "o w", 4},
		{"hello world", "xyz", -1},
		{"", "a", -1},
		{"abc", "", 0},
		{"aaaaab", "aab", 3},
		{"ababcabab", "ababd", -1},
		{"ababcababd", "ababd", 5},
		{"a", "a", 0},
	}

	for _, c := range cases {
		got := Index([]byte(c.haystack), []byte(c.needle))
		if got != c.want {
			t.Errorf("Index(%q, %q) = %d, expected %d", c.haystack, c.needle, got, c.want)
		}
	}
}

func TestIndexMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	alphabet := []byte("ab")

	for i := 0; i < 500; i++ {
		haystack := make([]byte, rng.Intn(64))
		for j := range haystack {
			haystack[j] = alphabet[rng.Intn(len(alphabet))]
		}
		needle := make([]byte, 1+rng.Intn(6))
		for j := range needle {
			needle[j] = alphabet[rng.Intn(len(alphabet))]
		}

		want := bytes.Index(haystack, needle)
		got := Index(haystack, needle)
		if got != want {
			t.Fatalf("Index(%q, %q) = %d, expected %d", haystack, needle, got, want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains([]byte("segment-000001.wal"), []byte("segment")) {
		t.Fatal("expected a match")
	}
	if Contains([]byte("segment-000001.wal"), []byte("snapshot")) {
		t.Fatal("expected no match")
	}
}
