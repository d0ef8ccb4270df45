package trie

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuild(t *testing.T) {
	root := Build([]string{"do", "dog"})

	require.Equal(t, []string{"d"}, root.Labels())
	d := root.Child("d")
	require.Equal(t, []string{"o"}, d.Labels())
	o := d.Child("o")
	assert.Equal(t, []string{"", "g"}, o.Labels())
	assert.True(t, o.HasTerminal())
	assert.Equal(t, KindLeaf, o.Child(Terminal).Kind())
	assert.True(t, o.Child("g").IsTerminalOnly())
}

func TestBuildEscapesLabels(t *testing.T) {
	root := Build([]string{"a.b"})
	a := root.Child("a")
	require.NotNil(t, a)
	assert.Equal(t, []string{`\.`}, a.Labels())
}

func TestBuildEmpty(t *testing.T) {
	root := Build(nil)
	assert.Equal(t, KindLeaf, root.Kind())
	assert.Equal(t, "{}", root.Key())

	assert.True(t, Build([]string{""}).IsTerminalOnly())
}

func TestBuildDuplicates(t *testing.T) {
	assert.True(t, Equal(Build([]string{"cat", "bat"}), Build([]string{"cat", "bat", "cat", "bat"})))
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"empty", nil, `{}`},
		{"single word", []string{"cat"}, `{"cat":{"":{}}}`},
		{"optional suffix", []string{"do", "dog"}, `{"do":{"":{},"g":{"":{}}}}`},
		{"shared prefix", []string{"foobar", "foobaz"}, `{"fooba":{"r":{"":{}},"z":{"":{}}}}`},
		{"two words", []string{"cat", "bat"}, `{"bat":{"":{}},"cat":{"":{}}}`},
		{"escaped", []string{"a.b", "a+b"}, `{"a":{"\\+b":{"":{}},"\\.b":{"":{}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(Build(tt.words)).Key()
			if got != tt.want {
				t.Errorf("Compress(Build(%q)).Key() = %s, want %s", tt.words, got, tt.want)
			}
		})
	}
}

func TestCompressDoesNotModifyInput(t *testing.T) {
	raw := Build([]string{"foobar", "foobaz"})
	before := raw.Key()
	_ = Compress(raw)
	assert.Equal(t, before, raw.Key())
}

func TestCompressIdempotent(t *testing.T) {
	sets := [][]string{
		nil,
		{"a"},
		{"cat", "bat", "hat"},
		{"foo", "foobar", "foobaz", "fob"},
		{"x.y", "x+y", "日本", "日本語"},
	}
	for _, words := range sets {
		once := Compress(Build(words))
		twice := Compress(once)
		assert.True(t, Equal(once, twice), "words %q: %s != %s", words, once, twice)
	}
}

func TestCompressedSiblingsShareNoPrefix(t *testing.T) {
	root := FromWords([]string{"abc", "abd", "b", "bcd", "bce"})
	var walk func(n *Node)
	walk = func(n *Node) {
		seen := map[byte]string{}
		for _, label := range n.Labels() {
			if label == Terminal {
				continue
			}
			if other, ok := seen[label[0]]; ok {
				t.Errorf("labels %q and %q share a prefix", other, label)
			}
			seen[label[0]] = label
			walk(n.Child(label))
		}
	}
	walk(root)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, New()))
	assert.True(t, Equal(FromWords([]string{"ab", "ac"}), FromWords([]string{"ac", "ab"})))
	assert.False(t, Equal(FromWords([]string{"ab"}), FromWords([]string{"ac"})))
	assert.False(t, Equal(FromWords([]string{"ab"}), FromWords([]string{"ab", "abc"})))
	assert.False(t, Equal(New(), FromWords([]string{""})))
}

func TestContinuationKey(t *testing.T) {
	leaf := New()
	end := Build([]string{""})
	assert.NotEqual(t, leaf.Key(), end.Key())
	assert.Equal(t, leaf.ContinuationKey(), end.ContinuationKey())
	assert.NotEqual(t, leaf.ContinuationKey(), FromWords([]string{"a"}).ContinuationKey())
}

func TestMarshal(t *testing.T) {
	root := FromWords([]string{"do", "dog"})

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{"do":{"":{},"g":{"":{}}}}`, string(data))

	data, err = json.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	out, err := yaml.Marshal(root)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "do")
}

func TestCount(t *testing.T) {
	words := []string{"cat", "bat"}
	assert.Equal(t, 9, Count(Build(words)))
	assert.Equal(t, 5, Count(FromWords(words)))
	assert.Equal(t, 1, Count(New()))
	assert.Equal(t, 1, Count(nil))
}
