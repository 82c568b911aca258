package buffer

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrettyAndRaw(t *testing.T) {
	assert.Equal(t, "Foo(0aff)", Pretty("Foo", []byte{0x0a, 0xff}))
	assert.Equal(t, "0aff", Raw([]byte{0x0a, 0xff}))
	assert.Equal(t, "Empty()", Pretty("Empty", nil))

	long := Raw(make([]byte, 64))
	assert.Len(t, long, 128)
	assert.Equal(t, strings.Repeat("0", 128), long)
}

func TestMapPreservesOrder(t *testing.T) {
	keys := [][2]byte{{1, 2}, {3, 4}, {5, 6}}
	out := Map(keys, func(k [2]byte) string { return Raw(k[:]) })
	assert.Equal(t, []string{"0102", "0304", "0506"}, out)

	assert.Empty(t, Map([]int(nil), func(i int) int { return i }))
}

func TestConcat(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3}
	out := Concat(a, b, nil, []byte{4, 5})
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, out)

	out[0] = 9
	assert.Equal(t, byte(1), a[0])
}

func TestCopy(t *testing.T) {
	dst := []byte{9, 9, 9}
	require.NoError(t, Copy(dst, []byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3}, dst)

	err := Copy(dst, []byte{7, 7})
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, []byte{1, 2, 3}, dst)
}

func TestBorrow(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	called := false
	Borrow(b, func(ptr unsafe.Pointer, n int) {
		called = true
		assert.Equal(t, 4, n)
		assert.Equal(t, unsafe.Pointer(&b[0]), ptr)
	})
	assert.True(t, called)
}

func TestDecodeSeqLeavesDstOnError(t *testing.T) {
	dst := []byte{9, 9}
	for _, in := range [][]byte{
		nil,
		{1, 0},
		{2, 0},
		{2, 0, 1, 2},
		{3, 0, 1, 2},
	} {
		assert.Error(t, DecodeSeq(dst, in), "input %x", in)
		assert.Equal(t, []byte{9, 9}, dst)
	}

	require.NoError(t, DecodeSeq(dst, AppendSeq(nil, []byte{1, 2})))
	assert.Equal(t, []byte{1, 2}, dst)
}

func TestAppendSeqPrefix(t *testing.T) {
	out := AppendSeq([]byte{0xee}, make([]byte, 300))
	// 300 = 0b1_0010_1100: low group 0x2c with continuation, then 0x02.
	assert.Equal(t, []byte{0xee, 0xac, 0x02}, out[:3])
	assert.Len(t, out, 303)
}

func TestMarshalJSONSeq(t *testing.T) {
	assert.Equal(t, "[0,1,171,255]", string(MarshalJSONSeq([]byte{0, 1, 171, 255})))
	assert.Equal(t, "[]", string(MarshalJSONSeq(nil)))
}

func TestIsJSONNull(t *testing.T) {
	assert.True(t, IsJSONNull([]byte("null")))
	assert.True(t, IsJSONNull([]byte(" null\n")))
	assert.False(t, IsJSONNull([]byte("[]")))
	assert.False(t, IsJSONNull([]byte(`"null"`)))
}

func TestUnmarshalYAMLSeqAlias(t *testing.T) {
	var doc yaml.Node
	src := "base: &k [1, 2]\ncopy: *k\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	mapping := doc.Content[0]
	alias := mapping.Content[3]
	require.Equal(t, yaml.AliasNode, alias.Kind)

	dst := make([]byte, 2)
	require.NoError(t, UnmarshalYAMLSeq(dst, alias))
	assert.Equal(t, []byte{1, 2}, dst)
}

func TestMarshalYAMLSeqNode(t *testing.T) {
	node := MarshalYAMLSeq([]byte{7, 200})
	assert.Equal(t, yaml.SequenceNode, node.Kind)
	assert.Equal(t, yaml.FlowStyle, node.Style)
	require.Len(t, node.Content, 2)
	assert.Equal(t, "200", node.Content[1].Value)

	out, err := yaml.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t, "[7, 200]\n", string(out))
}
