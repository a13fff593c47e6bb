package convert

import (
	"testing"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"
)

func mustType(t *testing.T, sol string) ethabi.Type {
	t.Helper()
	typ, err := ethabi.NewType(sol, "", nil)
	require.NoError(t, err, "ethabi.NewType(%q)", sol)
	return typ
}

func TestToDescriptorScalars(t *testing.T) {
	cases := []struct {
		sol  string
		want string
	}{
		{"uint256", "uint256"},
		{"uint8", "uint8"},
		{"int128", "int128"},
		{"address", "address"},
		{"bool", "bool"},
		{"bytes32", "bytes32"},
		{"bytes", "bytes"},
		{"string", "string"},
	}
	for _, c := range cases {
		t.Run(c.sol, func(t *testing.T) {
			d, err := ToDescriptor(mustType(t, c.sol))
			require.NoError(t, err)
			require.Equal(t, c.want, d.SelectorName())
		})
	}
}

func TestToDescriptorArray(t *testing.T) {
	d, err := ToDescriptor(mustType(t, "uint256[3]"))
	require.NoError(t, err)
	require.Equal(t, "uint256[3]", d.SelectorName())
	require.False(t, d.IsDynamic(), "uint256[3]: expected non-dynamic")
}

func TestToDescriptorSlice(t *testing.T) {
	d, err := ToDescriptor(mustType(t, "address[]"))
	require.NoError(t, err)
	require.True(t, d.IsDynamic(), "address[]: expected dynamic")
	require.Equal(t, "address[]", d.SelectorName())
}

func TestToDescriptorTuple(t *testing.T) {
	d, err := ToDescriptor(mustType(t, "(uint256,bytes)"))
	require.NoError(t, err)
	require.True(t, d.IsDynamic(), "(uint256,bytes): expected dynamic")
	require.Len(t, d.Elems(), 2)
}

func TestFieldName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"amount", "Amount"},
		{"to", "To"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, FieldName(c.in), "FieldName(%q)", c.in)
	}
}

func TestMethodSelectorKnownValue(t *testing.T) {
	// transfer(address,uint256) is the widely known ERC-20 selector 0xa9059cbb.
	inputs := []ethabi.Type{mustType(t, "address"), mustType(t, "uint256")}
	got, err := MethodSelectorHex("transfer", inputs)
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb", got)
}
