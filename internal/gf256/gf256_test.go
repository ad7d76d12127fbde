package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestMulKnownProducts checks products worked through in FIPS-197 §4.2.
func TestMulKnownProducts(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"fips example", 0x57, 0x83, 0xc1},
		{"xtime chain 02", 0x57, 0x02, 0xae},
		{"xtime chain 04", 0x57, 0x04, 0x47},
		{"xtime chain 08", 0x57, 0x08, 0x8e},
		{"xtime chain 10", 0x57, 0x10, 0x07},
		{"fips 57*13", 0x57, 0x13, 0xfe},
		{"identity", 0xd4, 0x01, 0xd4},
		{"zero", 0xd4, 0x00, 0x00},
		{"mixcolumns 02*d4", 0x02, 0xd4, 0xb3},
		{"mixcolumns 03*bf", 0x03, 0xbf, 0xda},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Mul(tt.a, tt.b))
		})
	}
}

func TestMulCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		b := rapid.Byte().Draw(t, "b")

		if Mul(a, b) != Mul(b, a) {
			t.Fatalf("Mul(%#x, %#x) != Mul(%#x, %#x)", a, b, b, a)
		}
	})
}

func TestMulDistributesOverAdd(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		b := rapid.Byte().Draw(t, "b")
		c := rapid.Byte().Draw(t, "c")

		left := Mul(a, Add(b, c))
		right := Add(Mul(a, b), Mul(a, c))
		if left != right {
			t.Fatalf("a*(b+c) = %#x, a*b+a*c = %#x", left, right)
		}
	})
}

func TestInverse(t *testing.T) {
	require.Equal(t, byte(0), Inverse(0))

	// FIPS-197 §4.2.1: {53} and {ca} are inverses.
	require.Equal(t, byte(0xca), Inverse(0x53))
	require.Equal(t, byte(0x53), Inverse(0xca))

	for i := 1; i < 256; i++ {
		a := byte(i)
		require.Equalf(t, byte(1), Mul(a, Inverse(a)),
			"a=%#x inverse=%#x", a, Inverse(a))
	}
}

func BenchmarkMul(b *testing.B) {
	var sink byte
	for i := 0; i < b.N; i++ {
		sink ^= Mul(byte(i), byte(i>>8))
	}
	_ = sink
}
