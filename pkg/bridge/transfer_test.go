package bridge

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0xA11CE00000000000000000000000000000000001")
	bob   = common.HexToAddress("0xB0B0000000000000000000000000000000000002")
	token = common.HexToAddress("0x70C3E00000000000000000000000000000000003")
)

func TestDeriveTransferID_PackedEncoding(t *testing.T) {
	ts := time.Unix(1_700_000_000, 0)
	gross := big.NewInt(1000)

	var packed []byte
	packed = append(packed, alice.Bytes()...)
	packed = append(packed, bob.Bytes()...)
	packed = append(packed, token.Bytes()...)
	packed = append(packed, common.LeftPadBytes(gross.Bytes(), 32)...)
	packed = append(packed, common.LeftPadBytes(big.NewInt(1).Bytes(), 32)...)
	packed = append(packed, common.LeftPadBytes(big.NewInt(137).Bytes(), 32)...)
	packed = append(packed, common.LeftPadBytes(big.NewInt(ts.Unix()).Bytes(), 32)...)
	packed = append(packed, common.LeftPadBytes(big.NewInt(7).Bytes(), 32)...)
	require.Len(t, packed, 3*20+5*32)

	got := DeriveTransferID(alice, bob, token, gross, 1, 137, ts, 7)
	assert.Equal(t, crypto.Keccak256Hash(packed), got)
}

func TestDeriveTransferID_SequenceDistinguishes(t *testing.T) {
	ts := time.Unix(1_700_000_000, 0)
	a := DeriveTransferID(alice, bob, NativeAsset, big.NewInt(5), 1, 137, ts, 0)
	b := DeriveTransferID(alice, bob, NativeAsset, big.NewInt(5), 1, 137, ts, 1)
	assert.NotEqual(t, a, b)
}

func TestParseTransferID(t *testing.T) {
	id := DeriveTransferID(alice, bob, NativeAsset, big.NewInt(5), 1, 137, time.Unix(1, 0), 0)

	got, ok := ParseTransferID(id.Hex())
	require.True(t, ok)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "0x", "0x1234", id.Hex()[2:], "0xzz"} {
		_, ok := ParseTransferID(bad)
		assert.False(t, ok, bad)
	}
}

func TestTransferClone_DeepCopiesAmounts(t *testing.T) {
	orig := &Transfer{GrossAmount: big.NewInt(10), Fee: big.NewInt(1), NetAmount: big.NewInt(9)}
	c := orig.Clone()
	c.NetAmount.SetInt64(0)
	assert.Equal(t, int64(9), orig.NetAmount.Int64())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusFailed.Valid())
	assert.False(t, Status("unknown").Valid())
}
