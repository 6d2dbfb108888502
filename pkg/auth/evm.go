package auth

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const signatureLength = 65

var ErrInvalidAddress = errors.New("invalid address")

// VerifyEIP191Signature recovers the signer of a personal_sign signature.
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(ensure0x(signature))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(sig) != signatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", signatureLength, len(sig))
	}

	// v may be 0, 1, 27 or 28
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pubKey, err := crypto.SigToPub(eip191Hash(message), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// SignEIP191 produces a personal_sign signature over message, with v in {27, 28}.
func SignEIP191(message string, key *ecdsa.PrivateKey) (string, error) {
	sig, err := crypto.Sign(eip191Hash(message), key)
	if err != nil {
		return "", err
	}
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

func eip191Hash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// ParseAddress parses a 0x-prefixed EVM address. Mixed-case input must
// carry a valid EIP-55 checksum.
func ParseAddress(s string) (common.Address, error) {
	if !strings.HasPrefix(s, "0x") || !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) {
		if err := ethav.Validate(s); err != nil {
			return common.Address{}, fmt.Errorf("%w: bad checksum: %v", ErrInvalidAddress, err)
		}
	}
	return common.HexToAddress(s), nil
}

func ensure0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}
