package crypto

import (
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// DeriveWalletAddress derives a secp256k1 keypair from onboarding seed
// material and returns the hex wallet address. The seed material is consumed
// here and never stored; only the derived address leaves this function.
func DeriveWalletAddress(seed []byte) (string, error) {
	if len(seed) == 0 {
		return "", fmt.Errorf("empty seed material")
	}

	// Keccak the seed into scalar range; rehash with a counter suffix on the
	// rare draw outside the curve order.
	material := seed
	for i := 0; i < 16; i++ {
		digest := ethcrypto.Keccak256(material)
		key, err := ethcrypto.ToECDSA(digest)
		if err == nil {
			return ethcrypto.PubkeyToAddress(key.PublicKey).Hex(), nil
		}
		material = append(digest, byte(i))
	}
	return "", fmt.Errorf("failed to derive key from seed material")
}
