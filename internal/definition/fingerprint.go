package definition

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"

	"trychooser/internal/domain"
)

// Fingerprint returns a short hex digest of def.
//
// It hashes the JSON encoding with BLAKE2b-256 and truncates to 10 bytes
// (20 hex chars). Struct field order makes the encoding stable.
func Fingerprint(def *domain.Definition) domain.Fingerprint {
	b, err := json.Marshal(def)
	if err != nil {
		// Definitions only hold strings, bools and slices of them.
		panic(err)
	}
	sum := blake2b.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
