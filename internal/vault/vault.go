// Package vault generates, encrypts, and decrypts the Ed25519 sub-wallet
// keypairs spec.md §4.3 describes. Encryption is AEAD (chacha20poly1305,
// golang.org/x/crypto) under a key derived by right-padding/truncating the
// operator's passphrase to 32 bytes — not a KDF, a preserved compatibility
// contract (spec.md §4.3, §9 Open Questions) with existing deployments.
package vault

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// Keypair is a raw Ed25519 secret/public key pair. It satisfies
// rpcfacade.Signer so step executors can pass wallets straight through to
// the RPC facade without an adapter type.
type Keypair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// Sign returns the Ed25519 signature of message under this keypair's
// private key.
func (k Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(k.Private, message)
}

// PublicKey returns this keypair's public key in the orchestrator's
// fixed-size Pubkey form. Panics if Public is not a well-formed Ed25519
// public key, which would mean the Keypair was constructed incorrectly.
func (k Keypair) PublicKey() solana.Pubkey {
	pk, err := solana.PubkeyFromPublic(k.Public)
	if err != nil {
		panic(err)
	}
	return pk
}

// Generate creates one fresh, cryptographically random Ed25519 keypair per
// id in ids (spec.md §4.3 generate(ids)).
func Generate(ids []string) (map[string]Keypair, error) {
	out := make(map[string]Keypair, len(ids))
	for _, id := range ids {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, errs.WalletVaultError{WalletID: id, Err: err}
		}
		out[id] = Keypair{Public: pub, Private: priv}
	}
	return out, nil
}

// deriveKeyCompat right-pads (with zero bytes) or truncates the UTF-8
// passphrase to exactly chacha20poly1305.KeySize bytes. This is explicitly
// NOT a key-derivation function: it's byte identity up to length, preserved
// because existing deployments already encrypted wallets under this scheme
// (spec.md §4.3, §9).
func deriveKeyCompat(passphrase string) [chacha20poly1305.KeySize]byte {
	var key [chacha20poly1305.KeySize]byte
	copy(key[:], []byte(passphrase))
	return key
}

// Save AEAD-encrypts kp's 64-byte secret key under a key derived from
// passphrase and writes it to path (spec.md §4.3 save(dir, id, kp) → path).
func Save(path, id string, kp Keypair, passphrase string) (string, error) {
	if passphrase == "" {
		return "", errs.ConfigError{Key: "LAUNCHER_WALLET_PASS"}
	}

	key := deriveKeyCompat(passphrase)
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return "", errs.WalletVaultError{WalletID: id, Err: err}
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errs.WalletVaultError{WalletID: id, Err: err}
	}

	secret := append(append([]byte{}, kp.Private...)) // 64 bytes: seed||public
	ciphertext := aead.Seal(nonce, nonce, secret, nil)

	if err := os.WriteFile(path, ciphertext, 0o600); err != nil {
		return "", errs.WalletVaultError{WalletID: id, Err: err}
	}
	return path, nil
}

// Load decrypts the keypair stored at path (spec.md §4.3 load(path) →
// keypair), the inverse of Save.
func Load(path, id, passphrase string) (Keypair, error) {
	if passphrase == "" {
		return Keypair{}, errs.ConfigError{Key: "LAUNCHER_WALLET_PASS"}
	}

	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return Keypair{}, errs.WalletVaultError{WalletID: id, Err: err}
	}

	key := deriveKeyCompat(passphrase)
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return Keypair{}, errs.WalletVaultError{WalletID: id, Err: err}
	}

	if len(ciphertext) < aead.NonceSize() {
		return Keypair{}, errs.WalletVaultError{WalletID: id, Message: "ciphertext too short"}
	}

	nonce, body := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	secret, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return Keypair{}, errs.WalletVaultError{WalletID: id, Message: "decrypt failed (wrong passphrase?)", Err: err}
	}
	if len(secret) != ed25519.PrivateKeySize {
		return Keypair{}, errs.WalletVaultError{WalletID: id, Message: "decrypted secret has wrong length"}
	}

	priv := ed25519.PrivateKey(secret)
	return Keypair{Public: priv.Public().(ed25519.PublicKey), Private: priv}, nil
}

// LoadSeed reads the seed wallet's keypair, which is never encrypted
// (spec.md §4.3 load_seed(path) → keypair): a JSON array of 64 integers, or
// (per original_source/src/core/keys.py's alternate code path) a raw
// 64-byte binary file.
func LoadSeed(path string) (Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keypair{}, errs.WalletVaultError{Message: "read seed file", Err: err}
	}

	var secret []byte
	if len(data) == ed25519.PrivateKeySize {
		secret = data
	} else {
		var arr []int
		if err := json.Unmarshal(data, &arr); err != nil {
			return Keypair{}, errs.WalletVaultError{Message: "seed file is neither a 64-byte binary nor a JSON int array", Err: err}
		}
		if len(arr) != ed25519.PrivateKeySize {
			return Keypair{}, errs.WalletVaultError{Message: fmt.Sprintf(
				"seed JSON array has %d entries, want %d", len(arr), ed25519.PrivateKeySize)}
		}
		secret = make([]byte, len(arr))
		for i, v := range arr {
			if v < 0 || v > 255 {
				return Keypair{}, errs.WalletVaultError{Message: fmt.Sprintf("seed byte %d out of range: %d", i, v)}
			}
			secret[i] = byte(v)
		}
	}

	priv := ed25519.PrivateKey(secret)
	return Keypair{Public: priv.Public().(ed25519.PublicKey), Private: priv}, nil
}
