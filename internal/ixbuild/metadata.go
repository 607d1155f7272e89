// Package ixbuild implements the byte-exact on-chain instruction encoders
// spec.md §4.5 names as a compatibility contract with external programs:
// CreateMetadataAccountV3, AMM initialize2, AMM swap, and the compute-budget
// prepend. Every encoder is a small pure function over
// encoding/binary/bytes — no third-party codec in the pack encodes an
// external program's hand-specified byte layout (DESIGN.md).
package ixbuild

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// Field limits enforced by the on-chain metadata program (spec.md §4.5).
const (
	MaxNameLen   = 32
	MaxSymbolLen = 10
	MaxURILen    = 200

	createMetadataV3Discriminator = 0x21
)

// truncateUTF8 truncates s to at most n bytes without splitting a UTF-8
// code point, per spec.md §4.5 ("the builder may truncate UTF-8 at
// code-point boundaries before packing").
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	b := []byte(s)[:n]
	for len(b) > 0 && !utf8.RuneStart(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	// The last rune may still be incomplete even though it starts validly;
	// drop it if decoding fails.
	if len(b) > 0 {
		if r, size := utf8.DecodeLastRune(b); r == utf8.RuneError && size <= 1 {
			b = b[:len(b)-1]
		}
	}
	return string(b)
}

func packStr(buf *bytes.Buffer, s string) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	buf.Write(lenBuf[:])
	buf.WriteString(s)
}

// MetadataFields is the subset of token.* the metadata instruction packs.
type MetadataFields struct {
	Name            string
	Symbol          string
	URI             string
	SellerFeeBps    uint16
	IsMutable       bool
}

// BuildCreateMetadataAccountV3 encodes the instruction payload exactly as
// spec.md §4.5 specifies:
//
//	[0x21] ++ pack_str(name) ++ pack_str(symbol) ++ pack_str(uri) ++
//	u16_le(seller_fee_bps) ++ 0x00 0x00 0x00 ++ (0x01 if is_mutable else 0x00) ++ 0x00
//
// name/symbol/uri are truncated at code-point boundaries to their program
// limits before packing.
func BuildCreateMetadataAccountV3(f MetadataFields) []byte {
	name := truncateUTF8(f.Name, MaxNameLen)
	symbol := truncateUTF8(f.Symbol, MaxSymbolLen)
	uri := truncateUTF8(f.URI, MaxURILen)

	var buf bytes.Buffer
	buf.WriteByte(createMetadataV3Discriminator)
	packStr(&buf, name)
	packStr(&buf, symbol)
	packStr(&buf, uri)

	var feeBuf [2]byte
	binary.LittleEndian.PutUint16(feeBuf[:], f.SellerFeeBps)
	buf.Write(feeBuf[:])

	// Option::None for creators, collection, uses.
	buf.Write([]byte{0x00, 0x00, 0x00})

	if f.IsMutable {
		buf.WriteByte(0x01)
	} else {
		buf.WriteByte(0x00)
	}

	// Option::None for collection_details.
	buf.WriteByte(0x00)

	return buf.Bytes()
}

// DecodedMetadata is what BuildCreateMetadataAccountV3's payload decodes
// back to; used by tests (spec.md §8 P6 and the metadata step test).
type DecodedMetadata struct {
	Discriminator byte
	Name          string
	Symbol        string
	URI           string
	SellerFeeBps  uint16
	IsMutable     bool
}

// DecodeCreateMetadataAccountV3 is the inverse of
// BuildCreateMetadataAccountV3, used only by tests.
func DecodeCreateMetadataAccountV3(data []byte) (DecodedMetadata, error) {
	r := bytes.NewReader(data)

	disc, err := r.ReadByte()
	if err != nil {
		return DecodedMetadata{}, err
	}

	readStr := func() (string, error) {
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return "", err
		}
		n := binary.LittleEndian.Uint32(lenBuf[:])
		s := make([]byte, n)
		if _, err := io.ReadFull(r, s); err != nil {
			return "", err
		}
		return string(s), nil
	}

	name, err := readStr()
	if err != nil {
		return DecodedMetadata{}, err
	}
	symbol, err := readStr()
	if err != nil {
		return DecodedMetadata{}, err
	}
	uri, err := readStr()
	if err != nil {
		return DecodedMetadata{}, err
	}

	var feeBuf [2]byte
	if _, err := io.ReadFull(r, feeBuf[:]); err != nil {
		return DecodedMetadata{}, err
	}
	fee := binary.LittleEndian.Uint16(feeBuf[:])

	rest := make([]byte, 5)
	if _, err := io.ReadFull(r, rest); err != nil {
		return DecodedMetadata{}, err
	}

	return DecodedMetadata{
		Discriminator: disc,
		Name:          name,
		Symbol:        symbol,
		URI:           uri,
		SellerFeeBps:  fee,
		IsMutable:     rest[3] == 0x01,
	}, nil
}

// MetadataAccounts builds the ordered account list for
// CreateMetadataAccountV3 (spec.md §4.5).
func MetadataAccounts(metadataPDA, mint, mintAuthority, payer, updateAuthority, systemProgram, rentSysvar, tokenProgram solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{
		{Pubkey: metadataPDA, IsWritable: true},
		{Pubkey: mint},
		{Pubkey: mintAuthority, IsSigner: true},
		{Pubkey: payer, IsSigner: true, IsWritable: true},
		{Pubkey: updateAuthority},
		{Pubkey: systemProgram},
		{Pubkey: rentSysvar},
		{Pubkey: tokenProgram},
	}
}
