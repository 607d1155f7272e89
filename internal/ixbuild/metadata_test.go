package ixbuild

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildCreateMetadataAccountV3_DecodesBack is P6: the payload for
// (name,symbol,uri) decodes to the truncated triple with discriminator 0x21
// and is_mutable=true.
func TestBuildCreateMetadataAccountV3_DecodesBack(t *testing.T) {
	longName := strings.Repeat("n", 50)
	longSymbol := strings.Repeat("s", 20)
	longURI := "https://example.com/" + strings.Repeat("u", 250)

	payload := BuildCreateMetadataAccountV3(MetadataFields{
		Name:         longName,
		Symbol:       longSymbol,
		URI:          longURI,
		SellerFeeBps: 0,
		IsMutable:    true,
	})

	assert.Equal(t, byte(0x21), payload[0])

	decoded, err := DecodeCreateMetadataAccountV3(payload)
	require.NoError(t, err)

	assert.Equal(t, byte(0x21), decoded.Discriminator)
	assert.Equal(t, truncateUTF8(longName, MaxNameLen), decoded.Name)
	assert.Equal(t, truncateUTF8(longSymbol, MaxSymbolLen), decoded.Symbol)
	assert.Equal(t, truncateUTF8(longURI, MaxURILen), decoded.URI)
	assert.LessOrEqual(t, len(decoded.Name), MaxNameLen)
	assert.LessOrEqual(t, len(decoded.Symbol), MaxSymbolLen)
	assert.LessOrEqual(t, len(decoded.URI), MaxURILen)
	assert.True(t, decoded.IsMutable)
}

func TestBuildCreateMetadataAccountV3_ShortFieldsUnchanged(t *testing.T) {
	payload := BuildCreateMetadataAccountV3(MetadataFields{
		Name: "Foo", Symbol: "FOO", URI: "https://x.io/m.json", IsMutable: true,
	})
	decoded, err := DecodeCreateMetadataAccountV3(payload)
	require.NoError(t, err)
	assert.Equal(t, "Foo", decoded.Name)
	assert.Equal(t, "FOO", decoded.Symbol)
	assert.Equal(t, "https://x.io/m.json", decoded.URI)
}

func TestTruncateUTF8_DoesNotSplitCodePoint(t *testing.T) {
	// "é" (U+00E9) is 2 bytes in UTF-8.
	s := "aé" // 1 + 2 = 3 bytes
	got := truncateUTF8(s, 2)
	assert.True(t, len(got) <= 2)
	for i := 0; i < len(got); {
		r, size := decodeRuneAt(got, i)
		assert.NotEqual(t, rune(0xFFFD), r)
		i += size
	}
}

func decodeRuneAt(s string, i int) (rune, int) {
	for _, r := range s[i:] {
		return r, len(string(r))
	}
	return 0, 0
}
