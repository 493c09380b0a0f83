package license

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^UMKM-\d+-[0-9A-Z]{6}$`)

func TestNewCode_Formato(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	code, err := NewCode(now)
	require.NoError(t, err)
	assert.Regexp(t, codePattern, code)
	assert.Contains(t, code, "-1700000000123-")
}

func TestNewCode_SufijoDeterministaConLector(t *testing.T) {
	r := bytes.NewReader([]byte{0, 10, 35, 36, 71, 39})
	code, err := newCode(r, time.UnixMilli(1))
	require.NoError(t, err)
	assert.Equal(t, "UMKM-1-0AZ0Z3", code)
}

func TestNewCode_DescartaBytesFueraDeRango(t *testing.T) {
	// 252..255 no son múltiplo completo de 36; se leen bytes extra para reemplazarlos.
	r := bytes.NewReader([]byte{0, 10, 35, 36, 71, 255, 252, 3})
	code, err := newCode(r, time.UnixMilli(1))
	require.NoError(t, err)
	assert.Equal(t, "UMKM-1-0AZ0Z3", code)
	assert.Zero(t, r.Len())
}

func TestNewCode_DistribucionUniformePorByte(t *testing.T) {
	var all []byte
	for b := 0; b < 256; b++ {
		all = append(all, byte(b))
	}
	// 256 bytes dan 252 caracteres válidos: 42 códigos, 7 apariciones por símbolo.
	r := bytes.NewReader(all)
	counts := map[rune]int{}
	for i := 0; i < 42; i++ {
		code, err := newCode(r, time.UnixMilli(1))
		require.NoError(t, err)
		for _, c := range code[len("UMKM-1-"):] {
			counts[c]++
		}
	}
	assert.Len(t, counts, len(base36Alphabet))
	for c, n := range counts {
		assert.Equal(t, 7, n, "símbolo %q", c)
	}
}

func TestNewCode_LectorAgotado(t *testing.T) {
	_, err := newCode(bytes.NewReader([]byte{1, 2}), time.Now())
	assert.Error(t, err)

	_, err = newCode(bytes.NewReader([]byte{1, 2, 3, 4, 5, 255}), time.Now())
	assert.Error(t, err)
}
