package license

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	codePrefix     = "UMKM"
	codeSuffixLen  = 6
	base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewCode genera un código UMKM-<unix millis>-<6 caracteres base36 en mayúsculas>.
// La unicidad es probabilística; la columna license_code es UNIQUE.
func NewCode(now time.Time) (string, error) {
	return newCode(rand.Reader, now)
}

// maxUnbiasedByte es el mayor múltiplo de 36 que cabe en un byte; los bytes >= se descartan.
const maxUnbiasedByte = 252

func newCode(r io.Reader, now time.Time) (string, error) {
	var sb strings.Builder
	sb.WriteString(codePrefix)
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	sb.WriteByte('-')
	buf := make([]byte, codeSuffixLen)
	for n := 0; n < codeSuffixLen; {
		chunk := buf[:codeSuffixLen-n]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return "", fmt.Errorf("license code: %w", err)
		}
		for _, b := range chunk {
			if b >= maxUnbiasedByte {
				continue
			}
			sb.WriteByte(base36Alphabet[int(b)%len(base36Alphabet)])
			n++
		}
	}
	return sb.String(), nil
}
