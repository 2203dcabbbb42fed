package payment

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/matoboco/pay-by-square/internal/model"
)

// codeAlphabet is the RFC 4648 base32hex alphabet; no padding is emitted.
const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

// payloadHeader precedes the compressed payload: by-square type, format
// version, document type and a reserved byte. The only supported profile
// is all zeroes.
var payloadHeader = []byte{0x00, 0x00, 0x00, 0x00}

// Encode turns a validated payment request into the Pay by Square text
// code: serialized fields are prefixed with a little-endian CRC32,
// LZMA-compressed, header-tagged and base32hex-encoded.
func Encode(p *model.PaymentRequest) (string, error) {
	data := []byte(Serialize(p))

	payload := make([]byte, 4, 4+len(data))
	binary.LittleEndian.PutUint32(payload, crc32.ChecksumIEEE(data))
	payload = append(payload, data...)

	compressed, err := compress(payload)
	if err != nil {
		return "", err
	}

	final := make([]byte, 0, len(payloadHeader)+len(compressed))
	final = append(final, payloadHeader...)
	final = append(final, compressed...)

	return base32hexEncode(final), nil
}

// compress applies the LZMA-family codec. The output is an XZ container;
// strict by-square readers expect a raw LZMA stream, but tolerant readers
// accept the container form.
func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, compressionFailed(err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, compressionFailed(err)
	}
	if err := w.Close(); err != nil {
		return nil, compressionFailed(err)
	}

	return buf.Bytes(), nil
}

func compressionFailed(err error) *Error {
	return &Error{Kind: KindCompressionFailed, Reason: err.Error(), cause: errors.WithStack(err)}
}

// base32hexEncode encodes data with a 5-bit accumulator. A final partial
// group is padded with zero bits; no padding characters are appended.
func base32hexEncode(data []byte) string {
	var b strings.Builder
	b.Grow((len(data)*8 + 4) / 5)

	var bits uint32
	var n uint
	for _, by := range data {
		bits = bits<<8 | uint32(by)
		n += 8
		for n >= 5 {
			n -= 5
			b.WriteByte(codeAlphabet[bits>>n&0x1F])
		}
	}
	if n > 0 {
		b.WriteByte(codeAlphabet[bits<<(5-n)&0x1F])
	}

	return b.String()
}
