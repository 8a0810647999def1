package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZlib
	CompressionZstd
)

// DefaultCompressionLevel selects the library default level of a compression.
const DefaultCompressionLevel = -1

const (
	zlibMinLevel = zlib.BestSpeed
	zlibMaxLevel = zlib.BestCompression
	zstdMinLevel = 1
	zstdMaxLevel = 22

	zstdMinMemory = 1 << 20
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZlib:
		return "zlib"
	case CompressionZstd:
		return "zstd"
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// ParseCompression parses a compression name as found in map files.
// An empty name means no compression.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "zlib":
		return CompressionZlib, nil
	case "zstd":
		return CompressionZstd, nil
	}
	return CompressionNone, fmt.Errorf("%w: %q", ErrUnsupportedCompression, name)
}

// Compress compresses data with the given compression and level.
// Zlib levels are clamped to [1, 9]; zstd levels must lie in [1, 22].
func Compress(data []byte, compression Compression, level int) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionZlib:
		return compressZlib(data, level)
	case CompressionZstd:
		return compressZstd(data, level)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, compression)
}

func compressZlib(data []byte, level int) ([]byte, error) {
	if level != DefaultCompressionLevel {
		level = min(max(level, zlibMinLevel), zlibMaxLevel)
	}

	var buffer bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buffer, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}

	return buffer.Bytes(), nil
}

func compressZstd(data []byte, level int) ([]byte, error) {
	encoderLevel := zstd.SpeedDefault
	if level != DefaultCompressionLevel {
		if level < zstdMinLevel || level > zstdMaxLevel {
			return nil, fmt.Errorf("%w: invalid zstd level %d", ErrCompression, level)
		}
		encoderLevel = zstd.EncoderLevelFromZstd(level)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(encoderLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses data without limiting its decompressed size.
func Decompress(data []byte, compression Compression) ([]byte, error) {
	return DecompressLimit(data, compression, 0)
}

// DecompressLimit is like Decompress but fails with ErrCompression once the
// decompressed data exceeds limit bytes. A limit of zero means no limit.
func DecompressLimit(data []byte, compression Compression, limit int) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionZlib:
		return decompressZlib(data, limit)
	case CompressionZstd:
		return decompressZstd(data, limit)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, compression)
}

func decompressZlib(data []byte, limit int) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	defer reader.Close()

	var source io.Reader = reader
	if limit > 0 {
		source = io.LimitReader(reader, int64(limit)+1)
	}

	result, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	if limit > 0 && len(result) > limit {
		return nil, fmt.Errorf("%w: decompressed size exceeds %d bytes", ErrCompression, limit)
	}

	return result, nil
}

func decompressZstd(data []byte, limit int) ([]byte, error) {
	var opts []zstd.DOption
	if limit > 0 {
		// Small frames still declare a window of at least 1 KiB.
		opts = append(opts, zstd.WithDecoderMaxMemory(uint64(max(limit, zstdMinMemory))))
	}
	decoder, err := zstd.NewReader(nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	defer decoder.Close()

	result, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	if limit > 0 && len(result) > limit {
		return nil, fmt.Errorf("%w: decompressed size exceeds %d bytes", ErrCompression, limit)
	}

	return result, nil
}
