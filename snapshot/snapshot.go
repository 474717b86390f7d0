package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/brepgo/codec"
)

var (
	snapshotMagic       = [4]byte{'B', 'G', 'S', '1'}
	snapshotDirMagic    = [4]byte{'B', 'G', 'D', '1'}
	snapshotFooterMagic = [4]byte{'B', 'G', 'F', '1'}

	formatVersion = uint16(1)
)

const (
	sectionManifest = uint16(1)
	sectionPayload  = uint16(2)
)

type sectionEntry struct {
	Type     uint16
	Offset   uint64
	Len      uint64
	Checksum uint32 // CRC32 of the section bytes as stored
}

type options struct {
	codec       codec.Codec
	compression Compression
}

// Option configures how a snapshot is written.
type Option func(*options)

// WithCodec selects the codec used to encode the manifest and payload.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithCompression selects the section compression.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// Save writes a snapshot of payload to w.
//
// Format:
//  1. header (magic/version/compression/codec name)
//  2. manifest section (codec marshaled, compressed, checksummed)
//  3. payload section (codec marshaled, compressed, checksummed)
//  4. directory (type/offset/length/checksum per section)
//  5. footer (directory offset/length)
func Save[T any](w io.Writer, m Manifest, payload T, optFns ...Option) error {
	if w == nil {
		return fmt.Errorf("snapshot: writer is nil")
	}

	opts := options{
		codec:       codec.Default,
		compression: CompressionZstd,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.codec == nil {
		opts.codec = codec.Default
	}
	if !opts.compression.valid() {
		return fmt.Errorf("snapshot: unsupported compression %d", opts.compression)
	}

	codecName := opts.codec.Name()
	if len(codecName) > 0xFFFF {
		return fmt.Errorf("snapshot codec name too long: %d", len(codecName))
	}

	// Header (16 bytes + codec name)
	// [0:4]   magic
	// [4:6]   version
	// [6]     compression
	// [7]     reserved
	// [8:10]  codec name len
	// [10:12] section count
	// [12:16] reserved
	var hdr [16]byte
	copy(hdr[0:4], snapshotMagic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], formatVersion)
	hdr[6] = byte(opts.compression)
	binary.LittleEndian.PutUint16(hdr[8:10], uint16(len(codecName)))
	binary.LittleEndian.PutUint16(hdr[10:12], 2)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte(codecName)); err != nil {
		return err
	}

	cw := &countingWriter{w: w, n: int64(len(hdr)) + int64(len(codecName))}

	writeSection := func(typ uint16, v any) (sectionEntry, error) {
		raw, err := opts.codec.Marshal(v)
		if err != nil {
			return sectionEntry{}, fmt.Errorf("failed to encode section %d: %w", typ, err)
		}
		data, err := opts.compression.compress(raw)
		if err != nil {
			return sectionEntry{}, err
		}

		off := uint64(cw.n)
		checksumWriter := NewChecksumWriter(cw)
		if _, err := checksumWriter.Write(data); err != nil {
			return sectionEntry{}, err
		}
		return sectionEntry{
			Type:     typ,
			Offset:   off,
			Len:      uint64(len(data)),
			Checksum: checksumWriter.Sum(),
		}, nil
	}

	manifestEntry, err := writeSection(sectionManifest, m)
	if err != nil {
		return err
	}
	payloadEntry, err := writeSection(sectionPayload, payload)
	if err != nil {
		return err
	}

	// Directory
	dirOff := uint64(cw.n)
	if err := writeDirectory(cw, []sectionEntry{manifestEntry, payloadEntry}); err != nil {
		return err
	}
	dirLen := uint64(cw.n) - dirOff

	// Footer
	return writeFooter(cw, dirOff, dirLen)
}

// Load reads a snapshot from r. The container requires random access so
// it can locate the footer and directory before parsing sections.
//
// The codec and compression are taken from the header; a file written by
// a codec not registered in the codec package cannot be opened.
func Load[T any](r io.ReadSeeker) (Manifest, T, error) {
	var zero T

	if r == nil {
		return Manifest{}, zero, fmt.Errorf("snapshot: reader is nil")
	}

	codecName, compression, sections, err := readDirectory(r)
	if err != nil {
		return Manifest{}, zero, err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return Manifest{}, zero, fmt.Errorf("unsupported snapshot codec %q", codecName)
	}

	var m Manifest
	if err := loadSection(r, sections, sectionManifest, compression, c, &m); err != nil {
		return Manifest{}, zero, err
	}

	var payload T
	if err := loadSection(r, sections, sectionPayload, compression, c, &payload); err != nil {
		return Manifest{}, zero, err
	}

	return m, payload, nil
}

func loadSection(r io.ReadSeeker, sections map[uint16]sectionEntry, typ uint16, compression Compression, c codec.Codec, v any) error {
	entry, ok := sections[typ]
	if !ok {
		return fmt.Errorf("snapshot missing section %d", typ)
	}
	if _, err := r.Seek(int64(entry.Offset), io.SeekStart); err != nil {
		return err
	}

	cr := NewChecksumReader(io.LimitReader(r, int64(entry.Len)))
	data, err := io.ReadAll(cr)
	if err != nil {
		return fmt.Errorf("failed to read section %d: %w", typ, err)
	}
	if uint64(len(data)) != entry.Len {
		return fmt.Errorf("truncated section %d", typ)
	}
	if err := cr.Verify(entry.Checksum); err != nil {
		return err
	}

	raw, err := compression.decompress(data)
	if err != nil {
		return fmt.Errorf("failed to decompress section %d: %w", typ, err)
	}
	if err := c.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode section %d: %w", typ, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func writeDirectory(w io.Writer, entries []sectionEntry) error {
	// Directory header (12 bytes)
	// [0:4]  magic
	// [4:6]  version
	// [6:8]  reserved
	// [8:12] entry count
	var hdr [12]byte
	copy(hdr[0:4], snapshotDirMagic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], formatVersion)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(len(entries)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	// Each entry is 32 bytes
	// [0:2]   type
	// [2:4]   reserved
	// [4:8]   checksum (CRC32)
	// [8:16]  offset
	// [16:24] length
	// [24:32] reserved
	for _, e := range entries {
		var b [32]byte
		binary.LittleEndian.PutUint16(b[0:2], e.Type)
		binary.LittleEndian.PutUint32(b[4:8], e.Checksum)
		binary.LittleEndian.PutUint64(b[8:16], e.Offset)
		binary.LittleEndian.PutUint64(b[16:24], e.Len)
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

func writeFooter(w io.Writer, dirOffset, dirLen uint64) error {
	// Footer is 24 bytes
	// [0:4]   magic
	// [4:6]   version
	// [6:8]   reserved
	// [8:16]  directory offset
	// [16:24] directory length
	var b [24]byte
	copy(b[0:4], snapshotFooterMagic[:])
	binary.LittleEndian.PutUint16(b[4:6], formatVersion)
	binary.LittleEndian.PutUint64(b[8:16], dirOffset)
	binary.LittleEndian.PutUint64(b[16:24], dirLen)
	_, err := w.Write(b[:])
	return err
}

func readDirectory(r io.ReadSeeker) (codecName string, compression Compression, sections map[uint16]sectionEntry, err error) {
	// Header
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", 0, nil, err
	}
	var hdr [16]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return "", 0, nil, err
	}
	if [4]byte(hdr[0:4]) != snapshotMagic {
		return "", 0, nil, fmt.Errorf("unsupported snapshot format: bad magic")
	}
	ver := binary.LittleEndian.Uint16(hdr[4:6])
	if ver != formatVersion {
		return "", 0, nil, fmt.Errorf("unsupported snapshot format version: %d", ver)
	}
	compression = Compression(hdr[6])
	if !compression.valid() {
		return "", 0, nil, fmt.Errorf("unsupported snapshot compression: %d", hdr[6])
	}
	nameLen := int(binary.LittleEndian.Uint16(hdr[8:10]))
	sectionCount := int(binary.LittleEndian.Uint16(hdr[10:12]))
	if sectionCount <= 0 {
		return "", 0, nil, fmt.Errorf("invalid section count: %d", sectionCount)
	}

	nameBytes := make([]byte, nameLen)
	if nameLen > 0 {
		if _, err := io.ReadFull(r, nameBytes); err != nil {
			return "", 0, nil, err
		}
	}
	codecName = string(nameBytes)

	// Footer (last 24 bytes)
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return "", 0, nil, err
	}
	if end < 24 {
		return "", 0, nil, fmt.Errorf("truncated snapshot")
	}
	if _, err := r.Seek(end-24, io.SeekStart); err != nil {
		return "", 0, nil, err
	}
	var foot [24]byte
	if _, err := io.ReadFull(r, foot[:]); err != nil {
		return "", 0, nil, err
	}
	if [4]byte(foot[0:4]) != snapshotFooterMagic {
		return "", 0, nil, fmt.Errorf("unsupported snapshot format: missing footer")
	}
	fver := binary.LittleEndian.Uint16(foot[4:6])
	if fver != formatVersion {
		return "", 0, nil, fmt.Errorf("unsupported snapshot footer version: %d", fver)
	}

	const maxInt64u = uint64(^uint64(0) >> 1)
	dirOffsetU := binary.LittleEndian.Uint64(foot[8:16])
	dirLenU := binary.LittleEndian.Uint64(foot[16:24])
	if dirOffsetU > maxInt64u || dirLenU > maxInt64u {
		return "", 0, nil, fmt.Errorf("invalid directory offsets")
	}
	dataEndU := uint64(end - 24)
	if dirLenU < 12 || dirOffsetU > dataEndU || dirLenU > dataEndU-dirOffsetU {
		return "", 0, nil, fmt.Errorf("invalid directory range")
	}

	// Directory header
	if _, err := r.Seek(int64(dirOffsetU), io.SeekStart); err != nil {
		return "", 0, nil, err
	}
	var dh [12]byte
	if _, err := io.ReadFull(r, dh[:]); err != nil {
		return "", 0, nil, err
	}
	if [4]byte(dh[0:4]) != snapshotDirMagic {
		return "", 0, nil, fmt.Errorf("invalid snapshot directory magic")
	}
	dver := binary.LittleEndian.Uint16(dh[4:6])
	if dver != formatVersion {
		return "", 0, nil, fmt.Errorf("unsupported snapshot directory version: %d", dver)
	}
	entryCount := int(binary.LittleEndian.Uint32(dh[8:12]))
	if entryCount != sectionCount {
		return "", 0, nil, fmt.Errorf("directory entry count %d does not match header section count %d", entryCount, sectionCount)
	}

	sections = make(map[uint16]sectionEntry, entryCount)
	for i := 0; i < entryCount; i++ {
		var eb [32]byte
		if _, err := io.ReadFull(r, eb[:]); err != nil {
			return "", 0, nil, err
		}
		typ := binary.LittleEndian.Uint16(eb[0:2])
		checksum := binary.LittleEndian.Uint32(eb[4:8])
		off := binary.LittleEndian.Uint64(eb[8:16])
		ln := binary.LittleEndian.Uint64(eb[16:24])
		if _, exists := sections[typ]; exists {
			return "", 0, nil, fmt.Errorf("duplicate snapshot section type %d", typ)
		}

		// Sections must not point into the header (including codec name).
		headerEndU := uint64(16 + nameLen)
		if off < headerEndU {
			return "", 0, nil, fmt.Errorf("invalid snapshot section offset")
		}
		// Sections must be before the directory.
		if off > dirOffsetU || ln > dirOffsetU-off {
			return "", 0, nil, fmt.Errorf("invalid snapshot section range")
		}
		sections[typ] = sectionEntry{Type: typ, Offset: off, Len: ln, Checksum: checksum}
	}

	return codecName, compression, sections, nil
}
