package imgutil

import (
	"errors"
	"io"
	"os"
)

// Kind identifies a supported image format.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindGIF
	KindPNG
	KindWebP
	KindBMP
	KindTIFF
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindGIF:
		return "gif"
	case KindPNG:
		return "png"
	case KindWebP:
		return "webp"
	case KindBMP:
		return "bmp"
	case KindTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Ext returns the canonical file extension for k, without the dot.
func (k Kind) Ext() string {
	if k == KindJPEG {
		return "jpg"
	}
	return k.String()
}

// HeaderLen is the number of leading bytes needed to match every
// signature below (WebP needs bytes 8..12).
const HeaderLen = 12

var (
	gifSig    = []byte("GIF")
	jpegSig   = []byte{0xff, 0xd8, 0xff}
	pngSig    = []byte{0x89, 0x50, 0x4e, 0x47}
	riffSig   = []byte("RIFF")
	webpSig   = []byte("WEBP")
	bmpSig    = []byte{0x42, 0x4d}
	tiffSigLE = []byte{0x49, 0x49, 0x2a, 0x00}
	tiffSigBE = []byte{0x4d, 0x4d, 0x00, 0x2a}
)

// DetectHeader inspects the leading bytes of a file for known
// signatures. A buffer too short to match any signature yields
// KindUnknown; detection itself never fails.
func DetectHeader(header []byte) Kind {
	if hasPrefix(header, gifSig) {
		return KindGIF
	}
	if hasPrefix(header, jpegSig) {
		return KindJPEG
	}
	if hasPrefix(header, pngSig) {
		return KindPNG
	}
	if hasPrefix(header, riffSig) && len(header) >= 12 && hasPrefix(header[8:], webpSig) {
		return KindWebP
	}
	if hasPrefix(header, bmpSig) {
		return KindBMP
	}
	if hasPrefix(header, tiffSigLE) || hasPrefix(header, tiffSigBE) {
		return KindTIFF
	}
	return KindUnknown
}

// SniffFile reads the first HeaderLen bytes of a file to determine its
// format. I/O failures are returned, never folded into KindUnknown.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads the first HeaderLen bytes from r and determines the
// format. Files shorter than HeaderLen are detected on what was read.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, HeaderLen)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return KindUnknown, err
	}

	return DetectHeader(header[:n]), nil
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}
