package cart

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const (
	headerEnd  = 0x014F
	logoStart  = 0x0104
	titleStart = 0x0134
	titleEnd   = 0x0144
)

// ErrShortROM is returned when the image ends before the header does.
var ErrShortROM = errors.New("ROM too small to contain header")

var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header is the decoded cartridge header at 0x0100-0x014F.
type Header struct {
	Title          string
	CGBFlag        byte   // 0x0143
	NewLicensee    string // 0x0144-0x0145
	SGBFlag        byte   // 0x0146
	CartType       byte   // 0x0147
	ROMSizeCode    byte   // 0x0148
	RAMSizeCode    byte   // 0x0149
	Destination    byte   // 0x014A
	OldLicensee    byte   // 0x014B
	ROMVersion     byte   // 0x014C
	HeaderChecksum byte   // 0x014D
	GlobalChecksum uint16 // 0x014E-0x014F, big-endian

	LogoOK       bool
	ChecksumOK   bool
	ROMSizeBytes int
	ROMBanks     int
	RAMSizeBytes int
	CartTypeStr  string
}

// ParseHeader decodes the header of rom. A missing logo or a bad checksum
// is reported in the result, not as an error.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) <= headerEnd {
		return nil, ErrShortROM
	}

	h := &Header{
		Title:          strings.TrimRight(string(rom[titleStart:titleEnd]), "\x00"),
		CGBFlag:        rom[0x0143],
		NewLicensee:    string(rom[0x0144:0x0146]),
		SGBFlag:        rom[0x0146],
		CartType:       rom[0x0147],
		ROMSizeCode:    rom[0x0148],
		RAMSizeCode:    rom[0x0149],
		Destination:    rom[0x014A],
		OldLicensee:    rom[0x014B],
		ROMVersion:     rom[0x014C],
		HeaderChecksum: rom[0x014D],
		GlobalChecksum: binary.BigEndian.Uint16(rom[0x014E : headerEnd+1]),
	}
	h.LogoOK = string(rom[logoStart:logoStart+len(nintendoLogo)]) == string(nintendoLogo[:])
	h.ChecksumOK = HeaderChecksumOK(rom)
	h.ROMSizeBytes, h.ROMBanks = decodeROMSize(h.ROMSizeCode)
	h.RAMSizeBytes = ramSizes[h.RAMSizeCode]
	h.CartTypeStr = cartTypeString(h.CartType)
	return h, nil
}

func (h *Header) String() string {
	return fmt.Sprintf("%q type=%02X (%s) rom=%dKiB ram=%dKiB checksum=%v",
		h.Title, h.CartType, h.CartTypeStr, h.ROMSizeBytes/1024, h.RAMSizeBytes/1024, h.ChecksumOK)
}

// HeaderChecksumOK runs the boot ROM's checksum over 0x0134-0x014C.
func HeaderChecksumOK(rom []byte) bool {
	if len(rom) <= 0x014D {
		return false
	}
	var sum byte
	for _, b := range rom[titleStart:0x014D] {
		sum = sum - b - 1
	}
	return sum == rom[0x014D]
}

// decodeROMSize handles the power-of-two codes 0x00-0x08 plus the three
// odd sizes some carts declare.
func decodeROMSize(code byte) (size, banks int) {
	switch {
	case code <= 0x08:
		banks = 2 << code
	case code == 0x52:
		banks = 72
	case code == 0x53:
		banks = 80
	case code == 0x54:
		banks = 96
	default:
		return 0, 0
	}
	return banks * 0x4000, banks
}

var ramSizes = map[byte]int{
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

func cartTypeString(code byte) string {
	switch code {
	case 0x00:
		return "ROM ONLY"
	case 0x08, 0x09:
		return "ROM+RAM"
	case 0x01, 0x02, 0x03:
		return "MBC1"
	case 0x05, 0x06:
		return "MBC2"
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return "MBC3"
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return "MBC5"
	}
	return "unknown"
}
