// Package cart loads cartridge images for the bus. Only unbanked 32 KiB
// images are mapped; the header of any image can still be parsed.
package cart

import (
	"errors"
	"fmt"
)

// ROMWindow is the size of the fixed ROM area at 0x0000-0x7FFF.
const ROMWindow = 0x8000

// ErrBankedROM is returned for images that need a bank controller.
var ErrBankedROM = errors.New("cartridge needs a bank controller")

// Cartridge is the bus's view of the cartridge slot. Addresses are CPU
// addresses in 0x0000-0x7FFF and 0xA000-0xBFFF.
type Cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// New returns a cartridge for rom. Images without a readable header are
// accepted as long as they fit the fixed ROM window.
func New(rom []byte) (Cartridge, error) {
	if len(rom) > ROMWindow {
		h, err := ParseHeader(rom)
		if err != nil {
			return nil, fmt.Errorf("%w: %d bytes", ErrBankedROM, len(rom))
		}
		return nil, fmt.Errorf("%w: %s, %d KiB", ErrBankedROM, h.CartTypeStr, len(rom)/1024)
	}
	return NewROMOnly(rom), nil
}
