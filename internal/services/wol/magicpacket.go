package wol

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrInvalidAddress reports a MAC string that does not decode to six
// hexadecimal octets.
var ErrInvalidAddress = errors.New("invalid MAC address")

const (
	macLen      = 6
	repetitions = 16

	// PacketSize is the length of a magic packet: 6 bytes of 0xFF
	// followed by the hardware address repeated 16 times.
	PacketSize = macLen + macLen*repetitions
)

var delimiters = strings.NewReplacer(":", "", "-", "")

// ParseMAC decodes a colon- or hyphen-delimited MAC address string into a
// hardware address.
func ParseMAC(s string) (net.HardwareAddr, error) {
	raw, err := hex.DecodeString(delimiters.Replace(s))
	if err != nil || len(raw) != macLen {
		return nil, fmt.Errorf("%w %q", ErrInvalidAddress, s)
	}
	return net.HardwareAddr(raw), nil
}

// MagicPacket builds the Wake-on-LAN broadcast payload for a hardware
// address. There is no checksum or envelope around it.
func MagicPacket(mac net.HardwareAddr) []byte {
	packet := make([]byte, 0, PacketSize)
	for i := 0; i < macLen; i++ {
		packet = append(packet, 0xFF)
	}
	for i := 0; i < repetitions; i++ {
		packet = append(packet, mac...)
	}
	return packet
}
