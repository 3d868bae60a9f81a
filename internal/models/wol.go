package models

// WakeResult holds the result of a Wake-on-LAN send.
type WakeResult struct {
	MAC        string // normalized hardware address the packet was built for
	PacketSent bool
	Error      error
}
