// Package models contains the data structures used throughout pihub.
package models

import "time"

// HubConfig holds the complete runtime configuration of the hub.
type HubConfig struct {
	Server   ServerConfig
	WOL      WOLConfig
	CEC      CECConfig
	Identity IdentityConfig

	TVEnabled  bool // register the /tv route group
	WOLEnabled bool // register the /wol route group
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string
	Port string
}

// WOLConfig holds Wake-on-LAN settings.
type WOLConfig struct {
	BroadcastIP string // broadcast destination, e.g. 255.255.255.255 or 192.168.1.255
	Port        int    // UDP destination port, conventionally 9
	TargetsFile string // path to the JSON targets file
}

// CECConfig holds settings for the cec-client bridge.
type CECConfig struct {
	Binary  string        // cec-client binary name or path
	Device  string        // CEC logical address of the TV, conventionally "0"
	Timeout time.Duration // max wait for one cec-client invocation
}

// IdentityConfig controls the trusted-identity gate on wake requests.
// The header is asserted by an upstream proxy that has already
// authenticated the caller; pihub does not verify it.
type IdentityConfig struct {
	Required bool
	Header   string
}
