package models

// PowerState is the TV power state reported over the CEC bus.
type PowerState string

// Power states. cec-client reports "standby" and a handful of transition
// states; everything that is not on is folded into off.
const (
	PowerOn  PowerState = "on"
	PowerOff PowerState = "off"
)

// CECResult holds the result of one cec-client invocation.
type CECResult struct {
	Output string // trimmed combined stdout/stderr of the subprocess
	Error  error
}

// PowerResult holds the outcome of a power status query.
type PowerResult struct {
	State PowerState
	Raw   string // full cec-client output, kept for diagnosis
	Error error
}
