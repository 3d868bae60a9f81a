// Package wol provides Wake-on-LAN operations.
package wol

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/fgeck/pihub/internal/models"
	"github.com/mdlayher/wol"
	"github.com/rs/zerolog"
)

// Service defines the interface for Wake-on-LAN operations.
type Service interface {
	Wake(ctx context.Context, mac string) (*models.WakeResult, error)
}

// Client wraps the wol library for mocking.
type Client interface {
	Wake(addr string, mac net.HardwareAddr) error
}

// DefaultClient is the default implementation using mdlayher/wol. The
// library opens a broadcast-capable UDP socket per send and emits the
// same payload MagicPacket describes.
type DefaultClient struct{}

// Wake sends a magic packet to the given broadcast address.
func (c *DefaultClient) Wake(addr string, mac net.HardwareAddr) error {
	client, err := wol.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create WOL client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Wake(addr, mac); err != nil {
		return fmt.Errorf("failed to send WOL packet: %w", err)
	}

	return nil
}

// Impl implements the WOL Service interface.
type Impl struct {
	cfg    models.WOLConfig
	client Client
	logger zerolog.Logger
}

// New creates a new WOL service.
func New(cfg models.WOLConfig, logger zerolog.Logger) *Impl {
	return &Impl{
		cfg:    cfg,
		client: &DefaultClient{},
		logger: logger,
	}
}

// NewWithClient creates a new WOL service with a custom client (for testing).
func NewWithClient(cfg models.WOLConfig, logger zerolog.Logger, client Client) *Impl {
	return &Impl{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// Wake validates the MAC address and sends a single magic packet to the
// configured broadcast address. WoL is fire-and-forget: no response is
// awaited, and nothing is retried. A bad address fails before any socket
// is opened; send failures land in the result, never as a panic.
func (s *Impl) Wake(ctx context.Context, mac string) (*models.WakeResult, error) {
	result := &models.WakeResult{}

	hw, err := ParseMAC(mac)
	if err != nil {
		result.Error = err
		return result, nil
	}
	result.MAC = strings.ToUpper(hw.String())

	addr := net.JoinHostPort(s.cfg.BroadcastIP, strconv.Itoa(s.cfg.Port))

	s.logger.Info().
		Str("mac", result.MAC).
		Str("broadcast", addr).
		Msg("sending WOL packet")

	if err := s.client.Wake(addr, hw); err != nil {
		result.Error = err
		return result, nil //nolint:nilerr // error is stored in result struct by design
	}

	result.PacketSent = true
	s.logger.Info().Str("mac", result.MAC).Msg("WOL packet sent")

	return result, nil
}
