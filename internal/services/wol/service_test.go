package wol

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/fgeck/pihub/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	wakeFunc func(addr string, mac net.HardwareAddr) error
	calls    int
}

func (m *mockClient) Wake(addr string, mac net.HardwareAddr) error {
	m.calls++
	if m.wakeFunc != nil {
		return m.wakeFunc(addr, mac)
	}
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testConfig() models.WOLConfig {
	return models.WOLConfig{BroadcastIP: "192.168.1.255", Port: 9}
}

func TestWake_Success(t *testing.T) {
	var capturedAddr string
	var capturedMAC net.HardwareAddr

	client := &mockClient{
		wakeFunc: func(addr string, mac net.HardwareAddr) error {
			capturedAddr = addr
			capturedMAC = mac
			return nil
		},
	}

	svc := NewWithClient(testConfig(), testLogger(), client)

	result, err := svc.Wake(context.Background(), "aa-bb-cc-dd-ee-ff")

	require.NoError(t, err)
	assert.True(t, result.PacketSent)
	assert.Nil(t, result.Error)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", result.MAC)
	assert.Equal(t, "192.168.1.255:9", capturedAddr)
	assert.Equal(t, net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, capturedMAC)
}

func TestWake_InvalidMAC_NoSend(t *testing.T) {
	client := &mockClient{}
	svc := NewWithClient(testConfig(), testLogger(), client)

	result, err := svc.Wake(context.Background(), "not-a-mac")

	require.NoError(t, err)
	assert.False(t, result.PacketSent)
	assert.ErrorIs(t, result.Error, ErrInvalidAddress)
	assert.Equal(t, 0, client.calls, "no network I/O on a bad address")
}

func TestWake_SendFailed(t *testing.T) {
	client := &mockClient{
		wakeFunc: func(addr string, mac net.HardwareAddr) error {
			return errors.New("sendto: operation not permitted")
		},
	}

	svc := NewWithClient(testConfig(), testLogger(), client)

	result, err := svc.Wake(context.Background(), "AA:BB:CC:DD:EE:FF")

	require.NoError(t, err)
	assert.False(t, result.PacketSent)
	require.NotNil(t, result.Error)
	assert.Contains(t, result.Error.Error(), "operation not permitted")
}
