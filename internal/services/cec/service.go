// Package cec drives the cec-client binary to control a TV over HDMI-CEC.
package cec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/fgeck/pihub/internal/models"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds one cec-client invocation. The bus itself can be
// slow to answer a power query, so this is generous.
const DefaultTimeout = 10 * time.Second

const (
	defaultBinary = "cec-client"
	defaultDevice = "0"

	powerMarker = "power status:"

	msgNotFound = "cec-client not found"
	msgTimedOut = "cec-client timed out"
)

// Service defines the interface for CEC operations.
type Service interface {
	Send(ctx context.Context, command string) (*models.CECResult, error)
	TurnOn(ctx context.Context) (*models.CECResult, error)
	TurnOff(ctx context.Context) (*models.CECResult, error)
	QueryPower(ctx context.Context) (*models.PowerResult, error)
}

// CommandExecutor allows mocking exec.Command in tests.
type CommandExecutor interface {
	Execute(ctx context.Context, stdin string, name string, args ...string) ([]byte, error)
}

// DefaultExecutor is the default command executor using os/exec. When the
// context deadline expires the child process is killed rather than left
// running.
type DefaultExecutor struct{}

// Execute runs a command, feeds it stdin, and returns combined output.
func (e *DefaultExecutor) Execute(ctx context.Context, stdin string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.CombinedOutput()
}

// Impl implements the CEC Service interface.
type Impl struct {
	cfg      models.CECConfig
	executor CommandExecutor
	logger   zerolog.Logger
}

// New creates a new CEC service.
func New(cfg models.CECConfig, logger zerolog.Logger) *Impl {
	return NewWithExecutor(cfg, logger, &DefaultExecutor{})
}

// NewWithExecutor creates a new CEC service with a custom executor (for testing).
func NewWithExecutor(cfg models.CECConfig, logger zerolog.Logger, executor CommandExecutor) *Impl {
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if cfg.Device == "" {
		cfg.Device = defaultDevice
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Impl{
		cfg:      cfg,
		executor: executor,
		logger:   logger,
	}
}

// Send runs cec-client in single-shot mode, writes one command line to its
// stdin, and scrapes the combined output. The three failure shapes are a
// missing binary, a blown deadline, and a non-zero exit; all land in the
// result rather than escaping as errors.
func (s *Impl) Send(ctx context.Context, command string) (*models.CECResult, error) {
	result := &models.CECResult{}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	s.logger.Debug().Str("command", command).Msg("invoking cec-client")

	output, err := s.executor.Execute(ctx, command+"\n", s.cfg.Binary, "-s", "-d", "1")
	result.Output = strings.TrimSpace(string(output))

	switch {
	case err == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Error = errors.New(msgTimedOut)
	case errors.Is(err, exec.ErrNotFound):
		result.Error = errors.New(msgNotFound)
	case result.Output != "":
		// non-zero exit: the scraped output is the diagnostic
		result.Error = errors.New(result.Output)
	default:
		result.Error = err
	}

	if result.Error != nil {
		s.logger.Warn().Err(result.Error).Str("command", command).Msg("cec-client failed")
	}

	return result, nil
}

// TurnOn powers the TV on.
func (s *Impl) TurnOn(ctx context.Context) (*models.CECResult, error) {
	return s.Send(ctx, "on "+s.cfg.Device)
}

// TurnOff puts the TV into standby.
func (s *Impl) TurnOff(ctx context.Context) (*models.CECResult, error) {
	return s.Send(ctx, "standby "+s.cfg.Device)
}

// QueryPower asks the TV for its power status and parses the reply.
// cec-client prints a line like "power status: on" or "power status:
// standby"; anything after the marker that mentions on counts as on,
// everything else as off. Output without the marker is a parse failure
// carrying the raw text.
func (s *Impl) QueryPower(ctx context.Context) (*models.PowerResult, error) {
	sent, err := s.Send(ctx, "pow "+s.cfg.Device)
	if err != nil {
		return nil, err
	}

	result := &models.PowerResult{Raw: sent.Output}
	if sent.Error != nil {
		result.Error = sent.Error
		return result, nil
	}

	for _, line := range strings.Split(sent.Output, "\n") {
		lower := strings.ToLower(line)
		idx := strings.Index(lower, powerMarker)
		if idx < 0 {
			continue
		}
		if strings.Contains(lower[idx+len(powerMarker):], "on") {
			result.State = models.PowerOn
		} else {
			result.State = models.PowerOff
		}
		return result, nil
	}

	result.Error = fmt.Errorf("could not parse power status: %s", sent.Output)
	return result, nil
}
