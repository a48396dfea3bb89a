// Package cli implements the ledgerctl command line, a second surface over
// the same ledger service the HTTP API uses.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/server"
)

// Env is shared by every command.
type Env struct {
	// Open returns the ledger backend selected by configuration.
	Open     func(ctx context.Context) (*server.Backend, error)
	Out      io.Writer
	Err      io.Writer
	Location *time.Location
}

// Register adds all ledgerctl commands to c.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&walletsCmd{Env: env}, "read")
	c.Register(&historyCmd{Env: env}, "read")
	c.Register(&goalsCmd{Env: env}, "read")
	c.Register(&summaryCmd{Env: env}, "read")

	c.Register(&recordCmd{Env: env}, "write")
	c.Register(&transferCmd{Env: env}, "write")
	c.Register(&addGoalCmd{Env: env}, "write")
	c.Register(&contributeCmd{Env: env}, "write")
	c.Register(&deleteGoalCmd{Env: env}, "write")
}

// withBackend opens the backend, runs fn and closes it again.
func (e *Env) withBackend(ctx context.Context, fn func(b *server.Backend) error) subcommands.ExitStatus {
	b, err := e.Open(ctx)
	if err != nil {
		fmt.Fprintf(e.Err, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer b.Close()

	if err := fn(b); err != nil {
		e.fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (e *Env) fail(err error) {
	if code := apperrors.CodeOf(err); code != "" {
		fmt.Fprintf(e.Err, "Error [%s]: %v\n", code, err)
		return
	}
	fmt.Fprintf(e.Err, "Error: %v\n", err)
}

func (e *Env) printJSON(v any) error {
	enc := json.NewEncoder(e.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseAmount parses a positive decimal amount flag.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid amount %q", s))
	}
	return d, nil
}
