package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"personalfinance/internal/ledger"
	"personalfinance/internal/models"
	"personalfinance/internal/server"
)

type recordCmd struct {
	*Env
	wallet   string
	txType   string
	amount   string
	category string
	note     string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record an income or expense" }
func (*recordCmd) Usage() string {
	return `ledgerctl record -wallet <id> -type <income|expense> -amount <n> -category <name> [-note <text>]

  Records an income or expense against a wallet and prints the new transaction.
  Expenses larger than the wallet balance are rejected.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.wallet, "wallet", "", "Wallet ID.")
	f.StringVar(&c.txType, "type", "expense", "income or expense.")
	f.StringVar(&c.amount, "amount", "", "Positive amount.")
	f.StringVar(&c.category, "category", "", "Category name.")
	f.StringVar(&c.note, "note", "", "Optional note.")
}

func (c *recordCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		c.fail(err)
		return subcommands.ExitUsageError
	}

	return c.withBackend(ctx, func(b *server.Backend) error {
		tx, err := b.Ledger.RecordTransaction(ctx, ledger.RecordInput{
			WalletID: c.wallet,
			Amount:   amount,
			Category: c.category,
			Type:     models.TransactionType(c.txType),
			Note:     c.note,
		})
		if err != nil {
			return err
		}
		return c.printJSON(tx)
	})
}

type transferCmd struct {
	*Env
	from   string
	to     string
	amount string
	note   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two wallets" }
func (*transferCmd) Usage() string {
	return `ledgerctl transfer -from <id> -to <id> -amount <n> [-note <text>]

  Moves money between two different wallets and prints the inflow and
  outflow transactions.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source wallet ID.")
	f.StringVar(&c.to, "to", "", "Target wallet ID.")
	f.StringVar(&c.amount, "amount", "", "Positive amount.")
	f.StringVar(&c.note, "note", "", "Optional note.")
}

func (c *transferCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		c.fail(err)
		return subcommands.ExitUsageError
	}

	return c.withBackend(ctx, func(b *server.Backend) error {
		pair, err := b.Ledger.Transfer(ctx, ledger.TransferInput{
			SourceID: c.from,
			TargetID: c.to,
			Amount:   amount,
			Note:     c.note,
		})
		if err != nil {
			return err
		}
		return c.printJSON(pair)
	})
}

type addGoalCmd struct {
	*Env
	name   string
	target string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a saving goal" }
func (*addGoalCmd) Usage() string {
	return `ledgerctl add-goal -name <name> -target <n>

  Creates a saving goal with nothing saved yet.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.target, "target", "", "Positive target amount.")
}

func (c *addGoalCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := parseAmount(c.target)
	if err != nil {
		c.fail(err)
		return subcommands.ExitUsageError
	}

	return c.withBackend(ctx, func(b *server.Backend) error {
		goal, err := b.Ledger.CreateGoal(ctx, ledger.GoalInput{Name: c.name, Target: target})
		if err != nil {
			return err
		}
		return c.printJSON(goal)
	})
}

type contributeCmd struct {
	*Env
	goal   string
	wallet string
	amount string
	note   string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "move money from a wallet into a saving goal" }
func (*contributeCmd) Usage() string {
	return `ledgerctl contribute -goal <id> -wallet <id> -amount <n> [-note <text>]

  Debits the wallet by the full amount and credits the goal. The goal's saved
  amount never exceeds its target.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Saving goal ID.")
	f.StringVar(&c.wallet, "wallet", "", "Wallet ID.")
	f.StringVar(&c.amount, "amount", "", "Positive amount.")
	f.StringVar(&c.note, "note", "", "Optional note.")
}

func (c *contributeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		c.fail(err)
		return subcommands.ExitUsageError
	}

	return c.withBackend(ctx, func(b *server.Backend) error {
		tx, err := b.Ledger.Contribute(ctx, ledger.ContributeInput{
			GoalID:   c.goal,
			WalletID: c.wallet,
			Amount:   amount,
			Note:     c.note,
		})
		if err != nil {
			return err
		}
		return c.printJSON(tx)
	})
}

type deleteGoalCmd struct {
	*Env
}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a saving goal" }
func (*deleteGoalCmd) Usage() string {
	return `ledgerctl delete-goal <id>

  Removes a saving goal. Contributions already made stay in the history and
  are not refunded.
`
}
func (*deleteGoalCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(c.Err, "Error: delete-goal takes exactly one goal ID")
		return subcommands.ExitUsageError
	}
	goalID := f.Arg(0)

	return c.withBackend(ctx, func(b *server.Backend) error {
		if err := b.Ledger.DeleteGoal(ctx, goalID); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Deleted saving goal %s\n", goalID)
		return nil
	})
}
