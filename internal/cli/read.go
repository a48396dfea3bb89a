package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/models"
	"personalfinance/internal/pagination"
	"personalfinance/internal/server"
	"personalfinance/internal/services"
	"personalfinance/internal/summary"
)

type walletsCmd struct {
	*Env
}

func (*walletsCmd) Name() string     { return "wallets" }
func (*walletsCmd) Synopsis() string { return "list wallets and their balances" }
func (*walletsCmd) Usage() string {
	return `ledgerctl wallets

  Lists every wallet with its current balance, followed by the total.
`
}
func (*walletsCmd) SetFlags(*flag.FlagSet) {}

func (c *walletsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.withBackend(ctx, func(b *server.Backend) error {
		w := tabwriter.NewWriter(c.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tBALANCE")
		wallets := b.Ledger.GetWallets()
		for _, wallet := range wallets {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", wallet.ID, wallet.Name, wallet.Type, wallet.Balance.String())
		}
		fmt.Fprintf(w, "\t\tTOTAL\t%s\n", summary.TotalBalance(wallets).String())
		return w.Flush()
	})
}

type historyCmd struct {
	*Env
	txType   string
	category string
	wallet   string
	page     int
	pageSize int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list transactions, most recent first" }
func (*historyCmd) Usage() string {
	return `ledgerctl history [-type <income|expense|transfer>] [-category <name>] [-wallet <name>] [-page <n>] [-size <n>]

  Lists recorded transactions, optionally filtered.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "Only show transactions of this type.")
	f.StringVar(&c.category, "category", "", "Only show transactions in this category.")
	f.StringVar(&c.wallet, "wallet", "", "Only show transactions for this wallet name.")
	f.IntVar(&c.page, "page", 1, "Page number.")
	f.IntVar(&c.pageSize, "size", 20, "Transactions per page.")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := services.TransactionFilter{Category: c.category, Wallet: c.wallet}
	if c.txType != "" {
		t := models.TransactionType(c.txType)
		switch t {
		case models.TransactionTypeIncome, models.TransactionTypeExpense, models.TransactionTypeTransfer:
			filter.Type = &t
		default:
			fmt.Fprintf(c.Err, "Error: unknown transaction type %q\n", c.txType)
			return subcommands.ExitUsageError
		}
	}
	if c.page < 1 || c.pageSize < 1 || c.pageSize > 100 {
		fmt.Fprintln(c.Err, "Error: -page must be at least 1 and -size between 1 and 100")
		return subcommands.ExitUsageError
	}

	return c.withBackend(ctx, func(b *server.Backend) error {
		res := b.Ledger.GetTransactions(pagination.PageRequest{Page: c.page, PageSize: c.pageSize}, filter)

		w := tabwriter.NewWriter(c.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tWALLET\tCATEGORY\tAMOUNT\tNOTE")
		for _, tx := range res.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				tx.Date.In(c.Location).Format("2006-01-02 15:04"), tx.Type, tx.Wallet, tx.Category, tx.Amount.String(), tx.Note)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "page %d of %d (%d transactions)\n", res.Page, res.TotalPages, res.TotalItems)
		return nil
	})
}

type goalsCmd struct {
	*Env
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list saving goals and their progress" }
func (*goalsCmd) Usage() string {
	return `ledgerctl goals

  Lists every saving goal with saved amount, target, progress and status.
`
}
func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (c *goalsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.withBackend(ctx, func(b *server.Backend) error {
		w := tabwriter.NewWriter(c.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSAVED\tTARGET\tPROGRESS\tSTATUS")
		for _, g := range b.Ledger.GetGoals() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%%\t%s\n",
				g.ID, g.Name, g.Saved.String(), g.Target.String(), g.Percent.String(), g.Status)
		}
		return w.Flush()
	})
}

type summaryCmd struct {
	*Env
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the dashboard for a month as JSON" }
func (*summaryCmd) Usage() string {
	return `ledgerctl summary [-month YYYY-MM]

  Prints total balance, monthly income and expenses, category spending,
  recent transactions and goal progress. Defaults to the current month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to summarise (YYYY-MM).")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := c.parseMonth(time.Now())
	if err != nil {
		c.fail(err)
		return subcommands.ExitUsageError
	}

	return c.withBackend(ctx, func(b *server.Backend) error {
		return c.printJSON(b.Ledger.GetDashboard(month))
	})
}

func (c *summaryCmd) parseMonth(now time.Time) (time.Time, error) {
	if c.month == "" {
		y, m, _ := now.In(c.Location).Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, c.Location), nil
	}
	t, err := time.ParseInLocation("2006-01", c.month, c.Location)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month format, use YYYY-MM")
	}
	return t, nil
}
