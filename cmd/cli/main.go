package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amirasaad/bankaccount/infra/initializer"
	"github.com/amirasaad/bankaccount/pkg/app"
	"github.com/amirasaad/bankaccount/pkg/commands"
	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/money"
	accountsvc "github.com/amirasaad/bankaccount/pkg/service/account"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  create <name>
  deposit <account_id> <amount> <currency>
  debit <account_id> <amount> <currency>
  balance <account_id>
  exchange <account_id> <from> <to> <amount>
  currencies`

var errUsage = errors.New("usage")

func main() {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize dependencies: %v", err)
		os.Exit(1)
	}
	svc := app.New(deps, cfg).AccountService

	if err := run(context.Background(), svc, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		} else {
			color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid account id %q", s)
	}
	return id, nil
}

func run(ctx context.Context, svc *accountsvc.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	ok := color.New(color.FgGreen)
	need := func(n int) error {
		if len(args) != n+1 {
			return fmt.Errorf("%w: %s", errUsage, args[0])
		}
		return nil
	}

	switch args[0] {
	case "create":
		if err := need(1); err != nil {
			return err
		}
		a, err := svc.CreateAccount(ctx, args[1])
		if err != nil {
			return err
		}
		ok.Fprintf(out, "Account created: ID=%d Name=%s\n", a.ID, a.Name)
	case "deposit", "debit":
		if err := need(3); err != nil {
			return err
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		amount, err := money.Parse(args[2])
		if err != nil {
			return err
		}
		code := currency.Normalize(args[3])
		if args[0] == "deposit" {
			err = svc.Deposit(ctx, commands.Deposit{AccountID: id, Amount: amount, Currency: code})
		} else {
			err = svc.Debit(ctx, commands.Debit{AccountID: id, Amount: amount, Currency: code})
		}
		if err != nil {
			return err
		}
		ok.Fprintf(out, "%s of %s %s on account %d succeeded\n", args[0], money.Format(money.Round(amount)), code, id)
	case "balance":
		if err := need(1); err != nil {
			return err
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		balances, err := svc.GetBalances(ctx, id)
		if err != nil {
			return err
		}
		if len(balances) == 0 {
			fmt.Fprintf(out, "Account %d has no balances\n", id)
		}
		for _, b := range balances {
			fmt.Fprintf(out, "%s %s\n", b.Currency, money.Format(b.Amount))
		}
	case "exchange":
		if err := need(4); err != nil {
			return err
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		amount, err := money.Parse(args[4])
		if err != nil {
			return err
		}
		from, to := currency.Normalize(args[2]), currency.Normalize(args[3])
		if err := svc.Exchange(ctx, commands.Exchange{AccountID: id, From: from, To: to, Amount: amount}); err != nil {
			return err
		}
		ok.Fprintf(out, "Exchanged %s %s to %s on account %d\n", money.Format(money.Round(amount)), from, to, id)
	case "currencies":
		rates := svc.Rates()
		for _, code := range rates.Supported() {
			rate, _ := rates.Rate(code)
			fmt.Fprintf(out, "%s %s\n", code, rate)
		}
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return nil
}
