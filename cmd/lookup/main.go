package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"belrates/internal/app"
	"belrates/internal/config"
	"belrates/internal/domain"
	"belrates/internal/rate"

	"github.com/fatih/color"
)

const usage = "Usage: lookup <CODE> [YYYY-MM-DD]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(stderr, usage)
		fmt.Fprintln(stderr, "Codes:", domain.RequestableCurrencies())
		return 2
	}

	appCfg, err := config.Init()
	if err != nil {
		color.New(color.FgRed).Fprintln(stderr, "Failed to load config:", err)
		return 1
	}
	app.SetupLogger(config.Logging{Level: "warn", Format: appCfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt, err := lookup(ctx, rate.NewValidator(domain.RequestableCurrencies()), app.NewRateService(appCfg), args)
	if err != nil {
		color.New(color.FgRed).Fprintln(stderr, "Error:", describe(err))
		return 1
	}

	effective, err := rt.EffectiveRate()
	if err != nil {
		color.New(color.FgRed).Fprintln(stderr, "Error:", describe(err))
		return 1
	}

	bold := color.New(color.Bold)
	fmt.Fprintf(stdout, "%s %s (%s)\n", rt.Date(), bold.Sprint(rt.Currency()), rt.Name())
	fmt.Fprintf(stdout, "  %d %s = %s BYN\n", rt.Scale(), rt.Currency(), color.GreenString("%.4f", rt.OfficialRate()))
	if rt.Scale() != 1 {
		fmt.Fprintf(stdout, "  1 %s = %s BYN\n", rt.Currency(), color.GreenString("%.6f", effective))
	}
	return 0
}

func lookup(ctx context.Context, validator *rate.CurrencyValidator, svc *rate.Service, args []string) (domain.Rate, error) {
	cur, err := validator.ValidateCode(args[0])
	if err != nil {
		return domain.Rate{}, err
	}
	if len(args) == 1 {
		return svc.GetLatest(ctx, cur)
	}
	if err = validator.ValidateDate(args[1]); err != nil {
		return domain.Rate{}, err
	}
	return svc.GetOnDate(ctx, cur, args[1])
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedCurrency):
		return "the national bank does not publish a rate for this currency"
	case errors.Is(err, domain.ErrNotFound):
		return "no rate published for this date"
	case errors.Is(err, domain.ErrTransport):
		return "could not reach the national bank: " + err.Error()
	default:
		return err.Error()
	}
}
