// Package cli implements the privateevents command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"privateevents/catalog"
	"privateevents/services"
)

// app is the state shared by all subcommands once the root pre-run has loaded it.
type app struct {
	out    io.Writer
	errOut io.Writer
	lookup func(string) (string, bool)
	now    func() time.Time
	newRef func() string

	envFile string
	debug   bool

	cfg    services.PricingConfig
	logger zerolog.Logger
}

// Option customises the command tree, mainly for tests.
type Option func(*app)

// WithOutput redirects command output and logs.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *app) {
		a.out = out
		a.errOut = errOut
	}
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(a *app) { a.lookup = lookup }
}

// WithClock fixes the quote date and reference.
func WithClock(now func() time.Time, newRef func() string) Option {
	return func(a *app) {
		a.now = now
		a.newRef = newRef
	}
}

// NewReference returns a quote reference such as "PE-1A2B3C4D".
func NewReference() string {
	return "PE-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		out:    os.Stdout,
		errOut: os.Stderr,
		lookup: os.LookupEnv,
		now:    time.Now,
		newRef: NewReference,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "privateevents",
		Short:         "Price private-event menus and build guest estimates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = NewLogger(a.errOut, a.debug)
			if err := LoadEnvFile(a.envFile); err != nil {
				return err
			}
			cfg, err := LoadPricingConfig(a.lookup)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log estimate diagnostics")
	root.PersistentFlags().StringVar(&a.envFile, "env", ".env", "path of an optional .env file")

	root.AddCommand(
		newPricesCommand(a),
		newQuoteCommand(a),
		newCostCommand(a),
		newImportCommand(a),
		newTemplateCommand(a),
	)
	return root
}

// Execute runs the command line against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadPriced reads the catalog at path (the built-in one when empty) and
// derives its prices.
func (a *app) loadPriced(path string) (catalog.Document, error) {
	doc, err := catalog.LoadFile(path)
	if err != nil {
		return catalog.Document{}, err
	}
	priced := catalog.Priced(doc, a.cfg)
	a.logger.Debug().
		Int("menus", len(priced.Menus)).
		Int("addons", len(priced.BeverageAddons)).
		Msg("catalog loaded")
	return priced, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
