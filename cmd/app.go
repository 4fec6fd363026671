package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/assetbook"
	"github.com/etnz/assetbook/logger"
	"github.com/etnz/assetbook/renderer"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	EnvAPIURL   = "ASSETBOOK_API_URL"
	EnvCurrency = "ASSETBOOK_CURRENCY"
	EnvVerbose  = "ASSETBOOK_VERBOSE"

	DefaultAPIURL = "http://localhost:5000/api"
)

// LoadEnv loads a .env file from the working directory, if any. Variables
// already set in the environment are not overwritten.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, cannot load .env file: %v", err)
	}
}

// config is the resolved global configuration.
type config struct {
	api      string
	currency string
	verbose  bool
	raw      bool
}

// loadConfig resolves the global flags, falling back to the environment.
func loadConfig() (config, error) {
	cfg := config{
		api:      firstNonEmpty(*apiURL, os.Getenv(EnvAPIURL), DefaultAPIURL),
		currency: strings.ToUpper(firstNonEmpty(*currency, os.Getenv(EnvCurrency), assetbook.DefaultCurrency)),
		verbose:  *Verbose,
		raw:      *rawOutput,
	}
	if !cfg.verbose {
		if v, err := strconv.ParseBool(os.Getenv(EnvVerbose)); err == nil {
			cfg.verbose = v
		}
	}
	if err := assetbook.ValidateCurrency(cfg.currency); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// app wires a session to the terminal.
type app struct {
	cfg     config
	client  *assetbook.Client
	session *assetbook.Session
	out     io.Writer
	errOut  io.Writer
	log     *zap.Logger

	table *renderer.Table // last rendered table
	quiet bool            // render without printing
}

// openApp builds the app from the global configuration, on the standard streams.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(cfg, os.Stdout, os.Stderr)
}

func newApp(cfg config, out, errOut io.Writer) (*app, error) {
	a := &app{cfg: cfg, out: out, errOut: errOut, log: logger.New(cfg.verbose)}
	client, err := assetbook.NewClient(cfg.api, assetbook.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.client = client
	notifier := assetbook.NewNotifier(termDisplay{w: errOut}, 0)
	a.session = assetbook.NewSession(client, a, notifier, a.log)
	return a, nil
}

// Render implements assetbook.View.
func (a *app) Render(assets []assetbook.Asset) {
	a.table = renderer.AssetTable(assets, a.cfg.currency)
	if !a.quiet {
		a.print(a.table.Markdown())
	}
}

// find fetches the collection and returns the asset with id, without
// displaying the table. The service has no single asset route.
func (a *app) find(ctx context.Context, id assetbook.ID) (assetbook.Asset, error) {
	a.quiet = true
	defer func() { a.quiet = false }()
	if err := a.session.FetchAll(ctx); err != nil {
		return assetbook.Asset{}, err
	}
	asset, ok := a.session.Cache().Find(id)
	if !ok {
		return assetbook.Asset{}, fmt.Errorf("no asset with id %q", id)
	}
	return asset, nil
}

func (a *app) print(md string) { printMarkdown(a.out, md, a.cfg.raw) }

// row returns the row displayed with index in the last rendered table.
func (a *app) row(index string) (renderer.Row, error) {
	if a.table == nil {
		return renderer.Row{}, errors.New("no table displayed yet, run 'ls' first")
	}
	i, err := strconv.Atoi(index)
	if err != nil {
		return renderer.Row{}, fmt.Errorf("invalid row number %q", index)
	}
	r, ok := a.table.Row(i)
	if !ok {
		return renderer.Row{}, fmt.Errorf("no row %d", i)
	}
	return r, nil
}

// termDisplay prints banners as they are raised. A terminal cannot take a
// line back, so Clear does nothing.
type termDisplay struct{ w io.Writer }

func (d termDisplay) Show(n assetbook.Notification) { fmt.Fprintln(d.w, renderer.Banner(n)) }
func (d termDisplay) Clear(assetbook.Notification)  {}

// confirm asks question on out and reads the answer from in. Only an
// explicit yes agrees.
func confirm(in *bufio.Scanner, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	if !in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(in.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
