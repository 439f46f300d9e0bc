// Command basket-split splits a basket file across the delivery types of a
// catalog file and prints the grouping as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/basket-splitter/internal/loader"
	"github.com/eugenenazirov/basket-splitter/internal/logging"
	"github.com/eugenenazirov/basket-splitter/internal/splitter"
)

type options struct {
	catalogFile      string
	basketFile       string
	logLevel         string
	maxDeliveryTypes int
	timeout          time.Duration
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	kingpin.FatalIfError(err, "parse arguments")

	logger, err := logging.New(opts.logLevel)
	kingpin.FatalIfError(err, "initialize logger")
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error("split failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	app := kingpin.New("basket-split", "Split a basket across the fewest delivery types")
	catalog := app.Flag("catalog", "Path to the product catalog (JSON or YAML)").Short('c').Required().String()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").Default("warn").String()
	maxTypes := app.Flag("max-delivery-types", "Largest delivery type universe searched exhaustively").
		Default(fmt.Sprint(splitter.DefaultMaxDeliveryTypes)).Int()
	timeout := app.Flag("timeout", "Upper bound on the delivery type search").Default("30s").Duration()
	basket := app.Arg("basket", "Path to the basket file (JSON or YAML list of products)").Required().String()

	if _, err := app.Parse(args); err != nil {
		return options{}, err
	}

	return options{
		catalogFile:      *catalog,
		basketFile:       *basket,
		logLevel:         *logLevel,
		maxDeliveryTypes: *maxTypes,
		timeout:          *timeout,
	}, nil
}

func run(opts options, out io.Writer, logger *zap.Logger) error {
	catalog, err := loader.LoadCatalog(opts.catalogFile)
	if err != nil {
		return err
	}
	basket, err := loader.LoadBasket(opts.basketFile)
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded",
		zap.Int("products", catalog.Len()),
		zap.Strings("delivery_types", catalog.Universe()),
		zap.Int("items", len(basket)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	result, err := splitter.New(catalog, splitter.WithMaxDeliveryTypes(opts.maxDeliveryTypes)).Split(ctx, basket)
	if err != nil {
		return err
	}
	logger.Info("basket split",
		zap.Strings("delivery_types", result.Types()),
		zap.String("dominant", result.Dominant()),
	)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
