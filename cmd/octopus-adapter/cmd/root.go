package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Checker-Finance/octopus-adapter/internal/catalog"
	"github.com/Checker-Finance/octopus-adapter/internal/octopus"
	"github.com/Checker-Finance/octopus-adapter/internal/publisher"
	"github.com/Checker-Finance/octopus-adapter/internal/tariff"
	"github.com/Checker-Finance/octopus-adapter/pkg/config"
	"github.com/Checker-Finance/octopus-adapter/pkg/logger"
	"github.com/Checker-Finance/octopus-adapter/pkg/utils"
)

// rootOptions holds the flag values and the resolved config for one run.
type rootOptions struct {
	cfg *config.Config

	brand       string
	displayName string
	baseURL     string
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "octopus-adapter",
		Short: "octopus-adapter - Octopus Energy tariff selector",
		Long: `octopus-adapter fetches the Octopus Energy product catalog and selects the single
tariff matching a brand and display name (Agile Octopus by default). It can
	- print the selected product (select)
	- print the decoded catalog (list)
	- serve both over HTTP (serve)
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("brand") {
				cfg.ProductBrand = opts.brand
			}
			if cmd.Flags().Changed("display-name") {
				cfg.ProductDisplayName = opts.displayName
			}
			if cmd.Flags().Changed("base-url") {
				cfg.OctopusBaseURL = opts.baseURL
			}
			opts.cfg = cfg
			if err := logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.brand, "brand", catalog.BrandOctopusEnergy, "brand the selected product must carry (overrides OCTOPUS_BRAND)")
	root.PersistentFlags().StringVar(&opts.displayName, "display-name", catalog.AgileDisplayName, "display name the selected product must carry (overrides OCTOPUS_DISPLAY_NAME)")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", octopus.DefaultBaseURL, "Octopus API base URL (overrides OCTOPUS_BASE_URL)")

	root.AddCommand(
		newSelectCmd(opts),
		newListCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and flushes the logger, also when the command fails.
func execute(root *cobra.Command) error {
	defer logger.Sync()
	return root.Execute()
}

// deps are the collaborators built from cfg for one command run.
type deps struct {
	service *tariff.Service
	nc      *nats.Conn
}

func (d *deps) Close() {
	if d.nc != nil {
		_ = d.nc.Drain()
	}
}

// buildDeps wires the Octopus client, the optional NATS publisher and the service.
func buildDeps(cfg *config.Config, withPublisher bool) (*deps, error) {
	log := logger.L()
	client := octopus.NewClient(log, cfg.OctopusBaseURL, cfg.OctopusHTTPTimeout)
	predicate := catalog.Match(cfg.ProductBrand, cfg.ProductDisplayName)

	d := &deps{}
	var pub tariff.EventPublisher
	if withPublisher && cfg.PublishingEnabled() {
		nc, err := nats.Connect(cfg.NATSURL, nats.Name(cfg.ServiceName))
		if err != nil {
			return nil, fmt.Errorf("connect to NATS at %s: %w", utils.MaskURL(cfg.NATSURL), err)
		}
		log.Info("nats connected", zap.String("url", utils.MaskURL(cfg.NATSURL)))
		d.nc = nc
		pub = publisher.New(nc, cfg.SelectedSubject, cfg.ServiceName)
	}

	d.service = tariff.NewService(log, client, predicate, pub)
	return d, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
