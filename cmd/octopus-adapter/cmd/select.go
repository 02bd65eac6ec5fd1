package cmd

import (
	"github.com/spf13/cobra"
)

func newSelectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "fetch the product catalog and print the single matching product as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(opts.cfg, true)
			if err != nil {
				return err
			}
			defer d.Close()

			p, err := d.service.SelectProduct(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p)
		},
	}
}
