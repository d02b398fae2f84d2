// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"flag"

	"github.com/nomadic-labs/docsite/cmd/gendocs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var vip = viper.New()

// NewCommand creates the docsite root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docsite",
		Short: "Validate and stage the Tezos documentation site",
		Long: "docsite loads the documentation site configuration, checks its data integrity,\n" +
			"stages the extra static files into the output tree and validates the external\n" +
			"links of the documentation sources.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip)
		},
	}

	configureFlags(cmd)

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klog.InitFlags(nil)
	AddFlags(cmd)

	return cmd
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.Flags().AddGoFlag(gf)
	})
}
