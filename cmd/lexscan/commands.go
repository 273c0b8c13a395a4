package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/lexscan/internal/cli"
	"github.com/orizon-lang/lexscan/internal/logging"
	"github.com/orizon-lang/lexscan/internal/option"
)

const toolName = "lexscan"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           toolName,
		Short:         "Lexical scanner for the lexscan languages",
		Long:          "lexscan - split a source file into positioned tokens and print them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScanCmd(), newVersionCmd())
	return root
}

func newScanCmd() *cobra.Command {
	vp := option.NewViper()

	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Print the tokens of FILE",
		Long: `Print the tokens of FILE, one per line, with their spans.

Options can also be set through LEXSCAN_* environment variables or a
config file. NEED_SPACES, SKIP_ERRORS and SKIP_EOF are honored as well.`,
		Example: "  lexscan scan --dialect keywords --retain-whitespace prog.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := option.Load(vp, cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetupLogging(cfg.Debug)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return cli.Run(ctx, cfg, args[0], cmd.OutOrStdout())
		},
	}
	option.InitFlags(cmd.Flags(), vp)
	return cmd
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.PrintVersion(cmd.OutOrStdout(), toolName, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version in JSON format")
	return cmd
}
