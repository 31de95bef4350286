package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jylitalo/tmg/pkg"
)

// NewCommand returns root level command.
// Supports `--version`.
// Default is to write markdown next to source file.
func NewCommand(writer io.WriteCloser, version string) *cobra.Command {
	level := &slog.LevelVar{}
	cmd := &cobra.Command{
		Use:           "tmg",
		Short:         "generate markdown tables from TypeScript interfaces",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level.Set(slog.LevelDebug)
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// parse flags
			if flag, _ := cmd.Flags().GetBool("version"); flag {
				_, _ = writer.Write([]byte(fmt.Sprintf("tmg %s\n", version)))
				return nil
			}
			source, _ := cmd.Flags().GetString("source-filepath")
			prefix, _ := cmd.Flags().GetString("prefix")
			exportedOnly, _ := cmd.Flags().GetBool("exported-only")
			watch, _ := cmd.Flags().GetBool("watch")
			// execute
			settings := pkg.Settings{Source: source, Prefix: prefix, ExportedOnly: exportedOnly}
			if err := pkg.Run(settings); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchFile(ctx, source, defaultDebounce, func() {
				if err := pkg.Run(settings); err != nil {
					slog.Warn("regeneration failed", "source", source, "err", err)
				}
			})
		},
	}
	cmd.Flags().StringP("source-filepath", "s", "", "source_filepath to .ts source")
	cmd.Flags().StringP("prefix", "p", pkg.DefaultPrefix, "markdown heading in front of interface names")
	cmd.Flags().BoolP("exported-only", "e", false, "only collect exported interfaces")
	cmd.Flags().BoolP("watch", "w", false, "regenerate markdown when source changes")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	cmd.Flags().BoolP("version", "v", false, "print tmg version")
	return cmd
}
