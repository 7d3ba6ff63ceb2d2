// internal/cli/serve.go
package llmcompare

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mwiater/llmcompare/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd runs the read-only HTTP API and HTML report.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the comparison over HTTP",
	Long: `The 'serve' command exposes the catalog as a read-only JSON API under
/api/v1 and the HTML report at /. Query parameters (search, free, disabled,
sort, dir, baseline, mode, task, in, out) override the defaults given by the
flags. The server stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := loadCatalog()
		if err != nil {
			return err
		}
		st, err := resolveState(cmd)
		if err != nil {
			return err
		}
		addr := getConfig().ServerAddress()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(models, st, getConfig().Debug).Run(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addListFlags(serveCmd)
	addCompareFlags(serveCmd)
	addCostFlags(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8080)")
	_ = viper.BindPFlag("serverAddr", serveCmd.Flags().Lookup("addr"))
}
