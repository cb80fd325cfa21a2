package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"korea-realestate/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = current.cfg.Server.Addr
		}
		if current.cfg.Log.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}
		return server.New(current.agg, current.trend, current.logger).Run(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from SERVER_ADDR, :8080)")
	rootCmd.AddCommand(serveCmd)
}
