package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daogen/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve schema extraction and seed generation over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := serverConfig()
		if !viper.GetBool("verbose") {
			gin.SetMode(gin.ReleaseMode)
		}

		srv := server.NewServer(cfg)

		errCh := make(chan error, 1)
		go func() {
			Logger.Info("server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("http server error: %w", err)
			}
			return nil
		case <-quit:
		}

		Logger.Info("shutting down server gracefully")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		Logger.Info("server exiting")
		return nil
	},
}

// serverConfig collects the server section plus the shared settings.
func serverConfig() server.Config {
	return server.Config{
		Addr:           viper.GetString("server.addr"),
		MaxInputBytes:  viper.GetInt64("settings.max_input_bytes"),
		MaxSeedRows:    viper.GetInt("server.max_seed_rows"),
		DefaultDialect: viper.GetString("settings.dialect"),
		AllowOrigins:   viper.GetStringSlice("server.allow_origins"),
		Logger:         Logger,
	}
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
