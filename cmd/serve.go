package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "globetrotter/internal/config"
	intdb "globetrotter/internal/db"
	router "globetrotter/internal/http"
	"globetrotter/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "create missing tables before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	env := loadEnv()
	if env.SecretKey == "" {
		return errors.New("SECRET_KEY is not set")
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(cmd.Context(), env)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	if autoMigrate {
		if _, err := intdb.Migrate(cmd.Context(), db); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(env, db),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.LogEvent("", "server", "start", "listening on "+env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return err
	}

	utils.LogEvent("", "server", "shutdown", "stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	utils.LogEvent("", "server", "shutdown", "server stopped")
	return nil
}
