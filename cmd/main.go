package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"solar-dispatch/cmd/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// stopTimeout bounds the whole stop sequence; the server drain inside it is
// capped by SERVER_SHUTDOWN_TIMEOUT.
const stopTimeout = 30 * time.Second

// @title           solar-dispatch
// @version         1.0
// @description     Dispatch core for solar installations: verification codes, customer draws and warehouse material tracking.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// release unless GIN_MODE says otherwise
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
	gin.EnableJsonDecoderDisallowUnknownFields()

	app := fx.New(
		bootstrap.Module,
		bootstrap.ServerModule,
		fx.StopTimeout(stopTimeout),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped", "signal", sig.Signal, "exit_code", sig.ExitCode)
	os.Exit(sig.ExitCode)
}
