package nutrilog

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/saadjs/nutrilog/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			addr := s.cfg.Addr
			if strings.TrimSpace(serveAddr) != "" {
				addr = serveAddr
			}
			errLog := log.New(cmd.ErrOrStderr(), "nutrilog: ", log.LstdFlags)

			app := fiber.New(fiber.Config{
				AppName:               "nutrilog",
				DisableStartupMessage: true,
			})
			app.Use(recover.New())
			app.Use(logger.New(logger.Config{Output: cmd.ErrOrStderr()}))
			api.RegisterRoutes(app, api.NewHandler(s.svc, errLog))

			sigCtx, stopSignals := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stopSignals()

			go func() {
				<-sigCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := app.ShutdownWithContext(shutdownCtx); err != nil {
					errLog.Printf("server shutdown failed: %v", err)
				}
			}()

			errLog.Printf("listening on %s (backend: %s, tz: %s)", addr, s.cfg.backend, s.cfg.loc)
			return app.Listen(addr)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (env NUTRILOG_ADDR, default :8080)")
}
