package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/contact"
	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimit"
	"github.com/dmitrymomot/formkit/pkg/redis"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the contact form HTTP endpoint",
		Long: `Run the contact form HTTP endpoint until interrupted.

Configuration is read from the environment (and .env):
  HTTP_ADDR, ALLOWED_ORIGIN, CONTACT_PATH, CONTACT_FROM, CONTACT_TO,
  EMAIL_PROVIDER (postmark|smtp|dev), POSTMARK_SERVER_TOKEN, SMTP_*,
  RATE_LIMIT_STORE (memory|redis), RATE_LIMIT_MAX_REQUESTS, RATE_LIMIT_WINDOW,
  REDIS_URL, APP_ENV, LOG_LEVEL, LOG_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	var (
		appCfg     appConfig
		contactCfg contact.Config
		emailCfg   email.Config
		limitCfg   ratelimit.Config
		redisCfg   redis.Config
		serverCfg  httpserver.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&contactCfg) },
		func() error { return config.Load(&emailCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&serverCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := newLogger(appCfg, os.Stdout)
	logger.SetAsDefault(log)

	sender, err := email.NewSender(emailCfg)
	if err != nil {
		return fmt.Errorf("email sender: %w", err)
	}

	domains := validator.DefaultDomains()
	if contactCfg.DomainsFile != "" {
		if domains, err = validator.LoadDomainsFile(contactCfg.DomainsFile); err != nil {
			return fmt.Errorf("domain registry: %w", err)
		}
	}

	var readyChecks []httpserver.Check
	var limiter *ratelimit.FixedWindow
	if limitCfg.Store == ratelimit.StoreRedis {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() { _ = client.Close() }()

		readyChecks = append(readyChecks, redis.Healthcheck(client))
		limiter, err = ratelimit.NewFromConfig(limitCfg, client, redisCfg.KeyPrefix)
		if err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	} else {
		limiter, err = ratelimit.NewFromConfig(limitCfg, nil, "")
		if err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	dispatcher := contact.NewEmailDispatcher(sender, contactCfg.From, contactCfg.To,
		contact.WithSubjectPrefix(contactCfg.SubjectPrefix),
	)
	pipeline, err := contact.NewPipeline(limiter, dispatcher,
		contact.WithDomains(domains),
		contact.WithDispatchTimeout(contactCfg.DispatchTimeout),
		contact.WithDispatchRate(contactCfg.DispatchRate, contactCfg.DispatchBurst),
		contact.WithLogger(log),
	)
	if err != nil {
		return err
	}

	router := contact.NewRouter(contact.RouterOptions{
		Handler: contact.NewHandler(pipeline,
			contact.WithMaxBodyBytes(contactCfg.MaxBodyBytes),
			contact.WithHandlerLogger(log),
		),
		Path:          contactCfg.Path,
		AllowedOrigin: contactCfg.AllowedOrigin,
		Environment:   environment.Parse(appCfg.Env),
		Logger:        log,
		ReadyChecks:   readyChecks,
	})

	log.InfoContext(ctx, "starting contact endpoint",
		slog.String("path", contactCfg.Path),
		slog.String("email_provider", emailCfg.Provider),
		slog.String("rate_limit_store", limitCfg.Store),
		slog.Int("rate_limit_max", limitCfg.MaxRequests),
		slog.Duration("rate_limit_window", limitCfg.Window),
	)

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
