package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"star-gazer/handler"
	"star-gazer/internal/config"
	"star-gazer/internal/content"
	"star-gazer/internal/integrations/paramstore"
	"star-gazer/internal/repository"
	"star-gazer/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	// ---- AWS SDK config ----
	// Only needed when content or the audit log live in AWS.
	var awsCfg aws.Config
	if cfg.ParamPrefix != "" || cfg.TurnTable != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load AWS config", "err", err)
			os.Exit(1)
		}
	}

	// ---- Content ----
	var getter content.MapGetter
	if cfg.ParamPrefix != "" {
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			slog.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
		getter = ssmClient
	}
	store, err := content.Load(ctx, getter, cfg.ParamPrefix)
	if err != nil {
		slog.Error("failed to load constellation content", "err", err, "paramPrefix", cfg.ParamPrefix)
		os.Exit(1)
	}
	infoCount, mythCount := store.Len()
	slog.Info("constellation content loaded", "info", infoCount, "myth", mythCount)

	// ---- Handler ----
	skill, err := usecase.NewSkill(store)
	if err != nil {
		slog.Error("failed to create skill", "err", err)
		os.Exit(1)
	}

	opts := []handler.Option{handler.WithApplicationID(cfg.AppID)}
	if cfg.TurnTable != "" {
		turns, err := repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.TurnTable)
		if err != nil {
			slog.Error("failed to create turn log client", "err", err)
			os.Exit(1)
		}
		opts = append(opts, handler.WithTurnRecorder(turns))
	}

	h, err := handler.NewHandler(skill, opts...)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
