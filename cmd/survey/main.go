package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	authremote "survey_client/internal/auth/remote"
	"survey_client/internal/cli"
	"survey_client/internal/session"
	surveyremote "survey_client/internal/surveys/remote"
	"survey_client/platform/config"
	"survey_client/platform/httpclient"
	"survey_client/platform/logger"
	"survey_client/platform/storage"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// stdout belongs to command output
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open account storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.StorageError("close", "", err)
		}
	}()

	client := httpclient.New(httpclient.Config{Timeout: cfg.GetHTTPTimeout()}, log)
	defer client.CloseIdleConnections()

	account := session.NewCurrentAccount(store)

	root := cli.NewRootCommand(cli.Deps{
		Authentication: authremote.NewAuthentication(cfg.APIURL("login"), client),
		AddAccount:     authremote.NewAddAccount(cfg.APIURL("signup"), client),
		Surveys:        surveyremote.NewLoadSurveyList(cfg.APIURL("surveys"), httpclient.NewAuthorizeGetClient(client, account)),
		Account:        account,
		Prompter:       cli.NewSurveyPrompter(),
		Log:            log,
	})
	return root.ExecuteContext(ctx)
}
