package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/history/ratelimit"
	yamlnicknames "github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/nickname/yaml"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/presentation/terminal"
	tomlrepo "github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/repo/toml"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/session/memory"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/application"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/config"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/logging"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/matching"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg        config.Config
	logger     *zap.Logger
	rosterRepo *tomlrepo.RosterRepository
	roster     *application.RosterStore
	identify   *application.IdentificationService
	questions  *application.QuestionService
	sessions   *application.SessionManager
	history    *application.HistoryService
}

func (a *app) wire(cmd *cobra.Command, debug bool) error {
	logger, err := logging.New(debug)
	if err != nil {
		return err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rosterRepo, err := tomlrepo.NewRosterRepository(cfg.Viper)
	if err != nil {
		return fmt.Errorf("wire roster repository: %w", err)
	}

	nicknames, err := yamlnicknames.Open(cfg.Viper)
	if err != nil {
		return fmt.Errorf("wire nickname table: %w", err)
	}

	historyRepo, err := tomlrepo.NewHistoryRepository(cfg.Viper, ports.SystemClock{})
	if err != nil {
		return fmt.Errorf("wire history repository: %w", err)
	}

	tables := matching.DefaultTables()
	roster := application.NewRosterStore(logger)
	identify := application.NewIdentificationService(roster, tables, cfg.Thresholds, nicknames, cfg.MaxResults, logger)
	recency := application.NewRecencyService(
		ratelimit.New(historyRepo, cfg.HistoryRatePerSecond, cfg.HistoryBurst),
		matching.NewMentionScorer(tables, identify.Validator()),
		cfg.RecencyWindow,
		cfg.RecencyMaxMessages,
		logger,
	)
	sessions := application.NewSessionManager(memory.NewStore(), terminal.NewSink(cmd.OutOrStdout()), cfg.SessionTimeout, ports.SystemClock{}, logger)

	a.cfg = cfg
	a.logger = logger
	a.rosterRepo = rosterRepo
	a.roster = roster
	a.identify = identify
	a.sessions = sessions
	a.questions = application.NewQuestionService(identify, recency, sessions, cfg.MaxChoices, logger)
	a.history = application.NewHistoryService(historyRepo, ports.SystemClock{})

	logger.Debug("app wired",
		zap.String("roster", rosterRepo.Path()),
		zap.Int("nicknames", nicknames.Len()),
		zap.String("tables", tables.Version),
	)

	return nil
}

func (a *app) loadRoster(ctx context.Context) error {
	if err := a.roster.Load(ctx, a.rosterRepo); err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
