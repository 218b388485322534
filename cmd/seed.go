package cmd

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/logger"
	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo jobs and talents into the database",
	Long:  "Load the demo jobs and talents. Jobs are matched by title and talents by email, so running it twice changes nothing.",
	Run: func(cmd *cobra.Command, _ []string) {
		runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	st, err := newStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer st.Close()

	report, err := seed(ctx, st, logger)
	if err != nil {
		logger.Fatal("seeding", zap.Error(err))
	}
	logger.Info("seed finished",
		zap.Int("jobs created", report.jobs),
		zap.Int("talents created", report.talents),
		zap.Int("skipped", report.skipped),
	)
}

type seedReport struct {
	jobs, talents, skipped int
}

func seed(ctx context.Context, st store.Store, log *zap.Logger) (seedReport, error) {
	var report seedReport

	jobs, err := st.ListJobs(ctx)
	if err != nil {
		return report, err
	}
	titles := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		titles[strings.ToLower(j.Title)] = true
	}
	for _, f := range talents.FixtureJobs() {
		if titles[strings.ToLower(f.Title)] {
			report.skipped++
			continue
		}
		j, err := st.CreateJob(ctx, f)
		if err != nil {
			return report, err
		}
		log.Debug("job seeded", zap.String("job_id", j.ID), zap.String("title", j.Title))
		report.jobs++
	}

	list, err := st.ListTalents(ctx)
	if err != nil {
		return report, err
	}
	emails := make(map[string]bool, len(list))
	for _, t := range list {
		emails[strings.ToLower(t.Email)] = true
	}
	for _, f := range talents.FixtureTalents() {
		if emails[strings.ToLower(f.Email)] {
			report.skipped++
			continue
		}
		t, err := st.CreateTalentProfile(ctx, f)
		if errors.Is(err, store.ErrDuplicateEmail) {
			report.skipped++
			continue
		}
		if err != nil {
			return report, err
		}
		log.Debug("talent seeded", zap.String("talent_id", t.ID), zap.String("email", t.Email))
		report.talents++
	}

	return report, nil
}
