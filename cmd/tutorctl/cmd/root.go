package cmd

import (
	"context"

	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/container"
	"github.com/saulo-duarte/adaptive-tutor/internal/topic"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "tutorctl",
	Short:        "Maintenance tool for the AI tutor content store",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("dsn", "", "Postgres DSN (overrides DATABASE_DSN)")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(topicsCmd)
}

func settings(cmd *cobra.Command) config.Settings {
	s := config.Load()
	if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
		s.DatabaseDSN = dsn
	}
	return s
}

// topicService connects without building an LLM provider.
func topicService(ctx context.Context, cmd *cobra.Command) (topic.Service, error) {
	s := settings(cmd)
	config.InitLogger(s.LogLevel)
	if err := config.Connect(ctx, s.DatabaseDSN); err != nil {
		return nil, err
	}
	if err := container.Migrate(config.DB); err != nil {
		return nil, err
	}
	return topic.NewService(config.DB), nil
}
