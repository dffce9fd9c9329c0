// Package main is an operator tool for checking the keyword lookup and the chat
// reply path without going through the webhook.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/DIMO-Network/keyword-bridge/internal/app"
	"github.com/DIMO-Network/keyword-bridge/internal/config"
	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	envFileFlag string
	chatIDFlag  string
)

var rootCmd = &cobra.Command{
	Use:           "keyword-bridge-cli",
	Short:         "Look up keyword metrics and send chat replies by hand",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <keyword>",
	Short: "Print the reply a keyword would get, without sending it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServices()
		if err != nil {
			return err
		}
		text, _, err := services.Reports.Lookup(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <text>",
	Short: "Send raw text to a chat",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServices()
		if err != nil {
			return err
		}
		return services.Messenger.Reply(cmd.Context(), chatIDFlag, strings.Join(args, " "))
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <keyword>",
	Short: "Look up a keyword and send the result to a chat",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServices()
		if err != nil {
			return err
		}
		outcome, err := services.Reports.Report(cmd.Context(), chatIDFlag, strings.Join(args, " "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), outcome)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", ".env", "path to env file")

	for _, cmd := range []*cobra.Command{sendCmd, reportCmd} {
		cmd.Flags().StringVar(&chatIDFlag, "chat-id", "", "chat to reply to")
		_ = cmd.MarkFlagRequired("chat-id")
	}
	rootCmd.AddCommand(lookupCmd, sendCmd, reportCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}

func loadServices() (*app.Services, error) {
	settings, err := env.LoadSettings[config.Settings](envFileFlag)
	if err != nil {
		return nil, fmt.Errorf("could not load settings: %w", err)
	}
	if settings.LogLevel != "" {
		level, err := zerolog.ParseLevel(settings.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("could not parse log level: %w", err)
		}
		zerolog.SetGlobalLevel(level)
	}
	logging.GetAndSetDefaultLogger(settings.ServiceName)
	return app.NewServices(&settings)
}
