// Command ccserver runs a Classic Protocol v7 game server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ccserver/internal/config"
	"ccserver/internal/plugins/autocracy"
	"ccserver/internal/plugins/dice"
	"ccserver/internal/plugins/help"
	"ccserver/internal/server"
	"ccserver/internal/world"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "ccserver",
		Short: "A Classic Protocol v7 multiplayer game server",
		RunE:  run,
	}

	defaults := config.Defaults()
	flags := root.Flags()
	flags.String("name", defaults.Name, "server name announced to clients")
	flags.String("motd", defaults.MOTD, "message of the day")
	flags.String("level", defaults.Level, "path to the level file")
	flags.Int("port", defaults.Port, "TCP port to listen on")
	flags.Int("players", defaults.MaxPlayers, "maximum concurrent players")
	flags.Bool("no-verify", !defaults.VerifyNames, "disable username authentication")
	flags.BoolP("verbose", "v", defaults.Verbose, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "config.json", "path to the JSON config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	verbose := v.GetBool("verbose")
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().Timestamp().Logger()

	settings, err := config.Load(v, configPath, logger)
	if err != nil {
		return err
	}
	verifyNames := settings.VerifyNames
	if cmd.Flags().Changed("no-verify") {
		verifyNames = !v.GetBool("no-verify")
	}

	loader := world.NewFlatGenerator()
	w, err := loader.Load(settings.Level)
	if err != nil {
		return fmt.Errorf("loading level %s: %w", settings.Level, err)
	}

	srv := server.New(server.Config{
		Name:        settings.Name,
		MOTD:        settings.MOTD,
		Addr:        fmt.Sprintf(":%d", v.GetInt("port")),
		MaxPlayers:  v.GetInt("players"),
		VerifyNames: verifyNames,
	}, w, logger)

	for _, p := range []server.Plugin{
		autocracy.New(),
		dice.New(),
		help.New(),
	} {
		if err := srv.RegisterPlugin(p); err != nil {
			return fmt.Errorf("registering plugins: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
