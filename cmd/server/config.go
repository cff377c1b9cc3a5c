package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	port           int
	allowedOrigins string

	redisAddr     string
	redisPassword string
	redisDB       int

	discordToken         string
	discordApplicationID string
	discordGuildID       string

	language      string
	logLevel      string
	logJSON       bool
	maxIdle       time.Duration
	reapInterval  time.Duration
	timerInterval time.Duration
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.redisAddr == "" {
		return errors.New("--redis-addr cannot be empty")
	}
	if c.redisDB < 0 {
		return fmt.Errorf("invalid redis db: %d", c.redisDB)
	}
	if !models.Language(c.language).IsValid() {
		return fmt.Errorf("unsupported language %q (must be ar or en)", c.language)
	}
	if c.maxIdle <= 0 {
		return fmt.Errorf("--max-idle must be positive: %s", c.maxIdle)
	}
	if c.reapInterval <= 0 {
		return fmt.Errorf("--reap-interval must be positive: %s", c.reapInterval)
	}
	if c.timerInterval <= 0 {
		return fmt.Errorf("--timer-interval must be positive: %s", c.timerInterval)
	}
	return nil
}

// bindEnv lets IMPOSTER_* environment variables fill any flag not set on the command line
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("IMPOSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "imposter",
		Short:   "Room and round engine for the Min Imposter word game.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	pfs := cmd.PersistentFlags()
	pfs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: IMPOSTER_REDIS_ADDR)")
	pfs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: IMPOSTER_REDIS_PASSWORD)")
	pfs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database number (env: IMPOSTER_REDIS_DB)")
	pfs.StringVar(&cfg.language, "language", string(models.LanguageArabic), "language for labels and messages, ar or en (env: IMPOSTER_LANGUAGE)")
	pfs.StringVar(&cfg.logLevel, "log-level", "info", "log level (env: IMPOSTER_LOG_LEVEL)")
	pfs.BoolVar(&cfg.logJSON, "log-json", false, "log JSON lines instead of console output (env: IMPOSTER_LOG_JSON)")

	fs := cmd.Flags()
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: IMPOSTER_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: IMPOSTER_PORT)")
	fs.StringVar(&cfg.allowedOrigins, "allowed-origins", "*", "CORS allowed origins (env: IMPOSTER_ALLOWED_ORIGINS)")
	fs.StringVar(&cfg.discordToken, "discord-token", "", "discord bot token; the bot is off when empty (env: IMPOSTER_DISCORD_TOKEN)")
	fs.StringVar(&cfg.discordApplicationID, "discord-application-id", "", "discord application ID (env: IMPOSTER_DISCORD_APPLICATION_ID)")
	fs.StringVar(&cfg.discordGuildID, "discord-guild-id", "", "register commands for one guild only (env: IMPOSTER_DISCORD_GUILD_ID)")
	fs.DurationVar(&cfg.maxIdle, "max-idle", 24*time.Hour, "time before an untouched room is deleted (env: IMPOSTER_MAX_IDLE)")
	fs.DurationVar(&cfg.reapInterval, "reap-interval", 10*time.Minute, "how often stale rooms are deleted (env: IMPOSTER_REAP_INTERVAL)")
	fs.DurationVar(&cfg.timerInterval, "timer-interval", time.Second, "how often discussion timers are checked (env: IMPOSTER_TIMER_INTERVAL)")

	bindEnv(v, pfs)
	bindEnv(v, fs)

	cmd.AddCommand(newSeedCmd(cfg, v))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("imposter v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func newSeedCmd(cfg *Config, v *viper.Viper) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed <file.csv>",
		Short: "Import a category,word CSV into the word bank.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.redisAddr == "" {
				return errors.New("--redis-addr cannot be empty")
			}
			return seed(cmd.Context(), cfg, args[0], replace)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&replace, "replace", false, "start from an empty category list instead of the stored one (env: IMPOSTER_REPLACE)")
	bindEnv(v, fs)

	return cmd
}
