package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsconfig-gen/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "JSCONFIG_GEN"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

// projectOptions are shared by every command that reads a project.
type projectOptions struct {
	Namespace  string
	Template   string
	ProjectDir string
	NpmBin     string
	All        bool
	Listing    string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	project := projectOptions{}
	output := ""
	cmd := &cobra.Command{
		Use:     "jsconfig-gen",
		Short:   "Generate jsconfig.json path rules for scoped process packages",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, project, output)
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	addProjectFlags(cmd, &project)
	cmd.Flags().StringVar(&output, "output", types.DefaultOutputPath, "Generated jsconfig path")

	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newInitCommand())
	return cmd
}

func addProjectFlags(cmd *cobra.Command, opts *projectOptions) {
	cmd.Flags().StringVar(&opts.Namespace, "namespace", types.DefaultNamespace, "Organizational scope prefix")
	cmd.Flags().StringVar(&opts.Template, "template", types.DefaultTemplatePath, "Template jsconfig path")
	cmd.Flags().StringVar(&opts.ProjectDir, "project-dir", ".", "Directory to run the dependency listing in")
	cmd.Flags().StringVar(&opts.NpmBin, "npm", types.DefaultNpmBinary, "Package manager binary")
	cmd.Flags().BoolVar(&opts.All, "all", false, "List the full dependency tree (npm ls --all)")
	cmd.Flags().StringVar(&opts.Listing, "listing", "", "Read a saved 'npm ls --json --long' output instead of running npm")
}

func initConfig(configFile string) error {
	_ = godotenv.Load()
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetDefault("namespace", types.DefaultNamespace)
	viper.SetDefault("template", types.DefaultTemplatePath)
	viper.SetDefault("output", types.DefaultOutputPath)
	viper.SetDefault("project_dir", ".")
	viper.SetDefault("npm_bin", types.DefaultNpmBinary)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("jsconfig-gen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/jsconfig-gen")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read config file").
			WithCause(err)
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.DefaultContextLogger = &log.Logger
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		if strings.HasPrefix(errorMessage(err), "dependency listing failed") {
			return 3
		}
		return 4
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
