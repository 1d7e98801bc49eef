package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsconfig-gen/internal/adapters"
	"jsconfig-gen/internal/app"
)

func bindProjectFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("namespace", cmd.Flags().Lookup("namespace"))
	_ = viper.BindPFlag("template", cmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("project_dir", cmd.Flags().Lookup("project-dir"))
	_ = viper.BindPFlag("npm_bin", cmd.Flags().Lookup("npm"))
	_ = viper.BindPFlag("all", cmd.Flags().Lookup("all"))
	_ = viper.BindPFlag("listing", cmd.Flags().Lookup("listing"))
}

// resolveProject merges flags with config: an explicitly set flag wins,
// otherwise the viper value (config file, env, default) is used.
func resolveProject(cmd *cobra.Command, opts projectOptions) projectOptions {
	return projectOptions{
		Namespace:  resolveString(cmd, opts.Namespace, "namespace", "namespace"),
		Template:   resolveString(cmd, opts.Template, "template", "template"),
		ProjectDir: resolveString(cmd, opts.ProjectDir, "project_dir", "project-dir"),
		NpmBin:     resolveString(cmd, opts.NpmBin, "npm_bin", "npm"),
		All:        resolveBool(cmd, opts.All, "all", "all"),
		Listing:    resolveString(cmd, opts.Listing, "listing", "listing"),
	}
}

func newAppService(opts projectOptions) app.Service {
	service := app.NewService()
	if strings.TrimSpace(opts.Listing) != "" {
		return service.WithLister(adapters.NewListingFileAdapter(opts.Listing))
	}
	return service.WithLister(adapters.NewNpmListerAdapter(opts.NpmBin, opts.All))
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
