package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsconfig-gen/internal/app"
	"jsconfig-gen/internal/types"
)

func newInspectCommand() *cobra.Command {
	opts := projectOptions{}
	format := ""
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show namespaced dependencies and the path rule without writing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts, format)
		},
	}
	addProjectFlags(cmd, &opts)
	cmd.Flags().StringVar(&format, "format", string(types.ReportFormatYAML), "Output format: yaml, tree or json")
	return cmd
}

func runInspect(cmd *cobra.Command, opts projectOptions, format string) error {
	bindProjectFlags(cmd)
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	project := resolveProject(cmd, opts)

	service := newAppService(project)
	result, err := service.Inspect(cmd.Context(), app.InspectRequest{
		Namespace:    project.Namespace,
		TemplatePath: project.Template,
		ProjectDir:   project.ProjectDir,
	})
	if err != nil {
		return err
	}
	reportFormat := types.ReportFormat(strings.ToLower(resolveString(cmd, format, "format", "format")))
	return service.RenderInspect(cmd.OutOrStdout(), result, reportFormat, project.ProjectDir)
}
