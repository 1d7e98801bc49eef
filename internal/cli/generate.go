package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsconfig-gen/internal/app"
	"jsconfig-gen/internal/types"
)

func newGenerateCommand() *cobra.Command {
	opts := projectOptions{}
	output := ""
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "List dependencies and write jsconfig.json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, output)
		},
	}
	addProjectFlags(cmd, &opts)
	cmd.Flags().StringVar(&output, "output", types.DefaultOutputPath, "Generated jsconfig path")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts projectOptions, output string) error {
	bindProjectFlags(cmd)
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	project := resolveProject(cmd, opts)

	service := newAppService(project)
	result, err := service.Generate(cmd.Context(), app.GenerateRequest{
		Namespace:    project.Namespace,
		TemplatePath: project.Template,
		OutputPath:   resolveString(cmd, output, "output", "output"),
		ProjectDir:   project.ProjectDir,
	})
	if err != nil {
		return err
	}
	if result.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "generated: %s (%d paths)\n", result.OutputPath, len(result.Paths))
	}
	return nil
}
