package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsconfig-gen/internal/app"
	"jsconfig-gen/internal/types"
)

type initOptions struct {
	Namespace string
	Template  string
	Force     bool
}

func newInitCommand() *cobra.Command {
	opts := initOptions{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in default template to disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Namespace, "namespace", types.DefaultNamespace, "Organizational scope prefix")
	cmd.Flags().StringVar(&opts.Template, "template", types.DefaultTemplatePath, "Template path to create")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing template")
	return cmd
}

func runInit(cmd *cobra.Command, opts initOptions) error {
	_ = viper.BindPFlag("namespace", cmd.Flags().Lookup("namespace"))
	_ = viper.BindPFlag("template", cmd.Flags().Lookup("template"))

	service := app.NewService()
	result, err := service.Init(cmd.Context(), app.InitRequest{
		Namespace:    resolveString(cmd, opts.Namespace, "namespace", "namespace"),
		TemplatePath: resolveString(cmd, opts.Template, "template", "template"),
		Force:        opts.Force,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created: %s\n", result.Path)
	return nil
}
