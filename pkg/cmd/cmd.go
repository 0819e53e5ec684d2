// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/destvault/pkg/app"
	"github.com/yeisme/destvault/pkg/configs"
)

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   configs.AppName,
		Short: "Destination memory service for the file organizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 缺省行为即启动服务
			return serveCmd.RunE(cmd, args)
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(configPath).Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose debug output")

	rootCmd.AddCommand(serveCmd)

	registerConfigsCommands()
	registerDBCommands()
	registerKVCommands()
	registerMQCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
