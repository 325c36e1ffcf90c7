package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lootifier/pkg/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newConfigCmd(fsys afero.Fs, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Long: `Print the configuration lootifier would use, after merging defaults, the
user and project config files and LOOTIFIER_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{FS: fsys, ConfigFile: opts.configFile})
			if err != nil {
				return err
			}
			data, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: MsgConfigInitShort,
		Long:  `Write the commented default configuration to path (default ./lootifier.toml).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ProjectFileName
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(fsys, path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.AddCommand(initCmd)

	return cmd
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man <dir>",
		Short: MsgManShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return fmt.Errorf(MsgErrManDir, err)
			}
			header := &doc.GenManHeader{
				Title:   "LOOTIFIER",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}
