package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/lootifier/internal/version"
	"github.com/arthur-debert/lootifier/pkg/config"
	"github.com/arthur-debert/lootifier/pkg/filesystem"
	"github.com/arthur-debert/lootifier/pkg/logging"
	"github.com/arthur-debert/lootifier/pkg/lootifier"
	"github.com/arthur-debert/lootifier/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	flagInput      = "input"
	flagOutput     = "output"
	flagMasterlist = "masterlist-input"
	flagNoClear    = "no-clear"
	flagPrint      = "print"
	flagFormat     = "format"
)

type rootOptions struct {
	verbosity  int
	configFile string
	input      string
	output     string
	masterlist string
	noClear    bool
	print      bool
	dryRun     bool
	format     string
}

// NewRootCmd creates the root command working on the host filesystem
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithFS(filesystem.NewOS())
}

// NewRootCmdWithFS creates the root command with all file access going
// through fsys.
func NewRootCmdWithFS(fsys afero.Fs) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "lootifier",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, fsys, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, flagFormat, "auto", MsgFlagFormat)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, flagInput, "i", "loadorder.txt", MsgFlagInput)
	flags.StringVarP(&opts.output, flagOutput, "o", "userlist.yaml", MsgFlagOutput)
	flags.StringVarP(&opts.masterlist, flagMasterlist, "m", "masterlist.yaml", MsgFlagMasterlist)
	flags.BoolVar(&opts.noClear, flagNoClear, false, MsgFlagNoClear)
	flags.BoolVar(&opts.print, flagPrint, true, MsgFlagPrint)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newConfigCmd(fsys, opts))
	installTopics(rootCmd, fsys, opts)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lootifier version %s\n", version.Version)
			fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			fmt.Fprintf(out, "Built:  %s\n", version.Date)
		},
	}
}

// loadConfig resolves the configuration, with flags the user actually set
// on cmd taking precedence over every other source.
func loadConfig(cmd *cobra.Command, fsys afero.Fs, opts *rootOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed(flagInput) {
		overrides[config.KeyInput] = opts.input
	}
	if flags.Changed(flagOutput) {
		overrides[config.KeyOutput] = opts.output
	}
	if flags.Changed(flagMasterlist) {
		overrides[config.KeyMasterlist] = opts.masterlist
	}
	if flags.Changed(flagNoClear) {
		overrides[config.KeyClearMasterlist] = !opts.noClear
	}
	if flags.Changed(flagPrint) {
		overrides[config.KeyPrint] = opts.print
	}
	if flags.Changed(flagFormat) {
		overrides[config.KeyFormat] = opts.format
	}

	return config.Load(config.LoadOptions{
		FS:         fsys,
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
}

func runConvert(cmd *cobra.Command, fsys afero.Fs, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, fsys, opts)
	if err != nil {
		return err
	}

	format, err := style.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf(MsgErrInvalidFormat, err)
	}

	log.Info().
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Str("masterlist", cfg.Masterlist).
		Bool("dryRun", opts.dryRun).
		Msg("Converting load order")

	result, err := lootifier.Run(fsys, lootifier.Options{
		Input:           cfg.Input,
		Output:          cfg.Output,
		Masterlist:      cfg.Masterlist,
		ClearMasterlist: cfg.ClearMasterlist,
		DryRun:          opts.dryRun,
		Stdin:           cmd.InOrStdin(),
	})
	if err != nil {
		return err
	}

	if cfg.Print || opts.dryRun {
		fmt.Fprint(cmd.OutOrStdout(), result.Userlist)
	}

	errOut := cmd.ErrOrStderr()
	renderer := style.NewRenderer(resolveFormat(format, errOut), errOut)
	fmt.Fprintln(errOut, renderer.RenderSummary(style.Summary{
		Input:             cfg.Input,
		Output:            cfg.Output,
		Masterlist:        cfg.Masterlist,
		Plugins:           result.Plugins,
		GroupRules:        result.GroupRules,
		PluginRules:       result.PluginRules,
		DryRun:            opts.dryRun,
		MasterlistCleared: result.MasterlistCleared,
	}))

	return nil
}

// resolveFormat only probes real files; any other writer gets plain text
// unless a format was forced.
func resolveFormat(f style.Format, w io.Writer) style.Format {
	if file, ok := w.(*os.File); ok {
		return f.Resolve(file)
	}
	if f == style.FormatAuto {
		return style.FormatText
	}
	return f
}
