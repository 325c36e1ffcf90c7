package lootifier

import (
	"io"

	"github.com/arthur-debert/lootifier/pkg/errors"
	"github.com/arthur-debert/lootifier/pkg/filesystem"
	"github.com/arthur-debert/lootifier/pkg/logging"
	"github.com/spf13/afero"
)

// StdinPath as the input path reads the load order from Options.Stdin.
const StdinPath = "-"

// Options configures a conversion run.
type Options struct {
	Input           string
	Output          string
	Masterlist      string
	ClearMasterlist bool
	DryRun          bool
	Stdin           io.Reader
}

// Result describes a finished run.
type Result struct {
	Plugins           int
	GroupRules        int
	PluginRules       int
	Userlist          string
	Written           bool
	MasterlistCleared bool
}

// Run reads the load order, writes the userlist and clears the masterlist,
// stopping at the first failure. In dry-run mode nothing is written.
func Run(fsys afero.Fs, opts Options) (*Result, error) {
	logger := logging.GetLogger("lootifier.run")
	done := logging.LogOperationStart(logger, "run")
	defer done()

	if opts.Input == "" {
		return nil, errors.New(errors.ErrInvalidInput, "input path is empty")
	}
	if opts.Output == "" && !opts.DryRun {
		return nil, errors.New(errors.ErrInvalidInput, "output path is empty")
	}

	l, err := load(fsys, opts)
	if err != nil {
		return nil, err
	}

	rs := l.Rules()
	userlist, err := render(rs)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Plugins:     l.Plugins().Len(),
		GroupRules:  len(rs.Groups),
		PluginRules: len(rs.Plugins),
		Userlist:    userlist,
	}

	if opts.DryRun {
		logger.Info().Str("output", opts.Output).Msg("Dry run, userlist not written")
		return result, nil
	}

	if err := filesystem.WriteSink(fsys, opts.Output, userlist); err != nil {
		return nil, err
	}
	result.Written = true
	logger.Info().
		Str("output", opts.Output).
		Int("groups", result.GroupRules).
		Int("plugins", result.PluginRules).
		Msg("Userlist written")

	if opts.ClearMasterlist && opts.Masterlist != "" {
		cleared, err := filesystem.Clear(fsys, opts.Masterlist)
		if err != nil {
			return nil, err
		}
		result.MasterlistCleared = cleared
		logger.Debug().
			Str("masterlist", opts.Masterlist).
			Bool("cleared", cleared).
			Msg("Masterlist checked")
	}

	return result, nil
}

func load(fsys afero.Fs, opts Options) (*Lootifier, error) {
	if opts.Input == StdinPath {
		if opts.Stdin == nil {
			return nil, errors.New(errors.ErrInvalidInput, "no standard input available")
		}
		return FromReader(opts.Stdin)
	}
	return FromFile(fsys, opts.Input)
}
