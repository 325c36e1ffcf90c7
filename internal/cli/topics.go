package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/lootifier/pkg/cobrax/topics"
	"github.com/arthur-debert/lootifier/pkg/config"
	"github.com/arthur-debert/lootifier/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// installTopics adds the embedded help topics to root.
func installTopics(root *cobra.Command, fsys afero.Fs, opts *rootOptions) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	m, err := topics.Load(sub, topics.Options{
		RendererFor: func(cmd *cobra.Command) topics.Renderer {
			return topicRenderer(cmd, fsys, opts)
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	topics.Install(root, m)
}

// topicRenderer renders markdown with colors only when the format resolves
// to a terminal for the command's own output.
func topicRenderer(cmd *cobra.Command, fsys afero.Fs, opts *rootOptions) topics.Renderer {
	value := opts.format
	if !cmd.Root().PersistentFlags().Changed(flagFormat) {
		if cfg, err := config.Load(config.LoadOptions{FS: fsys, ConfigFile: opts.configFile}); err == nil {
			value = cfg.Format
		}
	}

	format, err := style.ParseFormat(value)
	if err != nil {
		format = style.FormatAuto
	}
	if resolveFormat(format, cmd.OutOrStdout()) == style.FormatTerminal {
		return topics.NewGlamourRenderer()
	}
	return topics.NewPlainGlamourRenderer()
}
