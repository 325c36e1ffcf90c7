// Package topics adds file-backed help topics to a Cobra command tree.
//
// Topics are read from any fs.FS, so a binary can ship them embedded. A
// file's base name without extension is the topic name; "option-" prefixed
// files document a flag and are also reachable as "--flag".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const optionPrefix = "option-"

// Topic is a single help document
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer

	// RendererFor, when set, picks the renderer each time the help command
	// shows a topic, after the root's persistent flags have been applied.
	RendererFor func(cmd *cobra.Command) Renderer
}

// Manager holds the loaded topics
type Manager struct {
	topics      map[string]*Topic
	extensions  []string
	renderer    Renderer
	rendererFor func(cmd *cobra.Command) Renderer
}

// Load reads every topic file under fsys
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:      make(map[string]*Topic),
		extensions:  opts.Extensions,
		renderer:    opts.Renderer,
		rendererFor: opts.RendererFor,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !slices.Contains(m.extensions, ext) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	return m, nil
}

// Get looks a topic up by name. Flag spellings such as "--dry-run" resolve
// to the matching option topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[optionPrefix+name]
	return topic, ok
}

// Names returns the sorted topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the configured renderer
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, path.Ext(t.Path))
}

func (m *Manager) renderFor(cmd *cobra.Command, t *Topic) string {
	if m.rendererFor == nil {
		return m.Render(t)
	}
	return m.rendererFor(cmd).Render(t.Content, path.Ext(t.Path))
}

// WriteIndex lists the available topics, general ones first
func (m *Manager) WriteIndex(w io.Writer, appName string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Install replaces the help command of root with one that also serves
// topics. Unknown names fall back to regular command help.
func Install(root *cobra.Command, m *Manager) {
	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		DisableFlagParsing: true,
		ValidArgsFunction:  func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			args, err := applyPersistentFlags(root, args)
			if err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}
			if len(args) == 0 {
				originalHelp(root, args)
				return
			}
			if args[0] == "topics" {
				m.WriteIndex(cmd.OutOrStdout(), root.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), m.renderFor(cmd, topic))
				return
			}

			target, _, err := root.Find(args)
			if err != nil || target == nil {
				cmd.PrintErrf("Unknown help topic %q\n", args[0])
				originalHelp(root, nil)
				return
			}
			originalHelp(target, nil)
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)
}

// applyPersistentFlags parses the root's persistent flags out of args and
// returns the rest. Other flags are kept as names so "help --dry-run" still
// reaches the option topic.
func applyPersistentFlags(root *cobra.Command, args []string) ([]string, error) {
	flags := root.PersistentFlags()
	var names, flagArgs []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		f := lookupFlag(flags, arg)
		if f == nil {
			names = append(names, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if !strings.Contains(arg, "=") && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	if len(flagArgs) > 0 {
		if err := flags.Parse(flagArgs); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func lookupFlag(flags *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, _ := strings.Cut(arg[2:], "=")
		return flags.Lookup(name)
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		return flags.ShorthandLookup(arg[1:2])
	default:
		return nil
	}
}
