package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/reedit"
	"github.com/iw2rmb/reedit/browser"
	"github.com/iw2rmb/reedit/editor"
	"github.com/iw2rmb/reedit/internal/config"
	"github.com/iw2rmb/reedit/internal/logging"
	"github.com/iw2rmb/reedit/storage"
)

type options struct {
	configPath string
	logFile    string
	debug      bool
	noIndent   bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opt options

	cmd := &cobra.Command{
		Use:   "reedit [path]",
		Short: "A small modal text editor",
		Long: `reedit edits one file at a time next to a directory browser.

Without a path, or with ".", it starts in Command mode on an untitled
document. A file path opens that file in Insert mode; a missing path is
created on the first :w. A directory path starts the browser there.`,
		Version:       reedit.VersionTag(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			return run(opt, arg)
		},
	}

	cmd.Flags().StringVarP(&opt.configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/reedit/config.yaml)")
	cmd.Flags().StringVar(&opt.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().BoolVar(&opt.debug, "debug", false, "Log at debug level")
	cmd.Flags().BoolVar(&opt.noIndent, "no-indent", false, "Disable auto-indent on Enter")
	return cmd
}

func run(opt options, arg string) error {
	cfg, err := loadConfig(opt.configPath)
	if err != nil {
		return err
	}
	if opt.logFile != "" {
		cfg.Log.File = opt.logFile
	}
	if opt.noIndent {
		cfg.Editor.AutoIndent = false
	}

	log, closer, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level, Debug: opt.debug})
	if err != nil {
		return err
	}
	defer closer.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting current directory: %w", err)
	}

	store := storage.NewOS()
	start, err := resolveStartup(store, cwd, arg)
	if err != nil {
		return err
	}
	log.WithField("dir", start.Dir).WithField("path", start.Path).Info("starting reedit " + reedit.VersionTag())

	var clip editor.Clipboard = editor.NewRegister()
	if cfg.Editor.SystemClipboard {
		clip = editor.NewSystemClipboard()
	}

	m, err := editor.New(editor.Config{
		Path:      start.Path,
		Dir:       start.Dir,
		Storage:   store,
		Clipboard: clip,
		KeyMap:    editor.DefaultKeyMap(),
		Style:     editor.ThemedStyle(lipgloss.Color(cfg.Theme.Accent), lipgloss.Color(cfg.Theme.Muted)),

		AutoIndent:  cfg.Editor.AutoIndent,
		LineNumbers: cfg.Editor.LineNumbers,

		Browser: browser.Options{
			HideDotfiles: !cfg.Browser.ShowHidden,
			Ignore:       cfg.Browser.Ignore,
		},
		SidebarWidth: cfg.Browser.Width,
		Logger:       log,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app{editor: m}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("terminal")
		return err
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// app adapts the editor component to tea.Model.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
