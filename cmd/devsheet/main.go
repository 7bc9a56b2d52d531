package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	cli "github.com/urfave/cli/v3"

	"github.com/jask/devsheet/app"
	"github.com/jask/devsheet/core"
	"github.com/jask/devsheet/internal/catalog"
	"github.com/jask/devsheet/internal/config"
	"github.com/jask/devsheet/internal/content"
	"github.com/jask/devsheet/internal/page"
	"github.com/jask/devsheet/internal/render"
)

const defaultShowWidth = 80

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	if err := root.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "devsheet",
		Usage:       content.AppTitle + " in the terminal",
		Description: "Run 'devsheet list' to see the topics and 'devsheet show <topic>' to print one.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "topic", Aliases: []string{"t"}, Usage: "Topic to open first (label or slug)"},
		},
		Commands: []*cli.Command{
			listCmd(),
			showCmd(),
			configCmd(),
		},
		Writer:    stdout,
		ErrWriter: stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			runTUI(cmd.String("topic"))
			return nil
		},
	}
}

func runTUI(startTopic string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	m, err := app.NewModel(cfg, startTopic)
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	// The TUI owns the terminal from here on.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "devsheet")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List topics in sidebar order",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg, err := content.Registry()
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			fmt.Fprint(w, "\nTopics:\n\n")
			for i, label := range reg.Labels() {
				fmt.Fprintf(w, "  %2d. %-26s %s\n", i+1, label, catalog.Slug(label))
			}
			fmt.Fprintln(w, "\nRun 'devsheet show <topic>' to print a topic.")
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print one topic",
		ArgsUsage: "<topic>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "plain", Usage: "Print markdown source without styling"},
			&cli.IntFlag{Name: "width", Usage: "Wrap width (default: ui.wrap_width or 80)"},
			&cli.StringFlag{Name: "style", Usage: "Glamour style (default: ui.style)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := cmd.Args().First()
			if query == "" {
				return fmt.Errorf("missing topic; run 'devsheet list' for the topics")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			reg, err := content.Registry()
			if err != nil {
				return err
			}
			label, err := app.ResolveTopic(reg, query)
			if err != nil {
				return err
			}
			doc, err := catalog.NewNavigator(reg).Document(label)
			if err != nil {
				return err
			}

			width := int(cmd.Int("width"))
			if width <= 0 {
				width = cfg.UI.WrapWidth
			}
			if width <= 0 {
				width = defaultShowWidth
			}
			style := cmd.String("style")
			if style == "" {
				style = cfg.UI.Style
			}
			w := cmd.Root().Writer
			out, err := renderDoc(doc, width, style, cmd.Bool("plain") || !isTerminal(w))
			if err != nil {
				return err
			}
			fmt.Fprint(w, out)
			return nil
		},
	}
}

func renderDoc(doc *page.Document, width int, style string, plain bool) (string, error) {
	var r core.ContentRenderer = render.Plain{}
	if !plain {
		gr, err := render.New(style)
		if err != nil {
			return "", err
		}
		r = gr
	}
	return r.Render(doc, width)
}

// isTerminal reports whether w is a terminal. Anything that is not an
// *os.File, such as a buffer, is not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := config.DefaultPath()
					if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
						return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
					}
					if err := config.Save(path, config.Default()); err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "wrote %s\n", path)
					return nil
				},
			},
			{
				Name:  "path",
				Usage: "Print the configuration file path",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Fprintln(cmd.Root().Writer, config.DefaultPath())
					return nil
				},
			},
		},
	}
}
