package blueprintc

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeusync/blueprint/internal/config"
	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/factory"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/schema"
	"github.com/zeusync/blueprint/internal/injector"
)

var ErrUsage = errors.New("usage: blueprintc compile|inspect [-config file] args")

// Command is the parsed command line.
type Command struct {
	Name       string
	ConfigPath string
	Args       []string
}

// ParseCommand parses the subcommand and its flags.
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrUsage
	}
	cmd := Command{Name: args[0]}
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cmd.ConfigPath, "config", "", "config file (.yaml or .toml)")
	if err := fs.Parse(args[1:]); err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	cmd.Args = fs.Args()

	switch cmd.Name {
	case "compile":
		if len(cmd.Args) != 2 {
			return Command{}, fmt.Errorf("%w: compile needs <in.yaml> <out.bin>", ErrUsage)
		}
	case "inspect":
		if len(cmd.Args) != 1 {
			return Command{}, fmt.Errorf("%w: inspect needs <file.bin>", ErrUsage)
		}
	default:
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrUsage, cmd.Name)
	}
	return cmd, nil
}

// Run executes cmd, writing human-readable output to out.
func Run(ctx context.Context, cmd Command, out io.Writer) error {
	cfg, err := config.Load(cmd.ConfigPath)
	if err != nil {
		return err
	}
	rt, err := injector.NewRuntime(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()
	if err := rt.Start(ctx); err != nil {
		return err
	}

	switch cmd.Name {
	case "compile":
		return compile(rt.Factory, cmd.Args[0], cmd.Args[1], out)
	default:
		return inspect(rt.Factory, cmd.Args[0], out)
	}
}

func compile(f *factory.Factory, in, out string, w io.Writer) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	tree, err := parseSource(src, f.Types())
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	data, err := f.FinalizeTree(tree)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	_, err = fmt.Fprintf(w, "%s: %d entities, %d bytes\n", out, tree.Count(), len(data))
	return err
}

func inspect(f *factory.Factory, path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := f.Load(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	types := f.Types()
	var sb strings.Builder
	tree.Walk(func(node *blueprint.Tree, depth int) {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(&sb, "%sentity\n", indent)
		node.ForEachComponent(func(defType models.HashValue, def []byte) {
			name := types.NameOf(defType)
			if name == "" {
				name = schema.NoneName
			}
			detail, err := describe(name, def)
			if err != nil {
				detail = " (" + err.Error() + ")"
			}
			fmt.Fprintf(&sb, "%s  %s (%d bytes)%s\n", indent, name, len(def), detail)
		})
	})
	_, err = io.WriteString(w, sb.String())
	return err
}
