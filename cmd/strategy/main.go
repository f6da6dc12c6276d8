package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/bot"
	"github.com/lox/blackjackforbots/internal/randutil"
)

var cli struct {
	Verbose bool `short:"v" help:"Verbose logging"`

	Print PrintCmd `cmd:"" help:"Print a named strategy table"`
	Cross CrossCmd `cmd:"" help:"Breed child strategies from two parent tables"`
}

type PrintCmd struct {
	Name string `arg:"" help:"Strategy name: basic, hitman, random"`
	Seed int64  `default:"0" help:"RNG seed for the random strategy (0 for time seed)"`
}

type CrossCmd struct {
	First  string `arg:"" help:"First parent: a strategy name or a table file"`
	Second string `arg:"" help:"Second parent: a strategy name or a table file"`
	Out    string `help:"Directory to write child tables to (prints to stdout if unset)" default:""`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("strategy"),
		kong.Description("Blackjack strategy table tooling"),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var err error
	switch ctx.Command() {
	case "print <name>":
		err = cli.Print.Run(logger)
	case "cross <first> <second>":
		err = cli.Cross.Run(logger)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		logger.Fatal("Command failed", "error", err)
	}
}

func (cmd *PrintCmd) Run(logger *log.Logger) error {
	player, err := loadTable(cmd.Name, cmd.Seed)
	if err != nil {
		return err
	}
	fmt.Print(player)
	return nil
}

func (cmd *CrossCmd) Run(logger *log.Logger) error {
	first, err := loadTable(cmd.First, 0)
	if err != nil {
		return err
	}
	second, err := loadTable(cmd.Second, 0)
	if err != nil {
		return err
	}

	children := bot.MakeChildren(first, second)
	for _, child := range children {
		if cmd.Out == "" {
			fmt.Printf("--- %s ---\n%s\n", child.Name(), child)
			continue
		}
		path := filepath.Join(cmd.Out, sanitize(child.Name())+".strategy")
		if err := bot.WriteStrategyFile(path, child.Rules()); err != nil {
			return err
		}
		logger.Info("Wrote child strategy", "path", path)
	}
	return nil
}

// loadTable resolves a known strategy name, falling back to reading the
// argument as a table file.
func loadTable(name string, seed int64) (*bot.TableBot, error) {
	switch name {
	case "basic":
		return bot.NewBasic(), nil
	case "hitman":
		return bot.NewHitman(), nil
	case "random":
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return bot.NewRandom(randutil.New(seed)), nil
	}

	rules, err := bot.ReadStrategyFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown strategy %q: %w", name, err)
	}
	return bot.NewCustom(name, rules), nil
}

func sanitize(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '/', '\\', ' ':
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
