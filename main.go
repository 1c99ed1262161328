//go:build !js

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"dicegame/pkg/config"
	"dicegame/pkg/expr"
	"dicegame/pkg/game"
	"dicegame/pkg/judge"
	"dicegame/pkg/utils"
)

type playCmd struct {
	Rounds *int    `short:"r" help:"Number of rounds to play (default from config, 5)."`
	Seed   *uint64 `short:"s" help:"Seed for the dice; random when omitted."`
}

type checkCmd struct {
	Expression string   `arg:"" help:"Expression to judge, e.g. \"(6 - 5) * (6 - 5)\"."`
	Numbers    []uint32 `short:"n" required:"" help:"Dealt numbers, comma separated."`
	Target     *int64   `short:"t" help:"Target value (default from config, 1)."`
	Dump       bool     `help:"Print the tokens and the parsed tree."`
}

var cli struct {
	Config   string `help:"YAML config file (falls back to $DICEGAME_CONFIG)." type:"path"`
	LogLevel string `help:"Override the configured log level (debug, info, warn, error)."`

	Play  playCmd  `cmd:"" default:"withargs" help:"Play rounds on the console."`
	Check checkCmd `cmd:"" help:"Judge a single expression and exit non-zero when it is wrong."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("dicegame"),
		kong.Description("Combine the dealt numbers with + - * / and parentheses so the result is exactly the target."),
		kong.UsageOnError(),
	)

	conf, err := config.Load(cli.Config)
	kctx.FatalIfErrorf(err)
	if cli.LogLevel != "" {
		conf.Logging.LogLevel = cli.LogLevel
	}
	// stdout carries the game transcript
	utils.InitLogger(conf.Logging, os.Stderr)

	kctx.FatalIfErrorf(kctx.Run(conf))
}

func (c *playCmd) Run(conf *config.Config) error {
	sum, err := runPlay(os.Stdin, os.Stdout, conf, c.Rounds, c.Seed)
	if errors.Is(err, game.ErrInputClosed) {
		fmt.Println(sum)
	}
	return err
}

func (c *checkCmd) Run(conf *config.Config) error {
	return runCheck(os.Stdout, conf, c)
}

// runPlay plays the configured number of rounds, with rounds and seed
// overriding the config when set, and prints the summary line.
func runPlay(in io.Reader, out io.Writer, conf *config.Config, rounds *int, seed *uint64) (game.Summary, error) {
	g := conf.Game
	if rounds != nil {
		g.Rounds = *rounds
	}
	if seed != nil {
		g.Seed = seed
	}
	if g.Rounds < 0 {
		return game.Summary{}, fmt.Errorf("rounds must not be negative, got %d", g.Rounds)
	}

	dealer, err := g.NewDealer()
	if err != nil {
		return game.Summary{}, err
	}

	sum, err := game.NewSession(in, out, dealer, g.TargetRat()).Play(g.Rounds)
	if err != nil {
		return sum, err
	}
	fmt.Fprintln(out, sum)
	return sum, nil
}

// runCheck judges c.Expression once. The returned error is the judge's
// diagnostic when the answer is wrong.
func runCheck(out io.Writer, conf *config.Config, c *checkCmd) error {
	target := conf.Game.TargetRat()
	if c.Target != nil {
		target.SetInt64(*c.Target)
	}

	if c.Dump {
		dump(out, c.Expression)
	}

	j := judge.New(c.Numbers, target)
	if err := j.Check(c.Expression); err != nil {
		fmt.Fprintf(out, "Incorrect (%s): %v\n", judge.StageOf(err), err)
		return err
	}
	fmt.Fprintf(out, "Correct! %s = %s\n", c.Expression, target.RatString())
	return nil
}

// dump prints each pipeline stage as far as the expression gets.
func dump(out io.Writer, src string) {
	tokens, err := expr.Lex(src)
	if err != nil {
		fmt.Fprintln(out, "lex error:", err)
		return
	}
	fmt.Fprintf(out, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintf(out, "  %-8s %-10q col %d\n", tok.Type, tok.String(), tok.Pos+1)
	}

	tree, err := expr.Parse(tokens)
	if err != nil {
		fmt.Fprintln(out, "parse error:", err)
		return
	}
	fmt.Fprintln(out, "Tree")
	fmt.Fprintln(out, repr.String(tree, repr.Indent("  ")))
	fmt.Fprintln(out, "Formatted:", expr.Format(tree))
	fmt.Fprintln(out, "Literals: ", expr.LiteralMultiset(tree))

	value, err := expr.Evaluate(tree)
	if err != nil {
		fmt.Fprintln(out, "eval error:", err)
		return
	}
	fmt.Fprintln(out, "Value:    ", value.RatString())
}
