package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// promptChooser asks a person for every player decision.
type promptChooser struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ battleengine.Chooser = (*promptChooser)(nil)

func newPromptChooser(in io.Reader, out io.Writer) *promptChooser {
	return &promptChooser{in: bufio.NewScanner(in), out: out}
}

// Choose implements battle.Chooser. Input that cannot be parsed is asked
// again; closed input cancels the battle.
func (p *promptChooser) Choose(ctx context.Context, req *battleengine.Request) (battleengine.Action, error) {
	c := req.User.Character()
	fmt.Fprintf(p.out, "\n%s  HP %.0f/%.0f  %s %.0f/%.0f  AP %.2g\n",
		c.Name(), c.Health(), c.MaxHealth(), c.ResourceType(), c.Resource(), c.MaxResource(), req.User.ActionPoints())
	for i, sk := range req.Skills {
		fmt.Fprintf(p.out, "  %d) %s (cost %.0f, %.2g AP)\n", i+1, sk.Name, sk.ResourceCost, sk.ActionCost)
	}
	fmt.Fprintln(p.out, "  p) pass")
	if req.CanEscape {
		fmt.Fprintln(p.out, "  e) escape")
	}

	for {
		line, err := p.ask(ctx, "action")
		if err != nil {
			return battleengine.Action{}, err
		}

		switch {
		case line == "p":
			return battleengine.Action{Kind: battleengine.Pass}, nil
		case line == "e" && req.CanEscape:
			return battleengine.Action{Kind: battleengine.Escape}, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(req.Skills) {
			fmt.Fprintf(p.out, "pick 1-%d or p\n", len(req.Skills))
			continue
		}

		target, err := p.target(ctx, req)
		if err != nil {
			return battleengine.Action{}, err
		}
		return battleengine.Action{Kind: battleengine.UseSkill, Skill: req.Skills[n-1], Target: target}, nil
	}
}

// target asks for an opponent when there is more than one. Skills aimed at
// the caster or its team ignore the choice.
func (p *promptChooser) target(ctx context.Context, req *battleengine.Request) (*battleengine.User, error) {
	if len(req.Opponents) <= 1 {
		if len(req.Opponents) == 1 {
			return req.Opponents[0], nil
		}
		return nil, nil
	}

	for i, u := range req.Opponents {
		o := u.Character()
		fmt.Fprintf(p.out, "  %d) %s  HP %.0f/%.0f\n", i+1, o.Name(), o.Health(), o.MaxHealth())
	}
	for {
		line, err := p.ask(ctx, "target")
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(req.Opponents) {
			fmt.Fprintf(p.out, "pick 1-%d\n", len(req.Opponents))
			continue
		}
		return req.Opponents[n-1], nil
	}
}

func (p *promptChooser) ask(ctx context.Context, prompt string) (string, error) {
	if err := errors.FromContext(ctx); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "%s> ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", errors.Canceled("input closed")
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), nil
}
