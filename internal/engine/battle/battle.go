// Package battle runs a battle between a party of players and a group of
// enemies: the speed-driven round loop, turn flow, escape and rewards.
//
// A Battle is not safe for concurrent use. Distinct battles share no state.
package battle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
)

// Result is the state of a battle.
type Result string

// Results
const (
	Ongoing       Result = "ongoing"
	PlayerVictory Result = "player_victory"
	EnemyVictory  Result = "enemy_victory"
	Draw          Result = "draw"
	Escaped       Result = "escaped"
	Aborted       Result = "aborted"
)

// Terminal reports whether the battle is over.
func (r Result) Terminal() bool {
	return r != Ongoing && r != ""
}

// Location is where a battle takes place. It only feeds reward scaling and
// quest notes.
type Location struct {
	DungeonType  string `json:"dungeon_type" yaml:"dungeon_type"`
	DungeonLevel int    `json:"dungeon_level" yaml:"dungeon_level"`
	Floor        int    `json:"floor" yaml:"floor"`
}

// maxChoicesPerTurn bounds how many choices one turn may take, counting
// skill uses and re-prompts after unaffordable picks.
const maxChoicesPerTurn = 10

// Config holds everything a battle needs.
type Config struct {
	ID      string
	Players []*character.Character
	Enemies []*character.Character
	Dice    *roll.Dice
	Log     *combatlog.Writer
	// Chooser decides for players. Nil lets the AI play them.
	Chooser   Chooser
	Inventory resolve.Inventory
	Listeners *resolve.Registry
	Location  Location
	CanEscape bool
	// MaxRounds ends a stalled battle in a draw. Zero means no limit.
	MaxRounds int
	// BossDrops maps a monster category to the item every boss of that
	// category drops.
	BossDrops map[character.Category]string
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", cfg.ID, vb)
	if cfg.Dice == nil {
		vb.RequiredField("Dice")
	}
	if len(cfg.Players) == 0 {
		vb.RequiredField("Players")
	}
	if len(cfg.Enemies) == 0 {
		vb.RequiredField("Enemies")
	}
	if cfg.MaxRounds < 0 {
		vb.Field("MaxRounds", "must not be negative")
	}

	seen := make(map[string]bool)
	check := func(field string, cs []*character.Character, kind character.Kind) {
		for i, c := range cs {
			name := fmt.Sprintf("%s[%d]", field, i)
			switch {
			case c == nil:
				vb.RequiredField(name)
			case c.Kind() != kind:
				vb.Fieldf(name, "must be a %s", kind)
			case seen[c.GetID()]:
				vb.Fieldf(name, "duplicate id %s", c.GetID())
			default:
				seen[c.GetID()] = true
			}
		}
	}
	check("Players", cfg.Players, character.Player)
	check("Enemies", cfg.Enemies, character.Enemy)

	return vb.Build()
}

// Battle is one encounter between two teams.
type Battle struct {
	id        string
	users     []*User
	dice      *roll.Dice
	log       *combatlog.Writer
	resolver  *resolve.Resolver
	chooser   Chooser
	ai        Chooser
	location  Location
	bossDrops map[character.Category]string
	maxRounds int

	canEscape      bool
	escapeAttempts int
	round          int
	result         Result
	rewards        *Rewards
}

// New creates a battle. Players are cleared of effects left from earlier
// battles; every participant gets its default listeners attached.
func New(cfg *Config) (*Battle, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Log
	if log == nil {
		log = combatlog.NewWriter(nil)
	}

	resolver, err := resolve.New(&resolve.Config{
		Dice:      cfg.Dice,
		Log:       log,
		Inventory: cfg.Inventory,
		Listeners: cfg.Listeners,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	b := &Battle{
		id:        cfg.ID,
		dice:      cfg.Dice,
		log:       log,
		resolver:  resolver,
		chooser:   cfg.Chooser,
		ai:        NewRandomChooser(cfg.Dice),
		location:  cfg.Location,
		bossDrops: cfg.BossDrops,
		maxRounds: cfg.MaxRounds,
		canEscape: cfg.CanEscape,
		result:    Ongoing,
	}

	for _, c := range cfg.Players {
		c.ClearBattleState()
		if err := resolver.AttachListeners(c); err != nil {
			return nil, err
		}
		b.users = append(b.users, NewUser(c, Players))
	}
	for _, c := range cfg.Enemies {
		if err := resolver.AttachListeners(c); err != nil {
			return nil, err
		}
		b.users = append(b.users, NewUser(c, Enemies))
	}

	return b, nil
}

// ID returns the battle id.
func (b *Battle) ID() string { return b.id }

// Round returns the number of rounds started so far.
func (b *Battle) Round() int { return b.round }

// Result returns the current state without re-evaluating it.
func (b *Battle) Result() Result { return b.result }

// Location returns where the battle takes place.
func (b *Battle) Location() Location { return b.location }

// EscapeAttempts returns how many escapes have failed.
func (b *Battle) EscapeAttempts() int { return b.escapeAttempts }

// Users returns the participants in scan order.
func (b *Battle) Users() []*User {
	return append([]*User(nil), b.users...)
}

// Resolver returns the resolver skills are used through.
func (b *Battle) Resolver() *resolve.Resolver { return b.resolver }

// Characters returns the characters of team t in scan order.
func (b *Battle) Characters(t Team) []*character.Character {
	var out []*character.Character
	for _, u := range b.users {
		if u.team == t {
			out = append(out, u.character)
		}
	}
	return out
}

// CheckResult evaluates the battle: a draw when nobody is alive, a victory
// for the only team with survivors, ongoing otherwise. A finished battle
// keeps its result.
func (b *Battle) CheckResult() Result {
	if b.result.Terminal() {
		return b.result
	}

	alive := map[Team]int{}
	for _, u := range b.users {
		if u.character.IsAlive() {
			alive[u.team]++
		}
	}

	switch {
	case alive[Players] == 0 && alive[Enemies] == 0:
		b.finish(Draw)
	case alive[Enemies] == 0:
		b.finish(PlayerVictory)
	case alive[Players] == 0:
		b.finish(EnemyVictory)
	}
	return b.result
}

// Run plays rounds until the battle ends.
func (b *Battle) Run(ctx context.Context) (Result, error) {
	for !b.result.Terminal() {
		if b.maxRounds > 0 && b.round >= b.maxRounds {
			b.log.Notice("The battle drags on and both sides withdraw")
			b.finish(Draw)
			break
		}
		if _, err := b.RunRound(ctx); err != nil {
			return b.result, err
		}
	}
	return b.result, nil
}

// RunRound plays one round. Every living user's flag is cleared, then users
// are scanned in order, each scan counting one tick off every user, until
// all living users have moved or the battle is over. Calling it on a
// finished battle does nothing.
func (b *Battle) RunRound(ctx context.Context) (res Result, err error) {
	if b.result.Terminal() {
		return b.result, nil
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("battle aborted after panic",
				"battle_id", b.id,
				"round", b.round,
				"panic", r,
			)
			b.finish(Aborted)
			res, err = b.result, errors.Internalf("battle %s aborted: %v", b.id, r)
		}
	}()

	b.round++
	b.log.SetRound(b.round)
	b.log.Log(combatlog.KindTurn, "", "", "Round %d", b.round)

	for _, u := range b.users {
		u.moved = !u.character.IsAlive()
	}

	for !b.result.Terminal() && !b.allMoved() {
		for _, u := range b.users {
			if b.result.Terminal() {
				break
			}
			if !u.character.IsAlive() {
				u.moved = true
				continue
			}
			if !u.TryMove() {
				continue
			}
			if err := b.takeTurn(ctx, u); err != nil {
				return b.result, err
			}
		}
	}
	return b.result, nil
}

func (b *Battle) allMoved() bool {
	for _, u := range b.users {
		if !u.moved {
			return false
		}
	}
	return true
}

// takeTurn runs one turn of u: the start of turn tick, then choices until
// the user passes, runs out of options or the battle ends.
func (b *Battle) takeTurn(ctx context.Context, u *User) error {
	c := u.character
	b.log.Log(combatlog.KindTurn, c.Name(), "", "%s's turn", c.Name())

	canMove := c.Passives().CanMove()

	c.RegenResource()
	c.Passives().HandleEvent(passive.Event{Kind: passive.PerTurn, Source: c, Target: c})
	c.Passives().TickEffects()
	c.TickModifiers()
	u.tick()
	b.log.Refresh()

	if b.CheckResult().Terminal() || !c.IsAlive() {
		return nil
	}
	if !canMove {
		b.log.Log(combatlog.KindStatus, c.Name(), "", "%s is stunned and cannot act", c.Name())
		return nil
	}

	chooser := b.ai
	if u.team == Players && b.chooser != nil {
		chooser = b.chooser
	}

	for range maxChoicesPerTurn {
		if err := errors.FromContext(ctx); err != nil {
			b.finish(Aborted)
			return err
		}

		act, err := chooser.Choose(ctx, b.request(u))
		if err != nil {
			b.finish(Aborted)
			if ctxErr := errors.FromContext(ctx); ctxErr != nil {
				return ctxErr
			}
			return errors.Wrapf(err, "failed to choose an action for %s", c.GetID())
		}

		switch act.Kind {
		case Escape:
			b.TryEscape(u)
			return nil
		case UseSkill:
			if act.Skill == nil {
				b.log.Notice("%s hesitates", c.Name())
				continue
			}
			out, err := b.resolver.Use(u, b.target(u, act.Target), act.Skill)
			if err != nil {
				b.finish(Aborted)
				return errors.Wrapf(err, "failed to resolve %s for %s", act.Skill.ID, c.GetID())
			}
			b.log.Refresh()
			if b.CheckResult().Terminal() || !c.IsAlive() {
				return nil
			}
			if out.Used && len(b.resolver.Affordable(u)) == 0 {
				return nil
			}
		default:
			b.log.Log(combatlog.KindNotice, c.Name(), "", "%s waits", c.Name())
			return nil
		}
	}
	return nil
}

// target picks a living opponent when the choice has none or a dead one.
func (b *Battle) target(u, chosen *User) *User {
	if chosen != nil && chosen.character.IsAlive() {
		return chosen
	}
	if opp := b.opponents(u); len(opp) > 0 {
		return opp[0]
	}
	return u
}

func (b *Battle) request(u *User) *Request {
	return &Request{
		BattleID:  b.id,
		Round:     b.round,
		User:      u,
		Skills:    b.resolver.Affordable(u),
		Opponents: b.opponents(u),
		CanEscape: b.canEscape && u.team == Players,
	}
}

func (b *Battle) opponents(u *User) []*User {
	var out []*User
	for _, o := range b.users {
		if o.team != u.team && o.character.IsAlive() {
			out = append(out, o)
		}
	}
	return out
}

func (b *Battle) finish(res Result) {
	if b.result.Terminal() {
		return
	}
	b.result = res

	switch res {
	case PlayerVictory:
		b.log.Log(combatlog.KindResult, "", "", "Victory!")
	case EnemyVictory:
		b.log.Log(combatlog.KindResult, "", "", "The party has fallen")
	case Draw:
		b.log.Log(combatlog.KindResult, "", "", "The battle ends in a draw")
	case Aborted:
		b.log.Log(combatlog.KindInternal, "", "", "The battle was aborted")
	}
	b.log.Refresh()
}

// Abort ends an ongoing battle without a winner.
func (b *Battle) Abort() {
	b.finish(Aborted)
}
