package battle

//go:generate mockgen -destination=mock/mock_battle.go -package=battlemock github.com/KirkDiggler/rpg-battle/internal/engine/battle Chooser,QuestNotifier,EnemyFactory

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
)

// ActionKind selects what a user does with its turn.
type ActionKind int

// Action kinds
const (
	// Pass ends the turn.
	Pass ActionKind = iota
	// UseSkill uses Skill against Target.
	UseSkill
	// Escape tries to flee the battle.
	Escape
)

// Action is a choice made for a user's turn.
type Action struct {
	Kind   ActionKind
	Skill  *skill.ActiveSkill
	Target *User
}

// Request describes the decision a Chooser is asked to make.
type Request struct {
	BattleID string
	Round    int
	User     *User
	// Skills holds the skills the user can afford right now.
	Skills []*skill.ActiveSkill
	// Opponents holds the living users of the other team.
	Opponents []*User
	CanEscape bool
}

// Chooser picks the action for a user's turn. Choose blocks until a choice
// is made or ctx is done.
type Chooser interface {
	Choose(ctx context.Context, req *Request) (Action, error)
}

// QuestProgressKind tags a quest progress note.
type QuestProgressKind string

// Quest progress kinds
const (
	QuestKill    QuestProgressKind = "kill"
	QuestDescend QuestProgressKind = "descend"
)

// QuestProgress is an opaque progress note for the quest system.
type QuestProgress struct {
	Kind        QuestProgressKind `json:"kind"`
	DungeonType string            `json:"dungeon_type"`
	// Target is the defeated enemy's name for kills.
	Target string `json:"target,omitempty"`
	// Floor is the floor reached for descents.
	Floor int `json:"floor,omitempty"`
}

// QuestNotifier receives quest progress after a victory.
type QuestNotifier interface {
	Notify(ctx context.Context, progress []QuestProgress) error
}

// EnemyFactory builds ready-to-fight enemies.
type EnemyFactory interface {
	NewEnemy(ctx context.Context, id string, level int) (*character.Character, error)
}
