package battle

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Loot bags every defeated enemy may drop, each rolled independently.
var lootBags = []struct {
	item   string
	chance float64
}{
	{"supply_bag", 0.3},
	{"weapon_bag", 0.1},
	{"armor_bag", 0.1},
	{"galdurite_bag", 0.05},
}

// dungeonGold scales gold by dungeon type. Unknown types pay 1.
var dungeonGold = map[string]float64{
	"cave":     1,
	"crypt":    1.25,
	"fortress": 1.5,
	"abyss":    2,
}

// MinExperienceFactor floors the level difference factor of experience.
const MinExperienceFactor = 0.1

// ItemDrop is an item and how many of it dropped.
type ItemDrop struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// Rewards is what a victory yields.
type Rewards struct {
	Gold  float64 `json:"gold"`
	Honor float64 `json:"honor"`
	// Experience is keyed by player id.
	Experience map[string]float64 `json:"experience"`
	Items      []ItemDrop         `json:"items,omitempty"`
	Quests     []QuestProgress    `json:"quests,omitempty"`
}

func (r *Rewards) addItem(item string, n int) {
	if n <= 0 {
		n = 1
	}
	for i := range r.Items {
		if r.Items[i].Item == item {
			r.Items[i].Count += n
			return
		}
	}
	r.Items = append(r.Items, ItemDrop{Item: item, Count: n})
}

// Gold returns the gold an enemy of level with baseGold pays at loc.
func Gold(baseGold float64, level int, loc Location) float64 {
	mult, ok := dungeonGold[loc.DungeonType]
	if !ok {
		mult = 1
	}
	return math.Floor(baseGold * (1 + 0.1*float64(level-1)) * (1 + 0.2*float64(loc.DungeonLevel)) * mult)
}

// Experience returns the experience a player of playerLevel earns for an
// enemy of enemyLevel. Weaker enemies pay less, down to
// MinExperienceFactor of the base.
func Experience(baseExperience float64, enemyLevel, playerLevel, dungeonLevel int) float64 {
	factor := math.Max(MinExperienceFactor, 1+0.1*float64(enemyLevel-playerLevel))
	return baseExperience * (1 + 0.1*float64(dungeonLevel)) * factor
}

// Rewards rolls the rewards of a player victory. They are rolled once; later
// calls return the same rewards. A boss whose categories have no drop
// mapping is a NotFound error.
func (b *Battle) Rewards() (*Rewards, error) {
	if b.result != PlayerVictory {
		return nil, errors.FailedPreconditionf("battle %s ended in %s, not a player victory", b.id, b.result)
	}
	if b.rewards != nil {
		return b.rewards, nil
	}

	players := b.Characters(Players)
	avg := averageLevel(players)

	r := &Rewards{Experience: make(map[string]float64, len(players))}
	for _, p := range players {
		r.Experience[p.GetID()] = 0
	}

	for _, e := range b.Characters(Enemies) {
		traits := e.Traits()

		r.Gold += Gold(traits.BaseGold, e.Level(), b.location)
		if float64(e.Level()) >= avg {
			r.Honor++
		}
		for _, p := range players {
			r.Experience[p.GetID()] += Experience(traits.BaseExperience, e.Level(), p.Level(), b.location.DungeonLevel)
		}

		for _, bag := range lootBags {
			if b.dice.Chance(bag.chance) {
				r.addItem(bag.item, 1)
			}
		}
		for _, d := range traits.DropTable {
			if b.dice.Chance(d.Chance) {
				r.addItem(d.Item, d.Count)
			}
		}
		if traits.Boss {
			item, err := b.bossDrop(e)
			if err != nil {
				return nil, err
			}
			r.addItem(item, 1)
		}

		r.Quests = append(r.Quests, QuestProgress{
			Kind:        QuestKill,
			DungeonType: b.location.DungeonType,
			Target:      e.Name(),
		})
	}
	if b.location.Floor > 0 {
		r.Quests = append(r.Quests, QuestProgress{
			Kind:        QuestDescend,
			DungeonType: b.location.DungeonType,
			Floor:       b.location.Floor,
		})
	}

	b.rewards = r
	return r, nil
}

func (b *Battle) bossDrop(e *character.Character) (string, error) {
	for _, cat := range e.Traits().Categories {
		if item, ok := b.bossDrops[cat]; ok {
			return item, nil
		}
	}
	return "", errors.NotFoundf("no boss drop mapped for %s with categories %v", e.GetID(), e.Traits().Categories)
}

// Apply hands r out: gold is split evenly between the players, every player
// gains the honor and its own experience, and items go into inv.
func (r *Rewards) Apply(players []*character.Character, inv resolve.Inventory) error {
	if len(players) == 0 {
		return nil
	}
	share := math.Floor(r.Gold / float64(len(players)))
	for _, p := range players {
		p.AddGold(share)
		p.AddHonor(r.Honor)
		p.AddExperience(r.Experience[p.GetID()])
	}

	if inv == nil {
		return nil
	}
	for _, it := range r.Items {
		if err := inv.Grant(it.Item, it.Count); err != nil {
			return errors.Wrapf(err, "failed to grant %s", it.Item)
		}
	}
	return nil
}
