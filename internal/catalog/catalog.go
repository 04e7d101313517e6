// Package catalog loads skill, class and enemy definitions from YAML and
// builds characters from them. A default catalog is embedded in the binary.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// DefaultSkillAccuracy is used for skills that do not set an accuracy.
const DefaultSkillAccuracy = 100

//go:embed data/default.yaml
var defaultYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

type document struct {
	Skills    []skillDoc                    `yaml:"skills"`
	Classes   []templateDoc                 `yaml:"classes"`
	Enemies   []templateDoc                 `yaml:"enemies"`
	BossDrops map[character.Category]string `yaml:"boss_drops"`
}

type skillDoc struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"name"`
	ResourceCost float64         `yaml:"resource_cost"`
	ActionCost   float64         `yaml:"action_cost"`
	AlwaysHits   bool            `yaml:"always_hits"`
	Accuracy     float64         `yaml:"accuracy"`
	HitCount     int             `yaml:"hit_count"`
	ItemCost     *skill.ItemCost `yaml:"item_cost"`
	Effects      []effectDoc     `yaml:"effects"`
}

type templateDoc struct {
	ID             string                            `yaml:"id"`
	Name           string                            `yaml:"name"`
	Resource       character.ResourceType            `yaml:"resource"`
	Skills         []string                          `yaml:"skills"`
	Listeners      []character.ListenerSpec          `yaml:"listeners"`
	Stats          map[stats.Name]character.StatSpec `yaml:"stats"`
	Resistances    map[stats.Name]float64            `yaml:"resistances"`
	Categories     []character.Category              `yaml:"categories"`
	Boss           bool                              `yaml:"boss"`
	BaseExperience float64                           `yaml:"base_experience"`
	BaseGold       float64                           `yaml:"base_gold"`
	Drops          []character.Drop                  `yaml:"drops"`
}

// Template is a validated class or enemy definition. Characters built from
// it share its skill templates.
type Template struct {
	ID          string
	Name        string
	Kind        character.Kind
	Resource    character.ResourceType
	Skills      []*skill.ActiveSkill
	Listeners   []character.ListenerSpec
	Stats       map[stats.Name]character.StatSpec
	Resistances map[stats.Name]float64
	// Enemy is nil for player classes.
	Enemy *character.EnemyTraits
}

// Config returns a character config for this template at level.
func (t *Template) Config(id, name string, level int) *character.Config {
	if name == "" {
		name = t.Name
	}
	cfg := &character.Config{
		ID:           id,
		Name:         name,
		Kind:         t.Kind,
		Level:        level,
		Class:        t.ID,
		ResourceType: t.Resource,
		Stats:        t.Stats,
		Resistances:  t.Resistances,
		Skills:       t.Skills,
		Listeners:    t.Listeners,
	}
	if t.Enemy != nil {
		traits := *t.Enemy
		traits.Categories = append([]character.Category(nil), t.Enemy.Categories...)
		traits.DropTable = append([]character.Drop(nil), t.Enemy.DropTable...)
		cfg.Enemy = &traits
	}
	return cfg
}

// Catalog is a read-only set of definitions. It is safe for concurrent use.
type Catalog struct {
	skills    map[string]*skill.ActiveSkill
	classes   map[string]*Template
	enemies   map[string]*Template
	bossDrops map[character.Category]string
}

// Default returns the embedded catalog. It is parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(defaultYAML)
	})
	return defaultCatalog, defaultErr
}

// Open loads the catalog at path, or the embedded one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s does not exist", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	c, err := Load(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

// Load parses a YAML catalog. Every skill, class and enemy is validated and
// any problem is reported as InvalidArgument.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	c := &Catalog{
		skills:    make(map[string]*skill.ActiveSkill, len(doc.Skills)),
		classes:   make(map[string]*Template, len(doc.Classes)),
		enemies:   make(map[string]*Template, len(doc.Enemies)),
		bossDrops: make(map[character.Category]string, len(doc.BossDrops)),
	}

	vb := errors.NewValidationBuilder()
	for i := range doc.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		sk, err := doc.Skills[i].toSkill()
		if err != nil {
			vb.Nested(field, err)
			continue
		}
		if _, ok := c.skills[sk.ID]; ok {
			vb.InvalidField(field, fmt.Sprintf("duplicate skill %q", sk.ID))
			continue
		}
		c.skills[sk.ID] = sk
	}
	for i := range doc.Classes {
		c.addTemplate(vb, fmt.Sprintf("classes[%d]", i), &doc.Classes[i], character.Player, c.classes)
	}
	for i := range doc.Enemies {
		c.addTemplate(vb, fmt.Sprintf("enemies[%d]", i), &doc.Enemies[i], character.Enemy, c.enemies)
	}
	for cat, item := range doc.BossDrops {
		if _, ok := cat.DamagePool(); !ok {
			vb.InvalidField("boss_drops", fmt.Sprintf("unknown category %q", cat))
			continue
		}
		errors.ValidateRequired(fmt.Sprintf("boss_drops.%s", cat), item, vb)
		c.bossDrops[cat] = item
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *skillDoc) toSkill() (*skill.ActiveSkill, error) {
	hits := d.HitCount
	if hits == 0 {
		hits = 1
	}
	accuracy := d.Accuracy
	if accuracy == 0 {
		accuracy = DefaultSkillAccuracy
	}
	sk := &skill.ActiveSkill{
		ID:           d.ID,
		Name:         d.Name,
		ResourceCost: d.ResourceCost,
		ActionCost:   d.ActionCost,
		AlwaysHits:   d.AlwaysHits,
		Accuracy:     accuracy,
		HitCount:     hits,
		ItemCost:     d.ItemCost,
	}

	vb := errors.NewValidationBuilder()
	for i := range d.Effects {
		e, err := d.Effects[i].toEffect()
		if err != nil {
			vb.Nested(fmt.Sprintf("effects[%d]", i), err)
			continue
		}
		sk.Effects = append(sk.Effects, e)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	// Every skill spends action points so a turn always ends.
	if sk.ActionCost <= 0 {
		return nil, errors.NewValidationBuilder().Field("action_cost", "must be positive").Build()
	}
	if err := sk.Validate(); err != nil {
		return nil, err
	}
	return sk, nil
}

func (c *Catalog) addTemplate(vb *errors.ValidationBuilder, field string, d *templateDoc, kind character.Kind, into map[string]*Template) {
	if d.ID == "" {
		vb.RequiredField(field + ".id")
		return
	}
	if _, ok := into[d.ID]; ok {
		vb.InvalidField(field, fmt.Sprintf("duplicate %s %q", kind, d.ID))
		return
	}

	t := &Template{
		ID:          d.ID,
		Name:        d.Name,
		Kind:        kind,
		Resource:    d.Resource,
		Listeners:   d.Listeners,
		Stats:       d.Stats,
		Resistances: d.Resistances,
	}
	if t.Resource == "" {
		t.Resource = character.Mana
	}
	for _, id := range d.Skills {
		sk, ok := c.skills[id]
		if !ok {
			vb.InvalidField(field+".skills", fmt.Sprintf("unknown skill %q", id))
			continue
		}
		t.Skills = append(t.Skills, sk)
	}
	if kind == character.Enemy {
		t.Enemy = &character.EnemyTraits{
			Categories:     d.Categories,
			Boss:           d.Boss,
			DropTable:      d.Drops,
			BaseExperience: d.BaseExperience,
			BaseGold:       d.BaseGold,
		}
		for _, cat := range d.Categories {
			if _, ok := cat.DamagePool(); !ok {
				vb.InvalidField(field+".categories", fmt.Sprintf("unknown category %q", cat))
			}
		}
		for i, drop := range d.Drops {
			errors.ValidateRequired(fmt.Sprintf("%s.drops[%d].item", field, i), drop.Item, vb)
			errors.ValidateProbability(fmt.Sprintf("%s.drops[%d].chance", field, i), drop.Chance, vb)
		}
	}

	// A level 1 build checks stats, resistances and slots the same way
	// characters will be checked later.
	vb.Nested(field, t.Config(d.ID, "", 1).Validate())
	into[d.ID] = t
}

// CheckListeners verifies that every listener named by a class, an enemy or
// a toggle effect is registered in reg.
func (c *Catalog) CheckListeners(reg *resolve.Registry) error {
	vb := errors.NewValidationBuilder()
	check := func(field, name string) {
		if !reg.Has(name) {
			vb.InvalidField(field, fmt.Sprintf("listener %q is not registered", name))
		}
	}
	for _, id := range sortedKeys(c.skills) {
		for i, e := range c.skills[id].Effects {
			if t, ok := e.(skill.ToggleListenerPassiveEffect); ok {
				check(fmt.Sprintf("skills.%s.effects[%d]", id, i), t.Listener)
			}
		}
	}
	for kind, templates := range map[string]map[string]*Template{"classes": c.classes, "enemies": c.enemies} {
		for _, id := range sortedKeys(templates) {
			for _, l := range templates[id].Listeners {
				check(fmt.Sprintf("%s.%s.listeners", kind, id), l.Name)
			}
		}
	}
	return vb.Build()
}

// Skill returns the skill template with id.
func (c *Catalog) Skill(id string) (*skill.ActiveSkill, error) {
	sk, ok := c.skills[id]
	if !ok {
		return nil, errors.NotFoundf("skill %q not found", id)
	}
	return sk, nil
}

// Class returns the player class with id.
func (c *Catalog) Class(id string) (*Template, error) {
	t, ok := c.classes[id]
	if !ok {
		return nil, errors.NotFoundf("class %q not found", id)
	}
	return t, nil
}

// Enemy returns the enemy template with id.
func (c *Catalog) Enemy(id string) (*Template, error) {
	t, ok := c.enemies[id]
	if !ok {
		return nil, errors.NotFoundf("enemy %q not found", id)
	}
	return t, nil
}

// SkillIDs lists skill ids in sorted order.
func (c *Catalog) SkillIDs() []string { return sortedKeys(c.skills) }

// ClassIDs lists class ids in sorted order.
func (c *Catalog) ClassIDs() []string { return sortedKeys(c.classes) }

// EnemyIDs lists enemy ids in sorted order.
func (c *Catalog) EnemyIDs() []string { return sortedKeys(c.enemies) }

// BossDrops returns a copy of the category to boss drop mapping.
func (c *Catalog) BossDrops() map[character.Category]string {
	out := make(map[character.Category]string, len(c.bossDrops))
	for k, v := range c.bossDrops {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
