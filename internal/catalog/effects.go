package catalog

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Effect type tags as written in definition files
const (
	EffectDealDamage             = "deal_damage"
	EffectHeal                   = "heal"
	EffectBuffStat               = "buff_stat"
	EffectDebuffStat             = "debuff_stat"
	EffectDebuffResistance       = "debuff_resistance"
	EffectGainShield             = "gain_shield"
	EffectRegenResource          = "regen_resource"
	EffectTradeHealthForResource = "trade_health_for_resource"
	EffectInflictStatus          = "inflict_status"
	EffectInflictDoT             = "inflict_dot"
	EffectTimedPassive           = "timed_passive"
	EffectToggleInnate           = "toggle_innate"
	EffectToggleListener         = "toggle_listener"
	EffectAdvanceMove            = "advance_move"
	EffectExtendDoT              = "extend_dot"
	EffectClearStatus            = "clear_status"
)

type baseDoc struct {
	Kind     skill.BaseKind `yaml:"kind"`
	Amount   float64        `yaml:"amount"`
	Strength float64        `yaml:"strength"`
}

// effectDoc is the union of every effect's fields. Only the fields of the
// tagged type are read.
type effectDoc struct {
	Type        string               `yaml:"type"`
	On          string               `yaml:"on"`
	Base        *baseDoc             `yaml:"base"`
	DamageType  skill.DamageType     `yaml:"damage_type"`
	CanCrit     bool                 `yaml:"can_crit"`
	AlwaysCrits bool                 `yaml:"always_crits"`
	LifeSteal   float64              `yaml:"life_steal"`
	Stat        stats.Name           `yaml:"stat"`
	From        stats.Name           `yaml:"from"`
	Resistance  stats.Name           `yaml:"resistance"`
	Modifier    string               `yaml:"modifier"`
	Magnitude   float64              `yaml:"magnitude"`
	Duration    int                  `yaml:"duration"`
	Chance      float64              `yaml:"chance"`
	Guaranteed  bool                 `yaml:"guaranteed"`
	Status      passive.EffectType   `yaml:"status"`
	Statuses    []passive.EffectType `yaml:"statuses"`
	Strength    float64              `yaml:"strength"`
	Ratio       float64              `yaml:"ratio"`
	Source      string               `yaml:"source"`
	Passive     passive.EffectType   `yaml:"passive"`
	Listener    string               `yaml:"listener"`
	Fraction    float64              `yaml:"fraction"`
	Turns       int                  `yaml:"turns"`
}

// toEffect converts d into its typed variant. Parameter ranges are left to
// the variant's own Validate.
func (d *effectDoc) toEffect() (skill.Effect, error) {
	on, err := parseTarget(d.On)
	if err != nil {
		return nil, err
	}

	switch d.Type {
	case EffectDealDamage:
		base, err := d.base()
		if err != nil {
			return nil, err
		}
		dt := d.DamageType
		if dt == "" {
			dt = skill.Physical
		}
		return skill.DealDamage{
			On:          on,
			Base:        base,
			Type:        dt,
			CanCrit:     d.CanCrit,
			AlwaysCrits: d.AlwaysCrits,
			LifeSteal:   d.LifeSteal,
		}, nil

	case EffectHeal:
		base, err := d.base()
		if err != nil {
			return nil, err
		}
		return skill.HealTarget{On: on, Base: base}, nil

	case EffectBuffStat:
		kind, err := d.modifier()
		if err != nil {
			return nil, err
		}
		return skill.BuffStat{On: on, Stat: d.Stat, Modifier: kind, Magnitude: d.Magnitude, Duration: d.Duration}, nil

	case EffectDebuffStat:
		kind, err := d.modifier()
		if err != nil {
			return nil, err
		}
		return skill.DebuffStat{
			On:        on,
			Stat:      d.Stat,
			Modifier:  kind,
			Magnitude: d.Magnitude,
			Duration:  d.Duration,
			Chance:    d.chance(),
		}, nil

	case EffectDebuffResistance:
		return skill.DebuffResistance{
			On:         on,
			Resistance: d.Resistance,
			Magnitude:  d.Magnitude,
			Duration:   d.Duration,
			Chance:     d.chance(),
		}, nil

	case EffectGainShield:
		base, err := d.base()
		if err != nil {
			return nil, err
		}
		return skill.GainShield{On: on, Base: base, Duration: d.Duration}, nil

	case EffectRegenResource:
		base, err := d.base()
		if err != nil {
			return nil, err
		}
		return skill.RegenResource{On: on, Base: base}, nil

	case EffectTradeHealthForResource:
		base, err := d.base()
		if err != nil {
			return nil, err
		}
		return skill.TradeHealthForResource{On: on, Base: base, Ratio: d.Ratio}, nil

	case EffectInflictStatus:
		return skill.InflictGenericStatusEffect{
			On:         on,
			Status:     d.Status,
			Duration:   d.Duration,
			Chance:     d.chance(),
			Guaranteed: d.Guaranteed,
		}, nil

	case EffectInflictDoT:
		return skill.InflictDoTStatusEffect{
			On:       on,
			Status:   d.Status,
			Strength: d.Strength,
			Duration: d.Duration,
			Chance:   d.chance(),
		}, nil

	case EffectTimedPassive:
		kind, err := d.modifier()
		if err != nil {
			return nil, err
		}
		return skill.InflictTimedPassiveEffect{
			On:        on,
			Source:    d.Source,
			Stat:      d.Stat,
			From:      d.From,
			Modifier:  kind,
			Magnitude: d.Magnitude,
			Duration:  d.Duration,
			Chance:    d.chance(),
		}, nil

	case EffectToggleInnate:
		kind, err := d.modifier()
		if err != nil {
			return nil, err
		}
		return skill.ToggleInnatePassiveEffect{
			On:        on,
			Source:    d.Source,
			Type:      d.Passive,
			Stat:      d.Stat,
			From:      d.From,
			Modifier:  kind,
			Magnitude: d.Magnitude,
		}, nil

	case EffectToggleListener:
		return skill.ToggleListenerPassiveEffect{On: on, Listener: d.Listener, Strength: d.Strength, Chance: d.Chance}, nil

	case EffectAdvanceMove:
		return skill.AdvanceMove{On: on, Fraction: d.Fraction}, nil

	case EffectExtendDoT:
		return skill.ExtendDoT{On: on, Status: d.Status, Turns: d.Turns}, nil

	case EffectClearStatus:
		return skill.ClearStatusEffect{On: on, Statuses: d.Statuses}, nil

	case "":
		return nil, errors.InvalidArgument("effect type is required")
	}
	return nil, errors.InvalidArgumentf("unknown effect type %q", d.Type)
}

func (d *effectDoc) base() (skill.Base, error) {
	if d.Base == nil {
		return skill.Base{}, errors.InvalidArgumentf("%s needs a base", d.Type)
	}
	strength := d.Base.Strength
	if strength == 0 {
		strength = 1
	}
	return skill.Base{Kind: d.Base.Kind, Amount: d.Base.Amount, Strength: strength}, nil
}

// chance defaults an omitted chance to certain.
func (d *effectDoc) chance() float64 {
	if d.Chance == 0 {
		return 1
	}
	return d.Chance
}

// modifier defaults an omitted modifier kind to additive.
func (d *effectDoc) modifier() (stats.ModifierKind, error) {
	if d.Modifier == "" {
		return stats.Additive, nil
	}
	kind, ok := stats.ParseModifierKind(d.Modifier)
	if !ok {
		return 0, errors.InvalidArgumentf("unknown modifier kind %q", d.Modifier)
	}
	return kind, nil
}

func parseTarget(s string) (skill.Target, error) {
	switch s {
	case "self":
		return skill.Self, nil
	case "enemy", "":
		return skill.Enemy, nil
	}
	return 0, errors.InvalidArgumentf("unknown target %q", s)
}
