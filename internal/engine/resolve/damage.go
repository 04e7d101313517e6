package resolve

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// BaseAmount resolves a damage base selector to Strength times the selected
// quantity.
func (r *Resolver) BaseAmount(b skill.Base, caster, target *character.Character) float64 {
	var v float64
	switch b.Kind {
	case skill.Flat:
		v = b.Amount
	case skill.Minimal:
		v = caster.StatValue(stats.MinAttack)
	case skill.Maximal:
		v = caster.StatValue(stats.MaxAttack)
	case skill.Random:
		v = r.dice.Between(caster.StatValue(stats.MinAttack), caster.StatValue(stats.MaxAttack))
	case skill.CasterMaxHealth:
		v = caster.MaxHealth()
	case skill.TargetMaxHealth:
		v = target.MaxHealth()
	case skill.CasterCurrentHealth:
		v = caster.Health()
	case skill.TargetCurrentHealth:
		v = target.Health()
	case skill.CasterMissingHealth:
		v = caster.MissingHealth()
	case skill.TargetMissingHealth:
		v = target.MissingHealth()
	}
	return v * b.Strength
}

// DamageDealt runs raw damage through the attacker's damage pools: the
// general pool, the pool of the damage type, and the pool of the target's
// first monster category that has one.
func DamageDealt(attacker, target *character.Character, typ skill.DamageType, dmg float64) float64 {
	dmg = attacker.PoolValue(stats.DamageDealtMod, dmg)

	switch typ {
	case skill.Physical:
		dmg = attacker.PoolValue(stats.PhysicalDamageDealtMod, dmg)
	case skill.Magic:
		dmg = attacker.PoolValue(stats.MagicDamageDealtMod, dmg)
	}

	if target.Kind() == character.Enemy {
		for _, cat := range target.Traits().Categories {
			if pool, ok := cat.DamagePool(); ok {
				dmg = attacker.PoolValue(pool, dmg)
				break
			}
		}
	}
	return dmg
}

// Mitigate applies the target's defense for typ. True damage is unchanged;
// negative defense counts as zero.
func Mitigate(target *character.Character, typ skill.DamageType, dmg float64) float64 {
	var def float64
	switch typ {
	case skill.Physical:
		def = target.StatValue(stats.PhysicalDefense)
	case skill.Magic:
		def = target.StatValue(stats.MagicDefense)
	default:
		return dmg
	}
	def = math.Max(0, def)
	return dmg * 100 / (100 + def)
}

// rollCrit reports whether a hit crits. A crit the target saves against
// through its CritSaveChance pool is negated.
func (r *Resolver) rollCrit(e skill.DealDamage, caster, target *character.Character) bool {
	crit := e.AlwaysCrits || (e.CanCrit && r.dice.Percent(caster.StatValue(stats.CritChance)))
	if !crit {
		return false
	}
	if r.dice.Percent(target.PoolValue(stats.CritSaveChance, 0)) {
		r.log.Log(combatlog.KindNotice, target.Name(), caster.Name(), "%s shrugs off the critical hit", target.Name())
		return false
	}
	return true
}

func (r *Resolver) dealDamage(e skill.DealDamage, caster, target *character.Character, sk *skill.ActiveSkill) {
	dmg := r.BaseAmount(e.Base, caster, target)
	dmg = DamageDealt(caster, target, e.Type, dmg)

	crit := r.rollCrit(e, caster, target)
	if crit {
		dmg *= caster.StatValue(stats.CritMod)
	}
	dmg = math.Max(0, Mitigate(target, e.Type, dmg))

	absorbed, dealt := r.status.Damage(target, dmg)

	switch {
	case crit:
		r.log.Log(combatlog.KindDamage, caster.Name(), target.Name(), "Critical hit! %s takes %.0f damage", target.Name(), dealt)
	default:
		r.log.Log(combatlog.KindDamage, caster.Name(), target.Name(), "%s takes %.0f damage", target.Name(), dealt)
	}
	if absorbed > 0 {
		r.log.Log(combatlog.KindDamage, caster.Name(), target.Name(), "%s's shield absorbs %.0f damage", target.Name(), absorbed)
	}

	if e.LifeSteal > 0 && dealt > 0 {
		if healed := caster.Heal(dmg * e.LifeSteal); healed > 0 {
			r.log.Log(combatlog.KindHeal, caster.Name(), caster.Name(), "%s drains %.0f health", caster.Name(), healed)
		}
	}

	caster.Passives().HandleEvent(passive.Event{Kind: passive.DamageDealt, Source: caster, Target: target, Skill: sk.ID, Amount: dealt})
	target.Passives().HandleEvent(passive.Event{Kind: passive.DamageTaken, Source: caster, Target: target, Skill: sk.ID, Amount: dealt})

	if !target.IsAlive() {
		r.log.Log(combatlog.KindDefeat, caster.Name(), target.Name(), "%s has been defeated", target.Name())
	}
}
