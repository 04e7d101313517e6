package resolve

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// apply runs one effect of sk with recipient as its target. Effects aimed at
// a dead recipient do nothing.
func (r *Resolver) apply(e skill.Effect, actor, recipient Actor, sk *skill.ActiveSkill) error {
	caster := actor.Character()
	target := recipient.Character()
	if !target.IsAlive() {
		return nil
	}

	switch e := e.(type) {
	case skill.DealDamage:
		r.dealDamage(e, caster, target, sk)

	case skill.HealTarget:
		healed := target.Heal(r.BaseAmount(e.Base, caster, target))
		r.log.Log(combatlog.KindHeal, caster.Name(), target.Name(), "%s recovers %.0f health", target.Name(), healed)

	case skill.BuffStat:
		if st := target.Stat(e.Stat); st != nil {
			st.AddModifier(stats.Modifier{Kind: e.Modifier, Magnitude: e.Magnitude, Source: sk.ID, Duration: e.Duration})
		} else {
			target.Passives().Add(passive.NewTimed(target, sk.ID, passive.StatChange, passive.StatPayload{
				Stat: e.Stat, Kind: e.Modifier, Magnitude: e.Magnitude,
			}, e.Duration, 1))
		}
		r.log.Log(combatlog.KindStatus, caster.Name(), target.Name(), "%s's %s rises", target.Name(), e.Stat)

	case skill.DebuffStat:
		t := passive.NewTimed(target, sk.ID, passive.Debuff, passive.StatPayload{
			Stat: e.Stat, Kind: e.Modifier, Magnitude: -e.Magnitude,
		}, e.Duration, e.Chance)
		r.status.TryAddEffect(target, t, false)

	case skill.DebuffResistance:
		t := passive.NewTimed(target, sk.ID, passive.Debuff, passive.StatPayload{
			Stat: e.Resistance, Kind: stats.Additive, Magnitude: -e.Magnitude,
		}, e.Duration, e.Chance)
		r.status.TryAddEffect(target, t, false)

	case skill.GainShield:
		amount := r.BaseAmount(e.Base, caster, target)
		r.status.TryAddEffect(target, r.status.CreateShield(target, sk.ID, amount, e.Duration), true)

	case skill.RegenResource:
		gained := target.GainResource(r.BaseAmount(e.Base, caster, target))
		r.log.Log(combatlog.KindHeal, caster.Name(), target.Name(), "%s recovers %.0f %s",
			target.Name(), gained, target.ResourceType())

	case skill.TradeHealthForResource:
		spend := math.Min(r.BaseAmount(e.Base, caster, target), target.Health()-1)
		if spend <= 0 {
			r.log.Log(combatlog.KindNotice, target.Name(), "", "%s is too weak to trade health", target.Name())
			return nil
		}
		lost := target.TakeDamage(spend)
		gained := target.GainResource(lost * e.Ratio)
		r.log.Log(combatlog.KindHeal, caster.Name(), target.Name(), "%s trades %.0f health for %.0f %s",
			target.Name(), lost, gained, target.ResourceType())

	case skill.InflictGenericStatusEffect:
		t, err := r.status.CreateStatus(target, sk.ID, e.Status, e.Duration, e.Chance)
		if err != nil {
			return err
		}
		r.status.TryAddEffect(target, t, e.Guaranteed)

	case skill.InflictDoTStatusEffect:
		t, err := r.status.CreateDoT(target, caster, e.Status, e.Strength, e.Duration, e.Chance)
		if err != nil {
			return err
		}
		r.status.TryAddEffect(target, t, false)

	case skill.InflictTimedPassiveEffect:
		source := e.Source
		if source == "" {
			source = sk.ID
		}
		var t *passive.Timed
		if e.From != "" {
			t = passive.NewTimed(target, source, passive.ScaleStat, passive.ScalePayload{
				Stat: e.Stat, From: e.From, Kind: e.Modifier, Factor: e.Magnitude,
			}, e.Duration, e.Chance)
		} else {
			t = passive.NewTimed(target, source, passive.StatChange, passive.StatPayload{
				Stat: e.Stat, Kind: e.Modifier, Magnitude: e.Magnitude,
			}, e.Duration, e.Chance)
		}
		r.status.TryAddEffect(target, t, recipient == actor)

	case skill.ToggleInnatePassiveEffect:
		var payload passive.Payload
		switch e.Type {
		case passive.StatChange:
			payload = passive.StatPayload{Stat: e.Stat, Kind: e.Modifier, Magnitude: e.Magnitude}
		case passive.ScaleStat:
			payload = passive.ScalePayload{Stat: e.Stat, From: e.From, Kind: e.Modifier, Factor: e.Magnitude}
		}
		on := target.Passives().ToggleInnate(passive.NewInnate(target, e.Source, e.Type, payload))
		r.log.Log(combatlog.KindStatus, caster.Name(), target.Name(), "%s %s %s", target.Name(), onOff(on), e.Source)

	case skill.ToggleListenerPassiveEffect:
		l, err := r.listeners.Build(e.Listener, r.env(), target, ListenerParams{Strength: e.Strength, Chance: e.Chance})
		if err != nil {
			return err
		}
		on := target.Passives().ToggleListener(l)
		r.log.Log(combatlog.KindStatus, caster.Name(), target.Name(), "%s %s %s", target.Name(), onOff(on), e.Listener)

	case skill.AdvanceMove:
		if ticks := recipient.AdvanceMove(e.Fraction); ticks > 0 {
			r.log.Log(combatlog.KindStatus, caster.Name(), target.Name(), "%s surges forward", target.Name())
		}

	case skill.ExtendDoT:
		if n := r.status.ExtendDoT(target, e.Status, e.Turns); n > 0 {
			r.log.Log(combatlog.KindStatus, caster.Name(), target.Name(), "%d effects on %s last %d turns longer",
				n, target.Name(), e.Turns)
		}

	case skill.ClearStatusEffect:
		r.status.Clear(target, e.Statuses...)

	default:
		return errors.Internalf("unhandled effect %s", e.Kind())
	}
	return nil
}

func onOff(on bool) string {
	if on {
		return "enters"
	}
	return "leaves"
}
