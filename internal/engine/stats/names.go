package stats

// Name identifies a stat or a modifier pool. Pools (DamageDealtMod,
// HitChanceMod, ...) have no base value of their own; they only collect
// modifiers that other calculations fold in.
type Name string

// Character stats
const (
	MaxHealth       Name = "MaxHealth"
	MinAttack       Name = "MinAttack"
	MaxAttack       Name = "MaxAttack"
	CritChance      Name = "CritChance"
	CritMod         Name = "CritMod"
	Dodge           Name = "Dodge"
	PhysicalDefense Name = "PhysicalDefense"
	MagicDefense    Name = "MagicDefense"
	Speed           Name = "Speed"
	Accuracy        Name = "Accuracy"
	MaxResource     Name = "MaxResource"
	ResourceRegen   Name = "ResourceRegen"
	MaxActionPoints Name = "MaxActionPoints"
)

// Resistance stats
const (
	StunResistance   Name = "StunResistance"
	FreezeResistance Name = "FreezeResistance"
	SleepResistance  Name = "SleepResistance"
	BleedResistance  Name = "BleedResistance"
	PoisonResistance Name = "PoisonResistance"
	BurnResistance   Name = "BurnResistance"
	DebuffResistance Name = "DebuffResistance"
)

// Modifier pools
const (
	TotalDefense             Name = "TotalDefense"
	TotalResistanceMod       Name = "TotalResistanceMod"
	DoTResistanceMod         Name = "DoTResistanceMod"
	SuppressionResistanceMod Name = "SuppressionResistanceMod"
	DebuffResistanceMod      Name = "DebuffResistanceMod"

	ResourceCost           Name = "ResourceCost"
	HitChanceMod           Name = "HitChanceMod"
	CritSaveChance         Name = "CritSaveChance"
	DamageDealtMod         Name = "DamageDealtMod"
	PhysicalDamageDealtMod Name = "PhysicalDamageDealtMod"
	MagicDamageDealtMod    Name = "MagicDamageDealtMod"
	UndeadDamageDealtMod   Name = "UndeadDamageDealtMod"
	BeastDamageDealtMod    Name = "BeastDamageDealtMod"
	HumanDamageDealtMod    Name = "HumanDamageDealtMod"
	DemonDamageDealtMod    Name = "DemonDamageDealtMod"
)

// BaseStats lists the stats every character carries.
var BaseStats = []Name{
	MaxHealth, MinAttack, MaxAttack, CritChance, CritMod, Dodge,
	PhysicalDefense, MagicDefense, Speed, Accuracy, MaxResource, ResourceRegen,
}

// Resistances lists the resistance stats every character carries.
var Resistances = []Name{
	StunResistance, FreezeResistance, SleepResistance,
	BleedResistance, PoisonResistance, BurnResistance, DebuffResistance,
}

// families maps a stat to the bonus pools it also pulls when evaluated.
var families = map[Name][]Name{
	PhysicalDefense: {TotalDefense},
	MagicDefense:    {TotalDefense},

	StunResistance:   {TotalResistanceMod, SuppressionResistanceMod},
	FreezeResistance: {TotalResistanceMod, SuppressionResistanceMod},
	SleepResistance:  {TotalResistanceMod, SuppressionResistanceMod},
	BleedResistance:  {TotalResistanceMod, DoTResistanceMod},
	PoisonResistance: {TotalResistanceMod, DoTResistanceMod},
	BurnResistance:   {TotalResistanceMod, DoTResistanceMod},
	DebuffResistance: {TotalResistanceMod, DebuffResistanceMod},
}

// Families returns the bonus pools name pulls in addition to its own
// modifiers. The returned slice must not be modified.
func Families(name Name) []Name {
	return families[name]
}

// Known reports whether name is a stat or pool this package defines.
func Known(name Name) bool {
	for _, n := range BaseStats {
		if n == name {
			return true
		}
	}
	for _, n := range Resistances {
		if n == name {
			return true
		}
	}
	switch name {
	case MaxActionPoints, TotalDefense, TotalResistanceMod, DoTResistanceMod,
		SuppressionResistanceMod, DebuffResistanceMod, ResourceCost, HitChanceMod,
		CritSaveChance, DamageDealtMod, PhysicalDamageDealtMod, MagicDamageDealtMod,
		UndeadDamageDealtMod, BeastDamageDealtMod, HumanDamageDealtMod, DemonDamageDealtMod:
		return true
	}
	return false
}
