package entities

// TagName is a capability modifier attached to a spell or ability
type TagName string

// Targeting tags
const (
	TagSingleTarget TagName = "SingleTarget"
	TagMultiTarget  TagName = "MultiTarget"
	TagAreaOfEffect TagName = "AreaOfEffect"
	TagGlobalTarget TagName = "GlobalTarget"
	TagRandomTarget TagName = "RandomTarget"
	TagChain        TagName = "Chain"
	TagSelfTarget   TagName = "SelfTarget"
)

// Damage modifier tags
const (
	TagCritical      TagName = "Critical"
	TagOverwhelming  TagName = "Overwhelming"
	TagEmpowerment   TagName = "Empowerment"
	TagSynergy       TagName = "Synergy"
	TagBrutal        TagName = "Brutal"
	TagDevastating   TagName = "Devastating"
	TagRamping       TagName = "Ramping"
	TagResonance     TagName = "Resonance"
	TagPenetrating   TagName = "Penetrating"
	TagArmorIgnoring TagName = "Armor_Ignoring"
	TagTrueDamage    TagName = "True_Damage"
	TagPiercing      TagName = "Piercing"
)

// Cost tags
const (
	TagReducedCost TagName = "Reduced_Cost"
	TagFreeCast    TagName = "Free_Cast"
	TagBloodMagic  TagName = "Blood_Magic"
)

// Sustain and utility tags
const (
	TagLifesteal TagName = "Lifesteal"
	TagVampiric  TagName = "Vampiric"
	TagHealing   TagName = "Healing"
	TagShield    TagName = "Shield"
	// TagSilence marks an ability that needs a voice; Silenced blocks it
	TagSilence TagName = "Silence"
)

// Elemental tags
const (
	TagFire      TagName = "Fire"
	TagIce       TagName = "Ice"
	TagLightning TagName = "Lightning"
	TagWater     TagName = "Water"
	TagEarth     TagName = "Earth"
	TagAir       TagName = "Air"
	TagLight     TagName = "Light"
	TagDark      TagName = "Dark"
	TagPoison    TagName = "Poison"
	TagArcane    TagName = "Arcane"
	TagNature    TagName = "Nature"
	TagPsychic   TagName = "Psychic"
)

// HasTag reports whether tags contains tag
func HasTag(tags []TagName, tag TagName) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
