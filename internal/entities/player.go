package entities

// EquipmentSlot is where an item is worn
type EquipmentSlot string

// Equipment slots
const (
	SlotHead      EquipmentSlot = "head"
	SlotChest     EquipmentSlot = "chest"
	SlotLegs      EquipmentSlot = "legs"
	SlotMainHand  EquipmentSlot = "mainHand"
	SlotOffHand   EquipmentSlot = "offHand"
	SlotAccessory EquipmentSlot = "accessory"
)

// StatsBoost is the flat contribution of an equipped item
type StatsBoost struct {
	Body   int `json:"body,omitempty"`
	Mind   int `json:"mind,omitempty"`
	Reflex int `json:"reflex,omitempty"`
	MaxHP  int `json:"maxHp,omitempty"`
	MaxMP  int `json:"maxMp,omitempty"`
	MaxEP  int `json:"maxEp,omitempty"`
	Speed  int `json:"speed,omitempty"`
}

// Equipment is a wearable item
type Equipment struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Slot       EquipmentSlot `json:"slot"`
	StatsBoost StatsBoost    `json:"statsBoost"`
	Tags       []string      `json:"tags,omitempty"`
	// ScalingFactor is the reflection share for reflective items
	ScalingFactor float64 `json:"scalingFactor,omitempty"`
}

// Inventory holds the player's consumables
type Inventory struct {
	// Stacks maps a stackable consumable ID to the quantity held
	Stacks map[string]int `json:"stacks"`
	// Catalog holds the definitions of stackable consumables
	Catalog map[string]Consumable `json:"catalog"`
	// Items are unique consumables, one entry each
	Items []Consumable `json:"items"`
}

// Player is the single player character
type Player struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Level               int                  `json:"level"`
	XP                  int                  `json:"xp"`
	Gold                int                  `json:"gold"`
	Essence             int                  `json:"essence"`
	StatPoints          int                  `json:"statPoints"`
	Body                int                  `json:"body"`
	Mind                int                  `json:"mind"`
	Reflex              int                  `json:"reflex"`
	HP                  int                  `json:"hp"`
	MP                  int                  `json:"mp"`
	EP                  int                  `json:"ep"`
	ActiveStatusEffects []ActiveStatusEffect `json:"activeStatusEffects"`
	Equipped            []Equipment          `json:"equipped"`
	Spells              []Spell              `json:"spells"`
	PreparedSpellIDs    []string             `json:"preparedSpellIds"`
	Abilities           []Ability            `json:"abilities"`
	Inventory           Inventory            `json:"inventory"`
	Resources           map[string]int       `json:"resources"`
	LootChests          int                  `json:"lootChests"`
	UnlockedFeatures    []string             `json:"unlockedFeatures"`
}

// FindSpell returns the spell with the given ID
func (p *Player) FindSpell(id string) (*Spell, bool) {
	for i := range p.Spells {
		if p.Spells[i].ID == id {
			return &p.Spells[i], true
		}
	}
	return nil, false
}

// FindAbility returns the ability with the given ID
func (p *Player) FindAbility(id string) (*Ability, bool) {
	for i := range p.Abilities {
		if p.Abilities[i].ID == id {
			return &p.Abilities[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.ActiveStatusEffects = cloneEffects(p.ActiveStatusEffects)
	if p.Equipped != nil {
		out.Equipped = make([]Equipment, len(p.Equipped))
		for i, eq := range p.Equipped {
			eq.Tags = append([]string(nil), eq.Tags...)
			out.Equipped[i] = eq
		}
	}
	if p.Spells != nil {
		out.Spells = make([]Spell, len(p.Spells))
		for i, s := range p.Spells {
			s.Tags = append([]TagName(nil), s.Tags...)
			if s.StatusEffectInflict != nil {
				inflict := *s.StatusEffectInflict
				s.StatusEffectInflict = &inflict
			}
			out.Spells[i] = s
		}
	}
	out.PreparedSpellIDs = append([]string(nil), p.PreparedSpellIDs...)
	if p.Abilities != nil {
		out.Abilities = make([]Ability, len(p.Abilities))
		for i, a := range p.Abilities {
			a.Tags = append([]TagName(nil), a.Tags...)
			a.ResourceCosts = append([]ResourceCost(nil), a.ResourceCosts...)
			a.Effect.Cures = append([]StatusEffectName(nil), a.Effect.Cures...)
			out.Abilities[i] = a
		}
	}
	out.Inventory = Inventory{
		Stacks:  cloneIntMap(p.Inventory.Stacks),
		Catalog: nil,
		Items:   append([]Consumable(nil), p.Inventory.Items...),
	}
	if p.Inventory.Catalog != nil {
		out.Inventory.Catalog = make(map[string]Consumable, len(p.Inventory.Catalog))
		for k, v := range p.Inventory.Catalog {
			out.Inventory.Catalog[k] = v
		}
	}
	out.Resources = cloneIntMap(p.Resources)
	out.UnlockedFeatures = append([]string(nil), p.UnlockedFeatures...)
	return &out
}

func cloneIntMap(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
