package racers

import "github.com/lox/magsim/internal/engine"

// builders maps each worked archetype to the ability list it's configured
// with at setup. Archetypes absent from this map (Mastermind, FlipFlop)
// carry no abilities and act as plain racers.
var builders = map[engine.RacerName]func() []engine.Ability{
	engine.Centaur:  func() []engine.Ability { return []engine.Ability{CentaurTrample{}} },
	engine.Banana:   func() []engine.Ability { return []engine.Ability{BananaTrip{}} },
	engine.Romantic: func() []engine.Ability { return []engine.Ability{RomanticMove{}} },
	engine.Scoocher: func() []engine.Ability { return []engine.Ability{ScoochStep{}} },
	engine.Blimp:    func() []engine.Ability { return []engine.Ability{BlimpModifierInstaller{}} },
	engine.Sisyphus: func() []engine.Ability { return []engine.Ability{SisyphusCurse{}} },
	engine.Stickler: func() []engine.Ability { return []engine.Ability{SticklerStrictFinish{}} },
	engine.Legs:     func() []engine.Ability { return []engine.Ability{LongLegs{}} },
	engine.Gunk:     func() []engine.Ability { return []engine.Ability{GunkSlimeInstaller{}} },
	engine.Coach:    func() []engine.Ability { return []engine.Ability{CoachBoostManager{}} },
	engine.LovableLoser: func() []engine.Ability {
		return []engine.Ability{LovableLoserBonus{}}
	},
	engine.Lackey:   func() []engine.Ability { return []engine.Ability{LackeyLoyalty{}} },
	engine.Inchworm: func() []engine.Ability { return []engine.Ability{InchwormCreep{}} },
	engine.Skipper:  func() []engine.Ability { return []engine.Ability{SkipperTurn{}} },
}

// Abilities returns fresh ability instances for name, or nil for archetypes
// with no bespoke behavior (Mastermind, FlipFlop, and anything else not in
// the worked set).
func Abilities(name engine.RacerName) []engine.Ability {
	if build, ok := builders[name]; ok {
		return build()
	}
	return nil
}

// Config builds a ready-to-use RacerConfig for name.
func Config(name engine.RacerName) engine.RacerConfig {
	return engine.RacerConfig{Name: name, Abilities: Abilities(name)}
}

// Configs builds RacerConfigs for a whole roster in order.
func Configs(names ...engine.RacerName) []engine.RacerConfig {
	cfgs := make([]engine.RacerConfig, len(names))
	for i, n := range names {
		cfgs[i] = Config(n)
	}
	return cfgs
}
