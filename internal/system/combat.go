package system

// ResolveMelee drains TargetedForMelee. Each attacker deals
// max(0, power-defense); a hit is queued as SuffersDamage, a zero is
// logged as a miss. Participants without CombatStats are skipped.
func ResolveMelee(s *State) {
	for _, e := range s.C.TargetedForMelee.Drain() {
		def, ok := s.C.CombatStats.Get(e.ID)
		if !ok {
			continue
		}
		defName := s.C.NameOf(e.ID)
		for _, attacker := range e.Value.By {
			atk, ok := s.C.CombatStats.Get(attacker)
			if !ok {
				continue
			}
			dmg := max(0, atk.Power-def.Defense)
			if dmg > 0 {
				s.Log.Pushf("%s hits %s for %d hp.", s.C.NameOf(attacker), defName, dmg)
				s.C.AddDamage(e.ID, uint32(dmg))
			} else {
				s.Log.Pushf("%s cannot hit %s.", s.C.NameOf(attacker), defName)
			}
		}
	}
}

// ResolveDamage drains SuffersDamage into hp. Entities left at 0 hp or
// below are destroyed.
func ResolveDamage(s *State) {
	for _, e := range s.C.SuffersDamage.Drain() {
		stats := s.C.CombatStats.Ptr(e.ID)
		if stats == nil {
			continue
		}
		stats.HP -= int(e.Value.Damage)
		if stats.HP <= 0 {
			s.Log.Pushf("%s is dead.", s.C.NameOf(e.ID))
			s.logger("damage").WithField("entity", e.ID).Debug("entity died")
			s.World.DestroyEntity(e.ID)
		}
	}
}
