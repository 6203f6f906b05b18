package pet

// ApplyLeveling es el evaluador de nivel: la única regla de level-up
// del sistema. Se invoca después de cada mutación, desde el punto de
// entrada compartido de actualización, nunca inline en los handlers.
// Es idempotente: re-ejecutarlo sobre un registro ya nivelado no hace nada.
func ApplyLeveling(p *Pet) {
	if p.Exp >= ExpForAdult && p.Level == LevelKitten {
		p.Level = LevelAdult
	}
	if p.Exp >= ExpForSenior && p.Level == LevelAdult {
		p.Level = LevelSenior
	}
}

// clampBounds aplica las cotas de los campos acotados.
// Corre en cada escritura, antes de persistir.
func clampBounds(p *Pet) {
	if p.Energy < EnergyMin {
		p.Energy = EnergyMin
	}
	if p.Energy > EnergyMax {
		p.Energy = EnergyMax
	}
	if p.FurQuality < FurMin {
		p.FurQuality = FurMin
	}
	if p.FurQuality > FurMax {
		p.FurQuality = FurMax
	}
	if p.Weight < WeightMin {
		p.Weight = WeightMin
	}
	if p.Coins < 0 {
		p.Coins = 0
	}
	if p.Exp < 0 {
		p.Exp = 0
	}
}
