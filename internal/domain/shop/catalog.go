package shop

// DefaultCatalog es el surtido inicial de la tienda. IDs estables:
// las compras y los tests referencian por ID.
func DefaultCatalog() []Item {
	return []Item{
		{
			ID:          "dried_fish",
			Name:        "Dried Fish",
			Type:        TypeFood,
			Price:       20,
			EffectType:  EffectEnergy,
			EffectValue: 30,
			Icon:        "🐟",
			Description: "A crunchy snack that restores some energy.",
		},
		{
			ID:          "premium_can",
			Name:        "Premium Can",
			Type:        TypeFood,
			Price:       50,
			EffectType:  EffectEnergy,
			EffectValue: 50,
			Icon:        "🥫",
			Description: "Top-shelf wet food. Energy way up.",
		},
		{
			ID:          "feather_wand",
			Name:        "Feather Wand",
			Type:        TypeToy,
			Price:       30,
			EffectType:  EffectExp,
			EffectValue: 20,
			Icon:        "🪶",
			Description: "Classic chase toy. The kitty learns a lot.",
		},
		{
			ID:          "laser_pointer",
			Name:        "Laser Pointer",
			Type:        TypeToy,
			Price:       60,
			EffectType:  EffectExp,
			EffectValue: 40,
			Icon:        "🔦",
			Description: "The red dot. Irresistible training.",
		},
		{
			ID:          "bow",
			Name:        "Ribbon Bow",
			Type:        TypeDecoration,
			Price:       40,
			EffectType:  EffectAppearance,
			EffectTag:   "bow",
			Icon:        "🎀",
			Description: "A cute bow for the collar.",
		},
		{
			ID:          "sunglasses",
			Name:        "Sunglasses",
			Type:        TypeDecoration,
			Price:       80,
			EffectType:  EffectAppearance,
			EffectTag:   "sunglasses",
			Icon:        "🕶️",
			Description: "Deal with it.",
		},
		{
			ID:          "crown",
			Name:        "Golden Crown",
			Type:        TypeDecoration,
			Price:       150,
			EffectType:  EffectAppearance,
			EffectTag:   "crown",
			Icon:        "👑",
			Description: "For the ruler of the household.",
		},
	}
}
