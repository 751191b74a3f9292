package agents

// Needs tracks the decaying thirst and hunger of a duck.
// Both stay within [0, max]: decay clamps at 0, replenishment at max.
type Needs struct {
	Thirst      float64 `json:"thirst"`
	Hunger      float64 `json:"hunger"`
	MaxThirst   float64 `json:"max_thirst"`
	MaxHunger   float64 `json:"max_hunger"`
	ThirstDecay float64 `json:"thirst_decay"` // Per second
	HungerDecay float64 `json:"hunger_decay"` // Per second
	Threshold   float64 `json:"threshold"`    // Urgency fraction of max
}

// NewNeeds returns fully satisfied needs for cfg.
func NewNeeds(cfg Config) Needs {
	return Needs{
		Thirst:      cfg.MaxThirst,
		Hunger:      cfg.MaxHunger,
		MaxThirst:   cfg.MaxThirst,
		MaxHunger:   cfg.MaxHunger,
		ThirstDecay: cfg.ThirstDecay,
		HungerDecay: cfg.HungerDecay,
		Threshold:   cfg.Threshold,
	}
}

// Decay applies dt seconds of need loss.
func (n *Needs) Decay(dt float64) {
	if dt <= 0 {
		return
	}
	n.Thirst = clamp(n.Thirst-n.ThirstDecay*dt, 0, n.MaxThirst)
	n.Hunger = clamp(n.Hunger-n.HungerDecay*dt, 0, n.MaxHunger)
}

// Drink restores thirst by amount.
func (n *Needs) Drink(amount float64) {
	n.Thirst = clamp(n.Thirst+amount, 0, n.MaxThirst)
}

// Feed restores hunger by amount.
func (n *Needs) Feed(amount float64) {
	n.Hunger = clamp(n.Hunger+amount, 0, n.MaxHunger)
}

// Quench fills thirst to the max.
func (n *Needs) Quench() {
	n.Thirst = n.MaxThirst
}

// ThirstFraction returns thirst as a fraction of max, for UI bars.
func (n Needs) ThirstFraction() float64 {
	return n.Thirst / n.MaxThirst
}

// HungerFraction returns hunger as a fraction of max, for UI bars.
func (n Needs) HungerFraction() float64 {
	return n.Hunger / n.MaxHunger
}

// Thirsty reports whether thirst is at or below the urgency threshold.
func (n Needs) Thirsty() bool {
	return n.Thirst <= n.Threshold*n.MaxThirst
}

// Hungry reports whether hunger is at or below the urgency threshold.
func (n Needs) Hungry() bool {
	return n.Hunger <= n.Threshold*n.MaxHunger
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
