package agents

import (
	"errors"
	"fmt"
)

// Config holds the tuning for a duck.
type Config struct {
	MoveSpeed float64 // World units per second

	MaxThirst   float64
	MaxHunger   float64
	ThirstDecay float64 // Per second
	HungerDecay float64 // Per second
	Threshold   float64 // Fraction of max at or below which a need is urgent

	ArrivalRadius float64 // Distance to water that counts as reached
	BoundsMargin  float64 // Inset from every world edge

	// A uniform draw above IdleCutoff picks Idle, anything else Wander.
	IdleCutoff    float64
	IdleWaitMin   float64
	IdleWaitMax   float64
	WanderWaitMin float64
	WanderWaitMax float64
}

// DefaultConfig returns the stock duck.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:     50,
		MaxThirst:     100,
		MaxHunger:     100,
		ThirstDecay:   2,
		HungerDecay:   1,
		Threshold:     0.3,
		ArrivalRadius: 20,
		BoundsMargin:  16,
		IdleCutoff:    0.6,
		IdleWaitMin:   1.0,
		IdleWaitMax:   3.0,
		WanderWaitMin: 0.5,
		WanderWaitMax: 2.0,
	}
}

// Validate checks that the tuning can drive a duck.
func (c Config) Validate() error {
	var errs []error
	if !(c.MoveSpeed > 0) {
		errs = append(errs, fmt.Errorf("move speed %v must be positive", c.MoveSpeed))
	}
	if c.MaxThirst <= 0 || c.MaxHunger <= 0 {
		errs = append(errs, errors.New("max thirst and hunger must be positive"))
	}
	if c.ThirstDecay < 0 || c.HungerDecay < 0 {
		errs = append(errs, errors.New("decay rates must not be negative"))
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		errs = append(errs, fmt.Errorf("threshold %v outside [0, 1]", c.Threshold))
	}
	if c.ArrivalRadius <= 0 {
		errs = append(errs, errors.New("arrival radius must be positive"))
	}
	if c.BoundsMargin < 0 {
		errs = append(errs, errors.New("bounds margin must not be negative"))
	}
	if c.IdleWaitMin <= 0 || c.IdleWaitMax < c.IdleWaitMin {
		errs = append(errs, fmt.Errorf("idle wait [%v, %v) is not a positive range", c.IdleWaitMin, c.IdleWaitMax))
	}
	if c.WanderWaitMin <= 0 || c.WanderWaitMax < c.WanderWaitMin {
		errs = append(errs, fmt.Errorf("wander wait [%v, %v) is not a positive range", c.WanderWaitMin, c.WanderWaitMax))
	}
	return errors.Join(errs...)
}
