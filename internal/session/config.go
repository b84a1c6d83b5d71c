package session

import (
	"time"

	"CoinLife/internal/calculator"
	"CoinLife/internal/outcome"
	"CoinLife/internal/price"
)

// Config controls one session.
type Config struct {
	InitialCash       float64
	InitialPrice      float64
	Days              int
	// BankruptThreshold ends the session once the total is at or below it.
	// Non-positive values take the default; config rejects them earlier.
	BankruptThreshold float64
	Frames            int
	FrameInterval     time.Duration
	PathBuffer        int
	// Seed drives every random draw of the session. Zero picks a fresh
	// random seed on every reset.
	Seed int64
}

// DefaultConfig returns the standard seven-day game.
func DefaultConfig() Config {
	return Config{
		InitialCash:       calculator.InitialCapital,
		InitialPrice:      10,
		Days:              7,
		BankruptThreshold: outcome.BankruptThreshold,
		Frames:            price.DefaultFrames,
		PathBuffer:        price.DefaultBufferSize,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.InitialCash <= 0 {
		c.InitialCash = d.InitialCash
	}
	if c.InitialPrice <= 0 {
		c.InitialPrice = d.InitialPrice
	}
	if c.Days <= 0 {
		c.Days = d.Days
	}
	if c.BankruptThreshold <= 0 {
		c.BankruptThreshold = d.BankruptThreshold
	}
	if c.Frames <= 0 {
		c.Frames = d.Frames
	}
	if c.PathBuffer <= 0 {
		c.PathBuffer = d.PathBuffer
	}
	return c
}
