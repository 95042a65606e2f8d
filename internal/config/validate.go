package config

import "errors"

func (c Config) validate() error {
	if c.BigBlind <= 0 {
		return errors.New("big blind must be greater than zero")
	}

	if c.SmallBlind <= 0 || c.SmallBlind > c.BigBlind {
		return errors.New("small blind must be between zero and the big blind")
	}

	if c.Ante < 0 {
		return errors.New("ante must be >= 0")
	}

	if c.StartingStack < c.BigBlind {
		return errors.New("starting stack must cover the big blind")
	}

	return nil
}
