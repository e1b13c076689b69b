package config

import (
	"github.com/groupsa/groupsa/anneal"
	"github.com/groupsa/groupsa/driver"
)

// ToDriverParams translates the loaded SAConfig into a driver.Params ready
// to pass to driver.Run.
func (cfg SAConfig) ToDriverParams() driver.Params {
	return driver.Params{
		Anneal: anneal.Params{
			InitialTemp:    cfg.InitialTemp,
			CoolingRate:    cfg.CoolingRate,
			MinTemp:        cfg.MinTemp,
			MaxIterations:  cfg.MaxIterations,
			StagnationCap:  cfg.StagnationThreshold,
			ProgressStride: cfg.ProgressStride,
			MoveSwapProb:   anneal.Default().MoveSwapProb,
			MoveRandomProb: anneal.Default().MoveRandomProb,
		},
		NumRestarts:          cfg.NumRestarts,
		UseCurrentAssignment: cfg.UseCurrentAssignment,
		ReturnAllResults:     cfg.ReturnAllResults,
		Seed:                 cfg.Seed,
	}
}
