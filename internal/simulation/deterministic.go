package simulation

import (
	"time"
)

// seedFunc returns a pseudo-random seed (override for deterministic Monte Carlo tests).
var seedFunc = func() uint64 { return uint64(time.Now().UnixNano()) }

// SetSeedFunc allows tests to inject a deterministic seed source.
func SetSeedFunc(f func() uint64) { seedFunc = f }

// resolveSeed never returns 0 so a resolved seed can be reported and replayed.
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	if s := seedFunc(); s != 0 {
		return s
	}
	return 1
}

// streamSeed derives an independent seed for one batch with the splitmix64 finalizer.
func streamSeed(seed uint64, stream int) uint64 {
	z := seed + uint64(stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
