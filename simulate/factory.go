package simulate

import "github.com/arboscape/hoot/env"

// EnvConstructor builds a fresh environment instance, optionally seeded
// and hinted to clip its rewards into [0,1].
type EnvConstructor func(seed *int64, clipReward bool) (env.Environment, error)

// EnvFactory resolves an environment identifier to its constructor,
// mirroring the reference implementation's name-to-constructor table.
type EnvFactory map[string]EnvConstructor

// factories is the process-wide registry concrete environments add
// themselves to via Register, at init time.
var factories = make(EnvFactory)

// Register adds name to the environment factory. Concrete environment
// packages call this from an init function; calling it twice for the
// same name overwrites the previous entry.
func Register(name string, ctor EnvConstructor) {
	factories[name] = ctor
}

// Factories returns a copy of the current environment factory registry.
func Factories() EnvFactory {
	cp := make(EnvFactory, len(factories))
	for k, v := range factories {
		cp[k] = v
	}
	return cp
}
