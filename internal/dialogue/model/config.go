package model

// ================ Config ================

// SessionConfig controls session lifetime. TTL and SweepInterval are duration
// strings parsed by the owner (time.ParseDuration), matching how the rest of
// the service reads durations from the environment.
type SessionConfig struct {
	TTL           string `envconfig:"SESSION_TTL" default:"30m"`
	SweepInterval string `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
	AnonymousID   string `envconfig:"SESSION_ANONYMOUS_ID" default:"anonymous"`
}

// EngineConfig tunes the dialogue engine itself.
type EngineConfig struct {
	RestaurantName string `envconfig:"ENGINE_RESTAURANT_NAME" default:"AI Pizza Palace"`
	// KnowledgeLimit is how many entries a knowledge query retrieves; the first
	// is the answer, any second one is surfaced as a related pointer.
	KnowledgeLimit int `envconfig:"ENGINE_KB_SEARCH_LIMIT" default:"2"`
}
