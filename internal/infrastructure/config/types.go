package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Navigation NavigationConfig `json:"navigation"`
	Combat     CombatConfig     `json:"combat"`
	Projectile ProjectileRules  `json:"projectile"`
	Feedback   FeedbackConfig   `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// NavigationConfig configures the pathfinding grid shared by all enemies
type NavigationConfig struct {
	TileSize      int     `json:"tileSize"`
	ArrivalRadius float64 `json:"arrivalRadius"` // Waypoint reached distance (pixels)
}

type CombatConfig struct {
	Iframes       float64 `json:"iframes"` // Milliseconds of invincibility after a hit
	ContactDamage int     `json:"contactDamage"`
	TrapDamage    int     `json:"trapDamage"`
}

// ProjectileRules configures projectile lifetime
type ProjectileRules struct {
	CullMargin float64 `json:"cullMargin"` // Distance beyond the arena before culling (pixels)
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}
