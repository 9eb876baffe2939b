package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player      PlayerConfig                `json:"player"`
	Boss        BossConfig                  `json:"boss"`
	Enemies     map[string]EnemyConfig      `json:"enemies"`
	Projectiles map[string]ProjectileConfig `json:"projectiles"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlayerConfig struct {
	ID         string      `json:"id"`
	Hitbox     Size        `json:"hitbox"`
	Stats      PlayerStats `json:"stats"`
	Projectile string      `json:"projectile"`
}

type PlayerStats struct {
	Lives int     `json:"lives"`
	Speed float64 `json:"speed"`
}

type ProjectileConfig struct {
	ID       string  `json:"id"`
	Hitbox   Size    `json:"hitbox"`
	Speed    float64 `json:"speed"`
	Damage   int     `json:"damage"`
	Ricochet bool    `json:"ricochet,omitempty"`
}

type EnemyConfig struct {
	ID     string     `json:"id"`
	Hitbox Size       `json:"hitbox"`
	Stats  EnemyStats `json:"stats"`
	AI     AIConfig   `json:"ai"`
}

type EnemyStats struct {
	MaxHealth     int     `json:"maxHealth"`
	ContactDamage int     `json:"contactDamage"`
	MoveSpeed     float64 `json:"moveSpeed"`
}

type AIConfig struct {
	Type        string  `json:"type"`
	DetectRange float64 `json:"detectRange"`
}

type BossConfig struct {
	ID     string     `json:"id"`
	Hitbox Size       `json:"hitbox"`
	Stats  EnemyStats `json:"stats"`
	AI     BossAI     `json:"ai"`
}

// BossAI configures the three boss phases. Times are in milliseconds.
type BossAI struct {
	DetectRange    float64 `json:"detectRange"`
	Ammo           int     `json:"ammo"`
	ShootCooldown  float64 `json:"shootCooldown"`
	DirChange      float64 `json:"dirChange"`
	AimedShot      string  `json:"aimedShot"`
	ScatterShot    string  `json:"scatterShot"`
	Dodge          DodgeAI `json:"dodge"`
	FinalBarrage   Barrage `json:"finalBarrage"`
	MaxSpeedFactor float64 `json:"maxSpeedFactor"`
}

type DodgeAI struct {
	Radius   float64 `json:"radius"`
	Strength float64 `json:"strength"`
	Amplify  float64 `json:"amplify"`
}

type Barrage struct {
	Interval    float64 `json:"interval"`
	Duration    float64 `json:"duration"`
	CenterSpeed float64 `json:"centerSpeed"`
}
