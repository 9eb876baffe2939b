package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    int                          `yaml:"tileSize"`
	Next        string                       `yaml:"next,omitempty"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Patrols     []PatrolConfig               `yaml:"patrols,omitempty"`
}

type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

// TileMappingConfig maps one layer character to a tile or spawn
type TileMappingConfig struct {
	Type   string `yaml:"type"` // wall, water, trap, bonus, finish, spawn, enemy, boss
	Solid  bool   `yaml:"solid,omitempty"`
	Damage int    `yaml:"damage,omitempty"`
	Enemy  string `yaml:"enemy,omitempty"` // enemy type for enemy spawns
}

// PatrolConfig is the patrol route of the n-th enemy spawn, in reading
// order of the collision layer. Points are tile coordinates.
type PatrolConfig struct {
	Enemy  int           `yaml:"enemy"`
	Points []PointConfig `yaml:"points"`
}

type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}
