package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Actor ActorConfig `json:"actor"`
	Hook  HookConfig  `json:"hook"`
	Creep CreepConfig `json:"creep"`
}

type ActorConfig struct {
	Start      PointXY `json:"start"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	WalkSpeed  float64 `json:"walkSpeed"`
	HookSpeed  float64 `json:"hookSpeed"`
	WalkBoost  float64 `json:"walkBoost"`
	HookBoost  float64 `json:"hookBoost"`
	ReelFactor float64 `json:"reelFactor"`
}

// HookConfig describes the hook sprite and the hitbox carved out of it
type HookConfig struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	HitboxOffsetY int `json:"hitboxOffsetY"`
	HitboxHeight  int `json:"hitboxHeight"`
}

type CreepConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Reward int `json:"reward"`
}
