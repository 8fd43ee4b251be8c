package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/turborun/pkg/types"
)

// RunnerConfig 跑酷核心的全部可调参数
//
// 配置文件位置: data/runner.yaml（默认配置嵌入在二进制中）
// 所有坐标和尺寸使用世界单位（原点在画面中心，Y 轴向上）。
type RunnerConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Pool        PoolConfig       `yaml:"pool"`
	Decorations DecorationConfig `yaml:"decorations"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
	PowerUp     PowerUpConfig    `yaml:"powerUp"`
	Boost       BoostConfig      `yaml:"boost"`
	Player      PlayerConfig     `yaml:"player"`
	Fuel        FuelConfig       `yaml:"fuel"`
	Scroll      ScrollConfig     `yaml:"scroll"`
	Variants    []VariantConfig  `yaml:"variants"`
}

// FieldConfig 可视区域与出生/回收边界
type FieldConfig struct {
	SpawnX         float64 `yaml:"spawnX"`         // 出生的水平边缘
	OffFieldX      float64 `yaml:"offFieldX"`      // X 小于等于该值视为离开画面
	DecorationMinY float64 `yaml:"decorationMinY"` // 装饰物竖直随机范围
	DecorationMaxY float64 `yaml:"decorationMaxY"`
}

// PoolConfig 各分类的预热数量
type PoolConfig struct {
	DecorationSize int `yaml:"decorationSize"`
	ObstacleSize   int `yaml:"obstacleSize"`
	PowerUpSize    int `yaml:"powerUpSize"`
}

// DecorationConfig 装饰物（食物）生成配置
type DecorationConfig struct {
	SpawnInterval float64  `yaml:"spawnInterval"` // 生成间隔（秒），加速期间减半
	CommonWeight  float64  `yaml:"commonWeight"`  // 选中普通装饰物的概率
	Common        []string `yaml:"common"`
	Rare          []string `yaml:"rare"`
}

// ObstacleConfig 障碍物分阶段解锁与渐进生成配置
type ObstacleConfig struct {
	Early  []string `yaml:"early"`
	Mid    []string `yaml:"mid"`
	Late   []string `yaml:"late"`
	Legacy []string `yaml:"legacy"` // 旧版单列表配置，仅用于提示迁移

	MidUnlockTime  float64 `yaml:"midUnlockTime"`
	LateUnlockTime float64 `yaml:"lateUnlockTime"`

	InitialInterval float64 `yaml:"initialInterval"`
	DecreaseStep    float64 `yaml:"decreaseStep"`
	MinimumInterval float64 `yaml:"minimumInterval"`
	IncreasePeriod  float64 `yaml:"increasePeriod"` // 每隔多少秒加快一次

	HighLaneY    float64 `yaml:"highLaneY"`
	LowLaneY     float64 `yaml:"lowLaneY"`
	LaneVariance float64 `yaml:"laneVariance"`

	AntiRepeatRetries  int `yaml:"antiRepeatRetries"`
	AntiRepeatMinQueue int `yaml:"antiRepeatMinQueue"`
}

// PowerUpConfig 油桶生成配置（固定间隔，不随时间加快）
type PowerUpConfig struct {
	Variant       string  `yaml:"variant"` // 为空表示不生成油桶
	SpawnInterval float64 `yaml:"spawnInterval"`
	MinY          float64 `yaml:"minY"`
	MaxY          float64 `yaml:"maxY"`
}

// BoostConfig 加速状态参数
type BoostConfig struct {
	Duration          float64 `yaml:"duration"`
	Speed             float64 `yaml:"speed"`
	ScaleMultiplier   float64 `yaml:"scaleMultiplier"`
	ScaleRampDuration float64 `yaml:"scaleRampDuration"`
	ScrollMultiplier  float64 `yaml:"scrollMultiplier"` // 加速期间装饰物卷动倍率
}

// PlayerConfig 玩家（巴士）参数
type PlayerConfig struct {
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	BaseSpeed            float64 `yaml:"baseSpeed"`
	MaxSpeed             float64 `yaml:"maxSpeed"`
	SpeedIncreasePerTank float64 `yaml:"speedIncreasePerTank"`
	MaxUpgrades          int     `yaml:"maxUpgrades"`

	InvulnerabilityTime float64 `yaml:"invulnerabilityTime"`
	Health              int     `yaml:"health"`

	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	MinY float64 `yaml:"minY"`
	MaxY float64 `yaml:"maxY"`
}

// FuelConfig 燃料槽参数
type FuelConfig struct {
	MaxTanks int `yaml:"maxTanks"`
}

// ScrollConfig 各分类的卷动速度
type ScrollConfig struct {
	DecorationSpeed float64 `yaml:"decorationSpeed"`
	ObstacleSpeed   float64 `yaml:"obstacleSpeed"`
	PowerUpSpeed    float64 `yaml:"powerUpSpeed"`
}

// VariantConfig 单个实体变体的定义
type VariantConfig struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"` // decoration / obstacle / powerup
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Points   int     `yaml:"points"`
	Damage   int     `yaml:"damage"`
	Fuel     int     `yaml:"fuel"`
	Color    string  `yaml:"color"` // "#rrggbb"

	BounceAmplitude float64 `yaml:"bounceAmplitude"` // 大于 0 表示弹跳类障碍物
	BounceFrequency float64 `yaml:"bounceFrequency"`
}

// DefaultRunnerConfig 返回默认配置（与原版场景中的参数一致）
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		Field: FieldConfig{
			SpawnX:         11,
			OffFieldX:      -15,
			DecorationMinY: -1,
			DecorationMaxY: 1.4,
		},
		Pool: PoolConfig{
			DecorationSize: 10,
			ObstacleSize:   10,
			PowerUpSize:    5,
		},
		Decorations: DecorationConfig{
			SpawnInterval: 1.5,
			CommonWeight:  0.7,
			Common:        []string{"donut", "burger"},
			Rare:          []string{"golden_donut"},
		},
		Obstacles: ObstacleConfig{
			Early:              []string{"cone"},
			Mid:                []string{"barrier", "tire"},
			Late:               []string{"oil_slick"},
			MidUnlockTime:      25,
			LateUnlockTime:     50,
			InitialInterval:    3,
			DecreaseStep:       0.2,
			MinimumInterval:    1,
			IncreasePeriod:     40,
			HighLaneY:          1.2,
			LowLaneY:           -0.6,
			LaneVariance:       0.1,
			AntiRepeatRetries:  5,
			AntiRepeatMinQueue: 2,
		},
		PowerUp: PowerUpConfig{
			Variant:       "gas_tank",
			SpawnInterval: 15,
			MinY:          -0.2,
			MaxY:          0.4,
		},
		Boost: BoostConfig{
			Duration:          8,
			Speed:             6,
			ScaleMultiplier:   2.2,
			ScaleRampDuration: 0.5,
			ScrollMultiplier:  2,
		},
		Player: PlayerConfig{
			StartX:               -5,
			StartY:               0.3,
			Width:                1.2,
			Height:               0.6,
			BaseSpeed:            4,
			MaxSpeed:             5,
			SpeedIncreasePerTank: 0.2,
			MaxUpgrades:          5,
			InvulnerabilityTime:  1,
			Health:               3,
			MinX:                 -7.46,
			MaxX:                 7.46,
			MinY:                 -0.73,
			MaxY:                 1.37,
		},
		Fuel: FuelConfig{MaxTanks: 5},
		Scroll: ScrollConfig{
			DecorationSpeed: 7,
			ObstacleSpeed:   5,
			PowerUpSpeed:    5,
		},
		Variants: []VariantConfig{
			{Name: "donut", Category: "decoration", Width: 0.4, Height: 0.4, Points: 4, Color: "#f5a623"},
			{Name: "burger", Category: "decoration", Width: 0.45, Height: 0.4, Points: 4, Color: "#c8702a"},
			{Name: "golden_donut", Category: "decoration", Width: 0.4, Height: 0.4, Points: 10, Color: "#ffd700"},
			{Name: "cone", Category: "obstacle", Width: 0.4, Height: 0.6, Damage: 1, Color: "#ff6a00"},
			{Name: "barrier", Category: "obstacle", Width: 0.5, Height: 0.8, Damage: 1, Color: "#d0021b"},
			{Name: "tire", Category: "obstacle", Width: 0.5, Height: 0.5, Damage: 1, Color: "#333333", BounceAmplitude: 0.5, BounceFrequency: 1.2},
			{Name: "oil_slick", Category: "obstacle", Width: 0.9, Height: 0.2, Damage: 1, Color: "#4a4a4a"},
			{Name: "gas_tank", Category: "powerup", Width: 0.4, Height: 0.5, Fuel: 1, Color: "#7ed321"},
		},
	}
}

// LoadRunnerConfig 从 YAML 文件加载配置
func LoadRunnerConfig(filePath string) (*RunnerConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read runner config file: %w", err)
	}
	return ParseRunnerConfig(data)
}

// ParseRunnerConfig 解析 YAML 配置
//
// 文件中未出现的字段保留默认值，因此配置文件只需要写出想覆盖的部分。
// variants 列表一旦出现则整体替换默认列表。
func ParseRunnerConfig(data []byte) (*RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse runner config YAML: %w", err)
	}

	if err := validateRunnerConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid runner config: %w", err)
	}

	if len(cfg.Obstacles.Legacy) > 0 {
		log.Printf("[Config] WARNING: legacy obstacle list detected (%d entries), migrate them to early/mid/late", len(cfg.Obstacles.Legacy))
	}
	for _, tier := range types.AllTiers {
		if tier != types.TierEarly && len(cfg.Obstacles.TierNames(tier)) == 0 {
			log.Printf("[Config] WARNING: no %s obstacle variants configured", tier)
		}
	}

	return cfg, nil
}

// TierNames 返回指定阶段的变体名称列表
func (c *ObstacleConfig) TierNames(tier types.ObstacleTier) []string {
	switch tier {
	case types.TierEarly:
		return c.Early
	case types.TierMid:
		return c.Mid
	case types.TierLate:
		return c.Late
	default:
		return nil
	}
}

// FindVariant 按名称查找变体定义
func (c *RunnerConfig) FindVariant(name string) (VariantConfig, bool) {
	for _, v := range c.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// validateRunnerConfig 验证配置的有效性
func validateRunnerConfig(cfg *RunnerConfig) error {
	o := cfg.Obstacles
	if o.InitialInterval <= 0 {
		return fmt.Errorf("obstacles.initialInterval must be > 0, got %v", o.InitialInterval)
	}
	if o.MinimumInterval <= 0 {
		return fmt.Errorf("obstacles.minimumInterval must be > 0, got %v", o.MinimumInterval)
	}
	if o.MinimumInterval > o.InitialInterval {
		return fmt.Errorf("obstacles.minimumInterval (%v) must not exceed initialInterval (%v)", o.MinimumInterval, o.InitialInterval)
	}
	if o.DecreaseStep < 0 {
		return fmt.Errorf("obstacles.decreaseStep must be >= 0, got %v", o.DecreaseStep)
	}
	if o.IncreasePeriod <= 0 {
		return fmt.Errorf("obstacles.increasePeriod must be > 0, got %v", o.IncreasePeriod)
	}
	if o.MidUnlockTime < 0 || o.LateUnlockTime < o.MidUnlockTime {
		return fmt.Errorf("unlock times must satisfy 0 <= mid (%v) <= late (%v)", o.MidUnlockTime, o.LateUnlockTime)
	}
	if o.AntiRepeatRetries < 0 || o.AntiRepeatMinQueue < 0 {
		return fmt.Errorf("anti-repeat settings must be >= 0")
	}
	if cfg.Decorations.SpawnInterval <= 0 {
		return fmt.Errorf("decorations.spawnInterval must be > 0, got %v", cfg.Decorations.SpawnInterval)
	}
	if w := cfg.Decorations.CommonWeight; w < 0 || w > 1 {
		return fmt.Errorf("decorations.commonWeight must be within [0, 1], got %v", w)
	}
	if cfg.PowerUp.Variant != "" && cfg.PowerUp.SpawnInterval <= 0 {
		return fmt.Errorf("powerUp.spawnInterval must be > 0, got %v", cfg.PowerUp.SpawnInterval)
	}
	if cfg.Boost.Duration <= 0 {
		return fmt.Errorf("boost.duration must be > 0, got %v", cfg.Boost.Duration)
	}
	if cfg.Boost.ScaleRampDuration < 0 {
		return fmt.Errorf("boost.scaleRampDuration must be >= 0, got %v", cfg.Boost.ScaleRampDuration)
	}
	if cfg.Fuel.MaxTanks <= 0 {
		return fmt.Errorf("fuel.maxTanks must be > 0, got %d", cfg.Fuel.MaxTanks)
	}
	if cfg.Pool.DecorationSize < 0 || cfg.Pool.ObstacleSize < 0 || cfg.Pool.PowerUpSize < 0 {
		return fmt.Errorf("pool sizes must be >= 0")
	}
	p := cfg.Player
	if p.MinX > p.MaxX || p.MinY > p.MaxY {
		return fmt.Errorf("player bounds are inverted")
	}

	// 变体名称唯一且分类合法
	seen := make(map[string]types.PoolCategory, len(cfg.Variants))
	for _, v := range cfg.Variants {
		if v.Name == "" {
			return fmt.Errorf("variant name cannot be empty")
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("duplicate variant %q", v.Name)
		}
		category, ok := types.ParsePoolCategory(v.Category)
		if !ok {
			return fmt.Errorf("variant %q has unknown category %q", v.Name, v.Category)
		}
		if v.Color != "" {
			if _, err := ParseHexColor(v.Color); err != nil {
				return fmt.Errorf("variant %q: %w", v.Name, err)
			}
		}
		seen[v.Name] = category
	}

	// 引用必须指向对应分类的变体
	check := func(field string, names []string, want types.PoolCategory) error {
		for _, name := range names {
			category, ok := seen[name]
			if !ok {
				return fmt.Errorf("%s references unknown variant %q", field, name)
			}
			if category != want {
				return fmt.Errorf("%s references %q which is a %s, not a %s", field, name, category, want)
			}
		}
		return nil
	}
	if len(cfg.Decorations.Common)+len(cfg.Decorations.Rare) == 0 {
		return fmt.Errorf("at least one decoration variant is required")
	}
	if err := check("decorations.common", cfg.Decorations.Common, types.CategoryDecoration); err != nil {
		return err
	}
	if err := check("decorations.rare", cfg.Decorations.Rare, types.CategoryDecoration); err != nil {
		return err
	}
	for _, tier := range types.AllTiers {
		field := "obstacles." + strings.ToLower(tier.String())
		if err := check(field, o.TierNames(tier), types.CategoryObstacle); err != nil {
			return err
		}
	}
	if cfg.PowerUp.Variant != "" {
		if err := check("powerUp.variant", []string{cfg.PowerUp.Variant}, types.CategoryPowerUp); err != nil {
			return err
		}
	}

	return nil
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
