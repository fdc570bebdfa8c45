package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer used by the game.
const Default ecs.LayerID = 0

// TickDelta is the fixed simulation step in seconds. Ebiten runs the update
// loop at 60 TPS; all countdown timers tick by this amount per frame.
const TickDelta = 1.0 / 60.0

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels/second unless noted)
	MoveSpeed    float64
	Acceleration float64 // velocity change per second toward target
	JumpSpeed    float64 // upward impulse magnitude
	JumpCutFactor float64 // vy multiplier on early jump release
	CoyoteTime     float64 // seconds of grace after leaving ground
	JumpBufferTime float64 // seconds an early jump press stays queued

	// Combat
	Health        int
	AttackTime    float64 // seconds the attack window stays open
	AttackBoost   float64 // forward velocity boost on attack start
	AttackDamage  int
	ThrowCooldown float64

	// Damage intake
	InvincibilityTime float64
	FlickerPeriod     float64 // cosmetic visibility toggle period
	KnockbackX        float64
	KnockbackY        float64
	PitDamage         int     // toll for falling into a dead zone
	DeathTime         float64 // exit animation duration

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Attack hitbox, offset in the facing direction
	HitboxWidth   float64
	HitboxHeight  float64
	HitboxOffsetX float64
}

// EnemyConfig contains behavior shared by every enemy archetype
type EnemyConfig struct {
	HysteresisMultiplier float64 // chase drop-out range as multiple of detection range
	KnockbackX           float64 // horizontal hit impulse, away from player facing
	KnockbackY           float64 // upward hit impulse
}

// WolfConfig contains the ground-patrol archetype tuning
type WolfConfig struct {
	Health int
	Damage int

	MoveSpeed      float64 // patrol pace is half of this
	ChargeSpeed    float64
	PatrolDistance float64
	DetectionRange float64
	AttackRange    float64
	AttackCooldown float64
	LeapForceX     float64
	LeapForceY     float64

	HurtTime  float64
	DeathTime float64

	Gravity      float64
	MaxFallSpeed float64

	CoinDropMin int
	CoinDropMax int

	CollisionWidth  float64
	CollisionHeight float64
}

// BatConfig contains the flying archetype tuning
type BatConfig struct {
	Health int
	Damage int

	WakeRange      float64
	DetectionRange float64
	StartleImpulse float64 // upward impulse on waking

	// Flight: velocity is smoothed toward an oscillating offset around the
	// player, biased home when displaced beyond HomeRadius.
	FlySpeed      float64
	FlyLerp       float64 // per-second smoothing factor toward target velocity
	OscAmplitudeX float64
	OscAmplitudeY float64
	OscFreqX      float64 // radians/second
	OscFreqY      float64
	HomeRadius    float64
	HomeBias      float64 // 0..1 pull strength toward home when out of bounds

	SwoopSpeed    float64
	SwoopAccel    float64
	SwoopCooldown float64
	ArriveRadius  float64
	PullUpImpulse float64

	HurtTime  float64
	DeathTime float64

	DeathGravity float64 // gravity applies only after death
	MaxFallSpeed float64

	CoinDropMin int
	CoinDropMax int

	CollisionWidth  float64
	CollisionHeight float64
}

// ShotConfig contains the straight sub-weapon projectile tuning
type ShotConfig struct {
	Speed    float64
	Damage   int
	Lifetime float64
	Width    float64
	Height   float64
}

// BoomerangConfig contains the returning weapon tuning
type BoomerangConfig struct {
	ThrowSpeed    float64
	ReturnSpeed   float64 // slightly faster than the throw
	ReferenceUnit float64 // base travel unit, a tile
	RangeUnits    float64 // outbound range as multiple of ReferenceUnit
	CatchRadius   float64
	Damage        int
	Lifetime      float64
	SpinRate      float64 // radians per tick, cosmetic
	Width         float64
	Height        float64
}

// CombatConfig contains cross-entity combat values
type CombatConfig struct {
	KnockbackUpwardForce float64
	HitFlashTime         float64 // white flash when dealing damage
	DamageFlashTime      float64 // red flash when taking damage
	CoinValue            int     // coins granted per pickup
}

// PhysicsConfig contains global fallback physics values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	PushbackSpeed float64 // separation speed for overlapping characters
}

// ShakePreset maps a severity to a fixed intensity/duration pair.
type ShakePreset struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds
}

// ScreenShakeConfig contains screen shake tuning
type ScreenShakeConfig struct {
	Small  ShakePreset
	Medium ShakePreset
	Heavy  ShakePreset

	AxisScaleX float64
	AxisScaleY float64
}

// CameraConfig contains dynamic camera behavior tuning
type CameraConfig struct {
	FollowSmoothing float64 // how fast the camera follows the player (0-1)

	MinZoom     float64
	MaxZoom     float64
	DefaultZoom float64
	ZoomStep    float64 // per-tick lerp factor toward target zoom
	ZoomEpsilon float64 // snap distance to avoid asymptotic creep

	// Look-ahead from frame-to-frame player displacement.
	LookAheadThresholdX float64 // min horizontal displacement to engage
	LookAheadThresholdY float64 // larger: distinguishes fall/jump from jitter
	LookAheadDistanceX  float64
	LookAheadDistanceY  float64 // reduced vertical magnitude
	LookAheadSmoothing  float64

	// Cinematic pan defaults
	PanDuration float64
	PanHoldTime float64
	PanDistance float64 // how far the reveal pan travels toward the zone center
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Wolf WolfConfig
var Bat BatConfig
var Shot ShotConfig
var Boomerang BoomerangConfig
var Combat CombatConfig
var Physics PhysicsConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		Gravity:       900.0,
		MaxFallSpeed:  600.0,
		PushbackSpeed: 30.0,
	}

	Player = PlayerConfig{
		MoveSpeed:     160.0,
		Acceleration:  1400.0,
		JumpSpeed:     330.0,
		JumpCutFactor: 0.45,
		CoyoteTime:     0.1,
		JumpBufferTime: 0.12,

		Health:        100,
		AttackTime:    0.25,
		AttackBoost:   60.0,
		AttackDamage:  10,
		ThrowCooldown: 0.5,

		InvincibilityTime: 1.0,
		FlickerPeriod:     0.08,
		KnockbackX:        180.0,
		KnockbackY:        -140.0,
		PitDamage:         20,
		DeathTime:         1.2,

		Gravity:      Physics.Gravity,
		MaxFallSpeed: Physics.MaxFallSpeed,

		CollisionWidth:  14.0,
		CollisionHeight: 22.0,

		HitboxWidth:   22.0,
		HitboxHeight:  16.0,
		HitboxOffsetX: 12.0,
	}

	Enemy = EnemyConfig{
		HysteresisMultiplier: 1.5,
		KnockbackX:           140.0,
		KnockbackY:           -120.0,
	}

	Wolf = WolfConfig{
		Health: 30,
		Damage: 15,

		MoveSpeed:      120.0,
		ChargeSpeed:    190.0,
		PatrolDistance: 96.0,
		DetectionRange: 180.0,
		AttackRange:    80.0,
		AttackCooldown: 1.2,
		LeapForceX:     220.0,
		LeapForceY:     -200.0,

		HurtTime:  0.35,
		DeathTime: 0.8,

		Gravity:      Physics.Gravity,
		MaxFallSpeed: Physics.MaxFallSpeed,

		CoinDropMin: 2,
		CoinDropMax: 5,

		CollisionWidth:  26.0,
		CollisionHeight: 18.0,
	}

	Bat = BatConfig{
		Health: 15,
		Damage: 10,

		WakeRange:      140.0,
		DetectionRange: 110.0,
		StartleImpulse: -60.0,

		FlySpeed:      130.0,
		FlyLerp:       4.0,
		OscAmplitudeX: 48.0,
		OscAmplitudeY: 28.0,
		OscFreqX:      3.1,
		OscFreqY:      4.7,
		HomeRadius:    220.0,
		HomeBias:      0.6,

		SwoopSpeed:    260.0,
		SwoopAccel:    700.0,
		SwoopCooldown: 2.0,
		ArriveRadius:  10.0,
		PullUpImpulse: -120.0,

		HurtTime:  0.3,
		DeathTime: 0.8,

		DeathGravity: Physics.Gravity,
		MaxFallSpeed: Physics.MaxFallSpeed,

		CoinDropMin: 1,
		CoinDropMax: 3,

		CollisionWidth:  14.0,
		CollisionHeight: 12.0,
	}

	Shot = ShotConfig{
		Speed:    320.0,
		Damage:   8,
		Lifetime: 1.5,
		Width:    8.0,
		Height:   4.0,
	}

	Boomerang = BoomerangConfig{
		ThrowSpeed:    260.0,
		ReturnSpeed:   300.0,
		ReferenceUnit: 32.0,
		RangeUnits:    4.0,
		CatchRadius:   12.0,
		Damage:        12,
		Lifetime:      4.0,
		SpinRate:      0.3,
		Width:         12.0,
		Height:        12.0,
	}

	Combat = CombatConfig{
		KnockbackUpwardForce: -120.0,
		HitFlashTime:         0.08,
		DamageFlashTime:      0.15,
		CoinValue:            1,
	}

	ScreenShake = ScreenShakeConfig{
		Small:  ShakePreset{Intensity: 2.0, Duration: 0.15},
		Medium: ShakePreset{Intensity: 4.0, Duration: 0.25},
		Heavy:  ShakePreset{Intensity: 8.0, Duration: 0.4},

		AxisScaleX: 1.0,
		AxisScaleY: 0.7,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,

		MinZoom:     0.5,
		MaxZoom:     2.0,
		DefaultZoom: 1.0,
		ZoomStep:    0.06,
		ZoomEpsilon: 0.005,

		LookAheadThresholdX: 0.5,
		LookAheadThresholdY: 2.0,
		LookAheadDistanceX:  48.0,
		LookAheadDistanceY:  24.0,
		LookAheadSmoothing:  0.1,

		PanDuration: 0.8,
		PanHoldTime: 1.2,
		PanDistance: 96.0,
	}
}
