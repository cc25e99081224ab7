package config

const (
	WindowWidth  = 639
	WindowHeight = 360
	WindowTitle  = "Volcano Simulator"

	TicksPerSecond = 60

	// Background artwork; a procedural backdrop is used when it is missing.
	BackgroundPath = "tvashtar_plume.gif"
	BackgroundSeed = 1979

	// Vent and surface, in screen pixels
	VentX      = 320
	VentY      = 306
	IoSurfaceY = 348

	// Kinematics, per frame
	Gravity      = 0.7
	BaseVelocity = 12

	// Per-species launch speed multipliers.
	// Alternative tuning left over from earlier passes: 1, 1.45, 1.9, 3.6
	SpeedScaleSO2 = 1.71
	SpeedScaleCO2 = 1.72
	SpeedScaleH2S = 1.73
	SpeedScaleH2O = 1.74

	// Launch angle range in degrees, 90 is straight up
	MinLaunchAngle = 60
	MaxLaunchAngle = 120

	ParticleLifespan = 80
	SpawnPerTick     = 1
	MarkerSize       = 4

	// Upper clamp of the warm-to-hot colour factor
	ColorCeiling = 0.8

	// VerticalBoundByWidth culls particles whose y leaves [0, WindowWidth]
	// instead of [0, WindowHeight].
	VerticalBoundByWidth = true

	// Legend placement
	LegendX       = 40
	LegendY       = 20
	LegendSpacing = 20

	ShowStatus = true

	// Audio
	AudioEnabled    = true
	AudioSampleRate = 44100
	RumbleVolume    = -1.5
	RumbleFullLoad  = 40
)
