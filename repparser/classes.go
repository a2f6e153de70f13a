// This file contains the two static class-name capability sets that gate
// whether a Created replication carries an initial location and/or
// rotation. Both lists are preserved byte-for-byte, trailing NUL included,
// from the reference decoder.

package repparser

var classesWithLocation = map[string]bool{
	"TAGame.Ball_Breakout_TA\x00":              true,
	"TAGame.Ball_TA\x00":                       true,
	"TAGame.CameraSettingsActor_TA\x00":        true,
	"TAGame.Car_Season_TA\x00":                 true,
	"TAGame.Car_TA\x00":                        true,
	"TAGame.CarComponent_Boost_TA\x00":         true,
	"TAGame.CarComponent_Dodge_TA\x00":         true,
	"TAGame.CarComponent_DoubleJump_TA\x00":    true,
	"TAGame.CarComponent_FlipCar_TA\x00":       true,
	"TAGame.CarComponent_Jump_TA\x00":          true,
	"TAGame.GameEvent_Season_TA\x00":           true,
	"TAGame.GameEvent_Soccar_TA\x00":           true,
	"TAGame.GameEvent_SoccarPrivate_TA\x00":    true,
	"TAGame.GameEvent_SoccarSplitscreen_TA\x00": true,
	"TAGame.GRI_TA\x00":                        true,
	"TAGame.PRI_TA\x00":                        true,
	"TAGame.SpecialPickup_BallCarSpring_TA\x00": true,
	"TAGame.SpecialPickup_BallFreeze_TA\x00":   true,
	"TAGame.SpecialPickup_BallGravity_TA\x00":  true,
	"TAGame.SpecialPickup_BallLasso_TA\x00":    true,
	"TAGame.SpecialPickup_BallVelcro_TA\x00":   true,
	"TAGame.SpecialPickup_Batarang_TA\x00":     true,
	"TAGame.SpecialPickup_BoostOverride_TA\x00": true,
	"TAGame.SpecialPickup_GrapplingHook_TA\x00": true,
	"TAGame.SpecialPickup_HitForce_TA\x00":     true,
	"TAGame.SpecialPickup_Swapper_TA\x00":      true,
	"TAGame.SpecialPickup_Tornado_TA\x00":      true,
	"TAGame.Team_Soccar_TA\x00":                true,
}

var classesWithRotation = map[string]bool{
	"TAGame.Ball_Breakout_TA\x00": true,
	"TAGame.Ball_TA\x00":          true,
	"TAGame.Car_Season_TA\x00":    true,
	"TAGame.Car_TA\x00":           true,
}
