// This file contains the Attribute type and the closed set of
// AttributeValue variants the attribute dispatcher in package repparser
// decodes them into.

package rep

import "github.com/rlreplay/rlrep/rep/repcore"

// Attribute is one decoded attribute update inside an Updated replication.
type Attribute struct {
	ClassID    uint32
	StreamID   uint32
	ObjectID   uint32
	ObjectName Text
	Value      AttributeValue
}

// AttributeValue is the closed sum of attribute payload shapes. Each
// concrete type below implements it and corresponds to exactly one
// replicated property name in the attribute dispatcher's table.
type AttributeValue interface {
	attributeValue()
}

type AppliedDamage struct {
	Unknown1  byte
	Location  repcore.Point[int32]
	Unknown2  int32
	Unknown3  int32
}

func (*AppliedDamage) attributeValue() {}

type Boolean struct{ Value bool }

func (*Boolean) attributeValue() {}

type Byte struct{ Value byte }

func (*Byte) attributeValue() {}

type CamSettings struct {
	FOV              float32
	Height           float32
	Angle            float32
	Distance         float32
	Stiffness        float32
	SwivelSpeed      float32
	TransitionSpeed  *float32
}

func (*CamSettings) attributeValue() {}

type ClubColors struct {
	Unknown1 bool
	Blue     byte
	Unknown2 bool
	Orange   byte
}

func (*ClubColors) attributeValue() {}

type DamageState struct {
	Unknown1 byte
	Unknown2 bool
	Unknown3 int32
	Unknown4 repcore.Point[int32]
	Unknown5 bool
	Unknown6 bool
}

func (*DamageState) attributeValue() {}

type Demolish struct {
	Unknown1         bool
	AttackerActor    uint32
	Unknown2         bool
	VictimActor      uint32
	AttackerVelocity repcore.Point[int32]
	VictimVelocity   repcore.Point[int32]
}

func (*Demolish) attributeValue() {}

// EnumValue is the attribute dispatcher's Enum variant: a bare u16 tag
// whose meaning is defined by the replicated property, not by this type.
// Named EnumValue (not Enum) to avoid colliding with repcore.Enum.
type EnumValue struct{ Value uint16 }

func (*EnumValue) attributeValue() {}

// Explosion is both a standalone attribute variant and the embedded shape
// of ExtendedExplosion.
type Explosion struct {
	Unknown  bool
	Actor    uint32
	Location repcore.Point[int32]
}

func (*Explosion) attributeValue() {}

type ExtendedExplosion struct {
	Explosion Explosion
	Unknown   FlaggedInt
}

func (*ExtendedExplosion) attributeValue() {}

// FlaggedInt is both a standalone attribute variant and a field type used
// by ExtendedExplosion.
type FlaggedInt struct {
	Unknown bool
	Value   int32
}

func (*FlaggedInt) attributeValue() {}

type Float struct{ Value float32 }

func (*Float) attributeValue() {}

// GameMode carries a size-gated mode byte: some game modes serialize the
// value over more bits than others.
type GameMode struct {
	Size  uint32
	Value byte
}

func (*GameMode) attributeValue() {}

type Int struct{ Value int32 }

func (*Int) attributeValue() {}

// Loadout is a car's cosmetic item loadout. Each of the five trailing
// product ids (Unknown2 through Banner) is preceded by its own presence
// bit and is nil when that bit is clear; the Version byte does not select
// how many trailing ids are read.
type Loadout struct {
	Version     byte
	Body        uint32
	Decal       uint32
	Wheels      uint32
	RocketBoost uint32
	Antenna     uint32
	Topper      uint32
	Unknown1    uint32
	Unknown2    *uint32
	Engine      *uint32
	Trail       *uint32
	Goal        *uint32
	Banner      *uint32
}

func (*Loadout) attributeValue() {}

type LoadoutOnline struct {
	// Products holds one product slot list per loadout slot (body, decal,
	// wheels, …), in the same order as Loadout's fields.
	Products [][]Product
}

func (*LoadoutOnline) attributeValue() {}

// Product is one painted/certified item attached to a loadout slot.
type Product struct {
	Unknown  bool
	ObjectID uint32
	Object   *Text
	Value    ProductValue
}

// ProductValue is the closed sum of a product's paint/color encoding.
type ProductValue interface {
	productValue()
}

type PaintedOld struct{ Value uint32 }

func (*PaintedOld) productValue() {}

type Painted struct{ Value uint32 }

func (*Painted) productValue() {}

type UserColor struct{ Value uint32 }

func (*UserColor) productValue() {}

type Loadouts struct {
	Blue   Loadout
	Orange Loadout
}

func (*Loadouts) attributeValue() {}

type LoadoutsOnline struct {
	Blue     LoadoutOnline
	Orange   LoadoutOnline
	Unknown1 bool
	Unknown2 bool
}

func (*LoadoutsOnline) attributeValue() {}

type Location struct{ Value repcore.Point[int32] }

func (*Location) attributeValue() {}

type MusicStinger struct {
	Unknown bool
	Cue     uint32
	Trigger byte
}

func (*MusicStinger) attributeValue() {}

// PartyLeaderID is the (RemoteId, local id) pair of PartyLeader, present
// only when PartyLeader.ID is non-nil.
type PartyLeaderID struct {
	Remote RemoteID
	Local  byte
}

type PartyLeader struct {
	System byte
	ID     *PartyLeaderID
}

func (*PartyLeader) attributeValue() {}

type Pickup struct {
	Instigator *uint32
	PickedUp   bool
}

func (*Pickup) attributeValue() {}

type PlayerHistoryKey struct{ Bits []bool }

func (*PlayerHistoryKey) attributeValue() {}

type PrivateMatchSettings struct {
	Mutators   Text
	JoinableBy uint32
	MaxPlayers uint32
	GameName   Text
	Password   Text
	Unknown    bool
}

func (*PrivateMatchSettings) attributeValue() {}

type QWord struct{ Value uint64 }

func (*QWord) attributeValue() {}

type Reservation struct {
	Number   uint32
	ID       UniqueID
	Name     *Text
	Unknown1 bool
	Unknown2 bool
	Unknown3 *byte
}

func (*Reservation) attributeValue() {}

// RigidBodyState is the physics state replicated for balls, cars and
// similar located/rotated actors.
type RigidBodyState struct {
	Unknown         bool
	Location        repcore.Point[int32]
	Rotation        repcore.Point[uint32]
	LinearVelocity  *repcore.Point[int32]
	AngularVelocity *repcore.Point[int32]
}

func (*RigidBodyState) attributeValue() {}

type String struct{ Value Text }

func (*String) attributeValue() {}

type TeamPaint struct {
	Team          byte
	PrimaryColor  byte
	AccentColor   byte
	PrimaryFinish uint32
	AccentFinish  uint32
}

func (*TeamPaint) attributeValue() {}

type WeldedInfo struct {
	Active   bool
	Actor    uint32
	Offset   repcore.Point[int32]
	Mass     float32
	Rotation repcore.Point[*int8]
}

func (*WeldedInfo) attributeValue() {}
