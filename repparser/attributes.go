// This file contains the attribute dispatcher: a table from a resolved
// object (property) name to the decoder for the one AttributeValue variant
// that name carries, plus the decoder for each variant.
//
// The property name strings below follow the naming convention Rocket
// League's replicated properties are universally known by in the replay
// modding community (TAGame.<Class>:<Property>); the wire shape behind
// each name is decoded exactly per the variant's field list.

package repparser

import (
	"github.com/rlreplay/rlrep/rep"
	"github.com/rlreplay/rlrep/rep/repcore"
)

type attributeDecoder func(*BitReader, *decodeContext) rep.AttributeValue

var attributeDecoders = map[string]attributeDecoder{
	"TAGame.Ball_TA:AppliedDamage\x00":                    decodeAppliedDamage,
	"TAGame.CarComponent_Boost_TA:bUnlimitedBoost\x00":     decodeBoolean,
	"TAGame.Vehicle_TA:ReplicatedThrottle\x00":              decodeByte,
	"TAGame.CameraSettingsActor_TA:ProfileCameraSettings\x00": decodeCamSettings,
	"TAGame.PRI_TA:ClubColors\x00":                          decodeClubColors,
	"TAGame.Car_TA:ReplicatedDamageState\x00":               decodeDamageState,
	"TAGame.Car_TA:ReplicatedDemolish\x00":                  decodeDemolish,
	"TAGame.GameEvent_Soccar_TA:RoundNum\x00":                decodeEnum,
	"TAGame.CarComponent_TA:ReplicatedActive\x00":            decodeFlaggedInt,
	"TAGame.Ball_TA:ExplosionData\x00":                      decodeExplosion,
	"TAGame.Ball_TA:ExtendedExplosionData\x00":               decodeExtendedExplosion,
	"TAGame.GameEvent_Soccar_TA:SecondsRemaining\x00":        decodeIntValue,
	"ProjectX.GRI_X:GameServerID\x00":                        decodeQWord,
	"Engine.GameReplicationInfo:GameClass\x00":                decodeFloat,
	"TAGame.GameEvent_Team_TA:GameMode\x00":                   decodeGameMode,
	"TAGame.PRI_TA:MatchLoadout\x00":                          decodeLoadout,
	"TAGame.PRI_TA:MatchLoadoutOnline\x00":                    decodeLoadoutOnline,
	"TAGame.Team_Soccar_TA:MatchLoadouts\x00":                 decodeLoadouts,
	"TAGame.Team_Soccar_TA:MatchLoadoutsOnline\x00":           decodeLoadoutsOnline,
	"TAGame.CarComponent_TA:ReplicatedLocation\x00":           decodeLocation,
	"TAGame.GameEvent_Soccar_TA:MusicStinger\x00":              decodeMusicStinger,
	"TAGame.PRI_TA:PartyLeader\x00":                           decodePartyLeader,
	"TAGame.SpecialPickup_TA:ReplicatedPickupData\x00":        decodePickup,
	"TAGame.PRI_TA:PlayerHistoryKey\x00":                      decodePlayerHistoryKey,
	"TAGame.GameEvent_SoccarPrivate_TA:MatchSettings\x00":     decodePrivateMatchSettings,
	"TAGame.GameEvent_Soccar_TA:ReservationID\x00":             decodeReservation,
	"TAGame.RBActor_TA:ReplicatedRBState\x00":                 decodeRigidBodyState,
	"TAGame.PRI_TA:PlayerName\x00":                            decodeString,
	"TAGame.Car_TA:TeamPaint\x00":                             decodeTeamPaint,
	"Engine.PlayerReplicationInfo:UniqueId\x00":                decodeUniqueIDValue,
	"TAGame.CarComponent_TA:ReplicatedWeldedInfo\x00":          decodeWeldedInfo,
}

// decodeAttributeValue dispatches a replicated property name to its
// decoder. An unrecognized name fails with UnknownAttribute.
func decodeAttributeValue(br *BitReader, ctx *decodeContext, objectName string) rep.AttributeValue {
	decode, ok := attributeDecoders[objectName]
	if !ok {
		fail(UnknownAttribute, objectName)
	}
	return decode(br, ctx)
}

func decodePoint(br *BitReader) repcore.Point[int32] {
	size := br.GetSerializedInt(19)
	limit := uint32(4) << size
	return repcore.Point[int32]{
		X: int32(br.GetSerializedInt(limit)),
		Y: int32(br.GetSerializedInt(limit)),
		Z: int32(br.GetSerializedInt(limit)),
	}
}

func decodeRotationPoint(br *BitReader) repcore.Point[uint32] {
	size := br.GetSerializedInt(19)
	limit := uint32(4) << size
	return repcore.Point[uint32]{
		X: br.GetSerializedInt(limit),
		Y: br.GetSerializedInt(limit),
		Z: br.GetSerializedInt(limit),
	}
}

func decodeOptionalPoint(br *BitReader) *repcore.Point[int32] {
	return GetBitOption(br, decodePoint)
}

func decodeAppliedDamage(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.AppliedDamage{
		Unknown1: br.GetByte(),
		Location: decodePoint(br),
		Unknown2: br.GetInt32(),
		Unknown3: br.GetInt32(),
	}
}

func decodeBoolean(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Boolean{Value: br.GetBool()}
}

func decodeByte(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Byte{Value: br.GetByte()}
}

func decodeCamSettings(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.CamSettings{
		FOV:             br.GetFloat32(),
		Height:          br.GetFloat32(),
		Angle:           br.GetFloat32(),
		Distance:        br.GetFloat32(),
		Stiffness:       br.GetFloat32(),
		SwivelSpeed:     br.GetFloat32(),
		TransitionSpeed: GetBitOption(br, (*BitReader).GetFloat32),
	}
}

func decodeClubColors(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.ClubColors{
		Unknown1: br.GetBool(),
		Blue:     br.GetByte(),
		Unknown2: br.GetBool(),
		Orange:   br.GetByte(),
	}
}

func decodeDamageState(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.DamageState{
		Unknown1: br.GetByte(),
		Unknown2: br.GetBool(),
		Unknown3: br.GetInt32(),
		Unknown4: decodePoint(br),
		Unknown5: br.GetBool(),
		Unknown6: br.GetBool(),
	}
}

func decodeDemolish(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Demolish{
		Unknown1:         br.GetBool(),
		AttackerActor:    br.GetUint32(),
		Unknown2:         br.GetBool(),
		VictimActor:      br.GetUint32(),
		AttackerVelocity: decodePoint(br),
		VictimVelocity:   decodePoint(br),
	}
}

func decodeEnum(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.EnumValue{Value: uint16(br.GetBits(16))}
}

func decodeExplosionFields(br *BitReader) rep.Explosion {
	return rep.Explosion{
		Unknown:  br.GetBool(),
		Actor:    br.GetUint32(),
		Location: decodePoint(br),
	}
}

func decodeExplosion(br *BitReader, _ *decodeContext) rep.AttributeValue {
	e := decodeExplosionFields(br)
	return &e
}

func decodeExtendedExplosion(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.ExtendedExplosion{
		Explosion: decodeExplosionFields(br),
		Unknown:   decodeFlaggedIntFields(br),
	}
}

func decodeFlaggedIntFields(br *BitReader) rep.FlaggedInt {
	return rep.FlaggedInt{
		Unknown: br.GetBool(),
		Value:   br.GetInt32(),
	}
}

func decodeFlaggedInt(br *BitReader, _ *decodeContext) rep.AttributeValue {
	f := decodeFlaggedIntFields(br)
	return &f
}

func decodeFloat(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Float{Value: br.GetFloat32()}
}

func decodeGameMode(br *BitReader, _ *decodeContext) rep.AttributeValue {
	size := br.GetSerializedInt(19)
	return &rep.GameMode{Size: size, Value: byte(br.GetBits(int(size)))}
}

func decodeIntValue(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Int{Value: br.GetInt32()}
}

// loadoutOptionalFieldCount is the number of trailing, individually
// bit-gated optional product ids a Loadout carries after its eight
// required fields (version, body, decal, wheels, rocket_boost, antenna,
// topper, unknown1).
const loadoutOptionalFieldCount = 5

func decodeLoadoutFields(br *BitReader) rep.Loadout {
	l := rep.Loadout{
		Version:     br.GetByte(),
		Body:        br.GetUint32(),
		Decal:       br.GetUint32(),
		Wheels:      br.GetUint32(),
		RocketBoost: br.GetUint32(),
		Antenna:     br.GetUint32(),
		Topper:      br.GetUint32(),
		Unknown1:    br.GetUint32(),
	}
	opts := [loadoutOptionalFieldCount]**uint32{&l.Unknown2, &l.Engine, &l.Trail, &l.Goal, &l.Banner}
	for _, opt := range opts {
		*opt = GetBitOption(br, (*BitReader).GetUint32)
	}
	return l
}

func decodeLoadout(br *BitReader, _ *decodeContext) rep.AttributeValue {
	l := decodeLoadoutFields(br)
	return &l
}

func decodeProduct(br *BitReader) rep.Product {
	p := rep.Product{
		Unknown:  br.GetBool(),
		ObjectID: br.GetUint32(),
	}
	p.Object = GetBitOption(br, (*BitReader).GetText)

	switch {
	case p.Unknown:
		v := br.GetSerializedInt(0xffffffff)
		p.Value = &rep.PaintedOld{Value: v}
	case br.GetBool():
		v := br.GetUint32()
		p.Value = &rep.UserColor{Value: v}
	default:
		v := br.GetUint32()
		p.Value = &rep.Painted{Value: v}
	}
	return p
}

func decodeProductSlot(br *BitReader) []rep.Product {
	var products []rep.Product
	for br.GetBool() {
		products = append(products, decodeProduct(br))
	}
	return products
}

func decodeLoadoutOnlineFields(br *BitReader) rep.LoadoutOnline {
	var slots [][]rep.Product
	for br.GetBool() {
		slots = append(slots, decodeProductSlot(br))
	}
	return rep.LoadoutOnline{Products: slots}
}

func decodeLoadoutOnline(br *BitReader, _ *decodeContext) rep.AttributeValue {
	l := decodeLoadoutOnlineFields(br)
	return &l
}

func decodeLoadouts(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Loadouts{
		Blue:   decodeLoadoutFields(br),
		Orange: decodeLoadoutFields(br),
	}
}

func decodeLoadoutsOnline(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.LoadoutsOnline{
		Blue:     decodeLoadoutOnlineFields(br),
		Orange:   decodeLoadoutOnlineFields(br),
		Unknown1: br.GetBool(),
		Unknown2: br.GetBool(),
	}
}

func decodeLocation(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Location{Value: decodePoint(br)}
}

func decodeMusicStinger(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.MusicStinger{
		Unknown: br.GetBool(),
		Cue:     br.GetUint32(),
		Trigger: br.GetByte(),
	}
}

func decodePartyLeader(br *BitReader, _ *decodeContext) rep.AttributeValue {
	p := &rep.PartyLeader{System: br.GetByte()}
	if br.GetBool() {
		p.ID = &rep.PartyLeaderID{
			Remote: decodeRemoteID(br, p.System),
			Local:  br.GetByte(),
		}
	}
	return p
}

func decodePickup(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.Pickup{
		Instigator: GetBitOption(br, (*BitReader).GetUint32),
		PickedUp:   br.GetBool(),
	}
}

func decodePlayerHistoryKey(br *BitReader, _ *decodeContext) rep.AttributeValue {
	var bits []bool
	for br.GetBool() {
		bits = append(bits, br.GetBool())
	}
	return &rep.PlayerHistoryKey{Bits: bits}
}

func decodePrivateMatchSettings(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.PrivateMatchSettings{
		Mutators:   br.GetText(),
		JoinableBy: br.GetUint32(),
		MaxPlayers: br.GetUint32(),
		GameName:   br.GetText(),
		Password:   br.GetText(),
		Unknown:    br.GetBool(),
	}
}

func decodeQWord(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.QWord{Value: br.GetBits(64)}
}

// decodeRemoteID decodes a RemoteId whose shape is selected by system,
// per the UniqueId dispatcher contract in §4.7.
func decodeRemoteID(br *BitReader, system byte) rep.RemoteID {
	switch system {
	case repcore.RemoteIDSystemLocal.ID:
		return &rep.RemoteIDLocal{Value: br.GetUint32()}
	case repcore.RemoteIDSystemSteam.ID:
		return &rep.RemoteIDSteam{Value: br.GetBits(64)}
	case repcore.RemoteIDSystemPlayStation.ID:
		nameBytes := make([]byte, 16)
		for i := range nameBytes {
			nameBytes[i] = br.GetByte()
		}
		name, ok := decodeWindows1252(nameBytes)
		if !ok {
			fail(InvalidWindows1252, "")
		}
		id := make([]byte, 16)
		for i := range id {
			id[i] = br.GetByte()
		}
		return &rep.RemoteIDPlayStation{Name: rep.Text{Value: name}, ID: id}
	case repcore.RemoteIDSystemXbox.ID:
		return &rep.RemoteIDXbox{Value: br.GetBits(64)}
	case repcore.RemoteIDSystemSwitch.ID:
		id := make([]bool, 24)
		for i := range id {
			id[i] = br.GetBool()
		}
		return &rep.RemoteIDSwitch{ID: id}
	default:
		fail(UnknownActor, "")
		return nil
	}
}

func decodeUniqueIDFields(br *BitReader) rep.UniqueID {
	system := br.GetByte()
	remote := decodeRemoteID(br, system)
	local := br.GetByte()
	return rep.UniqueID{
		System: *repcore.RemoteIDSystemByID(system),
		Remote: remote,
		Local:  local,
	}
}

func decodeUniqueIDValue(br *BitReader, _ *decodeContext) rep.AttributeValue {
	u := decodeUniqueIDFields(br)
	return &u
}

func decodeReservation(br *BitReader, _ *decodeContext) rep.AttributeValue {
	r := &rep.Reservation{
		Number: br.GetSerializedInt(0xffffffff),
		ID:     decodeUniqueIDFields(br),
	}
	r.Name = GetBitOption(br, (*BitReader).GetText)
	r.Unknown1 = br.GetBool()
	r.Unknown2 = br.GetBool()
	r.Unknown3 = GetBitOption(br, (*BitReader).GetByte)
	return r
}

func decodeRigidBodyState(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.RigidBodyState{
		Unknown:         br.GetBool(),
		Location:        decodePoint(br),
		Rotation:        decodeRotationPoint(br),
		LinearVelocity:  decodeOptionalPoint(br),
		AngularVelocity: decodeOptionalPoint(br),
	}
}

func decodeString(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.String{Value: br.GetText()}
}

func decodeTeamPaint(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.TeamPaint{
		Team:          br.GetByte(),
		PrimaryColor:  br.GetByte(),
		AccentColor:   br.GetByte(),
		PrimaryFinish: br.GetUint32(),
		AccentFinish:  br.GetUint32(),
	}
}

func decodeWeldedInfo(br *BitReader, _ *decodeContext) rep.AttributeValue {
	return &rep.WeldedInfo{
		Active:   br.GetBool(),
		Actor:    br.GetUint32(),
		Offset:   decodePoint(br),
		Mass:     br.GetFloat32(),
		Rotation: decodeRotation(br),
	}
}
