// This file contains the replication decoder: the per-frame loop that
// turns the embedded bit-packed blob into rep.Frame values, dispatching
// Created/Updated/Destroyed replications and, through the attribute
// dispatcher, their attribute payloads.

package repparser

import (
	"github.com/rlreplay/rlrep/rep"
	"github.com/rlreplay/rlrep/rep/repcore"
)

// decodeContext carries the indices and mutable state the replication
// decoder and attribute dispatcher need across an entire frame stream.
type decodeContext struct {
	names   []string
	objects []string
	classes *classByObjectIndex

	classAttrs map[uint32]classAttributes

	version     rep.Version
	maxChannels uint32

	// liveActors maps an open actor channel to the class id it was
	// created with. Entries are never removed (see the Destroyed actor
	// reuse open question): a later Created for the same channel simply
	// overwrites the entry.
	liveActors map[uint32]uint32
}

func (c *decodeContext) name(index uint32) string {
	if int(index) >= len(c.names) {
		fail(UnknownName, "")
	}
	return c.names[index]
}

func (c *decodeContext) object(index uint32) string {
	if int(index) >= len(c.objects) {
		fail(UnknownObject, "")
	}
	return c.objects[index]
}

// decodeFrames decodes numFrames frames from the embedded bit stream.
func decodeFrames(br *BitReader, numFrames uint32, ctx *decodeContext) []rep.Frame {
	frames := make([]rep.Frame, numFrames)
	for i := range frames {
		frames[i] = decodeFrame(br, ctx)
	}
	return frames
}

func decodeFrame(br *BitReader, ctx *decodeContext) rep.Frame {
	f := rep.Frame{
		Time:  br.GetFloat32(),
		Delta: br.GetFloat32(),
	}
	for br.GetBool() {
		f.Replications = append(f.Replications, decodeReplication(br, ctx))
	}
	return f
}

func decodeReplication(br *BitReader, ctx *decodeContext) rep.Replication {
	actor := br.GetSerializedInt(ctx.maxChannels)

	if !br.GetBool() {
		return rep.Replication{Actor: actor, Value: rep.Destroyed{}}
	}

	if br.GetBool() {
		return rep.Replication{Actor: actor, Value: decodeCreated(br, ctx, actor)}
	}
	return rep.Replication{Actor: actor, Value: decodeUpdated(br, ctx, actor)}
}

func decodeRotation(br *BitReader) repcore.Point[*int8] {
	return repcore.Point[*int8]{
		X: GetBitOption(br, (*BitReader).GetInt8),
		Y: GetBitOption(br, (*BitReader).GetInt8),
		Z: GetBitOption(br, (*BitReader).GetInt8),
	}
}

func decodeCreated(br *BitReader, ctx *decodeContext, actor uint32) *rep.Created {
	c := &rep.Created{Unknown: br.GetBool()}

	if ctx.version.HasNameIndex() {
		nameIndex := br.GetUint32()
		name := rep.Text{Value: ctx.name(nameIndex)}
		c.NameIndex = &nameIndex
		c.Name = &name
	}

	c.ObjectIndex = br.GetUint32()
	c.Object = rep.Text{Value: ctx.object(c.ObjectIndex)}

	classID, className, ok := ctx.classes.Lookup(c.ObjectIndex)
	if !ok {
		fail(UnknownObjectClass, c.Object.Value)
	}
	c.ClassID = classID
	c.ClassName = rep.Text{Value: className}

	if classesWithLocation[className] {
		loc := decodePoint(br)
		c.Location = &loc
	}
	if classesWithRotation[className] {
		rot := decodeRotation(br)
		c.Rotation = &rot
	}

	ctx.liveActors[actor] = classID
	return c
}

func decodeUpdated(br *BitReader, ctx *decodeContext, actor uint32) *rep.Updated {
	u := &rep.Updated{}
	for br.GetBool() {
		u.Attributes = append(u.Attributes, decodeAttribute(br, ctx, actor))
	}
	return u
}

func decodeAttribute(br *BitReader, ctx *decodeContext, actor uint32) rep.Attribute {
	classID, ok := ctx.liveActors[actor]
	if !ok {
		fail(UnknownActor, "")
	}

	attrs, ok := ctx.classAttrs[classID]
	if !ok {
		fail(UnknownClass, "")
	}

	streamID := br.GetSerializedInt(attrs.maxKey())

	objectID, ok := attrs[streamID]
	if !ok {
		fail(UnknownStreamID, "")
	}

	if int(objectID) >= len(ctx.objects) {
		fail(UnknownAttributeIndex, "")
	}
	objectName := ctx.objects[objectID]

	value := decodeAttributeValue(br, ctx, objectName)

	return rep.Attribute{
		ClassID:    classID,
		StreamID:   streamID,
		ObjectID:   objectID,
		ObjectName: rep.Text{Value: objectName},
		Value:      value,
	}
}
