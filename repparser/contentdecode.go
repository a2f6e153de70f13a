// This file contains the content section decoder: the outer lists, the
// embedded bit-packed frame blob, and the frame stream itself.

package repparser

import "github.com/rlreplay/rlrep/rep"

func decodeKeyframe(r *ByteReader) rep.Keyframe {
	return rep.Keyframe{
		Time:   r.GetFloat32(),
		Frame:  r.GetUint32(),
		Offset: r.GetUint32(),
	}
}

func decodeMessage(r *ByteReader) rep.Message {
	return rep.Message{
		Frame: r.GetUint32(),
		Label: r.GetText(),
		Value: r.GetText(),
	}
}

func decodeMark(r *ByteReader) rep.Mark {
	return rep.Mark{
		Value: r.GetText(),
		Frame: r.GetUint32(),
	}
}

func decodeClass(r *ByteReader) rep.Class {
	return rep.Class{
		Name: r.GetText(),
		ID:   r.GetUint32(),
	}
}

func decodeCacheObject(r *ByteReader) rep.CacheObject {
	// Wire order is object id first, stream id second; see the class
	// resolver's attrs table, which is keyed the other way around
	// (stream id -> object id).
	return rep.CacheObject{
		ObjectID: r.GetUint32(),
		StreamID: r.GetUint32(),
	}
}

func decodeCache(r *ByteReader) rep.Cache {
	return rep.Cache{
		ClassID:          r.GetUint32(),
		ParentClassIndex: r.GetUint32(),
		ClassIndex:       r.GetUint32(),
		Objects:          GetList(r, decodeCacheObject),
	}
}

// decodeContent reads the content section given the already-decoded
// header, whose NumFrames/MaxChannels properties bound the frame stream.
func decodeContent(r *ByteReader, header *rep.Header, cfg Config) *rep.Content {
	levels := GetList(r, (*ByteReader).GetText)
	keyframes := GetList(r, decodeKeyframe)

	frameBytesLen := r.GetUint32()
	frameBytes := r.GetBytes(frameBytesLen)

	messages := GetList(r, decodeMessage)
	marks := GetList(r, decodeMark)
	packages := GetList(r, (*ByteReader).GetText)
	objects := GetList(r, (*ByteReader).GetText)
	names := GetList(r, (*ByteReader).GetText)
	classes := GetList(r, decodeClass)
	caches := GetList(r, decodeCache)

	c := &rep.Content{
		Levels:    levels,
		Keyframes: keyframes,
		Messages:  messages,
		Marks:     marks,
		Packages:  packages,
		Objects:   objects,
		Names:     names,
		Classes:   classes,
		Caches:    caches,
	}

	if cfg.Debug {
		c.Debug = &rep.ContentDebug{FrameBytes: frameBytes}
	}

	// cfg.Lists only trims the bulky, rarely-consumed lists from the
	// returned value; they are always read off the wire first, since
	// skipping them would desync the cursor ahead of the frame blob.
	if !cfg.Lists {
		c.Messages = nil
		c.Marks = nil
		c.Packages = nil
	}

	if !cfg.Frames {
		return c
	}

	numFrames := headerInt(header.Properties, numFramesKey, 0)
	maxChannels := headerInt(header.Properties, maxChannelsKey, defaultMaxChannels)

	ctx := &decodeContext{
		names:       textValues(names),
		objects:     textValues(objects),
		classes:     newClassByObjectIndex(classes),
		classAttrs:  resolveClassAttributes(caches),
		version:     header.Version,
		maxChannels: maxChannels,
		liveActors:  make(map[uint32]uint32),
	}

	br := newBitReader(frameBytes)
	c.Frames = decodeFrames(br, numFrames, ctx)

	return c
}

func textValues(texts []rep.Text) []string {
	values := make([]string, len(texts))
	for i, t := range texts {
		values[i] = t.Value
	}
	return values
}
