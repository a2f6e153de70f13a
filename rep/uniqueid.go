// This file contains UniqueId and the closed set of remote-platform id
// shapes it can carry.

package rep

import "github.com/rlreplay/rlrep/rep/repcore"

// UniqueID identifies a player across a replay: a platform tag, a
// platform-specific remote id, and a local split-screen slot.
type UniqueID struct {
	System repcore.RemoteIDSystem
	Remote RemoteID
	Local  byte
}

func (*UniqueID) attributeValue() {}

// RemoteID is the closed sum of platform-specific remote id encodings.
type RemoteID interface {
	remoteID()
}

type RemoteIDLocal struct{ Value uint32 }

func (*RemoteIDLocal) remoteID() {}

type RemoteIDSteam struct{ Value uint64 }

func (*RemoteIDSteam) remoteID() {}

type RemoteIDPlayStation struct {
	Name Text
	ID   []byte
}

func (*RemoteIDPlayStation) remoteID() {}

type RemoteIDXbox struct{ Value uint64 }

func (*RemoteIDXbox) remoteID() {}

type RemoteIDSwitch struct{ ID []bool }

func (*RemoteIDSwitch) remoteID() {}
