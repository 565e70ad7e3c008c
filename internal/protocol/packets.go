package protocol

// Registered packet descriptors. IDs and field lists are authoritative
// per spec §4.1. ID 0x00 is shared between PlayerIdentification (C→S) and
// ServerIdentification (S→C); they are distinct descriptors because their
// field lists (and therefore their decode/encode behavior) differ by
// direction, same as the original protocol's PacketInfo pairing.
var (
	DescPlayerIdentification = &Descriptor{
		ID:   0x00,
		Name: "PlayerIdentification",
		Fields: []Field{
			{KindUnsignedByte, "version"},
			{KindString, "username"},
			{KindString, "mp_pass"},
			{KindUnsignedByte, "cpe_byte"},
		},
	}

	DescServerIdentification = &Descriptor{
		ID:   0x00,
		Name: "ServerIdentification",
		Fields: []Field{
			{KindUnsignedByte, "version"},
			{KindString, "name"},
			{KindString, "motd"},
			{KindUnsignedByte, "user_type"},
		},
	}

	DescPing = &Descriptor{ID: 0x01, Name: "Ping"}

	DescLevelInitialize = &Descriptor{ID: 0x02, Name: "LevelInitialize"}

	DescLevelDataChunk = &Descriptor{
		ID:   0x03,
		Name: "LevelDataChunk",
		Fields: []Field{
			{KindShort, "length"},
			{KindByteArray, "data"},
			{KindUnsignedByte, "percent"},
		},
	}

	DescLevelFinalize = &Descriptor{
		ID:     0x04,
		Name:   "LevelFinalize",
		Fields: []Field{{KindCoarseVector, "map_size"}},
	}

	DescClientSetBlock = &Descriptor{
		ID:   0x05,
		Name: "ClientSetBlock",
		Fields: []Field{
			{KindCoarseVector, "pos"},
			{KindUnsignedByte, "mode"},
			{KindUnsignedByte, "block"},
		},
	}

	DescServerSetBlock = &Descriptor{
		ID:   0x06,
		Name: "ServerSetBlock",
		Fields: []Field{
			{KindCoarseVector, "pos"},
			{KindUnsignedByte, "block"},
		},
	}

	DescSpawnPlayer = &Descriptor{
		ID:   0x07,
		Name: "SpawnPlayer",
		Fields: []Field{
			{KindSignedByte, "player_id"},
			{KindString, "name"},
			{KindFineVector, "position"},
		},
	}

	DescPositionUpdate = &Descriptor{
		ID:   0x08,
		Name: "PositionUpdate",
		Fields: []Field{
			{KindSignedByte, "player_id"},
			{KindFineVector, "position"},
		},
	}

	DescDespawnPlayer = &Descriptor{
		ID:     0x0c,
		Name:   "DespawnPlayer",
		Fields: []Field{{KindSignedByte, "player_id"}},
	}

	DescChatMessage = &Descriptor{
		ID:   0x0d,
		Name: "ChatMessage",
		Fields: []Field{
			{KindSignedByte, "player_id"},
			{KindString, "message"},
		},
	}

	DescDisconnect = &Descriptor{
		ID:     0x0e,
		Name:   "Disconnect",
		Fields: []Field{{KindString, "reason"}},
	}

	DescUpdateUserType = &Descriptor{
		ID:     0x0f,
		Name:   "UpdateUserType",
		Fields: []Field{{KindUnsignedByte, "mode"}},
	}
)

// UserType wire values for UpdateUserType.mode / ServerIdentification.user_type.
const (
	UserTypeNormal   uint8 = 0x00
	UserTypeOperator uint8 = 0x64
)

// ClientBound lists every descriptor the server may parse from a client,
// keyed by packet_id. Any other ID received from a client is a framing
// error (spec §4.1: "any other ID received from a client is a framing
// error and the connection is dropped").
var ClientBound = map[uint8]*Descriptor{
	0x00: DescPlayerIdentification,
	0x05: DescClientSetBlock,
	0x08: DescPositionUpdate,
	0x0d: DescChatMessage,
}

// NewServerIdentification builds a ready-to-pack ServerIdentification packet.
func NewServerIdentification(name, motd string, userType uint8) *Packet {
	p := DescServerIdentification.New()
	p.Values["version"] = uint8(7)
	p.Values["name"] = name
	p.Values["motd"] = motd
	p.Values["user_type"] = userType
	return p
}

// NewPing builds a Ping packet.
func NewPing() *Packet { return DescPing.New() }

// NewLevelInitialize builds a LevelInitialize packet.
func NewLevelInitialize() *Packet { return DescLevelInitialize.New() }

// NewLevelDataChunk builds a LevelDataChunk packet. data must be exactly
// 1024 bytes (callers pad the final, short chunk themselves so the
// reported length reflects the real byte count).
func NewLevelDataChunk(data []byte, length uint16, percent uint8) *Packet {
	p := DescLevelDataChunk.New()
	p.Values["length"] = int16(length)
	p.Values["data"] = data
	p.Values["percent"] = percent
	return p
}

// NewLevelFinalize builds a LevelFinalize packet.
func NewLevelFinalize(mapSize Position) *Packet {
	p := DescLevelFinalize.New()
	p.Values["map_size"] = mapSize
	return p
}

// NewServerSetBlock builds a ServerSetBlock packet.
func NewServerSetBlock(pos Position, block uint8) *Packet {
	p := DescServerSetBlock.New()
	p.Values["pos"] = pos
	p.Values["block"] = block
	return p
}

// NewSpawnPlayer builds a SpawnPlayer packet. playerID is -1 for the
// "self" sentinel used in a joiner's own spawn packet.
func NewSpawnPlayer(playerID int8, name string, position Position) *Packet {
	p := DescSpawnPlayer.New()
	p.Values["player_id"] = playerID
	p.Values["name"] = name
	p.Values["position"] = position
	return p
}

// NewPositionUpdate builds a PositionUpdate packet.
func NewPositionUpdate(playerID int8, position Position) *Packet {
	p := DescPositionUpdate.New()
	p.Values["player_id"] = playerID
	p.Values["position"] = position
	return p
}

// NewDespawnPlayer builds a DespawnPlayer packet.
func NewDespawnPlayer(playerID int8) *Packet {
	p := DescDespawnPlayer.New()
	p.Values["player_id"] = playerID
	return p
}

// NewChatMessage builds a ChatMessage packet.
func NewChatMessage(playerID int8, message string) *Packet {
	p := DescChatMessage.New()
	p.Values["player_id"] = playerID
	p.Values["message"] = message
	return p
}

// NewDisconnect builds a Disconnect packet.
func NewDisconnect(reason string) *Packet {
	p := DescDisconnect.New()
	p.Values["reason"] = reason
	return p
}

// NewUpdateUserType builds an UpdateUserType packet.
func NewUpdateUserType(mode uint8) *Packet {
	p := DescUpdateUserType.New()
	p.Values["mode"] = mode
	return p
}
