package codec

import (
	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
)

var (
	byName = map[string]carlaserde.Codec{}
	byCode = map[byte]carlaserde.Codec{}
)

func init() {
	Register(JSON{})
	Register(CBOR{})
	Register(Msgpack{})
}

// Register adds a codec to the package registry. Later registrations with
// the same name or code win; call it from init when extending the set.
func Register(c carlaserde.Codec) {
	byName[c.Name()] = c
	byCode[c.Code()] = c
}

// ByName looks up a registered codec by format name.
func ByName(name string) (carlaserde.Codec, bool) {
	c, ok := byName[name]
	return c, ok
}

// ByCode looks up a registered codec by wire discriminator.
func ByCode(code byte) (carlaserde.Codec, bool) {
	c, ok := byCode[code]
	return c, ok
}
