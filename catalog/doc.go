// Package catalog provides named CRC presets for the crcgo engine.
//
// The built-in presets follow the CRC RevEng catalogue; each carries its
// check value (the checksum of "123456789"). Names and aliases are matched
// case-insensitively:
//
//	alg, err := catalog.Lookup("crc-32c")
//	c := crcgo.New(alg)
//
// # Custom Presets
//
// A Catalog can be extended from YAML or JSON:
//
//	algorithms:
//	  - name: CRC-32/EXAMPLE
//	    aliases: [EXAMPLE]
//	    width: 32
//	    poly: 0x04C11DB7
//	    init: 0xFFFFFFFF
//	    refin: true
//	    refout: true
//	    xorout: 0xFFFFFFFF
//	    check: 0xCBF43926
//
// Every entry is validated. When check is given it is verified against the
// engine; otherwise it is computed.
package catalog
