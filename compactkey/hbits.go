package compactkey

// hbitsMask is XORed into the raw hbits secret
var hbitsMask = [32]byte{
	0x9b, 0xae, 0x41, 0x66, 0x0b, 0xb8, 0x4c, 0x84,
	0x39, 0x34, 0xd4, 0x6a, 0x7f, 0x4d, 0xba, 0x04,
	0x1b, 0x48, 0xc9, 0x0d, 0x7e, 0x0a, 0xe2, 0x34,
	0xbe, 0x69, 0x3a, 0x39, 0x50, 0x87, 0xaf, 0x0a,
}

func xorHbitsMask(secret []byte) {
	for i := 0; i < len(hbitsMask) && i < len(secret); i++ {
		secret[i] ^= hbitsMask[i]
	}
}
