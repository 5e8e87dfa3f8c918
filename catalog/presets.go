package catalog

import "github.com/hupe1980/crcgo"

// Presets from the CRC RevEng catalogue. They are shared values and must not
// be modified.
var (
	CRC32ISOHDLC = &crcgo.Algorithm{Name: "CRC-32/ISO-HDLC", Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF, Check: 0xCBF43926}
	CRC32ISCSI   = &crcgo.Algorithm{Name: "CRC-32/ISCSI", Width: 32, Poly: 0x1EDC6F41, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF, Check: 0xE3069283}
	CRC32AIXM    = &crcgo.Algorithm{Name: "CRC-32/AIXM", Width: 32, Poly: 0x814141AB, Check: 0x3010BF7F}
	CRC32AUTOSAR = &crcgo.Algorithm{Name: "CRC-32/AUTOSAR", Width: 32, Poly: 0xF4ACFB13, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF, Check: 0x1697D06A}
	CRC32BASE91D = &crcgo.Algorithm{Name: "CRC-32/BASE91-D", Width: 32, Poly: 0xA833982B, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF, Check: 0x87315576}
	CRC32BZIP2   = &crcgo.Algorithm{Name: "CRC-32/BZIP2", Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, Check: 0xFC891918}
	CRC32CDROM   = &crcgo.Algorithm{Name: "CRC-32/CD-ROM-EDC", Width: 32, Poly: 0x8001801B, RefIn: true, RefOut: true, Check: 0x6EC2EDC4}
	CRC32CKSUM   = &crcgo.Algorithm{Name: "CRC-32/CKSUM", Width: 32, Poly: 0x04C11DB7, XorOut: 0xFFFFFFFF, Check: 0x765E7680}
	CRC32JAMCRC  = &crcgo.Algorithm{Name: "CRC-32/JAMCRC", Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, Check: 0x340BC6D9}
	CRC32MEF     = &crcgo.Algorithm{Name: "CRC-32/MEF", Width: 32, Poly: 0x741B8CD7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, Check: 0xD2C22F51}
	CRC32MPEG2   = &crcgo.Algorithm{Name: "CRC-32/MPEG-2", Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, Check: 0x0376E6E7}
	CRC32XFER    = &crcgo.Algorithm{Name: "CRC-32/XFER", Width: 32, Poly: 0x000000AF, Check: 0xBD0BE338}

	CRC31PHILIPS = &crcgo.Algorithm{Name: "CRC-31/PHILIPS", Width: 31, Poly: 0x04C11DB7, Init: 0x7FFFFFFF, XorOut: 0x7FFFFFFF, Check: 0x0CE9E46C}
	CRC24OPENPGP = &crcgo.Algorithm{Name: "CRC-24/OPENPGP", Width: 24, Poly: 0x864CFB, Init: 0xB704CE, Check: 0x21CF02}

	CRC16ARC     = &crcgo.Algorithm{Name: "CRC-16/ARC", Width: 16, Poly: 0x8005, RefIn: true, RefOut: true, Check: 0xBB3D}
	CRC16IBM3740 = &crcgo.Algorithm{Name: "CRC-16/IBM-3740", Width: 16, Poly: 0x1021, Init: 0xFFFF, Check: 0x29B1}
	CRC16KERMIT  = &crcgo.Algorithm{Name: "CRC-16/KERMIT", Width: 16, Poly: 0x1021, RefIn: true, RefOut: true, Check: 0x2189}
	CRC16MODBUS  = &crcgo.Algorithm{Name: "CRC-16/MODBUS", Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, Check: 0x4B37}
	CRC16XMODEM  = &crcgo.Algorithm{Name: "CRC-16/XMODEM", Width: 16, Poly: 0x1021, Check: 0x31C3}
	CRC15CAN     = &crcgo.Algorithm{Name: "CRC-15/CAN", Width: 15, Poly: 0x4599, Check: 0x059E}

	CRC8MAXIMDOW = &crcgo.Algorithm{Name: "CRC-8/MAXIM-DOW", Width: 8, Poly: 0x31, RefIn: true, RefOut: true, Check: 0xA1}
	CRC8SMBUS    = &crcgo.Algorithm{Name: "CRC-8/SMBUS", Width: 8, Poly: 0x07, Check: 0xF4}
	CRC7MMC      = &crcgo.Algorithm{Name: "CRC-7/MMC", Width: 7, Poly: 0x09, Check: 0x75}
	CRC5USB      = &crcgo.Algorithm{Name: "CRC-5/USB", Width: 5, Poly: 0x05, Init: 0x1F, RefIn: true, RefOut: true, XorOut: 0x1F, Check: 0x19}
	CRC3ROHC     = &crcgo.Algorithm{Name: "CRC-3/ROHC", Width: 3, Poly: 0x3, Init: 0x7, RefIn: true, RefOut: true, Check: 0x6}
)

type preset struct {
	alg     *crcgo.Algorithm
	aliases []string
}

var builtin = []preset{
	{CRC32ISOHDLC, []string{"CRC-32", "CRC-32/IEEE", "CRC-32/ADCCP", "CRC-32/V-42", "CRC-32/XZ", "PKZIP"}},
	{CRC32ISCSI, []string{"CRC-32C", "CRC-32/CASTAGNOLI", "CRC-32/BASE91-C", "CRC-32/INTERLAKEN"}},
	{CRC32AIXM, []string{"CRC-32Q"}},
	{CRC32AUTOSAR, nil},
	{CRC32BASE91D, []string{"CRC-32D"}},
	{CRC32BZIP2, []string{"CRC-32/AAL5", "CRC-32/DECT-B", "B-CRC-32"}},
	{CRC32CDROM, nil},
	{CRC32CKSUM, []string{"CKSUM", "CRC-32/POSIX"}},
	{CRC32JAMCRC, []string{"JAMCRC"}},
	{CRC32MEF, nil},
	{CRC32MPEG2, nil},
	{CRC32XFER, []string{"XFER"}},
	{CRC31PHILIPS, nil},
	{CRC24OPENPGP, []string{"CRC-24"}},
	{CRC16ARC, []string{"ARC", "CRC-16", "CRC-16/LHA", "CRC-IBM"}},
	{CRC16IBM3740, []string{"CRC-16/AUTOSAR", "CRC-16/CCITT-FALSE"}},
	{CRC16KERMIT, []string{"CRC-16/CCITT", "CRC-16/CCITT-TRUE", "KERMIT"}},
	{CRC16MODBUS, []string{"MODBUS"}},
	{CRC16XMODEM, []string{"CRC-16/ACORN", "CRC-16/LTE", "XMODEM", "ZMODEM"}},
	{CRC15CAN, []string{"CRC-15"}},
	{CRC8MAXIMDOW, []string{"CRC-8/MAXIM", "DOW-CRC"}},
	{CRC8SMBUS, []string{"CRC-8"}},
	{CRC7MMC, []string{"CRC-7"}},
	{CRC5USB, nil},
	{CRC3ROHC, nil},
}
