package footer

// Row is one line of the hex dump.
type Row struct {
	Address string
	Hex     string
	ASCII   string
}

// GenesisRows covers offsets 0x80-0xCF of the genesis block, where the
// coinbase scriptSig carries the Times headline.
var GenesisRows = [...]Row{
	{"00000080", "01 04 45 54 68 65 20 54 69 6D 65 73 20 30 33 2F", "..EThe Times 03/"},
	{"00000090", "4A 61 6E 2F 32 30 30 39 20 43 68 61 6E 63 65 6C", "Jan/2009 Chancel"},
	{"000000A0", "6C 6F 72 20 6F 6E 20 62 72 69 6E 6B 20 6F 66 20", "lor on brink of "},
	{"000000B0", "73 65 63 6F 6E 64 20 62 61 69 6C 6F 75 74 20 66", "second bailout f"},
	{"000000C0", "6F 72 20 62 61 6E 6B 73 FF FF FF FF 01 00 F2 05", "or banksÿÿÿÿ..ò."},
}

// Palette holds the fill colour of each column.
type Palette struct {
	Address string
	Hex     string
	ASCII   string
}

// DefaultPalette is used for both render modes.
var DefaultPalette = Palette{
	Address: "#565f89", // muted Tokyo Night gray
	Hex:     "#a9b1d6", // Tokyo Night text
	ASCII:   "#F7931A", // bitcoin orange
}
