package dispatcher

// registry maps every command word this dispatcher understands to its
// handler. Single-byte commands are keyed by that byte; multi-byte
// spellings (see dispatch.go's specialWords) are keyed by the whole
// word. It is filled from commandTable in init: several handlers reach
// registry again through runAtDepth, so a direct initializer would be
// an initialization cycle.
var registry map[string]handler

func init() { registry = commandTable }

var commandTable = map[string]handler{
	// Application.
	"q": cmdQ,
	"Q": cmdQUpper,

	// Help.
	"h":    cmdH,
	"H":    cmdHUpper,
	"help": cmdHelp,
	"Help": cmdHelpFull,

	// Comment/selection-only.
	"#": cmdComment,
	"=": cmdEquals,

	// Paths.
	"f": cmdF,

	// Printing.
	"":  cmdPrintDefault,
	"p": cmdPrintP,
	"n": cmdPrintN,
	"l": cmdPrintL,

	// Scroll.
	"z": cmdZ,
	"Z": cmdZUpper,

	// Basic editing.
	"a": cmdA,
	"i": cmdI,
	"A": cmdAUpper,
	"I": cmdIUpper,
	"c": cmdC,
	"C": cmdCUpper,
	"d": cmdD,
	"y": cmdY,
	"x": cmdX,
	"X": cmdXUpper,
	"k": cmdK,
	"K": cmdKUpper,
	"m": cmdM,
	"M": cmdMUpper,
	"t": cmdT,
	"T": cmdTUpper,
	"j": cmdJ,
	"J": cmdJUpper,

	// Regex.
	"s": cmdS,
	"g": cmdG,
	"v": cmdV,
	"G": cmdGUpper,
	"V": cmdVUpper,

	// IO.
	"e":  cmdE,
	"E":  cmdEUpper,
	"r":  cmdR,
	"w":  cmdW,
	"W":  cmdWUpper,
	"wq": cmdWQ,
	"!":  cmdBang,
	"|":  cmdPipe,

	// Undo/redo/history view.
	"u": cmdU,

	// Macros.
	":": cmdMacro,
}
