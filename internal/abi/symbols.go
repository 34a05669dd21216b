package abi

// Symbol naming
const (
	// SymbolPrefix is prepended to every procedure name to form its
	// assembler symbol (Mach-O C symbol convention).
	SymbolPrefix = "_"

	// LocalLabelPrefix marks assembler-local labels.
	LocalLabelPrefix = ".L."

	// ReturnSuffix names the shared epilogue of a procedure.
	ReturnSuffix = ".return"
)

// Relocation operators for page-relative procedure addresses.
const (
	RelocPage    = "@PAGE"
	RelocPageOff = "@PAGEOFF"
)

// SymbolName returns the assembler symbol of procedure name.
func SymbolName(name string) string {
	return SymbolPrefix + name
}

// ReturnLabel returns the label of the epilogue of procedure name.
func ReturnLabel(name string) string {
	return LocalLabelPrefix + SymbolName(name) + ReturnSuffix
}
