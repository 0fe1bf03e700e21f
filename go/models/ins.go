package models

type Ins interface {
	Addr() uint64
	Bytes() []byte
	Mnemonic() string
	OpStr() string
}

// Assembler is a single-use keystone-like engine. Callers must Close it.
type Assembler interface {
	Asm(asm string, addr uint64) ([]byte, error)
	Close() error
}

// Disassembler is a single-use capstone-like engine. Callers must Close it.
type Disassembler interface {
	Dis(mem []byte, addr uint64) ([]Ins, error)
	Close() error
}

type AsmBuilder func(arch Arch, config *Config) (Assembler, error)
type DisBuilder func(arch Arch, config *Config) (Disassembler, error)
