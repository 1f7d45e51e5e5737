package vm

import "errors"

// Outcome is the terminal status of a Step or Run call.
type Outcome int

const (
	// Running means the machine is still executing; Run never returns
	// this, but Step does, after every non-terminal cycle.
	Running Outcome = iota
	// Halted means virtual routine 3 was reached.
	Halted
	// IllegalOperation means a decoded instruction referenced memory or
	// a heap bank outside its permitted bounds, or PC itself became
	// misaligned or out of range.
	IllegalOperation
	// DecodeFailure means the fetched word's opcode/funct3/funct7
	// combination is not one of the ones implemented.
	DecodeFailure
)

var (
	errHalted           = errors.New("vm: halt requested")
	errIllegalOperation = errors.New("vm: illegal operation")
	errDecodeFailure    = errors.New("vm: unsupported opcode/funct combination")
)

// Step runs exactly one fetch-decode-dispatch cycle. On any outcome other
// than Running it has already written the mandated diagnostic (or halt
// message) to m.Stdout; the caller only needs to act on the returned
// Outcome.
func Step(m *Machine) Outcome {
	if m.PC%4 != 0 || m.PC >= InstrMemSize {
		reportIllegalOperation(m.Stdout, m, faultWord(m))
		return IllegalOperation
	}

	word := m.InstrMem[m.PC/4]
	in := Decode(word)
	if in.Format == FormatUnknown {
		reportDecodeFailure(m.Stdout, m, word)
		return DecodeFailure
	}

	if err := dispatch(m, &in); err != nil {
		switch {
		case errors.Is(err, errHalted):
			return Halted
		case errors.Is(err, errDecodeFailure):
			reportDecodeFailure(m.Stdout, m, word)
			return DecodeFailure
		default:
			reportIllegalOperation(m.Stdout, m, word)
			return IllegalOperation
		}
	}
	return Running
}

// Run steps the machine until it reaches a terminal outcome.
func Run(m *Machine) Outcome {
	for {
		if outcome := Step(m); outcome != Running {
			return outcome
		}
	}
}

// faultWord returns the instruction word at the current (possibly
// invalid) PC for diagnostic purposes, or 0 if PC/4 falls outside
// instruction memory entirely.
func faultWord(m *Machine) uint32 {
	idx := m.PC / 4
	if idx < InstrMemWords {
		return m.InstrMem[idx]
	}
	return 0
}

// dispatch routes a decoded instruction to its format-specific handler
// and advances PC, except for the handlers (branches, jal, jalr) that
// set PC themselves.
func dispatch(m *Machine, in *Instruction) error {
	switch in.Format {
	case FormatR:
		if err := execR(m, in); err != nil {
			return err
		}
		m.PC += 4
	case FormatI:
		switch in.Opcode {
		case opIArith:
			if err := execIArith(m, in); err != nil {
				return err
			}
			m.PC += 4
		case opLoad:
			if err := execLoad(m, in); err != nil {
				return err
			}
			m.PC += 4
		case opJALR:
			return execJALR(m, in)
		}
	case FormatS:
		if err := execStore(m, in); err != nil {
			return err
		}
		m.PC += 4
	case FormatSB:
		return execBranch(m, in)
	case FormatU:
		execLUI(m, in)
		m.PC += 4
	case FormatUJ:
		execJAL(m, in)
	}
	return nil
}
