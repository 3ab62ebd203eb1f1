package snlvm

// enterBlock evaluates one of the four bracketed opcodes. The opening
// letter must be followed by `[`; if it is not, the letter degrades to a
// warned no-op. The entry test passes when the current cell's zero-ness
// matches wantZero: then the body runs, and for looping constructs a
// context is pushed recording the position just after the bracket.
// Otherwise the whole balanced block is skipped.
func (v *VM) enterBlock(letter byte, wantZero bool, push bool) {
	c, ok := v.currentChar()
	if !ok || c != '[' {
		v.Logger.Warn("bracket letter not followed by '[', ignoring",
			"letter", string(letter),
			"pc", v.PC-1,
		)
		return
	}
	v.nextChar()

	if (v.Tape.Read() == 0) != wantZero {
		v.skipBlock()
		return
	}

	if push {
		kind := WhileNonzero
		if wantZero {
			kind = WhileZero
		}
		v.pushContext(Context{
			Kind:   kind,
			Return: v.PC,
		})
	}
}

// skipBlock advances past the matching `]`, counting nested brackets.
// Every nested construct contributes one `[` and one `]` whatever letter
// introduces it, so a plain depth counter is enough. Running out of
// source just stops.
func (v *VM) skipBlock() {
	depth := 0
	for {
		c, ok := v.nextChar()
		if !ok {
			return
		}
		switch c {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return
			}
			depth--
		}
	}
}
