package snlvm

// ContextKind is the test polarity of a loop context.
type ContextKind uint8

const (
	// WhileNonzero loops while the current cell reads nonzero (the `z` block).
	WhileNonzero ContextKind = iota
	// WhileZero loops while the current cell reads zero (the `w` block).
	WhileZero
)

// Context records an entered loop: where to jump back to, and under which
// condition. Return is the position just after the opening bracket.
type Context struct {
	Kind   ContextKind
	Return int
}
