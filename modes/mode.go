package modes

type Mode uint8

const (
	ModeProduction Mode = iota
	ModeTest
)
