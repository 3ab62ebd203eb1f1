package snlvm

type Interrupt struct {
	Step bool
}

var InterruptStep = &Interrupt{
	Step: true,
}
