package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		t *testing.T,
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
	})
}

func TestModuleForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		t2 *testing.T,
		mode Mode,
	) {
		if t2 != t {
			t.Fatal()
		}
		if mode != ModeTest {
			t.Fatal()
		}
	})
}
