package cmds

import "testing"

func TestVar(t *testing.T) {
	executor := NewExecutor()
	defer swapDefault(executor)()

	v := Var[string]("-file")
	executor.MustExecute([]string{"-file", "foo.snl"})
	if *v != "foo.snl" {
		t.Fatalf("got %v", *v)
	}
	executor.MustExecute([]string{"-file."})
	if *v != "" {
		t.Fatalf("got %v", *v)
	}
}

func TestSwitch(t *testing.T) {
	executor := NewExecutor()
	defer swapDefault(executor)()

	v := Switch("-debug")
	if *v {
		t.Fatal("expected false")
	}
	executor.MustExecute([]string{"-debug"})
	if !*v {
		t.Fatal("expected true")
	}
	executor.MustExecute([]string{"!-debug"})
	if *v {
		t.Fatal("expected false")
	}
}

func TestCollect(t *testing.T) {
	executor := NewExecutor()
	defer swapDefault(executor)()

	v := Collect[int]("-at")
	executor.MustExecute([]string{"-at", "1", "-at", "2"})
	if len(*v) != 2 || (*v)[0] != 1 || (*v)[1] != 2 {
		t.Fatalf("got %v", *v)
	}
}

func swapDefault(executor *Executor) func() {
	saved := defaultExecutor
	defaultExecutor = executor
	return func() {
		defaultExecutor = saved
	}
}
