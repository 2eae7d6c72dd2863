package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	opened   []string
	logouts  int
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Open(_ context.Context, name string) error {
	f.opened = append(f.opened, name)
	return nil
}
func (f *fakeExec) logout(context.Context) error {
	f.logouts++
	return nil
}

func runScript(t *testing.T, f *fakeExec, status string, script string) string {
	t.Helper()
	out := &bytes.Buffer{}
	runREPL(context.Background(), f, func() string { return status }, bufio.NewReader(strings.NewReader(script)), out)
	return out.String()
}

func TestREPL_DispatchesViews(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "", "dashboard\nproducts\nexit\n")

	if len(f.opened) != 2 || f.opened[0] != "dashboard" || f.opened[1] != "products" {
		t.Fatalf("opened = %v", f.opened)
	}
}

func TestREPL_ExitAndQuit(t *testing.T) {
	for _, cmd := range []string{"exit", "quit"} {
		f := &fakeExec{}
		out := runScript(t, f, "", cmd+"\nproducts\n")
		if len(f.opened) != 0 {
			t.Fatalf("%s did not stop the loop: %v", cmd, f.opened)
		}
		if !strings.Contains(out, "Bye!") {
			t.Fatalf("missing farewell: %q", out)
		}
	}
}

func TestREPL_Logout(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "", "logout\nexit\n")
	if f.logouts != 1 {
		t.Fatalf("logouts = %d", f.logouts)
	}
}

func TestREPL_HelpFollowsAuthState(t *testing.T) {
	out := runScript(t, &fakeExec{}, "", "help\nexit\n")
	if !strings.Contains(out, "login, signup, forgot") {
		t.Fatalf("anonymous help missing auth views: %q", out)
	}

	out = runScript(t, &fakeExec{loggedIn: true}, "", "help\nexit\n")
	if !strings.Contains(out, "products, stock, sales, dashboard") {
		t.Fatalf("authenticated help missing data views: %q", out)
	}
}

func TestREPL_StopsOnEOF(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "", "products\n")
	if len(f.opened) != 1 {
		t.Fatalf("opened = %v", f.opened)
	}
}

func TestREPL_ExecutesPartialFinalLine(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "", "sales")
	if len(f.opened) != 1 || f.opened[0] != "sales" {
		t.Fatalf("partial final line not executed: %v", f.opened)
	}
}

func TestREPL_PromptCarriesStatus(t *testing.T) {
	out := runScript(t, &fakeExec{}, " (dana) [2 new]", "exit\n")
	if !strings.Contains(out, "inv (dana) [2 new]> ") {
		t.Fatalf("status not in prompt: %q", out)
	}
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "", "\n   \nexit\n")
	if len(f.opened) != 0 {
		t.Fatalf("blank lines dispatched: %v", f.opened)
	}
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t, &fakeGateway{})
	if got := a.getStatus(); got != "" {
		t.Fatalf("anonymous status = %q", got)
	}

	loginTestUser(t, a)
	a.unseen.Store(3)
	if got := a.getStatus(); got != " (dana) [3 new]" {
		t.Fatalf("status = %q", got)
	}
}
