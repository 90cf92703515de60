package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/raphi011/gb/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Errorf("RunContext(echo hello) = %v, want nil", err)
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("RunContext(exit 1) = nil, want error")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "bad thing")
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if err != context.Canceled {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_VerboseLogsCommand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := RunContext(ctx, "", "echo", "hi"); err != nil {
		t.Fatalf("RunContext = %v, want nil", err)
	}
	if got := buf.String(); got != "$ echo hi\n" {
		t.Errorf("verbose log = %q, want %q", got, "$ echo hi\n")
	}
}

func TestOutputContext_Success(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("OutputContext(echo hello) = %v, want nil", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("OutputContext output = %q, want %q", got, "hello\n")
	}
}

func TestOutputContext_StderrMessage(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'error msg' >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "error msg" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "error msg")
	}
}

func TestOutputContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	_, err := OutputContext(ctx, "", "sleep", "10")
	if err != context.Canceled {
		t.Errorf("OutputContext error = %v, want context.Canceled", err)
	}
}

func TestCombinedContext_Success(t *testing.T) {
	t.Parallel()
	out, code, err := CombinedContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("CombinedContext = %v, want nil", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if out != "hello" {
		t.Errorf("output = %q, want %q", out, "hello")
	}
}

func TestCombinedContext_Failure(t *testing.T) {
	t.Parallel()
	out, code, err := CombinedContext(logCtx(), "", "sh", "-c", "echo 'merge conflict' >&2; exit 2")
	if err == nil {
		t.Fatal("CombinedContext = nil, want error")
	}
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if out != "merge conflict" {
		t.Errorf("output = %q, want %q", out, "merge conflict")
	}
}

func TestCombinedContext_StartFailure(t *testing.T) {
	t.Parallel()
	_, code, err := CombinedContext(logCtx(), "", "definitely-not-a-command")
	if err == nil {
		t.Fatal("CombinedContext = nil, want error")
	}
	if code != -1 {
		t.Errorf("exit code = %d, want -1", code)
	}
}
