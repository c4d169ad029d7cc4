package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	b := NoopBracketHooks{}
	b.OnBuild(10, 9, time.Millisecond)
	b.OnBattle(3, true)
	b.OnTiebreak(3)
	b.OnRoundComplete(3, "A", time.Millisecond)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 19)
	r.OnRenderComplete(ctx, "svg", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Bracket().(NoopBracketHooks); !ok {
		t.Error("Bracket() should return NoopBracketHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customBracket := &testBracketHooks{}
	SetBracketHooks(customBracket)
	if Bracket() != customBracket {
		t.Error("SetBracketHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Bracket().(NoopBracketHooks); !ok {
		t.Error("Reset() should restore NoopBracketHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testBracketHooks{}
	SetBracketHooks(custom)
	SetBracketHooks(nil)

	if Bracket() != custom {
		t.Error("SetBracketHooks(nil) should be ignored")
	}
}

// Test implementations
type testBracketHooks struct{ NoopBracketHooks }
type testRenderHooks struct{ NoopRenderHooks }
type testCacheHooks struct{ NoopCacheHooks }
