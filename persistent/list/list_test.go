package list

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

func TestListEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	l := Immutable[int]()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Error("expected Immutable[int]() to be empty, isn't")
	}
	if _, ok := l.Head().Value(); ok {
		t.Error("expected Head of empty list to be Nothing, isn't")
	}
	if !l.Tail().IsEmpty() {
		t.Error("expected Tail of empty list to be empty, isn't")
	}
}

func TestListStructuralSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	a := Immutable[int]().Push(1).Push(2)
	b := a.Push(3)
	t.Logf("a = %s, b = %s", a, b)
	if diff := cmp.Diff([]int{2, 1}, collect(a)); diff != "" {
		t.Errorf("expected a to be unaffected by consing b, isn't:\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, collect(b)); diff != "" {
		t.Errorf("expected b to yield (3 2 1), doesn't:\n%s", diff)
	}
	if b.head.next != a.head {
		t.Logf("b = %s", printChain(b))
		t.Error("expected b's tail to be a's chain itself, isn't")
	}
	if a.head.refs != 2 {
		t.Errorf("expected a's head to be shared by 2 strong links, has %d", a.head.refs)
	}
}

func TestListReleaseLeavesSharedSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	a := Of(2, 1)
	b := a.Push(3)
	b.Release()
	if !b.IsEmpty() {
		t.Error("expected released handle to be empty, isn't")
	}
	// a must be fully intact: release stopped at the first shared cell
	if diff := cmp.Diff([]int{2, 1}, collect(a)); diff != "" {
		t.Errorf("expected a to survive releasing b, didn't:\n%s", diff)
	}
	if a.head.refs != 1 {
		t.Errorf("expected a's head refcount back at 1, is %d", a.head.refs)
	}
	a.Release()
}

func TestListTailAndPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	l := Of(1, 2, 3)
	head, rest := l.Pop()
	require.Equal(t, 1, head.WithDefault(-1))
	require.Equal(t, 2, rest.Len())
	require.Equal(t, []int{2, 3}, collect(rest))
	// the original handle is not mutated by Pop
	require.Equal(t, []int{1, 2, 3}, collect(l))
	require.Same(t, l.head.next, rest.head)
	require.Equal(t, 2, rest.head.refs, "tail cell referenced by l's head and by rest")
}

func TestListClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	l := Of(1, 2)
	c := l.Clone()
	require.Equal(t, 2, l.head.refs, "clone must bump the head refcount")
	require.True(t, Equal(l, c))
	c.Release()
	require.Equal(t, 1, l.head.refs)
	require.Equal(t, []int{1, 2}, collect(l))
}

func TestListIteratorRestart(t *testing.T) {
	l := Of(1, 2, 3)
	first := collect(l)
	second := collect(l)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expected All to be restartable, isn't:\n%s", diff)
	}
	for range l.All() { // early break is harmless
		break
	}
	if l.Len() != 3 {
		t.Error("expected iteration to leave the handle untouched, didn't")
	}
}

func TestListLongRelease(t *testing.T) {
	// regression: release must unwind iteratively, not once-per-cell on the
	// call stack
	l := Immutable[int]()
	const n = 100_000
	for i := 0; i < n; i++ {
		prev := l
		l = l.Push(i)
		prev.Release()
	}
	if l.Len() != n {
		t.Fatalf("expected list of length %d, is %d", n, l.Len())
	}
	l.Release()
	if !l.IsEmpty() {
		t.Error("expected Release to empty the handle, didn't")
	}
}

func TestListEqualAndString(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	if !Equal(a, b) {
		t.Error("expected equally built lists to be Equal, aren't")
	}
	if !Equal(a, a.Clone()) {
		t.Error("expected a list to Equal its clone, doesn't")
	}
	if Equal(a, b.Tail()) {
		t.Error("expected lists of different length not to be Equal, are")
	}
	if a.String() != "(1 2 3)" {
		t.Errorf("expected list to print as (1 2 3), is %s", a.String())
	}
}

// --- Helpers -------------------------------------------------------------

func collect[T any](l List[T]) []T {
	var vs []T
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

// printChain renders the cell chain with refcounts for test logs.
func printChain[T any](l List[T]) string {
	header := fmt.Sprintf("\nList(length=%d)\n", l.Len())
	printer := tp.New()
	branch := printer.AddBranch("head")
	for c := l.head; c != nil; c = c.next {
		branch = branch.AddBranch(fmt.Sprintf("%v ×%d", c.value, c.refs))
	}
	return header + printer.String()
}
