package op

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/ib-77/twotrack/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tryParseInt(s string) rop.Result[int, string] {
	v, err := strconv.Atoi(s)
	if err != nil {
		return rop.Failure[int, string](fmt.Sprintf("'%s' is not a number", s))
	}
	return rop.Success[int, string](v)
}

func requireNilArgumentPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, rop.ErrNilArgument)
	}()
	fn()
}

func TestMapOperators(t *testing.T) {
	t.Parallel()

	double := Map[int, int, string](func(v int) int { return v * 2 })
	require.Equal(t, rop.Success[int, string](4), double(rop.Success[int, string](2)))
	require.Equal(t, rop.Failure[int, string]("x"), double(rop.Failure[int, string]("x")))

	upper := MapFailure[int, string, int](func(f string) int { return len(f) })
	require.Equal(t, rop.Failure[int, int](3), upper(rop.Failure[int, string]("abc")))

	both := MapEither[int, string, string, error](strconv.Itoa, errors.New)
	require.Equal(t, "5", both(rop.Success[int, string](5)).Value())
	require.EqualError(t, both(rop.Failure[int, string]("bad")).Failure(), "bad")
}

func TestBindOperators(t *testing.T) {
	t.Parallel()

	parse := Bind[string, int, string](tryParseInt)
	require.Equal(t, rop.Success[int, string](7), parse(rop.Success[string, string]("7")))
	require.Equal(t, rop.Failure[int, string]("'q' is not a number"), parse(rop.Success[string, string]("q")))
	require.Equal(t, rop.Failure[int, string]("init"), FlatMap[string, int, string](tryParseInt)(rop.Failure[string, string]("init")))

	fallback := BindFailure[int, string, string](func(f string) rop.Result[int, string] {
		return rop.Success[int, string](0)
	})
	require.Equal(t, rop.Success[int, string](0), fallback(rop.Failure[int, string]("x")))

	either := BindEither[int, string, string, string](
		func(v int) rop.Result[string, string] { return rop.Success[string, string](strconv.Itoa(v)) },
		func(f string) rop.Result[string, string] { return rop.Failure[string, string]("wrapped " + f) })
	require.Equal(t, rop.Failure[string, string]("wrapped x"), either(rop.Failure[int, string]("x")))
}

func TestSwapAndFlip(t *testing.T) {
	t.Parallel()

	require.Equal(t, rop.Failure[string, int](1), Swap[int, string]()(rop.Success[int, string](1)))
	require.Equal(t, rop.Success[string, int]("e"), Flip[int, string]()(rop.Failure[int, string]("e")))
}

func TestPeekOperators(t *testing.T) {
	t.Parallel()

	var log []string
	pipeline := Compose(
		IfSuccess[int, string](func(v int) { log = append(log, "ok") }),
		Compose(
			IfFailure[int, string](func(f string) { log = append(log, "failed "+f) }),
			PeekEither[int, string](
				func(v int) { log = append(log, "either ok") },
				func(f string) { log = append(log, "either failed") })))

	require.Equal(t, rop.Success[int, string](1), pipeline(rop.Success[int, string](1)))
	require.Equal(t, rop.Failure[int, string]("x"), pipeline(rop.Failure[int, string]("x")))
	require.Equal(t, []string{"ok", "either ok", "failed x", "either failed"}, log)

	calls := 0
	Peek[int, string](func(int) { calls++ })(rop.Success[int, string](1))
	PeekFailure[int, string](func(string) { calls++ })(rop.Success[int, string](1))
	require.Equal(t, 1, calls)
}

func TestTerminalOperators(t *testing.T) {
	t.Parallel()

	s := rop.Success[int, string](3)
	f := rop.Failure[int, string]("four")

	v, err := OrError[int, string]()(s)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	_, err = OrError[int, string]()(f)
	require.ErrorIs(t, err, rop.ErrNoValuePresent)

	_, err = OrErrorWith[int, string](errors.New)(f)
	require.EqualError(t, err, "four")

	length := func(f string) int { return len(f) }
	require.Equal(t, 4, OrElse[int, string](length)(f))
	require.Equal(t, -1, DefaultsTo[int, string](-1)(f))
	require.Equal(t, 3, DefaultsTo[int, string](-1)(s))
	require.Equal(t, -2, DefaultsToFunc[int, string](func() int { return -2 })(f))
	require.Equal(t, rop.Success[int, rop.Unit](4), Recover[int, string](length)(f))

	require.Equal(t, rop.Some(3), ToOption[int, string]()(s))
	require.Equal(t, []int{3}, ToSlice[int, string]()(s))
	require.Empty(t, slices.Collect(ToSeq[int, string]()(f)))
	require.Equal(t, 1, Count[int, string]()(s))
	require.Equal(t, 0, Count[int, string]()(f))

	assert.True(t, IsSuccess[int, string]()(s))
	assert.True(t, IsFailure[int, string]()(f))

	odd := func(v int) bool { return v%2 == 1 }
	assert.True(t, AnyMatch[int, string](odd)(s))
	assert.False(t, AnyMatch[int, string](odd)(f))
	assert.True(t, AllMatch[int, string](odd)(f))

	describe := Fold[int, string, string](strconv.Itoa, func(f string) string { return "!" + f })
	require.Equal(t, "3", describe(s))
	require.Equal(t, "!four", describe(f))
}

func TestOperators_NilArgumentsPanicWhenBuilt(t *testing.T) {
	t.Parallel()

	requireNilArgumentPanic(t, func() { Map[int, int, string](nil) })
	requireNilArgumentPanic(t, func() { MapFailure[int, string, int](nil) })
	requireNilArgumentPanic(t, func() { MapEither[int, int, string, string](nil, nil) })
	requireNilArgumentPanic(t, func() { Bind[int, int, string](nil) })
	requireNilArgumentPanic(t, func() { FlatMap[int, int, string](nil) })
	requireNilArgumentPanic(t, func() { BindFailure[int, string, string](nil) })
	requireNilArgumentPanic(t, func() { BindEither[int, int, string, string](nil, nil) })
	requireNilArgumentPanic(t, func() { Peek[int, string](nil) })
	requireNilArgumentPanic(t, func() { IfSuccess[int, string](nil) })
	requireNilArgumentPanic(t, func() { PeekFailure[int, string](nil) })
	requireNilArgumentPanic(t, func() { IfFailure[int, string](nil) })
	requireNilArgumentPanic(t, func() { PeekEither[int, string](nil, nil) })
	requireNilArgumentPanic(t, func() { OrErrorWith[int, string](nil) })
	requireNilArgumentPanic(t, func() { OrElse[int, string](nil) })
	requireNilArgumentPanic(t, func() { DefaultsToFunc[int, string](nil) })
	requireNilArgumentPanic(t, func() { Recover[int, string](nil) })
	requireNilArgumentPanic(t, func() { AnyMatch[int, string](nil) })
	requireNilArgumentPanic(t, func() { AllMatch[int, string](nil) })
	requireNilArgumentPanic(t, func() { Fold[int, string, int](nil, nil) })
	requireNilArgumentPanic(t, func() { Compose[int, int, int](nil, func(int) int { return 0 }) })
}
