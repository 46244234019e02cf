// Package assert wraps a testing.T or testing.B with a small set of
// assertions. Assertions prefixed with 'Must' terminate the test case
// immediately; the others fail it but let it continue.
package assert

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func WrapTB(tb testing.TB) T { tb.Helper(); return T{TB: tb} }

type T struct{ testing.TB }

// frameDepth is the number of frames to strip off the callstack when
// reporting the line where an error occurred.
const frameDepth = 2

// MustAssert immediately fails the test if the condition is false.
func (tb T) MustAssert(condition bool, v ...interface{}) {
	tb.Helper()
	_ = tb.assert(true, condition, v...)
}

// Assert fails the test if the condition is false.
func (tb T) Assert(condition bool, v ...interface{}) bool {
	tb.Helper()
	return tb.assert(false, condition, v...)
}

// MustEqual immediately fails the test if exp is not equal to act based on
// reflect.DeepEqual.
func (tb T) MustEqual(exp, act interface{}, v ...interface{}) {
	tb.Helper()
	if !reflect.DeepEqual(exp, act) {
		tb.failCompare(true, exp, act, v...)
	}
}

// Equals fails the test but continues executing if exp is not equal to act
// based on reflect.DeepEqual, and reports whether the assertion succeeded.
func (tb T) Equals(exp, act interface{}, v ...interface{}) bool {
	tb.Helper()
	if !reflect.DeepEqual(exp, act) {
		tb.failCompare(false, exp, act, v...)
		return false
	}
	return true
}

// MustOK immediately fails the test if err is not nil.
func (tb T) MustOK(err error) {
	tb.Helper()
	if err != nil {
		_, file, line, _ := runtime.Caller(frameDepth - 1)
		tb.Fatal(fmt.Sprintf("\nunexpected error at %s:%d\n%s",
			filepath.Base(file), line, err.Error()))
	}
}

func (tb T) assert(fatal bool, condition bool, v ...interface{}) bool {
	tb.Helper()
	if !condition {
		_, file, line, _ := runtime.Caller(frameDepth)
		msg := ""
		if len(v) > 0 {
			msgx := v[0]
			v = v[1:]
			if msgx == nil {
				msg = "<nil>"
			} else if err, ok := msgx.(error); ok {
				msg = err.Error()
			} else {
				msg = msgx.(string)
			}
		}
		v = append([]interface{}{filepath.Base(file), line}, v...)
		tb.fail(fatal, fmt.Sprintf("\nassertion failed at %s:%d\n"+msg, v...))
	}
	return condition
}

func (tb T) failCompare(fatal bool, exp, act interface{}, v ...interface{}) {
	tb.Helper()
	extra := ""
	if len(v) > 0 {
		extra = fmt.Sprintf(" - "+v[0].(string), v[1:]...)
	}
	_, file, line, _ := runtime.Caller(frameDepth + 1)
	tb.fail(fatal, fmt.Sprintf("\nequal failed at %s:%d%s\nexp: %+v\ngot: %+v",
		filepath.Base(file), line, extra, exp, act))
}

func (tb T) fail(fatal bool, msg string) {
	tb.Helper()
	if fatal {
		tb.Fatal(msg)
	} else {
		tb.Error(msg)
	}
}
