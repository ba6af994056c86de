/*
File    : go-monkey/std/common_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lookupBuiltin fetches a registered builtin by name for direct testing
func lookupBuiltin(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, builtin := range Builtins {
		if builtin.Name == name {
			return builtin
		}
	}
	t.Fatalf("builtin %q not registered", name)
	return nil
}

// TestBuiltins_Registry verifies that the fixed builtin set is registered
func TestBuiltins_Registry(t *testing.T) {
	for _, name := range []string{"len", "first", "last", "rest", "push", "puts"} {
		assert.NotNil(t, lookupBuiltin(t, name))
	}
}

// TestBuiltins_Len verifies len's arity and type checking and its
// character (not byte) counting
func TestBuiltins_Len(t *testing.T) {
	length := lookupBuiltin(t, "len")
	var buf bytes.Buffer

	result := length.Callback(&buf, &String{Value: "Hello"})
	assert.Equal(t, IntegerType, result.GetType())
	assert.Equal(t, int64(5), result.(*Integer).Value)

	// runes, not bytes: "héllo" is six bytes but five characters
	result = length.Callback(&buf, &String{Value: "héllo"})
	assert.Equal(t, int64(5), result.(*Integer).Value)

	result = length.Callback(&buf, &Integer{Value: 1})
	assert.Equal(t, ErrorType, result.GetType())
	assert.Equal(t, "argument for len not supported", result.(*Error).Message)

	result = length.Callback(&buf)
	assert.Equal(t, ErrorType, result.GetType())
	assert.Equal(t, "unexpected number of args for len", result.(*Error).Message)

	result = length.Callback(&buf, &String{Value: "a"}, &String{Value: "b"})
	assert.Equal(t, "unexpected number of args for len", result.(*Error).Message)
}

// TestBuiltins_ArrayHelpers verifies first, last, rest and push
func TestBuiltins_ArrayHelpers(t *testing.T) {
	var buf bytes.Buffer
	arr := &Array{Elements: []MonkeyObject{
		&Integer{Value: 1},
		&Integer{Value: 2},
		&Integer{Value: 3},
	}}
	empty := &Array{Elements: []MonkeyObject{}}

	first := lookupBuiltin(t, "first")
	result := first.Callback(&buf, arr)
	assert.Equal(t, int64(1), result.(*Integer).Value)
	assert.Equal(t, NilType, first.Callback(&buf, empty).GetType())

	last := lookupBuiltin(t, "last")
	result = last.Callback(&buf, arr)
	assert.Equal(t, int64(3), result.(*Integer).Value)
	assert.Equal(t, NilType, last.Callback(&buf, empty).GetType())

	rest := lookupBuiltin(t, "rest")
	result = rest.Callback(&buf, arr)
	assert.Equal(t, ArrayType, result.GetType())
	assert.Equal(t, 2, len(result.(*Array).Elements))
	assert.Equal(t, int64(2), result.(*Array).Elements[0].(*Integer).Value)
	// the input array is untouched
	assert.Equal(t, 3, len(arr.Elements))
	assert.Equal(t, NilType, rest.Callback(&buf, empty).GetType())

	push := lookupBuiltin(t, "push")
	result = push.Callback(&buf, arr, &Integer{Value: 4})
	assert.Equal(t, 4, len(result.(*Array).Elements))
	assert.Equal(t, int64(4), result.(*Array).Elements[3].(*Integer).Value)
	// the input array is untouched
	assert.Equal(t, 3, len(arr.Elements))

	result = push.Callback(&buf, arr)
	assert.Equal(t, "unexpected number of args for push", result.(*Error).Message)
	result = first.Callback(&buf, &Integer{Value: 1})
	assert.Equal(t, "argument for first not supported", result.(*Error).Message)
}

// TestBuiltins_Puts verifies puts writes one line per argument
func TestBuiltins_Puts(t *testing.T) {
	puts := lookupBuiltin(t, "puts")
	var buf bytes.Buffer

	result := puts.Callback(&buf, &String{Value: "hi"}, &Integer{Value: 7})
	assert.Equal(t, NilType, result.GetType())
	assert.Equal(t, "hi\n7\n", buf.String())
}

// TestObjects_PrintableForms verifies the display and diagnostic forms of
// the value variants
func TestObjects_PrintableForms(t *testing.T) {
	assert.Equal(t, "42", (&Integer{Value: 42}).ToString())
	assert.Equal(t, "true", (&Boolean{Value: true}).ToString())
	assert.Equal(t, "nil", (&Nil{}).ToString())

	str := &String{Value: "abc"}
	assert.Equal(t, "abc", str.ToString())
	assert.Equal(t, `"abc"`, str.ToObject())

	arr := &Array{Elements: []MonkeyObject{
		&Integer{Value: 1},
		&String{Value: "x"},
		&Boolean{Value: false},
	}}
	assert.Equal(t, "[1,x,false]", arr.ToString())
	assert.Equal(t, `[1,"x",false]`, arr.ToObject())

	ret := &ReturnValue{Value: &Integer{Value: 9}}
	assert.Equal(t, "9", ret.ToString())
}
