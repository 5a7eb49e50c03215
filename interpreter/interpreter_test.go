package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxmix/loxmix/interpreter"
)

func runAndCapture(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	err := interpreter.RunSource(src, &buf)
	require.NoError(t, err)
	return buf.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	out := runAndCapture(t, `print 1 + 2 * 3;`)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out := runAndCapture(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestClosureCounter(t *testing.T) {
	src := `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();
print counter();
`
	out := runAndCapture(t, src)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestClassInheritanceAndSuper(t *testing.T) {
	src := `
class Animal {
  init(name) {
    this.name = name;
  }
  speak() {
    return this.name + " makes a sound";
  }
}
class Dog < Animal {
  speak() {
    return super.speak() + " (bark)";
  }
}
var d = Dog("Rex");
print d.speak();
`
	out := runAndCapture(t, src)
	assert.Equal(t, "Rex makes a sound (bark)\n", out)
}

func TestForLoopDesugarsToBlockWhile(t *testing.T) {
	src := `
var total = 0;
for (var i = 0; i < 5; i = i + 1) {
  total = total + i;
}
print total;
`
	out := runAndCapture(t, src)
	assert.Equal(t, "10\n", out)
}

func TestPipeOperatorMatchesNestedCalls(t *testing.T) {
	src := `
fun double(x) { return x * 2; }
fun inc(x) { return x + 1; }
print 3 |> double |> inc;
print inc(double(3));
`
	out := runAndCapture(t, src)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])
	assert.Equal(t, "7", lines[0])
}

func TestStaticScopeClosureCapturesDeclarationEnvironment(t *testing.T) {
	src := `
var a = "global";
{
  fun showA() {
    print a;
  }
  showA();
  var a = "block";
  showA();
}
`
	out := runAndCapture(t, src)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestLogicalOperatorsReturnOperandValueNotBoolean(t *testing.T) {
	out := runAndCapture(t, `print nil or "fallback"; print "first" and "second";`)
	assert.Equal(t, "fallback\nsecond\n", out)
}

func TestEqualityAcrossVariantsIsFalseNotError(t *testing.T) {
	out := runAndCapture(t, `print 1 == "1"; print nil == false;`)
	assert.Equal(t, "false\nfalse\n", out)
}

func TestDivisionByZeroYieldsInfNotError(t *testing.T) {
	out := runAndCapture(t, `print 1 / 0;`)
	assert.Equal(t, "+Inf\n", out)
}

func TestTypeMismatchArithmeticIsRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	err := interpreter.RunSource(`print "a" - 1;`, &buf)
	require.Error(t, err)
}

func TestAnonymousFunctionExpression(t *testing.T) {
	src := `
var add = fun (a, b) { return a + b; };
print add(2, 3);
`
	out := runAndCapture(t, src)
	assert.Equal(t, "5\n", out)
}
