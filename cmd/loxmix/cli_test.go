package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func runSourceForTest(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	err := runSourceTo(src, "<test>", &buf)
	require.NoError(t, err)
	return buf.String()
}

func TestCLI_PrintStatement(t *testing.T) {
	out := runSourceForTest(t, `print "hello from loxmix";`)
	snaps.MatchSnapshot(t, out)
}

func TestCLI_PipeChain(t *testing.T) {
	src := `
fun double(x) { return x * 2; }
fun square(x) { return x * x; }
print 3 |> double |> square;
`
	out := runSourceForTest(t, src)
	snaps.MatchSnapshot(t, out)
}

func TestCLI_ClassInheritance(t *testing.T) {
	src := `
class Shape {
  area() {
    return 0;
  }
  describe() {
    return this.area();
  }
}
class Square < Shape {
  init(side) {
    this.side = side;
  }
  area() {
    return this.side * this.side;
  }
}
print Square(4).describe();
`
	out := runSourceForTest(t, src)
	snaps.MatchSnapshot(t, out)
}

func TestCLI_UsageErrorExitCode(t *testing.T) {
	err := runDefault(rootCmd, []string{"one", "two", "three"})
	require.Error(t, err)
	ec, ok := err.(*exitCodeError)
	require.True(t, ok)
	require.Equal(t, 64, ec.code)
}

func TestCLI_EvalFormTakesLiteralEKeyword(t *testing.T) {
	err := runDefault(rootCmd, []string{"not-e", "print 1;"})
	require.Error(t, err)
	_, ok := err.(*exitCodeError)
	require.True(t, ok)
}
