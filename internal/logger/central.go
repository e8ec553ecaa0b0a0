package logger

import "io"

const maxCentral = 256

var central = NewLogger(maxCentral)

func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

func Logf(perm Permission, tag, format string, args ...any) {
	central.Logf(perm, tag, format, args...)
}

func Clear() {
	central.Clear()
}

func Write(output io.Writer) {
	central.Write(output)
}

func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

func Entries() []Entry {
	return central.Entries()
}
