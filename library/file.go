package library

import (
	"io"
	"os"

	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"
)

// fopen-style mode strings.
var fileModes = map[string]int{
	"r":  os.O_RDONLY,
	"w":  os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	"a":  os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	"r+": os.O_RDWR,
	"w+": os.O_RDWR | os.O_CREATE | os.O_TRUNC,
	"a+": os.O_RDWR | os.O_CREATE | os.O_APPEND,
}

func fileArg(args []object.Object, i int) *object.File {
	f, ok := args[i].(*object.File)
	if !ok || f.Closed || f.Handle == nil {
		return nil
	}
	return f
}

// open(path, mode) gives a file handle, or null when the open fails.
func libFileOpen(args []object.Object) object.Object {
	if !checkArgs(args, 2, "open") {
		return object.NULL
	}
	path, okPath := args[0].(*object.String)
	mode, okMode := args[1].(*object.String)
	if !okPath || !okMode {
		report.Error(report.Runtime, report.CurrentLine(), 0,
			"open() expects strings for path and mode")
		return object.NULL
	}
	flags, known := fileModes[mode.Value]
	if !known {
		return object.NULL
	}
	handle, err := os.OpenFile(path.Value, flags, 0644)
	if err != nil {
		return object.NULL
	}
	return &object.File{Handle: handle}
}

// close shuts the underlying OS file and marks the caller's handle closed.
// Other variables aliasing the handle keep a stale wrapper; operations on
// it quietly fail.
func libFileClose(args []object.Object) object.Object {
	if !checkArgs(args, 1, "close") {
		return object.NULL
	}
	if f := fileArg(args, 0); f != nil {
		f.Handle.Close()
		f.Closed = true
	}
	return object.NULL
}

// read returns the whole file as one string, reading from the start.
func libFileRead(args []object.Object) object.Object {
	if !checkArgs(args, 1, "read") {
		return object.NULL
	}
	f := fileArg(args, 0)
	if f == nil {
		return object.NULL
	}
	if _, err := f.Handle.Seek(0, io.SeekStart); err != nil {
		return object.NULL
	}
	data, err := io.ReadAll(f.Handle)
	if err != nil {
		return object.NULL
	}
	return &object.String{Value: string(data)}
}

// read_line returns the next line without its trailing newline, or null at
// end of file.
func libFileReadLine(args []object.Object) object.Object {
	if !checkArgs(args, 1, "read_line") {
		return object.NULL
	}
	f := fileArg(args, 0)
	if f == nil {
		return object.NULL
	}

	// Read byte by byte so the handle's position stays honest for the
	// next call.
	line := []byte{}
	buf := make([]byte, 1)
	for {
		n, err := f.Handle.Read(buf)
		if n == 0 {
			if len(line) == 0 {
				return object.NULL
			}
			break
		}
		if buf[0] == '\n' {
			break
		}
		line = append(line, buf[0])
		if err != nil {
			break
		}
	}
	for len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return &object.String{Value: string(line)}
}

// write stringifies any value and reports success as a boolean.
func libFileWrite(args []object.Object) object.Object {
	if !checkArgs(args, 2, "write") {
		return object.NULL
	}
	f := fileArg(args, 0)
	if f == nil {
		report.Error(report.Runtime, report.CurrentLine(), 0,
			"write() called on invalid file handle")
		return object.NULL
	}
	_, err := f.Handle.WriteString(args[1].Inspect())
	return object.MakeBool(err == nil)
}

func libFileExists(args []object.Object) object.Object {
	if !checkArgs(args, 1, "file_exists") {
		return object.NULL
	}
	path, ok := args[0].(*object.String)
	if !ok {
		return object.FALSE
	}
	f, err := os.Open(path.Value)
	if err != nil {
		return object.FALSE
	}
	f.Close()
	return object.TRUE
}

func libFileRemove(args []object.Object) object.Object {
	if !checkArgs(args, 1, "remove_file") {
		return object.NULL
	}
	path, ok := args[0].(*object.String)
	if !ok {
		return object.FALSE
	}
	return object.MakeBool(os.Remove(path.Value) == nil)
}

func libFileFlush(args []object.Object) object.Object {
	if !checkArgs(args, 1, "flush") {
		return object.NULL
	}
	if f := fileArg(args, 0); f != nil {
		f.Handle.Sync()
	}
	return object.NULL
}
