package library

import (
	"testing"

	"github.com/luna-lang/luna/object"
)

func TestDbRoundTrip(t *testing.T) {
	handle := libDbOpen([]object.Object{sv("sqlite"), sv(":memory:")})
	h, ok := handle.(*object.Integer)
	if !ok {
		t.Fatalf("db_open did not give a handle. got=%T (%+v)", handle, handle)
	}
	defer libDbClose([]object.Object{h})

	wantBool(t, 0, libDbExec([]object.Object{h,
		sv("CREATE TABLE phases (id INTEGER PRIMARY KEY, name TEXT)")}), true)
	wantBool(t, 1, libDbExec([]object.Object{h,
		sv("INSERT INTO phases (name) VALUES ('new'), ('full'), ('waning')")}), true)
	wantBool(t, 2, libDbExec([]object.Object{h, sv("this is not SQL")}), false)

	rows := libDbQuery([]object.Object{h, sv("SELECT id, name FROM phases ORDER BY id")})
	list, ok := rows.(*object.List)
	if !ok {
		t.Fatalf("db_query did not give a list. got=%T", rows)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("row count wrong. expected=3, got=%d", len(list.Elements))
	}

	first := list.Elements[0].(*object.List)
	wantStr(t, 0, first.Elements[0], "1")
	wantStr(t, 1, first.Elements[1], "new")
	last := list.Elements[2].(*object.List)
	wantStr(t, 2, last.Elements[1], "waning")
}

func TestDbBadHandle(t *testing.T) {
	if got := libDbExec([]object.Object{iv(9999), sv("SELECT 1")}); got != object.NULL {
		t.Fatalf("exec on an unknown handle should be null, got=%T", got)
	}
	if got := libDbOpen([]object.Object{sv("nosuchdriver"), sv("dsn")}); got != object.NULL {
		t.Fatalf("open with an unknown driver should be null, got=%T", got)
	}
}

func TestPasswordHashing(t *testing.T) {
	hashed := libHashPassword([]object.Object{sv("hunter2")})
	hs, ok := hashed.(*object.String)
	if !ok {
		t.Fatalf("hash_password did not give a string. got=%T", hashed)
	}
	if hs.Value == "hunter2" {
		t.Fatalf("password stored in the clear")
	}

	wantBool(t, 0, libCheckPassword([]object.Object{hs, sv("hunter2")}), true)
	wantBool(t, 1, libCheckPassword([]object.Object{hs, sv("wrong")}), false)
}
