package mysql

import (
	"reflect"
	"testing"
)

func TestUpdateBuilder_Empty(t *testing.T) {
	var b updateBuilder
	if !b.empty() {
		t.Fatalf("fresh builder must be empty")
	}

	b.set("email", "a@x.com")
	if b.empty() {
		t.Fatalf("builder with one assignment must not be empty")
	}
}

func TestUpdateBuilder_SingleField(t *testing.T) {
	var b updateBuilder
	b.set("email", "a@x.com")

	stmt, args := b.query("users", "user_id", int64(7))
	if stmt != "UPDATE users SET email = ? WHERE user_id = ?" {
		t.Fatalf("unexpected statement: %q", stmt)
	}
	if !reflect.DeepEqual(args, []any{"a@x.com", int64(7)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_PreservesOrderAndBindsKeyLast(t *testing.T) {
	var b updateBuilder
	b.set("first_name", "A")
	b.set("last_name", "B")
	b.set("distance", 12.5)

	stmt, args := b.query("routes", "route_id", int64(3))
	if stmt != "UPDATE routes SET first_name = ?, last_name = ?, distance = ? WHERE route_id = ?" {
		t.Fatalf("unexpected statement: %q", stmt)
	}
	if !reflect.DeepEqual(args, []any{"A", "B", 12.5, int64(3)}) {
		t.Fatalf("unexpected args: %v", args)
	}
	if len(args) != 4 {
		t.Fatalf("placeholder count and args must stay in lockstep")
	}
}
