package library

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

// More drivers at https://zchee.github.io/golang-wiki/SQLDrivers/ should we need them.

var drivers = map[string]string{
	"firebird": "firebirdsql",
	"mariadb":  "mysql",
	"mysql":    "mysql",
	"oracle":   "oracle",
	"postgres": "postgres",
	"sqlite":   "sqlite",
}

// Open connections are parked here and scripts hold integer handles, so no
// new value type leaks into the object model.
var (
	openDBs    = map[int64]*sql.DB{}
	nextHandle int64 = 1
)

// db_open(driver, dsn) -> integer handle, or null if the connection fails.
func libDbOpen(args []object.Object) object.Object {
	if !checkArgs(args, 2, "db_open") {
		return object.NULL
	}
	driver, okDriver := args[0].(*object.String)
	dsn, okDsn := args[1].(*object.String)
	if !okDriver || !okDsn {
		report.Error(report.Runtime, report.CurrentLine(), 0,
			"db_open() expects strings for driver and connection")
		return object.NULL
	}
	name, known := drivers[driver.Value]
	if !known {
		report.Hint(report.Runtime, report.CurrentLine(), 0,
			"Known drivers: firebird, mariadb, mysql, oracle, postgres, sqlite",
			"Unknown database driver '%s'", driver.Value)
		return object.NULL
	}
	db, err := sql.Open(name, dsn.Value)
	if err != nil {
		return object.NULL
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return object.NULL
	}
	handle := nextHandle
	nextHandle++
	openDBs[handle] = db
	return &object.Integer{Value: handle}
}

func dbArg(args []object.Object, i int) *sql.DB {
	h, ok := args[i].(*object.Integer)
	if !ok {
		return nil
	}
	return openDBs[h.Value]
}

// db_exec(handle, query) -> boolean success.
func libDbExec(args []object.Object) object.Object {
	if !checkArgs(args, 2, "db_exec") {
		return object.NULL
	}
	db := dbArg(args, 0)
	query, ok := args[1].(*object.String)
	if db == nil || !ok {
		report.Error(report.Runtime, report.CurrentLine(), 0,
			"db_exec() called on invalid database handle")
		return object.NULL
	}
	_, err := db.Exec(query.Value)
	return object.MakeBool(err == nil)
}

// db_query(handle, query) -> list of rows, each row a list of strings.
func libDbQuery(args []object.Object) object.Object {
	if !checkArgs(args, 2, "db_query") {
		return object.NULL
	}
	db := dbArg(args, 0)
	query, ok := args[1].(*object.String)
	if db == nil || !ok {
		report.Error(report.Runtime, report.CurrentLine(), 0,
			"db_query() called on invalid database handle")
		return object.NULL
	}

	rows, err := db.Query(query.Value)
	if err != nil {
		return object.NULL
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return object.NULL
	}

	result := []object.Object{}
	for rows.Next() {
		raw := make([]sql.RawBytes, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return object.NULL
		}
		fields := make([]object.Object, len(cols))
		for i, cell := range raw {
			fields[i] = &object.String{Value: string(cell)}
		}
		result = append(result, &object.List{Elements: fields})
	}
	return &object.List{Elements: result}
}

func libDbClose(args []object.Object) object.Object {
	if !checkArgs(args, 1, "db_close") {
		return object.NULL
	}
	if h, ok := args[0].(*object.Integer); ok {
		if db := openDBs[h.Value]; db != nil {
			db.Close()
			delete(openDBs, h.Value)
		}
	}
	return object.NULL
}

func libHashPassword(args []object.Object) object.Object {
	if !checkArgs(args, 1, "hash_password") {
		return object.NULL
	}
	plain, ok := args[0].(*object.String)
	if !ok {
		return object.NULL
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain.Value), bcrypt.DefaultCost)
	if err != nil {
		return object.NULL
	}
	return &object.String{Value: string(hash)}
}

func libCheckPassword(args []object.Object) object.Object {
	if !checkArgs(args, 2, "check_password") {
		return object.NULL
	}
	hash, okHash := args[0].(*object.String)
	plain, okPlain := args[1].(*object.String)
	if !okHash || !okPlain {
		return object.FALSE
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash.Value), []byte(plain.Value))
	return object.MakeBool(err == nil)
}
