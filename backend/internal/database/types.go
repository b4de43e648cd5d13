package database

type MigrationId int

type Migration struct {
	Id MigrationId `db:"id"`
}

type Setting struct {
	Key   SettingKey `db:"key"`
	Value string     `db:"value"`
}

type TableExist bool

const (
	TableNotExist TableExist = false
	TableExists   TableExist = true
)
