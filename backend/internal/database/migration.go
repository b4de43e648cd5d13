package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Settings",
		query: `
			CREATE TABLE setting (
			    key TEXT PRIMARY KEY,
			    value TEXT
			);
		`,
	},
}
