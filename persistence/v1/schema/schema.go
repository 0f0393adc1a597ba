package schema

import "fmt"

// mysql keeps uniqueness of the normalized keys in the database too. The keys are
// already case folded, so they compare byte for byte and accents stay significant.
// ramsql (tests) has no unique indexes.
var schemas = map[string][]string{
	"mysql": {
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			usernameKey VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
			updatedAt DATETIME NOT NULL,
			createdAt DATETIME NOT NULL,
			UNIQUE KEY users_username_key (usernameKey)
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id VARCHAR(36) PRIMARY KEY,
			userId VARCHAR(36) NOT NULL,
			title VARCHAR(255) NOT NULL,
			titleKey VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
			content TEXT NOT NULL,
			completed TINYINT(1) NOT NULL DEFAULT 0,
			updatedAt DATETIME NOT NULL,
			createdAt DATETIME NOT NULL,
			UNIQUE KEY notes_title_key (titleKey),
			KEY notes_user (userId)
		)`,
	},
	"ramsql": {
		`CREATE TABLE users (id TEXT PRIMARY KEY, username TEXT, usernameKey TEXT, updatedAt TIMESTAMP, createdAt TIMESTAMP)`,
		`CREATE TABLE notes (id TEXT PRIMARY KEY, userId TEXT, title TEXT, titleKey TEXT, content TEXT, completed INT, updatedAt TIMESTAMP, createdAt TIMESTAMP)`,
	},
}

var drops = []string{
	`DROP TABLE notes`,
	`DROP TABLE users`,
}

func statements(dialect string) ([]string, error) {
	s, ok := schemas[dialect]
	if !ok {
		return nil, fmt.Errorf("unknown schema dialect %q", dialect)
	}
	return s, nil
}
