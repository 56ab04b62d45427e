package persistence

const QueryInsertJournalEntry = `INSERT INTO Journal(id, operation, target, outcome, message, duration_ms, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)`

const QuerySelectJournalEntries = `SELECT id, operation, target, outcome, message, duration_ms, timestamp FROM Journal ORDER BY rowid DESC LIMIT ?`

const QuerySelectSchemaVersion = `PRAGMA user_version`

// PRAGMA does not take bound parameters.
const QueryUpdateSchemaVersion = `PRAGMA user_version = %d`
