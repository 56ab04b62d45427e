package persistence

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

type JournalDatabase struct {
	db *sql.DB
}

const (
	driver      = "sqlite"
	busyTimeout = "_pragma=busy_timeout(2500)"
	journalMode = "_pragma=journal_mode(WAL)"
	maxOpenConn = 1
)

func NewSQLiteDb(databaseFileName string) (*JournalDatabase, error) {
	err := os.MkdirAll(filepath.Dir(databaseFileName), 0o755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create journal directory")
	}

	connectionString := fmt.Sprintf("%s?%s&%s", databaseFileName, busyTimeout, journalMode)
	log.Debug().Msgf("Db: Setup database with %s as connection string", connectionString)

	db, err := sql.Open(driver, connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal database")
	}

	// SQLite cannot handle concurrent writes, so we limit sqlite to one connection.
	db.SetMaxOpenConns(maxOpenConn)

	return &JournalDatabase{db: db}, nil
}

func (jd *JournalDatabase) Close() error {
	return jd.db.Close()
}

//go:embed update-scripts/*
var scriptFiles embed.FS

const scriptsDir = "update-scripts"

// Init runs every update script numbered above the stored schema version.
// Scripts are named NNN_description.sql.
func (jd *JournalDatabase) Init() error {
	entries, err := fs.ReadDir(scriptFiles, scriptsDir)
	if err != nil {
		return errors.WithStack(err)
	}

	var currentVersion int
	err = jd.db.QueryRow(QuerySelectSchemaVersion).Scan(&currentVersion)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	for _, entry := range entries {
		fileName := entry.Name()
		scriptVersion, err := strconv.Atoi(strings.SplitN(fileName, "_", 2)[0])
		if err != nil {
			return errors.Wrapf(err, "update script %s has no numeric prefix", fileName)
		}

		if scriptVersion <= currentVersion {
			continue
		}

		log.Debug().Msgf("Executing Database script: %s", fileName)
		err = jd.execute(scriptsDir + "/" + fileName)
		if err != nil {
			return errors.Wrapf(err, "failed to execute %s", fileName)
		}

		_, err = jd.db.Exec(fmt.Sprintf(QueryUpdateSchemaVersion, scriptVersion))
		if err != nil {
			return errors.Wrap(err, "failed to update schema version")
		}
		currentVersion = scriptVersion
	}

	return nil
}

func (jd *JournalDatabase) execute(fileName string) error {
	file, err := fs.ReadFile(scriptFiles, fileName)
	if err != nil {
		return err
	}

	requests := strings.Split(string(file), ";\n")

	for _, request := range requests {
		if strings.TrimSpace(request) == "" {
			continue
		}

		_, err := jd.db.Exec(request)
		if err != nil {
			return err
		}
	}

	return nil
}

func (jd *JournalDatabase) Record(entry JournalEntry) (JournalEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.Timestamp = entry.Timestamp.UTC()

	_, err := jd.db.Exec(
		QueryInsertJournalEntry,
		entry.ID,
		entry.Operation,
		entry.Target,
		entry.Outcome,
		entry.Message,
		entry.Duration.Milliseconds(),
		entry.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return entry, errors.Wrap(err, "failed to insert journal entry")
	}

	return entry, nil
}

// List returns up to limit entries, newest first.
func (jd *JournalDatabase) List(limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := jd.db.Query(QuerySelectJournalEntries, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query journal")
	}
	defer rows.Close()

	entries := make([]JournalEntry, 0)
	for rows.Next() {
		var entry JournalEntry
		var durationMs int64
		var timestamp string

		err = rows.Scan(&entry.ID, &entry.Operation, &entry.Target, &entry.Outcome, &entry.Message, &durationMs, &timestamp)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan journal entry")
		}

		entry.Duration = time.Duration(durationMs) * time.Millisecond
		entry.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, errors.Wrapf(err, "journal entry %s has an invalid timestamp", entry.ID)
		}

		entries = append(entries, entry)
	}

	return entries, errors.WithStack(rows.Err())
}
