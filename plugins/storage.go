package plugins

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/task"
)

type StorageConfig struct {
	Root string `yaml:"root"`
	Logs string `yaml:"logs"`
	DB   string `yaml:"db"`
}

// Storage keeps plain text logs per source plus a sqlite ledger of
// build requests and their deployments. Other plugins reach it through
// the collaboration context.
type Storage struct {
	logRoot string
	dbPath  string
	db      *sql.DB
	closeFn []func()
}

func (s *Storage) New(config []byte) define.Plugin {
	storageConfig := &StorageConfig{}
	err := yaml.Unmarshal(config, storageConfig)
	if err != nil {
		panic(err)
	}
	if storageConfig.Root == "" {
		storageConfig.Root = "data"
	}
	if storageConfig.Logs == "" {
		storageConfig.Logs = path.Join(storageConfig.Root, "logs")
	}
	if storageConfig.DB == "" {
		storageConfig.DB = path.Join(storageConfig.Root, "db", "architect.db")
	}
	return s.initStorage(storageConfig)
}

func (s *Storage) Routine() {

}

func (s *Storage) Inject(taskIO *task.TaskIO, collaborationContext map[string]define.Plugin) define.Plugin {
	return s
}

func (s *Storage) Close() {
	for _, fn := range s.closeFn {
		fn()
	}
	if s.db != nil {
		s.db.Close()
	}
}

func (s *Storage) RegStringSender(source string) func(isJson bool, data string) {
	fileName := path.Join(s.logRoot, source) + ".log"
	logFile, err := os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		panic(fmt.Sprintf("Storage-Create: cannot create %v (%v)", fileName, err))
	}
	s.closeFn = append(s.closeFn, func() {
		logFile.Close()
	})
	log_ := log.New(logFile, "", log.Ldate|log.Ltime)
	return func(isJson bool, data string) {
		if isJson {
			var anyData interface{}
			err := json.Unmarshal([]byte(data), &anyData)
			if err == nil {
				log_.Printf("(%v) Json> %v", source, anyData)
			} else {
				log_.Printf("(%v) BrokenJson(%v)> %v", source, err, data)
			}
		} else {
			log_.Printf("(%v) > %v", source, data)
		}
	}
}

// RecordRequest files one build request and returns its id.
func (s *Storage) RecordRequest(source string, request string, instructionCount int) string {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO build_requests (id, created_at, source, request, instruction_count) VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), source, request, instructionCount,
	)
	if err != nil {
		log.Printf("Storage-RecordRequest: insert failed (%v)", err)
	}
	return id
}

// RecordDeployment files the outcome of sending one request's
// instruction batch to the console.
func (s *Storage) RecordDeployment(requestID string, startedAt time.Time, finishedAt time.Time, sent int, failed int) {
	_, err := s.db.Exec(
		`INSERT INTO deployments (id, request_id, started_at, finished_at, sent, failed) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), requestID, startedAt.UTC(), finishedAt.UTC(), sent, failed,
	)
	if err != nil {
		log.Printf("Storage-RecordDeployment: insert failed (%v)", err)
	}
}

func (s *Storage) initStorage(config *StorageConfig) *Storage {
	err := os.MkdirAll(config.Logs, 0755)
	if err != nil {
		panic(fmt.Sprintf("Main-InitStorage: cannot create %v (%v)", config.Logs, err))
	}
	err = os.MkdirAll(path.Dir(config.DB), 0755)
	if err != nil {
		panic(fmt.Sprintf("Main-InitStorage: cannot create %v (%v)", path.Dir(config.DB), err))
	}
	db, err := sql.Open("sqlite3", config.DB)
	if err != nil {
		panic(fmt.Sprintf("Main-InitStorage: cannot open db %v (%v)", config.DB, err))
	}
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS build_requests (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP,
			source TEXT,
			request TEXT,
			instruction_count INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS deployments (
			id TEXT PRIMARY KEY,
			request_id TEXT,
			started_at TIMESTAMP,
			finished_at TIMESTAMP,
			sent INTEGER,
			failed INTEGER
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			panic(fmt.Sprintf("Main-InitStorage: cannot init db (%v)", err))
		}
	}
	s.logRoot = config.Logs
	s.dbPath = config.DB
	s.db = db
	s.closeFn = make([]func(), 0)
	return s
}
