package bfsim

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	sqlite "github.com/glebarez/sqlite"
	cp "github.com/jinzhu/copier"
	gorm "gorm.io/gorm"
	"gorm.io/gorm/logger"

	bf "nickandperla.net/bfsim/brainfuck"
)

type PersistenceConfig struct {
	Name          string   `toml:"name" yaml:"name"`
	Path          string   `toml:"path" yaml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas" yaml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options" yaml:"sqlite_options"`
}

// Run is one journaled execution. Programs are stored packed, see bf.Pack.
type Run struct {
	ID                   uint
	CreatedAt            time.Time
	Source               string `gorm:"index"`
	PackedProgram        []byte `gorm:"type:blob"`
	InstructionCount     uint
	InstructionsExecuted uint
	Input                string
	Output               string
	Loaded               bool
	Halted               bool
	MachineError         *string
	Duration             time.Duration
}

// ProgramText unpacks the stored program.
func (r *Run) ProgramText() (string, error) {
	ops, err := bf.Unpack(r.PackedProgram)
	if err != nil {
		return "", err
	}
	return bf.NewProgram(ops).String(), nil
}

// Persistence is the run journal. It is safe for concurrent use; writes are
// serialized because sqlite takes one writer at a time.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
	mu     sync.Mutex
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	db, err := gorm.Open(sqlite.Open(config.dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 1000})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

// dsn joins path and name, then appends pragmas and driver options as query
// parameters.
func (c *PersistenceConfig) dsn() string {
	params := make([]string, 0, len(c.SQLitePragmas)+len(c.SQLiteOptions))
	for _, prag := range c.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, c.SQLiteOptions...)

	var path strings.Builder
	path.WriteString(filepath.Join(c.Path, c.Name))
	if len(params) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(params, "&"))
	}
	return path.String()
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(&Run{})
}

func (p *Persistence) Shutdown() error {
	sqldb, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("Failed to retrieve raw DB: %w", err)
	}
	return sqldb.Close()
}

// Record journals result under source, which names where the run came from
// ("run", "repl", "suite/<name>/<case>").
func (p *Persistence) Record(source string, result *RunResult) (uint, error) {
	if result == nil {
		return 0, fmt.Errorf("RunResult cannot be nil")
	}

	run := &Run{Source: source}
	if err := cp.Copy(run, result); err != nil {
		return 0, fmt.Errorf("Failed to copy run result: %w", err)
	}

	if result.Loaded {
		program, err := bf.ParseProgramLenient(result.Program)
		if err != nil {
			return 0, err
		}
		if run.PackedProgram, err = bf.Pack(program.Instructions); err != nil {
			return 0, err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if res := p.DB.Create(run); res.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", res.Error)
	}

	return run.ID, nil
}

// Recent returns up to limit runs, newest first, optionally only those from
// source.
func (p *Persistence) Recent(source string, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DEFAULT_RECENT_LIMIT
	}

	query := p.DB.Order("id DESC").Limit(limit)
	if source != "" {
		query = query.Where("source = ?", source)
	}

	var runs []*Run
	if res := query.Find(&runs); res.Error != nil {
		return nil, res.Error
	}
	return runs, nil
}

func (p *Persistence) Load(id uint) (*Run, error) {
	run := &Run{}
	if res := p.DB.First(run, id); res.Error != nil {
		return nil, fmt.Errorf("Failed to load run [%d]: %w", id, res.Error)
	}
	return run, nil
}
