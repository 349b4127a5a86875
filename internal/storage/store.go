// Package storage реализует хранилище записей одного трекера: один
// JSON-файл на экземпляр, загрузка с ремонтом повреждённого документа,
// атомарное сохранение и выборка с фильтром. Хранилище не держит записи
// в памяти — канонический список принадлежит сессии.
package storage

import (
	"encoding/json"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"welltrack/internal/domain/entry"
)

// CurrentVersion — версия документа, пишется в каждый файл.
const CurrentVersion = 1

// BackupSuffix добавляется к пути при карантине и при бэкапе перед записью.
const BackupSuffix = ".bak"

// document — дисковая форма: {version, entries}. На чтение принимается и
// голый массив записей (наследие старых версий приложений); на запись
// всегда уходит объектная форма.
type document struct {
	Version int              `json:"version"`
	Entries []map[string]any `json:"entries"`
}

// Store — load/save/query для одного файла записей.
type Store struct {
	path         string
	schema       entry.Schema
	fsys         FS
	log          *slog.Logger
	backupOnSave bool
}

// Option настраивает Store при создании.
type Option func(*Store)

// WithFS подменяет файловую систему (тесты отказов записи).
func WithFS(fsys FS) Option {
	return func(s *Store) { s.fsys = fsys }
}

// WithLogger задаёт логгер хранилища.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithBackupOnSave включает .bak-копию прежнего файла перед подменой
// (настройка backup_on_save).
func WithBackupOnSave(on bool) Option {
	return func(s *Store) { s.backupOnSave = on }
}

// New создаёт хранилище для файла path с записями вида schema.
func New(path string, schema entry.Schema, opts ...Option) *Store {
	s := &Store{
		path:   path,
		schema: schema,
		fsys:   OS{},
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "storage", "kind", schema.Kind.String())
	return s
}

// Path возвращает путь файла хранилища.
func (s *Store) Path() string {
	return s.path
}

// SetBackupOnSave переключает бэкап перед записью (меняется из настроек).
func (s *Store) SetBackupOnSave(on bool) {
	s.backupOnSave = on
}

// Load читает файл и возвращает проверенные записи. Отсутствующий файл —
// пустой список. Нечитаемый или неправильной формы документ уезжает в
// карантин под именем <path>.bak, и список тоже пустой: наверх никогда не
// поднимается ошибка разбора. Записи без id получают новый id.
func (s *Store) Load() []entry.Record {
	data, err := s.fsys.ReadFile(s.path)
	if err != nil {
		if !IsNotExist(err) {
			s.log.Warn("store file unreadable", "path", s.path, "error", err)
		}
		return nil
	}

	raws, ok := decodeDocument(data)
	if !ok {
		s.quarantine()
		return nil
	}

	records := make([]entry.Record, 0, len(raws))
	dropped, minted := 0, 0
	for _, raw := range raws {
		r, ok := s.schema.Normalize(raw)
		if !ok {
			dropped++
			continue
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
			minted++
		}
		records = append(records, r)
	}
	if dropped > 0 {
		s.log.Warn("invalid entries excluded on load", "path", s.path, "dropped", dropped)
	}

	// Свежевыданные id сразу закрепляются на диске, иначе каждая
	// перезагрузка раздавала бы тем же записям новые id.
	if minted > 0 {
		if err := s.Save(records); err != nil {
			s.log.Warn("persisting generated ids failed", "path", s.path, "error", err)
		}
	}
	return records
}

// Save сериализует {version, entries} во временный файл рядом с целевым,
// доводит его до диска и атомарно подменяет целевой путь. При включённом
// backup_on_save перед подменой снимается .bak-копия прежнего файла
// (по возможности). Любой сбой записи возвращается как *WriteError;
// прежний файл в этом случае остаётся нетронутым.
func (s *Store) Save(records []entry.Record) error {
	doc := document{
		Version: CurrentVersion,
		Entries: make([]map[string]any, 0, len(records)),
	}
	for _, r := range records {
		doc.Entries = append(doc.Entries, s.schema.Encode(r))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	tmp, err := s.fsys.WriteTemp(s.path, data)
	if err != nil {
		s.log.Error("temp write failed", "path", s.path, "error", err)
		return &WriteError{Path: s.path, Err: err}
	}

	if s.backupOnSave && s.fsys.Exists(s.path) {
		if err := s.fsys.Copy(s.path, s.path+BackupSuffix); err != nil {
			// Бэкап — по возможности; сохранение он не останавливает.
			s.log.Warn("backup copy failed", "path", s.path, "error", err)
		}
	}

	if err := s.fsys.Rename(tmp, s.path); err != nil {
		_ = s.fsys.Remove(tmp)
		s.log.Error("replace failed", "path", s.path, "error", err)
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

// Query применяет фильтр к records (см. Query пакета).
func (s *Store) Query(records []entry.Record, f entry.Filter) []entry.Record {
	return Query(s.schema, records, f)
}

// quarantine убирает повреждённый файл с дороги, сохраняя байты для
// ручного спасения. Сбой переименования проглатывается.
func (s *Store) quarantine() {
	if err := s.fsys.Rename(s.path, s.path+BackupSuffix); err != nil {
		s.log.Warn("quarantine rename failed", "path", s.path, "error", err)
		return
	}
	s.log.Warn("corrupt store file moved aside", "path", s.path, "backup", s.path+BackupSuffix)
}

// decodeDocument принимает обе дисковые формы: {version, entries:[...]}
// и голый массив. Узнаваемо версионный объект с null или отсутствующим
// списком — пустое хранилище, а не порча. Любая другая форма или
// не-JSON — отказ. Элементы, не являющиеся объектами, пропускаются молча.
func decodeDocument(data []byte) ([]map[string]any, bool) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}

	var list []any
	switch doc := v.(type) {
	case map[string]any:
		raw, hasEntries := doc["entries"]
		if raw == nil {
			_, hasVersion := doc["version"]
			return nil, hasEntries || hasVersion
		}
		entries, ok := raw.([]any)
		if !ok {
			return nil, false
		}
		list = entries
	case []any:
		list = doc
	default:
		return nil, false
	}

	out := make([]map[string]any, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, true
}
