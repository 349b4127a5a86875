package tracker

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"welltrack/internal/domain/entry"
	"welltrack/internal/settings"
	"welltrack/internal/storage"
	"welltrack/internal/utils/clock"
	"welltrack/internal/utils/timeparse"
)

// Session — фасад одного трекера, с которым разговаривает интерфейс:
// превращает значения полей формы в проверенные записи и ведёт CRUD
// против хранилища. Владеет каноническим списком записей (в порядке
// вставки), текущим выбором и активным фильтром; никакого глобального
// состояния — по сессии на окно/вкладку.
type Session struct {
	kind   entry.Kind
	schema entry.Schema
	store  *storage.Store
	prefs  func() settings.Settings
	clk    clock.Clock
	log    *slog.Logger

	records  []entry.Record
	selected string
	filter   entry.Filter
	form     form
}

// FormInput — сырые значения полей формы до проверки.
type FormInput struct {
	Date   string
	Time   string
	Fields map[string]string
	Items  []entry.Item
}

// NewSession открывает сессию трекера: загружает записи из хранилища
// (повреждённый или отсутствующий файл даёт пустой список, не ошибку).
func NewSession(schema entry.Schema, store *storage.Store, prefs func() settings.Settings, clk clock.Clock, log *slog.Logger) *Session {
	s := &Session{
		kind:   schema.Kind,
		schema: schema,
		store:  store,
		prefs:  prefs,
		clk:    clk,
		log:    log.With("component", "session", "kind", schema.Kind.String()),
	}
	s.records = store.Load()
	return s
}

// Kind возвращает вид трекера сессии.
func (s *Session) Kind() entry.Kind {
	return s.kind
}

// Schema возвращает схему записей сессии.
func (s *Session) Schema() entry.Schema {
	return s.schema
}

// BuildRecord собирает запись из полей формы. Поля обрезаются; пустые
// дата и время подставляются текущими в форматах из настроек; разбор
// идёт по упорядоченному списку форматов (настройки — первыми). Ошибки —
// только *entry.ValidationError; запись при ошибке не создаётся.
func (s *Session) BuildRecord(in FormInput) (entry.Record, error) {
	p := s.prefs()
	now := s.clk.Now()

	dateText := strings.TrimSpace(in.Date)
	timeText := strings.TrimSpace(in.Time)
	if dateText == "" {
		dateText = now.Format(p.DateFormat)
	}
	if timeText == "" {
		timeText = now.Format(p.TimeFormat)
	}

	ts, ok := timeparse.Timestamp(dateText, timeText, p.DateFormat, p.TimeFormat)
	if !ok {
		return entry.Record{}, &entry.ValidationError{Kind: entry.BadTimestamp}
	}

	r := entry.Record{
		ID:        uuid.NewString(),
		Timestamp: ts.Format(timeparse.Canonical),
		Fields:    make(map[string]string, len(s.schema.Required)+len(s.schema.Optional)),
	}
	for _, f := range s.schema.KnownFields() {
		r.Fields[f] = strings.TrimSpace(in.Fields[f])
	}

	for _, it := range in.Items {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			continue
		}
		r.Items = append(r.Items, it)
	}

	// У трекеров со вложенным списком главное поле выводится из имён
	// под-записей, если пользователь его не заполнил.
	if s.schema.ItemsField != "" && len(s.schema.Required) > 0 {
		primary := s.schema.Required[0]
		if r.Fields[primary] == "" && len(r.Items) > 0 {
			names := make([]string, 0, len(r.Items))
			for _, it := range r.Items {
				names = append(names, it.Name)
			}
			r.Fields[primary] = strings.Join(names, ", ")
		}
	}

	if !s.schema.HasRequired(r) {
		field := ""
		if len(s.schema.Required) > 0 {
			field = s.schema.Required[0]
		}
		return entry.Record{}, &entry.ValidationError{Kind: entry.MissingRequiredField, Field: field}
	}
	return r, nil
}

// Add добавляет запись в конец канонического списка и сохраняет файл.
// При сбое записи на диск запись остаётся в памяти (как в исходных
// приложениях), а ошибка отдаётся наверх для показа пользователю.
func (s *Session) Add(r entry.Record) (entry.Record, error) {
	s.records = append(s.records, r)
	if err := s.store.Save(s.records); err != nil {
		return r, err
	}
	s.log.Debug("entry added", "id", r.ID)
	return r, nil
}

// Update заменяет поля записи с данным id заново собранной записью
// (timestamp тоже пересобирается из формы) и сохраняет файл.
func (s *Session) Update(id string, in FormInput) (entry.Record, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return entry.Record{}, entry.ErrNotFound
	}

	r, err := s.BuildRecord(in)
	if err != nil {
		return entry.Record{}, err
	}
	r.ID = id

	s.records[idx] = r
	if err := s.store.Save(s.records); err != nil {
		return r, err
	}
	s.log.Debug("entry updated", "id", id)
	return r, nil
}

// Delete удаляет запись по id и сохраняет файл. Возвращает, была ли
// запись найдена; отсутствие — мягкое предупреждение, не ошибка.
func (s *Session) Delete(id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	s.records = append(s.records[:idx], s.records[idx+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	if err := s.store.Save(s.records); err != nil {
		return true, err
	}
	s.log.Debug("entry deleted", "id", id)
	return true, nil
}

// Duplicate клонирует запись: поля те же, id новый, timestamp — текущее
// время. Клон добавляется в конец и файл сохраняется.
func (s *Session) Duplicate(id string) (entry.Record, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return entry.Record{}, entry.ErrNotFound
	}

	dup := s.records[idx].Clone()
	dup.ID = uuid.NewString()
	dup.Timestamp = s.clk.Now().Format(timeparse.Canonical)
	return s.Add(dup)
}

// Get возвращает запись по id.
func (s *Session) Get(id string) (entry.Record, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return entry.Record{}, false
	}
	return s.records[idx], true
}

// List возвращает выборку под активным фильтром, новые записи первыми.
func (s *Session) List() []entry.Record {
	return s.store.Query(s.records, s.filter)
}

// ListWith применяет разовый фильтр, не трогая активный.
func (s *Session) ListWith(f entry.Filter) []entry.Record {
	return s.store.Query(s.records, f)
}

// Len возвращает размер канонического списка.
func (s *Session) Len() int {
	return len(s.records)
}

// SetFilter задаёт активный фильтр выборки.
func (s *Session) SetFilter(f entry.Filter) {
	s.filter = f
}

// Filter возвращает активный фильтр.
func (s *Session) Filter() entry.Filter {
	return s.filter
}

// ClearFilter сбрасывает фильтр.
func (s *Session) ClearFilter() {
	s.filter = entry.Filter{}
}

// FilterToday ограничивает выборку сегодняшним днём.
func (s *Session) FilterToday() {
	today := s.today()
	s.filter.From = today
	s.filter.To = today
}

// FilterLastDays ограничивает выборку последними n днями (включая сегодня).
func (s *Session) FilterLastDays(n int) {
	s.filter.From = s.today().AddDate(0, 0, -n)
	s.filter.To = s.today()
}

// Select делает запись текущей.
func (s *Session) Select(id string) error {
	if s.indexOf(id) < 0 {
		return entry.ErrNotFound
	}
	s.selected = id
	return nil
}

// Selected возвращает текущую запись, если выбор ещё действителен.
func (s *Session) Selected() (entry.Record, bool) {
	if s.selected == "" {
		return entry.Record{}, false
	}
	return s.Get(s.selected)
}

// ClearSelection сбрасывает выбор.
func (s *Session) ClearSelection() {
	s.selected = ""
}

// Reload перечитывает записи с диска (ручное "обновить с диска").
// Выбор сохраняется, если запись пережила перезагрузку.
func (s *Session) Reload() {
	s.records = s.store.Load()
	if s.selected != "" && s.indexOf(s.selected) < 0 {
		s.selected = ""
	}
}

// Summary — сводка для шапки трекера.
type Summary struct {
	Kind  entry.Kind
	Total int
	Today int
}

// Summarize считает записи всего и за сегодня.
func (s *Session) Summarize() Summary {
	today := s.today()
	sum := Summary{Kind: s.kind, Total: len(s.records)}
	for _, r := range s.records {
		if d, ok := timeparse.EntryDate(r.Timestamp); ok && d.Equal(today) {
			sum.Today++
		}
	}
	return sum
}

// Export выгружает текущую выборку в отдельный JSON-файл.
func (s *Session) Export(path string) (int, error) {
	list := s.List()
	if err := s.store.Export(path, list); err != nil {
		return 0, err
	}
	return len(list), nil
}

// ImportLegacy дочитывает записи из старого текстового журнала и
// сохраняет объединённый список. Возвращает число добавленных записей.
func (s *Session) ImportLegacy(path string) (int, error) {
	imported := s.store.LoadLegacyText(path)
	if len(imported) == 0 {
		return 0, nil
	}
	s.records = append(s.records, imported...)
	if err := s.store.Save(s.records); err != nil {
		return len(imported), err
	}
	return len(imported), nil
}

// SetBackupOnSave пробрасывает настройку backup_on_save в хранилище.
func (s *Session) SetBackupOnSave(on bool) {
	s.store.SetBackupOnSave(on)
}

func (s *Session) today() time.Time {
	y, m, d := s.clk.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func (s *Session) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
